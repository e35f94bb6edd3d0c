package matcher

import "bytes"

// Count reports the number of whole-word occurrences of word in buf.
// A candidate match is accepted only when the byte before it and the byte
// after it are either absent (buffer edge) or not ASCII alphanumeric, so
// the word is never counted inside a longer token.
//
// The test is buffer-scoped: Count cannot know what lies beyond buf's
// edges. Streaming callers that split a file into blocks must use Stream,
// which carries the edge context between blocks.
func Count(buf, word []byte) uint64 {
	wl := len(word)
	if wl == 0 || len(buf) < wl {
		return 0
	}

	var count uint64
	for p := 0; p+wl <= len(buf); p++ {
		if !bytes.Equal(buf[p:p+wl], word) {
			continue
		}
		if p > 0 && isAlnum(buf[p-1]) {
			continue
		}
		if p+wl < len(buf) && isAlnum(buf[p+wl]) {
			continue
		}
		count++
	}
	return count
}

// isAlnum is the ASCII word-boundary classification. No Unicode rules.
func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
