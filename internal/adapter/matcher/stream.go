package matcher

import "bytes"

// Stream counts whole-word matches across a sequence of blocks without
// ever holding more than one block plus a small carry in memory. Between
// feeds it retains the trailing len(word)+1 bytes, which is enough context
// to decide any match start that was still pending when the previous block
// ended: the word body that may continue into the next block plus the
// boundary bytes on both sides.
//
// Counting can be limited to matches whose first byte falls in the
// absolute offset window [from, to). Chunk scanners use this to attribute
// every match to exactly one worker: the one whose logical range contains
// the match's start offset.
type Stream struct {
	word []byte
	from int64
	to   int64

	n        int64  // absolute offset one past the last byte fed
	nextEval int64  // first absolute start offset not yet decided
	carry    []byte // trailing context kept between feeds
	win      []byte // scratch window: carry + current block
	count    uint64
}

// NewStream returns a stream whose first fed byte sits at absolute offset
// base. When from > 0 the caller must start feeding at base <= from-1 so
// the left-boundary byte of the first attributable match is available.
func NewStream(word []byte, base, from, to int64) *Stream {
	return &Stream{
		word:     word,
		from:     from,
		to:       to,
		n:        base,
		nextEval: base,
		carry:    make([]byte, 0, len(word)+1),
	}
}

// Feed consumes the next block. Blocks may be of any size, including
// smaller than the word.
func (s *Stream) Feed(block []byte) {
	if len(block) == 0 {
		return
	}
	wl := int64(len(s.word))

	s.win = append(s.win[:0], s.carry...)
	s.win = append(s.win, block...)
	winBase := s.n - int64(len(s.carry))
	s.n += int64(len(block))

	// Decide every start whose right-boundary byte is already in hand.
	s.eval(winBase, s.n-wl-1)

	keep := wl + 1
	if int64(len(s.win)) < keep {
		keep = int64(len(s.win))
	}
	s.carry = append(s.carry[:0], s.win[int64(len(s.win))-keep:]...)
}

// Close decides the starts that were waiting on bytes past the end of the
// stream and returns the final count. A match ending exactly at the end of
// the stream has no following byte and passes the right-boundary test.
func (s *Stream) Close() uint64 {
	wl := int64(len(s.word))
	s.win = append(s.win[:0], s.carry...)
	s.eval(s.n-int64(len(s.carry)), s.n-wl)
	return s.count
}

// eval decides all pending starts up to and including last. winBase is the
// absolute offset of s.win[0]; the carry policy guarantees the window holds
// every byte a pending start needs to look at.
func (s *Stream) eval(winBase, last int64) {
	wl := int64(len(s.word))
	for p := s.nextEval; p <= last; p++ {
		if p < s.from || p >= s.to {
			continue
		}
		idx := p - winBase
		if !bytes.Equal(s.win[idx:idx+wl], s.word) {
			continue
		}
		if p > 0 && isAlnum(s.win[idx-1]) {
			continue
		}
		if p+wl < s.n && isAlnum(s.win[idx+wl]) {
			continue
		}
		s.count++
	}
	if last+1 > s.nextEval {
		s.nextEval = last + 1
	}
}
