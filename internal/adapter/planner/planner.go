package planner

import "tsearch/internal/domain"

// Plan splits [0, fileSize) into one logical range per worker and widens
// each range's physical read window with the context its scanner needs.
//
// The logical ranges tile the file exactly: base = fileSize/workers, the
// last worker absorbs the remainder. A match is attributed to the worker
// whose logical range contains the match's first byte, so the read window
// of a range is extended past its logical edges without any risk of double
// counting: one byte before the logical start for the left-boundary test,
// and wordLen bytes past the logical end for a word body that straddles
// the boundary plus its right-boundary byte.
func Plan(fileSize int64, workers, wordLen int) []domain.Range {
	if fileSize <= 0 || workers < 1 || wordLen < 1 {
		return nil
	}

	base := fileSize / int64(workers)
	wl := int64(wordLen)

	// Bytes read before the logical start: the straddling word body needs
	// wl-1, the left-boundary test always needs at least one.
	left := wl - 1
	if left < 1 {
		left = 1
	}

	ranges := make([]domain.Range, 0, workers)
	for i := 0; i < workers; i++ {
		ls := int64(i) * base
		le := ls + base
		if i == workers-1 {
			le = fileSize
		}

		rs := ls - left
		if rs < 0 {
			rs = 0
		}
		re := le + wl
		if re > fileSize {
			re = fileSize
		}

		ranges = append(ranges, domain.Range{
			Worker:       i,
			LogicalStart: ls,
			LogicalEnd:   le,
			ReadStart:    rs,
			ReadLen:      re - rs,
		})
	}
	return ranges
}
