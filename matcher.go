package lz8s

// findMatch returns the longest back-reference available to data[pos:]
// within the sliding window [max(0, pos-maxOff), pos), bounded by
// min(MaxMLen, len(data)-pos) (§4.2). It returns (0, 0) when the window is
// empty or no byte in the window matches data[pos].
//
// Ties are broken toward the first (furthest-back) position reaching a given
// length, by scanning the window from its oldest end forward and only
// replacing the current best on a strictly longer match. This is a direct
// brute-force scan, acceptable at the codec's N <= 128 KiB / maxOff <= 64 KiB
// scale (§4.2); the teacher's hash-chain matcher (sliding_window.go,
// compress_1x_999.go) is the grounding for the windowed LCP-extension idea,
// traded here for an exhaustive scan since the optimal parser needs the true
// longest match at every position, not a first-good-enough one.
func findMatch(data []byte, pos int, p Params) (mlen, mpos int) {
	n := len(data)

	bound := p.MaxMLen
	if rem := n - pos; rem < bound {
		bound = rem
	}
	if bound <= 0 {
		return 0, 0
	}

	lo := pos - p.maxOff()
	if lo < 0 {
		lo = 0
	}

	bestLen := 0
	bestStart := -1

	for i := lo; i < pos; i++ {
		l := commonPrefixLen(data, i, pos, bound)
		if l > bestLen {
			bestLen = l
			bestStart = i
			if bestLen >= bound {
				break
			}
		}
	}

	if bestStart < 0 {
		return 0, 0
	}
	return bestLen, pos - bestStart
}

// commonPrefixLen returns how many leading bytes of data[pos:pos+bound] equal
// data[i:i+bound]. Because i can be less than pos while pos+l can reach at or
// past pos, this also naturally extends through a match's own freshly "copied"
// bytes, matching the decoder's overlapping byte-by-byte copy for off=1 runs.
func commonPrefixLen(data []byte, i, pos, bound int) int {
	l := 0
	for l < bound && data[i+l] == data[pos+l] {
		l++
	}
	return l
}
