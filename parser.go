package lz8s

// literalExtendBound is the empirical "extend by at most this many bytes"
// window used when considering how to grow a literal run at the current
// position (§4.3, §9): extending further can always be expressed by chaining
// through an intermediate position, so the DP loses no optima by capping here.
const literalExtendBound = 5

// parseEntry is one row of the backward-sweep decision table (§3). lbits and
// mbits are kept separate (rather than collapsed to a single "best" cost)
// because downstream decisions at earlier positions read both independently.
type parseEntry struct {
	lbits int // cost of the best encoding that starts a literal run at this position
	llen  int // length of that literal run
	mbits int // cost of the best encoding that starts a match at this position
	mlen  int // length of that match
	mpos  int // back-distance of that match
}

// buildParseTable runs the backward dynamic-programming sweep over data and
// returns the (N+1)-entry decision table described in §3/§4.3.
func buildParseTable(data []byte, cm *costModel) []parseEntry {
	n := len(data)
	sp := make([]parseEntry, n+1)
	sp[n] = parseEntry{lbits: 0, llen: 0, mbits: infiniteCost}

	for p := n - 1; p >= 0; p-- {
		sp[p] = bestLiteralChoice(data, p, sp, cm)
		sp[p].mbits, sp[p].mlen, sp[p].mpos = bestMatchChoice(data, p, sp, cm)
	}

	return sp
}

// bestLiteralChoice fills the literal half of sp[p]: the cheapest way to
// either extend an already-open literal run that continues at p+i, or to
// terminate a fresh i-byte literal run and hand off into a match at p+i (§4.3).
func bestLiteralChoice(data []byte, p int, sp []parseEntry, cm *costModel) parseEntry {
	n := len(data)
	best := parseEntry{lbits: infiniteCost, llen: 0}

	for i := 1; i <= literalExtendBound && p+i <= n; i++ {
		nxt := sp[p+i]

		// Extend: the i new bytes join the literal run already starting at
		// p+i, so its length-field cost is re-priced for the longer run.
		extendCost := addCost(nxt.lbits, addCost(8*i, cm.llenCost(nxt.llen+i)-cm.llenCost(nxt.llen)))
		if extendCost <= best.lbits {
			best.lbits = extendCost
			best.llen = nxt.llen + i
		}

		// Terminate: exactly i literal bytes, then a match opens at p+i.
		termCost := addCost(nxt.mbits, addCost(8*i, cm.llenCost(i)))
		if termCost <= best.lbits {
			best.lbits = termCost
			best.llen = i
		}
	}

	return best
}

// bestMatchChoice fills the match half of sp[p]: it invokes the match finder
// once for the longest candidate at p, then considers every legal shorter
// length against both possible successor modes (§4.3).
func bestMatchChoice(data []byte, p int, sp []parseEntry, cm *costModel) (mbits, mlen, mpos int) {
	ml, mp := findMatch(data, p, cm.p)
	if ml < cm.p.MinMLen || mp == 0 {
		return infiniteCost, 0, 0
	}

	mbits = infiniteCost
	for l := cm.p.MinMLen; l <= ml; l++ {
		lenCost := cm.mlenCost(l)
		offCost := cm.moffCost(mp)

		// Landing in a match: the successor must open with a one-byte literal splice.
		intoMatch := addCost(sp[p+l].mbits, addCost(cm.llenCost(1), addCost(offCost, lenCost)))
		if intoMatch <= mbits {
			mbits = intoMatch
			mlen = l
		}

		// Landing in a literal.
		intoLiteral := addCost(sp[p+l].lbits, addCost(offCost, lenCost))
		if intoLiteral <= mbits {
			mbits = intoLiteral
			mlen = l
		}
	}

	if mbits >= infiniteCost {
		return infiniteCost, 0, 0
	}
	return mbits, mlen, mp
}
