package lz8s

// emitterStats tallies what the forward walk actually wrote, feeding the
// verbose CLI stats (SPEC_FULL §"SUPPLEMENTED FEATURES") without the
// core algorithm itself carrying any instrumentation beyond simple counters.
type emitterStats struct {
	LiteralBytes  int
	MatchBytes    int
	LiteralRecords int
	MatchRecords   int
}

// emit walks the parse table forward from position 0, writing the LITERAL/
// MATCH byte stream described in §6.1 and §4.4.
func emit(data []byte, sp []parseEntry, cm *costModel) ([]byte, emitterStats) {
	n := len(data)
	out := make([]byte, 0, n+n/8+4)
	var stats emitterStats

	inLiteral := false
	lastEmittedThrough := -1

	for p := 0; p < n; p++ {
		if p <= lastEmittedThrough {
			if inLiteral {
				out = append(out, data[p])
				stats.LiteralBytes++
			}
			continue
		}

		extra := 0
		if inLiteral {
			extra = cm.zeroMatchCost
		}

		if addCost(sp[p].lbits, extra) <= sp[p].mbits {
			if inLiteral {
				writeMatchRecord(&out, cm, 0, 0, p)
				stats.MatchRecords++
			}

			chunk := sp[p].llen
			if chunk > cm.p.MaxLLen {
				chunk = cm.p.MaxLLen
			}
			writeLenField(&out, chunk, cm.p.MaxLLen)
			out = append(out, data[p])
			stats.LiteralBytes++
			stats.LiteralRecords++

			inLiteral = true
			lastEmittedThrough = p + chunk - 1
		} else {
			if !inLiteral {
				writeLenField(&out, 0, cm.p.MaxLLen)
				stats.LiteralRecords++
			}

			mlen, mpos := sp[p].mlen, sp[p].mpos
			writeMatchRecord(&out, cm, mlen, mpos, p)
			stats.MatchRecords++
			stats.MatchBytes += mlen

			inLiteral = false
			lastEmittedThrough = p + mlen - 1
		}
	}

	// A stream that ends mid literal-run leaves its LITREC unpaired, which
	// the STREAM := (LITREC MATCHREC)* grammar does not allow; close it with
	// a zero-length match splice. A stream that ends in match mode is
	// already a complete pair and needs nothing further: appending one here
	// would cost bits the parse table never priced in, breaking the
	// bit-cost oracle property for no grammatical reason.
	if inLiteral {
		writeMatchRecord(&out, cm, 0, 0, n)
		stats.MatchRecords++
	}

	return out, stats
}

// writeMatchRecord writes one MLEN [OFFSET] record for a match of length
// mlen at back-distance mpos, where the match starts at input position p
// (p is only used to compute the wire offset in absolute-addressing mode).
func writeMatchRecord(out *[]byte, cm *costModel, mlen, mpos, p int) {
	writeLenField(out, mlen, cm.p.MaxMLen)
	if mlen > 0 || cm.p.ZeroOffset {
		writeOffsetField(out, cm, mpos, p)
	}
}

// writeLenField encodes a length value against the configured bound (§6.1):
// one byte when bound <= 255; otherwise one byte for values <= 127, or a
// two-byte extended form whose second byte carries (v>>7)-1.
func writeLenField(out *[]byte, v, bound int) {
	if bound <= 255 {
		*out = append(*out, byte(v))
		return
	}

	if v <= 127 {
		*out = append(*out, byte(v))
		return
	}

	*out = append(*out, byte(0x80|(v&0xFF)), byte((v>>7)-1))
}

// writeOffsetField encodes the match-offset field (§6.1), little-endian,
// 1 byte for BitsMOff in [1,8], 2 bytes for BitsMOff in [9,16], absent for 0.
func writeOffsetField(out *[]byte, cm *costModel, mpos, p int) {
	bm := cm.p.BitsMOff
	if bm == 0 {
		return
	}

	span := 1 << uint(bm)
	var w int
	if cm.p.OffsetRelSet {
		w = floorMod(p+cm.p.OffsetRel-mpos, span)
	} else {
		w = floorMod(mpos-1, span)
	}
	if cm.p.ExorOffset {
		w ^= cm.mask
	}

	*out = append(*out, byte(w&0xFF))
	if bm > 8 {
		*out = append(*out, byte((w>>8)&0xFF))
	}
}

// floorMod returns a mod m with a non-negative result, matching the wire
// format's "mod 2^bits_moff" wording regardless of the sign of a.
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
