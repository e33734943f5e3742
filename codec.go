package lz8s

// MaxInputSize is the input cap named in §5's resource model: the whole
// input is read into memory before parsing begins, and 128 KiB bounds the
// parser table's backing array.
const MaxInputSize = 128 * 1024

// EncodeResult carries the compressed stream plus the counters the CLI's
// verbose output surfaces (SPEC_FULL §"SUPPLEMENTED FEATURES").
type EncodeResult struct {
	Data           []byte
	LiteralBytes   int
	MatchBytes     int
	LiteralRecords int
	MatchRecords   int
}

// Encode validates p, then runs the optimal parser (C3) and the emitter
// (C4) over src, producing a byte-for-byte reproducible stream for a
// given (src, p) pair (§5: tie-break and comparison direction are
// observable and must be preserved).
func Encode(src []byte, p Params) (*EncodeResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(src) > MaxInputSize {
		return nil, ErrInputOverrun
	}

	cm := newCostModel(p)
	sp := buildParseTable(src, cm)
	out, stats := emit(src, sp, cm)

	return &EncodeResult{
		Data:           out,
		LiteralBytes:   stats.LiteralBytes,
		MatchBytes:     stats.MatchBytes,
		LiteralRecords: stats.LiteralRecords,
		MatchRecords:   stats.MatchRecords,
	}, nil
}
