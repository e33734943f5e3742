package lz8s

// DebugEntry mirrors one row of the parser's internal decision table,
// exported read-only for the CLI's -d parse dump (SPEC_FULL
// §"SUPPLEMENTED FEATURES"). The core algorithm carries no instrumentation
// of its own; a caller wanting to inspect the sweep re-derives this table
// directly from Params.
type DebugEntry struct {
	Lbits, Llen int
	Mbits, Mlen, Mpos int
}

// ParseTableForDebug runs the same backward sweep Encode uses and returns
// it verbatim (dropping the sentinel trailing row) for external inspection.
func ParseTableForDebug(data []byte, p Params) []DebugEntry {
	cm := newCostModel(p)
	sp := buildParseTable(data, cm)

	out := make([]DebugEntry, len(data))
	for i, e := range sp[:len(data)] {
		out[i] = DebugEntry{Lbits: e.lbits, Llen: e.llen, Mbits: e.mbits, Mlen: e.mlen, Mpos: e.mpos}
	}
	return out
}
