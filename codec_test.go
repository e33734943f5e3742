package lz8s

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lz8s test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 400)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 3000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 300)},
		{name: "all-distinct", data: distinctBytes(256)},
	}
}

func distinctBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func paramSets() []struct {
	name string
	p    Params
} {
	return []struct {
		name string
		p    Params
	}{
		{name: "default", p: DefaultParams()},
		{name: "bits16", p: Params{BitsMOff: 16, MaxMLen: 255, MaxLLen: 255, MinMLen: 1}},
		{name: "small-runs", p: Params{BitsMOff: 8, MaxMLen: 8, MaxLLen: 4, MinMLen: 1}},
		{name: "zero-bits", p: Params{BitsMOff: 0, MaxMLen: 255, MaxLLen: 255, MinMLen: 1}},
		{name: "zero-offset-flag", p: Params{BitsMOff: 8, MaxMLen: 255, MaxLLen: 255, MinMLen: 1, ZeroOffset: true}},
		{name: "exor", p: Params{BitsMOff: 8, MaxMLen: 255, MaxLLen: 255, MinMLen: 1, ExorOffset: true}},
		{name: "absolute", p: Params{BitsMOff: 8, MaxMLen: 255, MaxLLen: 255, MinMLen: 1, OffsetRelSet: true, OffsetRel: 5}},
		{name: "min-mlen-3", p: Params{BitsMOff: 8, MaxMLen: 255, MaxLLen: 255, MinMLen: 3}},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		for _, ps := range paramSets() {
			name := fmt.Sprintf("%s/%s", in.name, ps.name)
			t.Run(name, func(t *testing.T) {
				res, err := Encode(in.data, ps.p)
				if err != nil {
					t.Fatalf("Encode failed: %v", err)
				}

				out, err := Decode(res.Data, ps.p)
				if err != nil {
					t.Fatalf("Decode failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d bytes, want=%d bytes", len(out), len(in.data))
				}
			})
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 50)
	p := DefaultParams()

	first, err := Encode(data, p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Encode(data, p)
		if err != nil {
			t.Fatalf("Encode failed on run %d: %v", i, err)
		}
		if !bytes.Equal(first.Data, again.Data) {
			t.Fatalf("run %d produced a different stream", i)
		}
	}
}

func TestEncode_EmptyInput(t *testing.T) {
	res, err := Encode(nil, DefaultParams())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(res.Data) > 1 {
		t.Fatalf("empty input should encode to at most one byte, got %d", len(res.Data))
	}

	out, err := Decode(res.Data, DefaultParams())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestEncode_SelfReferentialRun(t *testing.T) {
	data := bytes.Repeat([]byte{'X'}, 64)
	res, err := Encode(data, DefaultParams())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if res.LiteralRecords < 1 || res.MatchRecords < 1 {
		t.Fatalf("expected at least one literal and one match record, got lit=%d match=%d",
			res.LiteralRecords, res.MatchRecords)
	}
	if res.MatchBytes != len(data)-1 {
		t.Fatalf("expected a single match covering len-1 bytes, got %d", res.MatchBytes)
	}

	out, err := Decode(res.Data, DefaultParams())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch for self-referential run")
	}
}

func TestEncode_LiteralSaturation(t *testing.T) {
	p := Params{BitsMOff: 8, MaxMLen: 255, MaxLLen: 4, MinMLen: 1}
	data := distinctBytes(5) // max_llen + 1 distinct bytes

	res, err := Encode(data, p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if res.LiteralRecords != 2 {
		t.Fatalf("expected exactly one saturating literal plus one single-byte literal, got %d literal records", res.LiteralRecords)
	}
	// One mid-stream splice joins the saturating chunk to the trailing
	// single byte, and one more closes the stream's final dangling literal
	// (DESIGN.md's end-of-stream finalization note).
	if res.MatchRecords != 2 {
		t.Fatalf("expected exactly two zero-length match records (splice + terminator), got %d", res.MatchRecords)
	}
	if res.MatchBytes != 0 {
		t.Fatalf("zero-length match records must carry zero match bytes, got %d", res.MatchBytes)
	}

	out, err := Decode(res.Data, p)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestEncode_CostMonotonicityAcrossMaxMLen(t *testing.T) {
	data := bytes.Repeat([]byte("mississippi river"), 30)

	var prevLen = -1
	for _, k := range []int{1, 2, 4, 8, 32, 128, 255} {
		p := Params{BitsMOff: 8, MaxMLen: k, MaxLLen: 255, MinMLen: 1}
		res, err := Encode(data, p)
		if err != nil {
			t.Fatalf("Encode failed for max_mlen=%d: %v", k, err)
		}
		if prevLen >= 0 && len(res.Data) > prevLen {
			t.Fatalf("max_mlen=%d produced a larger stream (%d) than a smaller bound (%d)", k, len(res.Data), prevLen)
		}
		prevLen = len(res.Data)
	}
}

// TestEncode_BitCostOracle checks the parser's predicted minimum against the
// emitter's actual output size. A stream ending mid literal-run needs one
// extra closing zero-length-match record (DESIGN.md's "end-of-stream
// finalization" note) that sp[0] does not price in, since entry N is fixed
// by the DP to {lbits: 0, mbits: inf} regardless of how the stream actually
// terminates; that one-record gap is the only allowed discrepancy here.
func TestEncode_BitCostOracle(t *testing.T) {
	for _, in := range testInputSet() {
		if len(in.data) == 0 {
			continue
		}
		p := DefaultParams()
		cm := newCostModel(p)
		sp := buildParseTable(in.data, cm)

		want := sp[0].lbits
		if sp[0].mbits < want {
			want = sp[0].mbits
		}

		res, err := Encode(in.data, p)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		got := 8 * len(res.Data)
		if got != want && got != want+cm.zeroMatchCost {
			t.Fatalf("%s: bit-cost oracle mismatch: parser predicted %d bits, emitter wrote %d bits", in.name, want, got)
		}
	}
}

func TestEncode_RejectsOversizedInput(t *testing.T) {
	_, err := Encode(make([]byte, MaxInputSize+1), DefaultParams())
	if err == nil {
		t.Fatal("expected an error for input over the 128 KiB cap")
	}
}
