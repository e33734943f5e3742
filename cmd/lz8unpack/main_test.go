package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lz8s/lz8s"
)

func TestRun_DecodesEncodedStream(t *testing.T) {
	p := lz8s.DefaultParams()
	res, err := lz8s.Encode([]byte("round trip through the lz8unpack CLI driver"), p)
	require.NoError(t, err)

	in := bytes.NewReader(res.Data)
	var out, errOut bytes.Buffer

	code := run(nil, in, &out, &errOut)
	require.Equal(t, 0, code, "stderr: %s", errOut.String())
	require.Equal(t, "round trip through the lz8unpack CLI driver", out.String())
}

func TestRun_ExorRoundTrip(t *testing.T) {
	p := lz8s.Params{BitsMOff: 8, MaxMLen: 255, MaxLLen: 255, MinMLen: 1, ExorOffset: true}
	res, err := lz8s.Encode([]byte("mississippi river mississippi river"), p)
	require.NoError(t, err)

	in := bytes.NewReader(res.Data)
	var out, errOut bytes.Buffer

	code := run([]string{"-x"}, in, &out, &errOut)
	require.Equal(t, 0, code, "stderr: %s", errOut.String())
	require.Equal(t, "mississippi river mississippi river", out.String())
}

func TestRun_RejectsBadParams(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-o", "4", "-A", "3"}, bytes.NewReader(nil), &out, &errOut)
	require.Equal(t, 2, code)
	require.Contains(t, errOut.String(), "try -h")
}

func TestRun_TruncatedInputIsBestEffort(t *testing.T) {
	// A literal length of 5 followed by only one payload byte is a truncated
	// literal, not a clean end-of-stream; Decode errors, and the CLI still flushes
	// whatever partial bytes it produced and exits 0 (§7's default).
	var out, errOut bytes.Buffer
	code := run(nil, bytes.NewReader([]byte{0x05, 0x41}), &out, &errOut)
	require.Equal(t, 0, code)
	require.NotEmpty(t, errOut.String())
}

func TestRun_HelpExitsZero(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-h"}, bytes.NewReader(nil), &out, &errOut)
	require.Equal(t, 0, code)
	require.Contains(t, errOut.String(), "usage: lz8unpack")
}

func TestRun_VerboseReportsSize(t *testing.T) {
	p := lz8s.DefaultParams()
	res, err := lz8s.Encode([]byte("some bytes to decode verbosely"), p)
	require.NoError(t, err)

	in := bytes.NewReader(res.Data)
	var out, errOut bytes.Buffer

	code := run([]string{"-v"}, in, &out, &errOut)
	require.Equal(t, 0, code)
	require.Contains(t, errOut.String(), "wrote")
}
