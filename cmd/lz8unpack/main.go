// Command lz8unpack decompresses an LZ8S wire-format stream.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lz8s/lz8s"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !isatty.IsTerminal(os.Stderr.Fd()),
		DisableTimestamp: true,
	})

	fs := pflag.NewFlagSet("lz8unpack", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	bitsMOff := fs.IntP("bits", "o", 8, "match offset width in bits [0,16]")
	maxLLen := fs.IntP("maxllen", "l", 255, "max literal run length [1,32895]")
	maxMLen := fs.IntP("maxmlen", "m", 255, "max match run length [1,32895]")
	absBase := fs.IntP("absolute", "A", -1, "absolute-address base (requires -o 8 or -o 16)")
	zeroOff := fs.BoolP("zero-offset", "n", false, "expect an offset field on zero-length matches")
	exor := fs.BoolP("exor", "x", false, "XOR-invert the offset field against the window mask")
	verbose := fs.BoolP("verbose", "v", false, "print the decompressed size")
	help := fs.BoolP("help", "h", false, "show this help and exit")

	if err := fs.Parse(args); err != nil {
		log.Errorf("lz8unpack: %v (try -h)", err)
		return 2
	}
	if *help {
		fmt.Fprintf(stderr, "usage: lz8unpack [flags] [input_file] [output_file]\n\n%s", fs.FlagUsages())
		return 0
	}

	pos := fs.Args()
	if len(pos) > 2 {
		log.Errorf("lz8unpack: at most two positional arguments, got %d (try -h)", len(pos))
		return 2
	}

	p := lz8s.DefaultParams()
	p.BitsMOff = *bitsMOff
	p.MaxLLen = *maxLLen
	p.MaxMLen = *maxMLen
	p.ZeroOffset = *zeroOff
	p.ExorOffset = *exor
	if fs.Changed("absolute") {
		p.OffsetRelSet = true
		p.OffsetRel = *absBase
	}
	if err := p.Validate(); err != nil {
		log.Errorf("lz8unpack: %v (try -h)", err)
		return 2
	}

	in, out, closeFiles, err := openStreams(pos, stdin, stdout)
	if err != nil {
		log.Errorf("lz8unpack: %v", err)
		return 1
	}
	defer closeFiles()

	src, err := io.ReadAll(in)
	if err != nil {
		log.Errorf("lz8unpack: reading input: %v", err)
		return 1
	}

	dst, err := lz8s.Decode(src, p)
	if err != nil {
		// §7 DecodeError: best-effort, report and exit 0, keeping whatever
		// bytes the decoder produced before the short read. Truncation exactly
		// at a length-field boundary cannot be told apart from a clean end at
		// the wire-format level, so this is the spec's own default rather than
		// a guess.
		log.Errorf("lz8unpack: %v", err)
		if _, werr := out.Write(dst); werr != nil {
			log.Errorf("lz8unpack: writing output: %v", werr)
			return 1
		}
		return 0
	}

	if _, err := out.Write(dst); err != nil {
		log.Errorf("lz8unpack: writing output: %v", err)
		return 1
	}

	if *verbose {
		log.Infof("lz8unpack: wrote %d bytes", len(dst))
	}

	return 0
}

// openStreams resolves the optional [input_file] [output_file] positionals
// to concrete readers/writers, defaulting to stdin/stdout (§6.2).
func openStreams(pos []string, stdin io.Reader, stdout io.Writer) (io.Reader, io.Writer, func(), error) {
	in := stdin
	out := stdout
	closers := make([]io.Closer, 0, 2)

	if len(pos) >= 1 && pos[0] != "-" {
		f, err := os.Open(pos[0])
		if err != nil {
			return nil, nil, nil, err
		}
		in = f
		closers = append(closers, f)
	}
	if len(pos) >= 2 && pos[1] != "-" {
		f, err := os.Create(pos[1])
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, nil, nil, err
		}
		out = f
		closers = append(closers, f)
	}

	return in, out, func() {
		for _, c := range closers {
			c.Close()
		}
	}, nil
}
