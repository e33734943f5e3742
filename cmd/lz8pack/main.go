// Command lz8pack compresses a byte stream into the LZ8S wire format.
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

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := newLogger(stderr)

	fs := pflag.NewFlagSet("lz8pack", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	bitsMOff := fs.IntP("bits", "o", 8, "match offset width in bits [0,16]")
	maxLLen := fs.IntP("maxllen", "l", 255, "max literal run length [1,32895]")
	maxMLen := fs.IntP("maxmlen", "m", 255, "max match run length [1,32895]")
	absBase := fs.IntP("absolute", "A", -1, "absolute-address base (requires -o 8 or -o 16)")
	zeroOff := fs.BoolP("zero-offset", "n", false, "emit an offset field on zero-length matches")
	verbose := fs.BoolP("verbose", "v", false, "print compression stats")
	quiet := fs.BoolP("quiet", "q", false, "suppress non-error output")
	debug := fs.BoolP("debug", "d", false, "dump the parser's per-position decision table")
	help := fs.BoolP("help", "h", false, "show this help and exit")

	if err := fs.Parse(args); err != nil {
		return configError(log, fs, err)
	}
	if *help {
		fmt.Fprintf(stderr, "usage: lz8pack [flags] [input_file] [output_file]\n\n%s", fs.FlagUsages())
		return 0
	}
	if *quiet {
		log.SetLevel(logrus.ErrorLevel)
	} else if *verbose || *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	pos := fs.Args()
	if len(pos) > 2 {
		return configError(log, fs, fmt.Errorf("at most two positional arguments, got %d", len(pos)))
	}

	p := lz8s.DefaultParams()
	p.BitsMOff = *bitsMOff
	p.MaxLLen = *maxLLen
	p.MaxMLen = *maxMLen
	p.ZeroOffset = *zeroOff
	if fs.Changed("absolute") {
		p.OffsetRelSet = true
		p.OffsetRel = *absBase
	}
	if err := p.Validate(); err != nil {
		return configError(log, fs, err)
	}

	in, out, closeFiles, err := openStreams(pos, stdin, stdout)
	if err != nil {
		log.Errorf("lz8pack: %v", err)
		return 1
	}
	defer closeFiles()

	src, err := io.ReadAll(in)
	if err != nil {
		log.Errorf("lz8pack: reading input: %v", err)
		return 1
	}
	if len(src) > lz8s.MaxInputSize {
		log.Errorf("lz8pack: input exceeds %d bytes", lz8s.MaxInputSize)
		return 1
	}

	res, err := lz8s.Encode(src, p)
	if err != nil {
		log.Errorf("lz8pack: %v", err)
		return 1
	}

	if *debug {
		debugDump(log, src, p)
	}

	if _, err := out.Write(res.Data); err != nil {
		log.Errorf("lz8pack: writing output: %v", err)
		return 1
	}

	if *verbose {
		ratio := 0.0
		if len(src) > 0 {
			ratio = float64(len(res.Data)) / float64(len(src))
		}
		log.Infof("lz8pack: %d literal bytes, %d match bytes, %d literal records, %d match records, %d -> %d bytes (%.3f)",
			res.LiteralBytes, res.MatchBytes, res.LiteralRecords, res.MatchRecords, len(src), len(res.Data), ratio)
	}

	return 0
}

// debugDump prints the chosen branch and cost at every decision point the
// parser's backward sweep produced, reading the table read-only (the core
// package carries no instrumentation of its own for this).
func debugDump(log *logrus.Logger, src []byte, p lz8s.Params) {
	for i, e := range lz8s.ParseTableForDebug(src, p) {
		if e.Lbits <= e.Mbits {
			log.Debugf("p=%d literal len=%d cost=%d", i, e.Llen, e.Lbits)
		} else {
			log.Debugf("p=%d match len=%d off=%d cost=%d", i, e.Mlen, e.Mpos, e.Mbits)
		}
	}
}

func configError(log *logrus.Logger, fs *pflag.FlagSet, err error) int {
	log.Errorf("lz8pack: %v (try -h)", err)
	return 2
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
	return log
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
