package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wavesplatform/gostruct/pkg/bitbuffer"
	"github.com/wavesplatform/gostruct/pkg/logging"
)

var usage = `

Usage:
  bitdump --in FILE --layout SPEC [flags]

Layout is a comma separated list of items, each optionally prefixed with "name:":
  uN    N bits unsigned integer, 1 to 64
  b     boolean bit
  i8, i16, i32, i64
        signed integers
  f32, f64
        floating point numbers
  s     NUL terminated string
  sN    string occupying exactly N bytes
  rN    N raw bytes

`

type options struct {
	in        string
	layout    string
	raw       string
	offset    uint64
	bitOffset uint64
	logging   logging.Parameters
}

func parseOptions(args []string) (options, error) {
	opts := options{}
	fs := flag.NewFlagSet("bitdump", flag.ContinueOnError)
	fs.StringVarP(&opts.in, "in", "i", "", "Path to the input file")
	fs.StringVarP(&opts.layout, "layout", "l", "", "Layout of the decoded items")
	fs.StringVar(&opts.raw, "raw", "hex", "Encoding of raw bytes items: hex or base58")
	fs.Uint64Var(&opts.offset, "offset", 0, "Byte offset of the first item")
	fs.Uint64Var(&opts.bitOffset, "bit-offset", 0, "Bits to skip after the byte offset")
	opts.logging.Initialize(fs)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.in == "" || opts.layout == "" {
		return opts, errors.New("both input file and layout are required")
	}
	if err := opts.logging.Parse(); err != nil {
		return opts, err
	}
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Err: %s\n", err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	logger, log := logging.SetupLogger(opts.logging)
	defer func() {
		_ = logger.Sync()
	}()
	if err := dump(afero.NewOsFs(), opts, os.Stdout, log); err != nil {
		log.Errorf("Failed to dump %q: %v", opts.in, err)
		os.Exit(1)
	}
}

func dump(fs afero.Fs, opts options, out io.Writer, log *zap.SugaredLogger) error {
	raw, err := parseRawEncoding(opts.raw)
	if err != nil {
		return err
	}
	items, err := parseLayout(opts.layout)
	if err != nil {
		return err
	}
	offset, err := safecast.Convert[int](opts.offset)
	if err != nil {
		return errors.Wrapf(err, "invalid offset %d", opts.offset)
	}
	bitOffset, err := safecast.Convert[int](opts.bitOffset)
	if err != nil {
		return errors.Wrapf(err, "invalid bit offset %d", opts.bitOffset)
	}
	data, err := afero.ReadFile(fs, opts.in)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	log.Debugf("Read %d bytes from %q", len(data), opts.in)

	bb := bitbuffer.New(data)
	if err := bb.Seek(offset, bitOffset); err != nil {
		return err
	}
	for _, it := range items {
		start := bb.PositionBits()
		v, err := it.decode(bb, raw)
		if err != nil {
			return errors.Wrapf(err, "failed to decode item %q at bit %d", it.name, start)
		}
		log.Debugf("Decoded item %q at bits [%d, %d)", it.name, start, bb.PositionBits())
		if _, err := fmt.Fprintf(out, "%s=%s\n", it.name, v); err != nil {
			return err
		}
	}
	log.Debugf("%d bits remaining", bb.RemainingBits())
	return nil
}
