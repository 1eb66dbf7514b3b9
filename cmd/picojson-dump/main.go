// Command picojson-dump reads a JSON document and prints the sequence of
// events the parser produces, one per line. It is a thin demonstration of
// the library, not a supported tool in its own right.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	picojson "github.com/kaidokert/picojson-go"
)

func main() {
	stream := flag.Bool("stream", false, "parse incrementally via the Reader-based API instead of loading the whole input")
	scratchSize := flag.Int("scratch-size", 4096, "scratch buffer capacity in bytes, for unescaped strings")
	floatMode := flag.String("floats", "disabled", "float handling: enabled, disabled, error, skip, truncate")
	flag.Parse()

	mode, err := parseFloatMode(*floatMode)
	if err != nil {
		log.Fatalf("picojson-dump: %v", err)
	}

	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	if err := run(path, *stream, *scratchSize, mode); err != nil {
		log.Fatalf("picojson-dump: %v", err)
	}
}

func parseFloatMode(s string) (picojson.FloatMode, error) {
	switch s {
	case "enabled":
		return picojson.FloatEnabled, nil
	case "disabled":
		return picojson.FloatDisabled, nil
	case "error":
		return picojson.FloatError, nil
	case "skip":
		return picojson.FloatSkip, nil
	case "truncate":
		return picojson.FloatTruncate, nil
	default:
		return 0, fmt.Errorf("unknown -floats value %q", s)
	}
}

func run(path string, streamMode bool, scratchSize int, floatMode picojson.FloatMode) error {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	opts := []picojson.Option{picojson.WithFloatMode(floatMode)}
	scratch := make([]byte, scratchSize)

	var parser *picojson.Parser[picojson.DefaultCounter]
	var err error
	if streamMode {
		parser, err = picojson.NewDefaultStreamParser(r, scratch, opts...)
	} else {
		data, readErr := io.ReadAll(r)
		if readErr != nil {
			return readErr
		}
		parser, err = picojson.NewDefaultSliceParser(data, scratch, opts...)
	}
	if err != nil {
		return err
	}

	w := os.Stdout
	for {
		ev, perr := parser.NextEvent()
		if perr != nil {
			return perr
		}
		printEvent(w, ev)
		if ev.Kind == picojson.EndDocument {
			return nil
		}
	}
}

func printEvent(w io.Writer, ev picojson.Event) {
	switch ev.Kind {
	case picojson.Key:
		fmt.Fprintf(w, "Key %q\n", ev.Str.Value)
	case picojson.String:
		fmt.Fprintf(w, "String %q\n", ev.Str.Value)
	case picojson.Number:
		fmt.Fprintf(w, "Number %s (%v)\n", ev.Num.Raw, ev.Num.Kind)
	case picojson.Bool:
		fmt.Fprintf(w, "Bool %v\n", ev.Bool)
	default:
		fmt.Fprintln(w, ev.Kind)
	}
}
