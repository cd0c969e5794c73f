// Command easing prints the values of an easing curve.
//
// Usage:
//
//	easing -curve quad_in -start 0 -end 10000 -steps 10
//	easing -curve sin_inout -steps 60 -format csv > frames.csv
//	easing -start 0 -timeline '[{"value":1,"steps":30,"curve":"exp_out"},{"value":0,"steps":30,"curve":"quad_in"}]'
//	easing -list                 # List curve names
//	easing -demo                 # Table of every curve from 0 to 10000
//	easing -info                 # SIMD capabilities used by bulk fills
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tphakala/go-easing"
	"github.com/tphakala/go-easing/internal/simdops"
)

var errUnknownFormat = errors.New("unknown output format")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("easing", flag.ContinueOnError)
	var (
		curveName = fs.String("curve", defaultCurve, "Curve name (see -list)")
		start     = fs.Float64("start", defaultStart, "Start value (progress 0, not printed)")
		end       = fs.Float64("end", defaultEnd, "End value (progress 1, always printed last)")
		steps     = fs.Int("steps", easing.DefaultSteps, "Number of values to print")
		format    = fs.String("format", defaultFormat, "Output format: text, csv")
		timeline  = fs.String("timeline", "", "JSON list of keyframes ({value, steps, curve}) eased in turn from -start")
		list      = fs.Bool("list", false, "List curve names and exit")
		demo      = fs.Bool("demo", false, "Print a table of every curve")
		info      = fs.Bool("info", false, "Print SIMD capabilities and exit")
		verbose   = fs.Bool("v", false, "Verbose output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *list:
		return writeList(stdout)
	case *info:
		_, err := fmt.Fprintf(stdout, "SIMD: %s\n", simdops.Info())
		return err
	case *demo:
		return writeDemo(stdout)
	}

	if *timeline != "" {
		tl, err := parseTimeline(*start, *timeline)
		if err != nil {
			return err
		}
		if *verbose {
			log.Printf("Timeline: %d steps from %g", tl.Steps(), *start)
		}
		return writeSequence(stdout, tl, *format)
	}

	curve, err := easing.ParseCurve(*curveName)
	if err != nil {
		return err
	}

	config := easing.Config{
		Curve: curve,
		Start: *start,
		End:   *end,
		Steps: *steps,
	}

	seq, err := easing.NewSequence(&config)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Curve: %s", config.Curve)
		log.Printf("Range: %g -> %g over %d steps", config.Start, config.End, config.Steps)
	}

	return writeSequence(stdout, seq, *format)
}

// valueSource is implemented by easing.Sequence and easing.Timeline.
type valueSource interface {
	All() iter.Seq[float64]
}

// parseTimeline builds a timeline from a JSON list of keyframes.
func parseTimeline(start float64, raw string) (*easing.Timeline, error) {
	var keyframes []easing.Keyframe
	if err := json.Unmarshal([]byte(raw), &keyframes); err != nil {
		return nil, fmt.Errorf("invalid -timeline: %w", err)
	}
	return easing.NewTimeline(start, keyframes...)
}

// writeSequence prints every remaining value of seq in the given format.
func writeSequence(w io.Writer, seq valueSource, format string) error {
	switch strings.ToLower(format) {
	case formatText:
		for v := range seq.All() {
			if _, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'f', textPrecision, 64)); err != nil {
				return err
			}
		}
		return nil

	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"step", "value"}); err != nil {
			return err
		}
		step := 0
		for v := range seq.All() {
			step++
			record := []string{strconv.Itoa(step), strconv.FormatFloat(v, 'g', csvPrecision, 64)}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func writeList(w io.Writer) error {
	for _, c := range easing.Curves() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

func writeDemo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== Easing curves, %g -> %g over %d steps ===\n", demoStart, demoEnd, demoSteps); err != nil {
		return err
	}

	values := make([]float64, demoSteps)
	for _, c := range easing.Curves() {
		if err := easing.Fill(values, c, demoStart, demoEnd); err != nil {
			return err
		}

		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = fmt.Sprintf("%9.2f", v)
		}
		if _, err := fmt.Fprintf(w, "%-14s %s\n", c, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
