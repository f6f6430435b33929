// Command biquadinfo designs a biquad and prints its coefficients and
// frequency response.
//
// Usage:
//
//	biquadinfo [flags] highpass|notch
//
// Without arguments it prints both filters with the reference parameters.
//
// Examples:
//
//	biquadinfo highpass
//	biquadinfo -fs 250 -fc 0.5 highpass
//	biquadinfo -f0 50 -q 30 -fs 1000 notch
//	biquadinfo -points 8193 -fft -csv notch.csv notch
//	biquadinfo -list
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/dsp/filter/response"
)

type config struct {
	sampleRate float64
	cutoff     float64
	order      int
	center     float64
	q          float64
	points     int
	useFFT     bool
	probes     []float64
	csvPath    string
}

type filterEntry struct {
	name   string
	label  string
	design func(cfg config) (biquad.Coefficients, error)
	// probe is the characteristic frequency tabulated by default.
	probe func(cfg config) float64
}

var registry = []filterEntry{
	{
		name:  "highpass",
		label: "High-Pass Filter",
		design: func(cfg config) (biquad.Coefficients, error) {
			return design.ButterworthHighpass(cfg.order, cfg.cutoff, cfg.sampleRate)
		},
		probe: func(cfg config) float64 { return cfg.cutoff },
	},
	{
		name:  "notch",
		label: "IIR Notch Filter",
		design: func(cfg config) (biquad.Coefficients, error) {
			return design.Notch(cfg.center, cfg.q, cfg.sampleRate)
		},
		probe: func(cfg config) float64 { return cfg.center },
	},
}

func main() {
	cfg := config{}
	flag.Float64Var(&cfg.sampleRate, "fs", 40, "sample rate in Hz")
	flag.Float64Var(&cfg.cutoff, "fc", 0.1, "highpass cutoff frequency in Hz")
	flag.IntVar(&cfg.order, "order", design.ButterworthOrder, "highpass order")
	flag.Float64Var(&cfg.center, "f0", 4.5, "notch center frequency in Hz")
	flag.Float64Var(&cfg.q, "q", 0.5, "notch quality factor")
	flag.IntVar(&cfg.points, "points", 8000, "number of response points from 0 Hz to Nyquist")
	flag.BoolVar(&cfg.useFFT, "fft", false, "evaluate the response with FFTs (points-1 must be a power of two)")
	probe := flag.String("probe", "", "comma separated frequencies to tabulate (default: 0, cutoff/center, Nyquist)")
	flag.StringVar(&cfg.csvPath, "csv", "", "write the full magnitude response to this CSV file")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: biquadinfo [flags] highpass|notch\n\n")
		fmt.Fprintf(os.Stderr, "Designs a biquad and prints its coefficients and frequency response.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints both filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo highpass\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -f0 50 -q 30 -fs 1000 notch\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -points 8193 -fft -csv notch.csv notch\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	probes, err := parseProbes(*probe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg.probes = probes

	entries, err := resolveEntries(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if cfg.csvPath != "" && len(entries) != 1 {
		fmt.Fprintf(os.Stderr, "error: -csv needs exactly one filter name\n")
		os.Exit(2)
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Println()
		}
		if err := run(os.Stdout, e, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}
	}
}

func printList(w io.Writer) {
	for _, e := range registry {
		fmt.Fprintln(w, e.name)
	}
}

func resolveEntries(names []string) ([]filterEntry, error) {
	if len(names) == 0 {
		return registry, nil
	}

	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	result := make([]filterEntry, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown filter %q (use -list to see available)", name)
		}
		result = append(result, e)
	}
	return result, nil
}

func parseProbes(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []float64
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probe frequency %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// run designs the filter, evaluates it and writes the report to w.
func run(w io.Writer, e filterEntry, cfg config) error {
	c, err := e.design(cfg)
	if err != nil {
		return err
	}

	b := c.Numerator()
	a := c.Denominator()

	evaluate := response.Evaluate
	if cfg.useFFT {
		evaluate = response.EvaluateFFT
	}
	r, err := evaluate(b[:], a[:], cfg.sampleRate, cfg.points)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Frequency Response of the %s\n\n", e.label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s Coefficients:\n", e.label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "b (numerator): %s\n", formatCoeffs(b)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "a (denominator): %s\n", formatCoeffs(a)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "max pole radius: %.6f (stable: %t)\n\n", c.MaxPoleRadius(), c.IsStable()); err != nil {
		return err
	}

	probes := cfg.probes
	if len(probes) == 0 {
		probes = []float64{0, e.probe(cfg), cfg.sampleRate / 2}
	}
	if err := printProbes(w, r, probes); err != nil {
		return err
	}

	if cfg.csvPath != "" {
		return writeCSVFile(cfg.csvPath, r)
	}
	return nil
}

func formatCoeffs(c [3]float64) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'g', 10, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func printProbes(w io.Writer, r response.FrequencyResponse, probes []float64) error {
	db := r.MagnitudeDB()
	phase := r.Phase()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tAmplitude [dB]\tPhase [rad]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------------\t--------------\t-----------\n"); err != nil {
		return err
	}
	for _, f := range probes {
		i := r.Nearest(f)
		if _, err := fmt.Fprintf(tw, "%.4f\t%s\t%.4f\n", r.Frequencies[i], formatDB(db[i]), phase[i]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatDB(db float64) string {
	if math.IsInf(db, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(db, 'f', 2, 64)
}

func writeCSVFile(path string, r response.FrequencyResponse) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeCSV(f, r)
}

// writeCSV writes one "Frequency [Hz],Amplitude [dB]" row per grid point,
// the form a plotting tool can consume directly.
func writeCSV(w io.Writer, r response.FrequencyResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Frequency [Hz]", "Amplitude [dB]"}); err != nil {
		return err
	}

	db := r.MagnitudeDB()
	for i, f := range r.Frequencies {
		row := []string{
			strconv.FormatFloat(f, 'g', -1, 64),
			strconv.FormatFloat(db[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
