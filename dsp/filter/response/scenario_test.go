package response_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/dsp/filter/response"
	"github.com/cwbudde/algo-biquad/internal/testutil"
)

func TestNotchReferenceResponse(t *testing.T) {
	c, err := design.Notch(4.5, 0.5, 40)
	if err != nil {
		t.Fatalf("Notch: %v", err)
	}
	b := c.Numerator()
	a := c.Denominator()

	r, err := response.Evaluate(b[:], a[:], 40, 8000)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	db := r.MagnitudeDB()
	testutil.RequireFinite(t, db)

	center := r.Nearest(4.5)
	if db[center] >= -60 {
		t.Fatalf("gain at %v Hz = %v dB, want < -60 dB", r.Frequencies[center], db[center])
	}
	if math.Abs(db[0]) > 0.1 {
		t.Fatalf("gain at DC = %v dB, want within 0.1 dB of 0", db[0])
	}
	if last := r.Len() - 1; math.Abs(db[last]) > 0.1 {
		t.Fatalf("gain at %v Hz = %v dB, want within 0.1 dB of 0", r.Frequencies[last], db[last])
	}

	// The minimum of the sampled response is the bin next to the notch.
	minIdx := 0
	for i := range db {
		if db[i] < db[minIdx] {
			minIdx = i
		}
	}
	if minIdx != center {
		t.Fatalf("deepest bin %d (%v Hz), want %d (%v Hz)", minIdx, r.Frequencies[minIdx], center, r.Frequencies[center])
	}
}

func TestHighpassReferenceResponse(t *testing.T) {
	c, err := design.ButterworthHighpass(2, 0.1, 40)
	if err != nil {
		t.Fatalf("ButterworthHighpass: %v", err)
	}

	r, err := response.EvaluateCoefficients(c, 40, 8000)
	if err != nil {
		t.Fatalf("EvaluateCoefficients: %v", err)
	}
	mag := r.Magnitude()

	if mag[0] > 1e-12 {
		t.Fatalf("|H(0)| = %v, want 0", mag[0])
	}
	if last := r.Len() - 1; math.Abs(mag[last]-1) > 1e-9 {
		t.Fatalf("|H(Nyquist)| = %v, want 1", mag[last])
	}
	for i := 1; i < len(mag); i++ {
		if mag[i] < mag[i-1]-1e-12 {
			t.Fatalf("highpass magnitude decreased at %v Hz", r.Frequencies[i])
		}
	}
}

func TestDesignersFeedFFTEvaluator(t *testing.T) {
	hp, err := design.ButterworthHighpass(2, 0.1, 40)
	if err != nil {
		t.Fatal(err)
	}
	notch, err := design.Notch(4.5, 0.5, 40)
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		name string
		b, a [3]float64
	}{
		{name: "highpass", b: hp.Numerator(), a: hp.Denominator()},
		{name: "notch", b: notch.Numerator(), a: notch.Denominator()},
	} {
		r, err := response.EvaluateFFT(c.b[:], c.a[:], 40, 8193)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if r.Len() != 8193 || r.Frequencies[8192] != 20 {
			t.Fatalf("%s: unexpected grid len=%d last=%v", c.name, r.Len(), r.Frequencies[r.Len()-1])
		}

		direct, err := response.Evaluate(c.b[:], c.a[:], 40, 8193)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		diff, err := testutil.MaxAbsDiff(r.Magnitude(), direct.Magnitude())
		if err != nil {
			t.Fatal(err)
		}
		if diff > 1e-9 {
			t.Fatalf("%s: FFT and direct magnitudes differ by %v", c.name, diff)
		}
	}
}
