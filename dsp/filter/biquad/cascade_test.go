package biquad

import (
	"testing"
)

// Second-order Butterworth high-pass, 100 Hz cutoff at 16 kHz.
var highPassCoefficients = []Coefficients{
	{B: [3]float32{0.97261, -1.94523, 0.97261}, A: [2]float32{-1.94448, 0.94598}},
}

var (
	transparentCoefficients = []Coefficients{{B: [3]float32{1, 0, 0}}}
	blockingCoefficients    = []Coefficients{{}}
	// Two sign-flips, the second delayed by two samples.
	cascadedCoefficients = []Coefficients{
		{B: [3]float32{-1, 0, 0}},
		{B: [3]float32{0, 0, -1}},
	}
)

func requireEqualSamples(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewCascade(t *testing.T) {
	c := NewCascade(cascadedCoefficients)
	if c.NumSections() != 2 {
		t.Fatalf("NumSections: got %d, want 2", c.NumSections())
	}

	if c.Order() != 4 {
		t.Fatalf("Order: got %d, want 4", c.Order())
	}

	if c.Coefficients(1) != cascadedCoefficients[1] {
		t.Fatalf("Coefficients(1): got %v, want %v", c.Coefficients(1), cascadedCoefficients[1])
	}
}

func TestCascade_CoefficientsIsCopy(t *testing.T) {
	c := NewCascade(cascadedCoefficients)

	got := c.Coefficients(0)
	got.B[0] = 42

	if c.Coefficients(0) != cascadedCoefficients[0] {
		t.Fatalf("cascade changed through returned coefficients: %v", c.Coefficients(0))
	}

	input := increasing(8)
	output := make([]float32, len(input))
	c.Process(input, output)

	want := make([]float32, len(input))
	for i := 2; i < len(input); i++ {
		want[i] = input[i-2]
	}

	requireEqualSamples(t, output, want)
}

func TestCascade_Transparent(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		input := increasing(n)
		output := make([]float32, n)

		NewCascade(transparentCoefficients).Process(input, output)
		requireEqualSamples(t, output, input)
	}
}

func TestCascade_EmptyIsIdentity(t *testing.T) {
	input := increasing(100)
	output := make([]float32, len(input))

	c := NewCascade(nil)
	c.Process(input, output)
	requireEqualSamples(t, output, input)

	buf := increasing(10)
	c.ProcessInPlace(buf)
	requireEqualSamples(t, buf, increasing(10))
}

func TestCascade_Gain(t *testing.T) {
	input := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	output := make([]float32, len(input))

	NewCascade([]Coefficients{{B: [3]float32{5}}}).Process(input, output)
	requireEqualSamples(t, output, []float32{5, 10, 15, 20, 25, 30, 35, 40, 45, 50})
}

func TestCascade_PureDelay(t *testing.T) {
	for tap := 1; tap <= 2; tap++ {
		var c Coefficients
		c.B[tap] = 1

		input := increasing(20)
		for i := range input {
			input[i]++
		}

		output := make([]float32, len(input))
		NewCascade([]Coefficients{c}).Process(input, output)

		for i := range output {
			want := float32(0)
			if i >= tap {
				want = input[i-tap]
			}

			if output[i] != want {
				t.Fatalf("tap %d, sample %d: got %v, want %v", tap, i, output[i], want)
			}
		}
	}
}

func TestCascade_Blocking(t *testing.T) {
	values := increasing(1000)
	NewCascade(blockingCoefficients).ProcessInPlace(values)
	requireEqualSamples(t, values, make([]float32, 1000))
}

func TestCascade_HighPassRemovesDC(t *testing.T) {
	values := make([]float32, 1000)
	for i := range values {
		values[i] = 1
	}

	NewCascade(highPassCoefficients).ProcessInPlace(values)

	for k := len(values) / 2; k < len(values); k++ {
		if !almostEqual(float64(values[k]), 0, 1e-2) {
			t.Fatalf("sample %d: got %v, want ~0", k, values[k])
		}
	}
}

func TestCascade_ResetIdempotence(t *testing.T) {
	c := NewCascade(highPassCoefficients)

	first := make([]float32, 100)
	for i := range first {
		first[i] = 1
	}
	c.ProcessInPlace(first)

	c.Reset()

	second := make([]float32, 100)
	for i := range second {
		second[i] = 1
	}
	c.ProcessInPlace(second)

	requireEqualSamples(t, second, first)
}

func TestCascade_DelayComposition(t *testing.T) {
	input := increasing(1000)
	output := make([]float32, len(input))

	NewCascade(cascadedCoefficients).Process(input, output)

	for i := 2; i < len(output); i++ {
		if output[i] != input[i-2] {
			t.Fatalf("sample %d: got %v, want %v", i, output[i], input[i-2])
		}
	}
}

func TestCascade_StreamingMatchesSingleCall(t *testing.T) {
	coeffs := []Coefficients{
		{B: [3]float32{0.0180919877, 0.00320961363, 0.0180919877}, A: [2]float32{-1.5183195, 0.633165865}},
		{B: [3]float32{1, -1.24550459, 1}, A: [2]float32{-1.49784254, 0.853586692}},
	}

	input := make([]float32, 301)
	for i := range input {
		input[i] = float32((i*37)%23) - 11
	}

	whole := make([]float32, len(input))
	NewCascade(coeffs).Process(input, whole)

	streamed := make([]float32, 0, len(input))
	c := NewCascade(coeffs)
	for _, size := range []int{1, 64, 3, 100, 133} {
		chunk := input[len(streamed) : len(streamed)+size]
		out := make([]float32, size)
		c.Process(chunk, out)
		streamed = append(streamed, out...)
	}

	requireEqualSamples(t, streamed, whole)
}

func TestCascade_InPlaceAliasing(t *testing.T) {
	coeffs := append([]Coefficients{}, highPassCoefficients...)
	coeffs = append(coeffs, cascadedCoefficients...)

	input := increasing(257)
	want := make([]float32, len(input))
	NewCascade(coeffs).Process(input, want)

	aliased := increasing(257)
	NewCascade(coeffs).Process(aliased, aliased)
	requireEqualSamples(t, aliased, want)

	inPlace := increasing(257)
	NewCascade(coeffs).ProcessInPlace(inPlace)
	requireEqualSamples(t, inPlace, want)
}

func TestCascade_ProcessLeavesInputUntouched(t *testing.T) {
	input := increasing(50)
	output := make([]float32, len(input))

	NewCascade(cascadedCoefficients).Process(input, output)
	requireEqualSamples(t, input, increasing(50))
}

func TestCascade_ProcessSampleMatchesBlock(t *testing.T) {
	input := increasing(40)

	block := make([]float32, len(input))
	NewCascade(highPassCoefficients).Process(input, block)

	c := NewCascade(highPassCoefficients)
	for i, x := range input {
		if y := c.ProcessSample(x); y != block[i] {
			t.Fatalf("sample %d: ProcessSample=%v, Process=%v", i, y, block[i])
		}
	}
}

func TestCascade_StateRoundTrip(t *testing.T) {
	c := NewCascade(cascadedCoefficients)
	c.ProcessInPlace(increasing(5))

	saved := c.State()
	c.Reset()
	c.SetState(saved)

	got := c.State()
	for k := range saved {
		if got[k] != saved[k] {
			t.Fatalf("section %d: got %+v, want %+v", k, got[k], saved[k])
		}
	}
}

func TestCascade_SizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()

	input := increasing(10)
	NewCascade(transparentCoefficients).Process(input, make([]float32, len(input)-1))
}

func TestCascade_SetStateLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on state count mismatch")
		}
	}()

	NewCascade(cascadedCoefficients).SetState(make([]State, 1))
}
