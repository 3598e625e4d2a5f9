// Package waveform synthesizes the amplitude samples drawn inside voice
// message bubbles.
package waveform

import (
	"math"
	"math/rand"
	"time"
)

// Points is the sample count of a generated waveform. It is fixed and does
// not depend on the voice message duration.
const Points = 40

// Generate synthesizes n amplitude samples. Every sample lies in
// [0.05*amplitude, amplitude]. Amplitude is clamped into [0.1, 1.0] and
// frequency into [1, 10] before use.
//
// Generation is intentionally unseeded and not reproducible; callers that
// need stable output must keep the returned slice. frequency is accepted
// and carried through scripts but does not steer the shaping functions.
func Generate(n int, amplitude float64, frequency int) []float64 {
	amplitude = ClampAmplitude(amplitude)
	_ = ClampFrequency(frequency)

	if n <= 0 {
		return nil
	}

	nowMilli := float64(time.Now().UnixMilli())
	out := make([]float64, n)
	for i := range out {
		out[i] = sample(i, n, nowMilli) * amplitude
	}
	return out
}

// ClampAmplitude forces the scaling factor into its valid range [0.1, 1.0].
func ClampAmplitude(a float64) float64 {
	return math.Max(0.1, math.Min(1.0, a))
}

// ClampFrequency forces the frequency parameter into its valid range [1, 10].
func ClampFrequency(f int) int {
	if f < 1 {
		return 1
	}
	if f > 10 {
		return 10
	}
	return f
}

// sample computes one unscaled value: three randomly chosen shape-family
// evaluations averaged, four perturbation terms added, then clamped to
// [0.05, 1.0].
func sample(i, n int, nowMilli float64) float64 {
	fi := float64(i)
	progress := fi / float64(n)

	seed1 := math.Sin(fi*0.5 + nowMilli*0.001 + rand.Float64()*100)
	seed2 := math.Cos(fi*0.3 + nowMilli*0.002 + rand.Float64()*200)
	seed3 := rand.Float64()
	seed4 := rand.Float64()
	seed5 := rand.Float64()

	pulse := 0.1 + seed3*0.3
	if seed3 > 0.3+seed4*0.4 {
		pulse = 0.5 + seed5*0.5
	}

	ramp := (1-progress)*(0.4+seed4*0.6) + 0.2
	if seed4 > 0.5 {
		ramp = progress*(0.5+seed3*0.5) + 0.1
	}

	reverseRamp := progress*(0.6+seed4*0.4) + 0.1
	if seed5 > 0.5 {
		reverseRamp = (1-progress)*(0.3+seed3*0.7) + 0.1
	}

	shapes := [...]float64{
		math.Abs(math.Sin(fi*(0.5+seed3*2)+seed1)) * (0.3 + seed4*0.7),
		math.Abs(math.Cos(fi*(0.8+seed4*3)+seed2)) * (0.2 + seed5*0.8),
		seed3 * (0.1 + seed4*0.9),
		pulse,
		ramp,
		reverseRamp,
		rand.Float64() * (0.2 + seed3*0.8),
		math.Pow(seed3, seed4) * (0.3 + seed5*0.7),
		math.Log(1+seed3*9) * (0.2 + seed4*0.8),
		(math.Sin(fi*seed3*5) + math.Cos(fi*seed4*3)) * 0.5 * (0.3 + seed5*0.7),
	}

	var mixed float64
	for j := 0; j < 3; j++ {
		mixed += shapes[rand.Intn(len(shapes))]
	}
	mixed /= 3

	mixed += (rand.Float64() - 0.5) * 0.8
	mixed += math.Sin(nowMilli*0.01+fi*0.1+rand.Float64()*10) * 0.4
	mixed += math.Cos(fi*0.2+rand.Float64()*5) * 0.3
	mixed += (rand.Float64() - 0.5) * 0.6

	return math.Max(0.05, math.Min(1.0, mixed))
}
