package tone

import "math"

// floorDB is returned for zero power.
const floorDB = -300.0

// Power returns the mean square of x, or 0 for an empty slice.
func Power(x []float32) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum float64
	for _, v := range x {
		f := float64(v)
		sum += f * f
	}

	return sum / float64(len(x))
}

// PowerDB returns Power(x) in dB.
func PowerDB(x []float32) float64 {
	return LinearToDB(Power(x))
}

// LinearToDB converts a power ratio to dB, floored at -300 dB.
func LinearToDB(p float64) float64 {
	if p <= 1e-30 {
		return floorDB
	}

	return 10 * math.Log10(p)
}

// DBToLinear converts dB to a power ratio.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}
