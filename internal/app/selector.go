package app

import "math"

// questionCount is the number of questions in a daily challenge.
const questionCount = 10

// pseudoRandom maps x to [0,1) as frac(sin(x)*10000). Not uniform and not
// meant to be: it exists so the same seed always yields the same value.
// Exact bit-identical output across math libraries is not guaranteed; the
// permutation only needs to be stable within one binary.
func pseudoRandom(x float64) float64 {
	v := math.Sin(x) * 10000
	return v - math.Floor(v)
}

// SelectYears picks the day's ordered question years: a Fisher-Yates pass
// over the ascending year list driven by pseudoRandom(seed+i), keeping the
// first ten. The same seed and year list always produce the same sequence,
// so every player sees the same questions on a given day.
func SelectYears(seed int, years []int) []int {
	order := make([]int, len(years))
	copy(order, years)
	for i := len(order) - 1; i >= 1; i-- {
		j := int(math.Floor(pseudoRandom(float64(seed+i)) * float64(i+1)))
		order[i], order[j] = order[j], order[i]
	}
	if len(order) > questionCount {
		order = order[:questionCount]
	}
	return order
}
