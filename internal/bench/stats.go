package bench

import "math"

// Mean returns the arithmetic average of the samples, or NaN for an empty
// sequence. The NaN is deliberate: a configuration with no completed runs
// has no meaningful average, and the sentinel flows into the summary row
// as-is instead of raising an error.
func Mean(samples []int64) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range samples {
		sum += float64(v)
	}
	return sum / float64(len(samples))
}

// StdDev returns the sample standard deviation using the unbiased (n-1)
// estimator. With fewer than two samples the estimator is undefined and
// NaN is returned; substituting 0 or the population formula would silently
// change the semantics of single-sample runs.
func StdDev(samples []int64) float64 {
	if len(samples) < 2 {
		return math.NaN()
	}
	mean := Mean(samples)
	sum := 0.0
	for _, v := range samples {
		d := float64(v) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(samples)-1))
}
