// Package statistics accumulates sampled payoffs and derives error
// bounds for their mean.
package statistics

import "math"

// Statistics is a payoff accumulator. The zero value is ready to use;
// accumulators filled independently can be combined with Merge.
type Statistics struct {
	Samples int
	Sum     float64
	Sum2    float64
}

// Add incorporates one sampled payoff.
func (s *Statistics) Add(v float64) {
	s.Samples++
	s.Sum += v
	s.Sum2 += v * v
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Samples += other.Samples
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
}

// Mean returns the mean payoff, or zero with no samples.
func (s *Statistics) Mean() float64 {
	if s.Samples == 0 {
		return 0
	}
	return s.Sum / float64(s.Samples)
}

// Variance returns the sample variance, or zero below two samples.
func (s *Statistics) Variance() float64 {
	if s.Samples < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.Sum2 - float64(s.Samples)*mean*mean) / float64(s.Samples-1)
	if v < 0 {
		// Cancellation in the sum of squares can leave a tiny
		// negative residue when all samples are near-identical.
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Samples == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Samples))
}

// ConfidenceInterval95 returns the 95% confidence interval for the
// mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}
