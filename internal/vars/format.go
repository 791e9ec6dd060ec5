package vars

import (
	"fmt"
	"math"
)

// Format renders a value the way the status panel shows it.
func Format(k Key, v float64) string {
	switch k {
	case Money:
		return fmt.Sprintf("$%d", int64(math.Floor(v)))
	case Semester, Month, Year, Offers:
		return fmt.Sprintf("%d", int64(v))
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// Progress returns where the value of k sits inside its bounds, in [0,1].
// Keys without a finite range report 0.
func Progress(s *Store, k Key) float64 {
	min, max := s.Limits(k)
	if math.IsInf(max, 0) || math.IsInf(min, 0) || max <= min {
		return 0
	}
	return (s.Get(k) - min) / (max - min)
}
