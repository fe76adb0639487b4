package client

import (
	"fmt"

	"parlamento/internal/domain/entities"
)

// FormatResourceValue abbreviates thousands as K, millions as KK and
// billions as KKK, with one decimal.
func FormatResourceValue(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1f KKK", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1f KK", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1f K", v/1e3)
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatCosts renders the one-line cost summary, e.g.
// "1.5 KK $ 200.0 G 3.0 K bbl 10.0 kg 12.5%".
func FormatCosts(r entities.Resources, change float64) string {
	return fmt.Sprintf("%s $ %s G %s bbl %s kg %.1f%%",
		FormatResourceValue(r.Cash),
		FormatResourceValue(r.Gold),
		FormatResourceValue(r.BBL),
		FormatResourceValue(r.KG),
		change,
	)
}

func FormatPercentage(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}
