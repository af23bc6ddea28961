package uipath

import (
	"math"
	"strconv"
	"strings"
)

// ToSeconds converts a "H:MM:SS", "MM:SS" or "SS" clock duration into seconds.
// Components are not range-checked, so "99:99:99" is computed literally.
// Malformed input (empty, non-numeric parts, more than three parts) yields 0.
// Negative totals are reported as 0.
func ToSeconds(duration string) int {
	if strings.TrimSpace(duration) == "" {
		return 0
	}

	rawParts := strings.Split(duration, ":")
	parts := make([]float64, 0, len(rawParts))
	for _, raw := range rawParts {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0
		}
		parts = append(parts, value)
	}

	var total float64
	switch len(parts) {
	case 3:
		total = parts[0]*3600 + parts[1]*60 + parts[2]
	case 2:
		total = parts[0]*60 + parts[1]
	case 1:
		total = parts[0]
	default:
		return 0
	}

	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 || total > math.MaxInt32 {
		return 0
	}

	return int(total)
}
