package emograd

import "math"

// Trend is the qualitative comparison between two consecutive block averages.
type Trend int

const (
	// TrendFirstBlock means no previous block average exists yet.
	TrendFirstBlock Trend = iota

	// TrendImproved means the current average is lower than the previous one.
	TrendImproved

	// TrendWorsened means the current average is higher than the previous one.
	TrendWorsened

	// TrendUnchanged means the two averages are equal within tolerance.
	TrendUnchanged
)

// String returns the string representation of the trend.
func (x Trend) String() string {
	return []string{"first_block", "improved", "worsened", "unchanged"}[x]
}

// ClassifyTrend compares a block average against the previous one. epsilon is
// a relative tolerance: differences smaller than epsilon times the larger
// magnitude of the two averages count as unchanged. With epsilon of zero any
// strictly lower value is an improvement.
func ClassifyTrend(loss float64, prevLoss *float64, epsilon float64) Trend {
	if prevLoss == nil {
		return TrendFirstBlock
	}

	tolerance := epsilon * math.Max(math.Abs(loss), math.Abs(*prevLoss))
	diff := loss - *prevLoss

	switch {
	case diff < -tolerance:
		return TrendImproved
	case diff > tolerance:
		return TrendWorsened
	default:
		return TrendUnchanged
	}
}
