package app

import (
	"strconv"

	"github.com/randomtoy/spinwheel/internal/domain"
)

// RankedWinner is one entry of the podium shown after a spin.
type RankedWinner struct {
	Rank    int
	Ordinal string
	Label   string
}

// Rank lists the winners in pointer order, 1st first.
func Rank(res domain.SpinResult) []RankedWinner {
	out := make([]RankedWinner, len(res.Winners))
	for i, w := range res.Winners {
		out[i] = RankedWinner{Rank: i + 1, Ordinal: Ordinal(i + 1), Label: w}
	}
	return out
}

// Ordinal renders n as 1st, 2nd, 3rd, 4th, ..., 11th, 12th, 13th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
