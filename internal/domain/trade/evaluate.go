package trade

import "math"

// Tolerance is the fraction by which two trade packages' salary totals may
// diverge and still match under league rules.
const Tolerance = 0.05

// Outcome classifies a proposed trade.
type Outcome string

const (
	Valid         Outcome = "valid"
	Invalid       Outcome = "invalid"
	Indeterminate Outcome = "indeterminate"
)

// Range is the band of opposing salary totals that would match a package.
type Range struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Result is the evaluation of one proposed trade. Ranges are populated only
// for invalid trades, to show each side what the other must send back.
type Result struct {
	Outcome     Outcome `json:"outcome"`
	TotalA      int64   `json:"totalA"`
	TotalB      int64   `json:"totalB"`
	Divergence  float64 `json:"divergence,omitempty"`
	MatchRangeA *Range  `json:"matchRangeA,omitempty"`
	MatchRangeB *Range  `json:"matchRangeB,omitempty"`
}

// Evaluate applies the salary-matching rule to two package totals. Totals
// diverge by |a-b|/max(a,b); at most Tolerance is a match. A side with no
// salary data resolves to Indeterminate rather than a false verdict.
func Evaluate(totalA, totalB int64) Result {
	res := Result{TotalA: totalA, TotalB: totalB}
	if totalA <= 0 || totalB <= 0 {
		res.Outcome = Indeterminate
		return res
	}

	larger := math.Max(float64(totalA), float64(totalB))
	res.Divergence = math.Abs(float64(totalA)-float64(totalB)) / larger
	if res.Divergence <= Tolerance {
		res.Outcome = Valid
		return res
	}

	res.Outcome = Invalid
	res.MatchRangeA = matchRange(totalA)
	res.MatchRangeB = matchRange(totalB)
	return res
}

func matchRange(total int64) *Range {
	t := float64(total)
	return &Range{
		Min: int64(math.Ceil(t * (1 - Tolerance))),
		Max: int64(math.Floor(t * (1 + Tolerance))),
	}
}
