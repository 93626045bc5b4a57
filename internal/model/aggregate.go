package model

import "math"

// Status thresholds
const (
	ExemptThreshold = 5.0
	PassingGrade    = 4.0
)

// Summary bundles the derived statistics of a subject
type Summary struct {
	Average     float64
	TotalWeight int
	Pessimistic float64
	Remaining   int
	Status      Status
}

// CurrentAverage returns the weighted mean of the subject's grades and the
// total weight graded so far. A subject without weight yields (0, 0).
func CurrentAverage(s *Subject) (float64, int) {
	var total float64
	totalWeight := 0
	for _, e := range s.Evaluations {
		total += e.Grade * float64(e.Weight)
		totalWeight += e.Weight
	}
	if totalWeight == 0 {
		return 0, 0
	}
	return total / float64(totalWeight), totalWeight
}

// PessimisticProjection blends the current average with the minimum grade
// for every percentage point not graded yet.
func PessimisticProjection(s *Subject) float64 {
	average, totalWeight := CurrentAverage(s)
	remaining := FullWeight - totalWeight
	return (average*float64(totalWeight) + MinGrade*float64(remaining)) / FullWeight
}

// Classify derives the subject status. Exempt wins over AtRisk, which wins
// over InProgress.
func Classify(s *Subject) Status {
	average, _ := CurrentAverage(s)
	return classify(average, PessimisticProjection(s))
}

func classify(average, pessimistic float64) Status {
	if average >= ExemptThreshold {
		return StatusExempt
	}
	if pessimistic < PassingGrade {
		return StatusAtRisk
	}
	return StatusInProgress
}

// Summarize computes every derived statistic of the subject at once
func Summarize(s *Subject) Summary {
	average, totalWeight := CurrentAverage(s)
	pessimistic := PessimisticProjection(s)
	return Summary{
		Average:     average,
		TotalWeight: totalWeight,
		Pessimistic: pessimistic,
		Remaining:   s.RemainingWeight(),
		Status:      classify(average, pessimistic),
	}
}

// RoundTo rounds value to the given number of decimals. Display only.
func RoundTo(value float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
