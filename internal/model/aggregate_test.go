package model

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func subjectWith(evaluations ...Evaluation) *Subject {
	s := NewSubject("Calculus")
	for _, e := range evaluations {
		s.AddEvaluation(e)
	}
	return s
}

func TestCurrentAverage_Empty(t *testing.T) {
	average, totalWeight := CurrentAverage(NewSubject("Empty"))
	if average != 0 || totalWeight != 0 {
		t.Errorf("CurrentAverage() on empty subject = (%v, %d), expected (0, 0)", average, totalWeight)
	}
}

func TestCurrentAverage(t *testing.T) {
	tests := []struct {
		name            string
		evaluations     []Evaluation
		expectedAverage float64
		expectedWeight  int
	}{
		{"single", []Evaluation{{"Test 1", 6.0, 60}}, 6.0, 60},
		{"two equal weights", []Evaluation{{"A", 4.0, 20}, {"B", 6.0, 20}}, 5.0, 40},
		{"uneven weights", []Evaluation{{"A", 7.0, 30}, {"B", 1.0, 10}}, 5.5, 40},
		{"over full weight", []Evaluation{{"A", 5.0, 80}, {"B", 3.0, 40}}, 13.0 / 3.0, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			average, totalWeight := CurrentAverage(subjectWith(tt.evaluations...))
			if !almostEqual(average, tt.expectedAverage) {
				t.Errorf("average = %v, expected %v", average, tt.expectedAverage)
			}
			if totalWeight != tt.expectedWeight {
				t.Errorf("totalWeight = %d, expected %d", totalWeight, tt.expectedWeight)
			}
		})
	}
}

func TestPessimisticProjection(t *testing.T) {
	tests := []struct {
		name        string
		evaluations []Evaluation
		expected    float64
	}{
		{"empty assumes minimum everywhere", nil, 1.0},
		{"sixty percent at 6.0", []Evaluation{{"Test 1", 6.0, 60}}, 4.0},
		{"half at 7.0", []Evaluation{{"A", 7.0, 50}}, 4.0},
		{"over full weight is not clamped", []Evaluation{{"A", 5.0, 80}, {"B", 3.0, 40}}, (5.0*80 + 3.0*40 - 20) / 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PessimisticProjection(subjectWith(tt.evaluations...))
			if !almostEqual(result, tt.expected) {
				t.Errorf("PessimisticProjection() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestPessimisticProjection_FullWeightMatchesAverage(t *testing.T) {
	sets := [][]Evaluation{
		{{"Final", 3.3, 100}},
		{{"A", 6.5, 30}, {"B", 3.2, 30}, {"C", 5.0, 40}},
		{{"A", 1.0, 25}, {"B", 7.0, 25}, {"C", 4.4, 25}, {"D", 2.8, 25}},
	}

	for i, evaluations := range sets {
		s := subjectWith(evaluations...)
		average, totalWeight := CurrentAverage(s)
		if totalWeight != FullWeight {
			t.Fatalf("set %d: totalWeight = %d, expected %d", i, totalWeight, FullWeight)
		}
		if pessimistic := PessimisticProjection(s); !almostEqual(pessimistic, average) {
			t.Errorf("set %d: PessimisticProjection() = %v, expected average %v", i, pessimistic, average)
		}
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		average     float64
		pessimistic float64
		expected    Status
	}{
		{5.0, 1.0, StatusExempt},
		{6.2, 4.5, StatusExempt},
		{4.9, 3.5, StatusAtRisk},
		{4.9, 4.5, StatusInProgress},
		{4.0, 4.0, StatusInProgress},
		{0, 1.0, StatusAtRisk},
	}

	for _, test := range tests {
		result := classify(test.average, test.pessimistic)
		if result != test.expected {
			t.Errorf("classify(%v, %v) = %s, expected %s", test.average, test.pessimistic, result, test.expected)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		evaluations []Evaluation
		expected    Status
	}{
		{"average exactly 5.0 is exempt", []Evaluation{{"A", 5.0, 10}}, StatusExempt},
		{"low coverage is at risk", []Evaluation{{"A", 4.9, 50}}, StatusAtRisk},
		{"full coverage below exemption", []Evaluation{{"A", 4.9, 100}}, StatusInProgress},
		{"empty subject is at risk", nil, StatusAtRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Classify(subjectWith(tt.evaluations...)); result != tt.expected {
				t.Errorf("Classify() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := subjectWith(Evaluation{"Test 1", 6.0, 60})
	summary := Summarize(s)

	if !almostEqual(summary.Average, 6.0) {
		t.Errorf("Average = %v, expected 6.0", summary.Average)
	}
	if summary.TotalWeight != 60 {
		t.Errorf("TotalWeight = %d, expected 60", summary.TotalWeight)
	}
	if !almostEqual(summary.Pessimistic, 4.0) {
		t.Errorf("Pessimistic = %v, expected 4.0", summary.Pessimistic)
	}
	if summary.Remaining != 40 {
		t.Errorf("Remaining = %d, expected 40", summary.Remaining)
	}
	if summary.Status != StatusExempt {
		t.Errorf("Status = %s, expected %s", summary.Status, StatusExempt)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		expected float64
	}{
		{4.91666, 2, 4.92},
		{4.91666, 0, 5},
		{4.125, 1, 4.1},
		{3.0, 2, 3.0},
		{2.5, -1, 3},
	}

	for _, test := range tests {
		if result := RoundTo(test.value, test.decimals); !almostEqual(result, test.expected) {
			t.Errorf("RoundTo(%v, %d) = %v, expected %v", test.value, test.decimals, result, test.expected)
		}
	}
}
