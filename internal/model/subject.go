package model

import (
	"github.com/google/uuid"
)

// Grade scale and weight bounds
const (
	MinGrade   = 1.0
	MaxGrade   = 7.0
	MinWeight  = 1
	MaxWeight  = 100
	FullWeight = 100
)

// Evaluation is a single graded item of a subject. Weight is the percentage
// the evaluation contributes to the final grade.
type Evaluation struct {
	Name   string  `json:"name"`
	Grade  float64 `json:"grade"`
	Weight int     `json:"weight"`
}

// Subject is a named course holding its evaluations in insertion order.
// ID only lives for the current session and is never persisted.
type Subject struct {
	ID          string       `json:"-"`
	Name        string       `json:"name"`
	Evaluations []Evaluation `json:"evaluations"`
}

// NewSubject creates a subject with a fresh session ID and no evaluations
func NewSubject(name string) *Subject {
	return &Subject{
		ID:          uuid.NewString(),
		Name:        name,
		Evaluations: make([]Evaluation, 0),
	}
}

// AddEvaluation appends an evaluation to the subject
func (s *Subject) AddEvaluation(e Evaluation) {
	s.Evaluations = append(s.Evaluations, e)
}

// TotalWeight returns the sum of the weights graded so far
func (s *Subject) TotalWeight() int {
	total := 0
	for _, e := range s.Evaluations {
		total += e.Weight
	}
	return total
}

// RemainingWeight returns the percentage not yet graded, never below zero
func (s *Subject) RemainingWeight() int {
	remaining := FullWeight - s.TotalWeight()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clone returns a deep copy of the subject, keeping its ID
func (s *Subject) Clone() *Subject {
	clone := &Subject{
		ID:          s.ID,
		Name:        s.Name,
		Evaluations: make([]Evaluation, len(s.Evaluations)),
	}
	copy(clone.Evaluations, s.Evaluations)
	return clone
}
