package model

import "testing"

func TestNewSubject(t *testing.T) {
	s := NewSubject("Physics")

	if s.Name != "Physics" {
		t.Errorf("Expected name 'Physics', got '%s'", s.Name)
	}
	if s.ID == "" {
		t.Error("Expected non-empty session ID")
	}
	if s.Evaluations == nil || len(s.Evaluations) != 0 {
		t.Errorf("Expected empty non-nil evaluations, got %v", s.Evaluations)
	}

	other := NewSubject("Physics")
	if other.ID == s.ID {
		t.Error("Expected different session IDs for different subjects")
	}
}

func TestSubject_AddEvaluationKeepsOrder(t *testing.T) {
	s := NewSubject("History")
	names := []string{"Quiz", "Essay", "Exam"}
	for i, name := range names {
		s.AddEvaluation(Evaluation{Name: name, Grade: 5.0, Weight: 10 * (i + 1)})
	}

	for i, name := range names {
		if s.Evaluations[i].Name != name {
			t.Errorf("Evaluation %d: expected %s, got %s", i, name, s.Evaluations[i].Name)
		}
	}
	if s.TotalWeight() != 60 {
		t.Errorf("Expected total weight 60, got %d", s.TotalWeight())
	}
	if s.RemainingWeight() != 40 {
		t.Errorf("Expected remaining weight 40, got %d", s.RemainingWeight())
	}
}

func TestSubject_RemainingWeightNeverNegative(t *testing.T) {
	s := NewSubject("Overloaded")
	s.AddEvaluation(Evaluation{Name: "A", Grade: 4.0, Weight: 70})
	s.AddEvaluation(Evaluation{Name: "B", Grade: 4.0, Weight: 50})

	if s.RemainingWeight() != 0 {
		t.Errorf("Expected remaining weight 0, got %d", s.RemainingWeight())
	}
}

func TestSubject_Clone(t *testing.T) {
	s := NewSubject("Chemistry")
	s.AddEvaluation(Evaluation{Name: "Lab", Grade: 6.1, Weight: 20})

	clone := s.Clone()
	clone.AddEvaluation(Evaluation{Name: "Exam", Grade: 3.0, Weight: 30})
	clone.Evaluations[0].Grade = 1.0

	if clone.ID != s.ID {
		t.Errorf("Expected clone to keep ID %s, got %s", s.ID, clone.ID)
	}
	if len(s.Evaluations) != 1 || s.Evaluations[0].Grade != 6.1 {
		t.Errorf("Original subject was modified through clone: %+v", s.Evaluations)
	}
}
