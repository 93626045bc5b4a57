package gradebook

import (
	"errors"
	"testing"

	"github.com/ytget/gradebook/internal/model"
)

func TestAddSubjectCommand_Apply(t *testing.T) {
	existing := model.NewSubject("Calculus")
	subjects := []*model.Subject{existing}

	next, added, err := AddSubjectCommand{Name: " History "}.Apply(subjects)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(next) != 2 {
		t.Fatalf("Expected 2 subjects, got %d", len(next))
	}
	if next[0] != existing {
		t.Error("Expected existing subject to stay first")
	}
	if next[1] != added || added.Name != "History" {
		t.Errorf("Expected appended subject 'History', got %+v", added)
	}
}

func TestAddEvaluationCommand_Apply(t *testing.T) {
	subject := model.NewSubject("Calculus")
	subjects := []*model.Subject{model.NewSubject("History"), subject}

	cmd := AddEvaluationCommand{SubjectID: subject.ID, Name: "Quiz ", Grade: 5.5, Weight: 20}
	next, changed, err := cmd.Apply(subjects)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(next) != 2 {
		t.Errorf("Expected subject count to stay 2, got %d", len(next))
	}
	if changed != subject {
		t.Error("Expected the targeted subject to be returned")
	}
	expected := model.Evaluation{Name: "Quiz", Grade: 5.5, Weight: 20}
	if len(subject.Evaluations) != 1 || subject.Evaluations[0] != expected {
		t.Errorf("Expected evaluations [%+v], got %+v", expected, subject.Evaluations)
	}
}

func TestAddEvaluationCommand_ApplyUnknownSubject(t *testing.T) {
	subjects := []*model.Subject{model.NewSubject("Calculus")}

	_, _, err := AddEvaluationCommand{SubjectID: "nope", Name: "Quiz", Grade: 4, Weight: 10}.Apply(subjects)
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("Expected ErrSubjectNotFound, got %v", err)
	}
}

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	err := v.Check(AddEvaluationCommand{SubjectID: "id", Name: "", Grade: 7.5, Weight: 10})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	messages := map[string]string{}
	for _, f := range ve.Fields {
		messages[f.Field] = f.Error
	}

	if messages["name"] != "name is required" {
		t.Errorf("Unexpected name message: %q", messages["name"])
	}
	if messages["grade"] != "grade must be 7 or less" {
		t.Errorf("Unexpected grade message: %q", messages["grade"])
	}
	if _, exists := messages["weight"]; exists {
		t.Error("Weight should be valid")
	}

	if err := v.Check(AddSubjectCommand{Name: "Calculus"}); err != nil {
		t.Errorf("Expected valid command, got %v", err)
	}
}

func TestValidator_RejectsInvalidUTF8(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		cmd  Command
	}{
		{"subject name", AddSubjectCommand{Name: "Calc\xff"}},
		{"evaluation name", AddEvaluationCommand{SubjectID: "id", Name: "Quiz\xc3", Grade: 5, Weight: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Check(tt.cmd)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if len(ve.Fields) != 1 || ve.Fields[0].Error != "name must be valid UTF-8 text" {
				t.Errorf("Unexpected fields: %+v", ve.Fields)
			}
		})
	}

	if err := v.Check(AddSubjectCommand{Name: "Cálculo"}); err != nil {
		t.Errorf("Expected valid command, got %v", err)
	}
}
