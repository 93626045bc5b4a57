package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ytget/gradebook/internal/model"
	"github.com/ytget/gradebook/internal/platform"
)

// DefaultFileName is the store file used when no other path is configured
const DefaultFileName = "datos_notas.json"

// File permissions
const (
	DefaultFilePermissions = 0644
)

// JSON layout
const (
	jsonIndent = "    "
)

// Store reads and writes the full list of subjects to one JSON file
type Store struct {
	path string
}

// NewStore creates a store bound to the given file path
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the file the store reads from and writes to
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the store file is present on disk
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save serializes all subjects and overwrites the store file in full
func (s *Store) Save(subjects []*model.Subject) error {
	records := make([]subjectRecord, 0, len(subjects))
	for _, subject := range subjects {
		if subject == nil {
			continue
		}
		records = append(records, newSubjectRecord(subject))
	}

	data, err := json.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("%w: failed to encode subjects: %w", ErrWrite, err)
	}

	if err := platform.EnsureParentDir(s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := os.WriteFile(s.path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, s.path, err)
	}

	log.Printf("Saved %d subjects to %s", len(records), s.path)
	return nil
}

// Load reads all subjects from the store file in file order. A missing file
// yields an empty list and no error.
func (s *Store) Load() ([]*model.Subject, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make([]*model.Subject, 0), nil
		}
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}

	subjects, err := decodeSubjects(data)
	if err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}

	log.Printf("Loaded %d subjects from %s", len(subjects), s.path)
	return subjects, nil
}

// subjectRecord and evaluationRecord describe the on-disk shape. Pointer
// fields on the decode side let missing keys be told apart from zero values.
type subjectRecord struct {
	Name        string             `json:"name"`
	Evaluations []evaluationRecord `json:"evaluations"`
}

type evaluationRecord struct {
	Name   string  `json:"name"`
	Grade  float64 `json:"grade"`
	Weight int     `json:"weight"`
}

type rawSubject struct {
	Name        *string          `json:"name"`
	Evaluations *[]rawEvaluation `json:"evaluations"`
}

type rawEvaluation struct {
	Name   *string  `json:"name"`
	Grade  *float64 `json:"grade"`
	Weight *int     `json:"weight"`
}

func newSubjectRecord(subject *model.Subject) subjectRecord {
	record := subjectRecord{
		Name:        subject.Name,
		Evaluations: make([]evaluationRecord, 0, len(subject.Evaluations)),
	}
	for _, e := range subject.Evaluations {
		record.Evaluations = append(record.Evaluations, evaluationRecord{
			Name:   e.Name,
			Grade:  e.Grade,
			Weight: e.Weight,
		})
	}
	return record
}

func decodeSubjects(data []byte) ([]*model.Subject, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("top level value must be an array of subjects")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var raw []rawSubject
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after subject list")
	}

	subjects := make([]*model.Subject, 0, len(raw))
	for i, rs := range raw {
		subject, err := rs.toSubject()
		if err != nil {
			return nil, fmt.Errorf("subject %d: %w", i, err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

func (rs rawSubject) toSubject() (*model.Subject, error) {
	if rs.Name == nil {
		return nil, errors.New(`missing "name"`)
	}
	if rs.Evaluations == nil {
		return nil, errors.New(`missing "evaluations"`)
	}

	subject := model.NewSubject(*rs.Name)
	for j, re := range *rs.Evaluations {
		switch {
		case re.Name == nil:
			return nil, fmt.Errorf(`evaluation %d: missing "name"`, j)
		case re.Grade == nil:
			return nil, fmt.Errorf(`evaluation %d: missing "grade"`, j)
		case re.Weight == nil:
			return nil, fmt.Errorf(`evaluation %d: missing "weight"`, j)
		}
		subject.AddEvaluation(model.Evaluation{
			Name:   *re.Name,
			Grade:  *re.Grade,
			Weight: *re.Weight,
		})
	}
	return subject, nil
}
