package gradebook

import (
	"fmt"
	"log"
	"sync"

	"github.com/ytget/gradebook/internal/model"
)

// Service holds the subjects of the current session. Every mutation is
// followed by a full synchronous save.
type Service struct {
	repo          Repository
	validator     *Validator
	subjects      []*model.Subject
	subjectsMutex sync.RWMutex
	onUpdate      func(*model.Subject) // callback for UI updates
}

// NewService creates a new gradebook service backed by repo
func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		validator: NewValidator(),
		subjects:  make([]*model.Subject, 0),
	}
}

// SetUpdateCallback sets the callback function for subject updates
func (s *Service) SetUpdateCallback(callback func(*model.Subject)) {
	s.subjectsMutex.Lock()
	defer s.subjectsMutex.Unlock()
	s.onUpdate = callback
}

// Open replaces the session state with the subjects stored by the repository
func (s *Service) Open() error {
	subjects, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to open gradebook: %w", err)
	}

	s.subjectsMutex.Lock()
	s.subjects = subjects
	s.subjectsMutex.Unlock()

	log.Printf("Gradebook opened with %d subjects", len(subjects))
	return nil
}

// Execute validates and applies cmd, then saves the whole gradebook. When the
// save fails the mutation stays in memory and the error is returned.
func (s *Service) Execute(cmd Command) (*model.Subject, error) {
	if err := s.validator.Check(cmd); err != nil {
		return nil, err
	}

	snapshot, err := s.apply(cmd)
	if snapshot == nil {
		return nil, err
	}

	s.notifyUpdate(snapshot)

	if err != nil {
		log.Printf("Failed to save gradebook after %T: %v", cmd, err)
		return snapshot, err
	}
	return snapshot, nil
}

// apply runs cmd and saves the result while holding the lock. A nil snapshot
// means nothing changed; a snapshot with an error means the save failed. A
// command that reports no touched subject leaves the gradebook unchanged.
func (s *Service) apply(cmd Command) (*model.Subject, error) {
	s.subjectsMutex.Lock()
	defer s.subjectsMutex.Unlock()

	subjects, changed, err := cmd.Apply(s.subjects)
	if err != nil {
		return nil, err
	}
	if changed == nil {
		return nil, fmt.Errorf("%w: %T", ErrNoChange, cmd)
	}

	s.subjects = subjects
	snapshot := changed.Clone()
	if err := s.repo.Save(s.subjects); err != nil {
		return snapshot, fmt.Errorf("failed to save gradebook: %w", err)
	}
	return snapshot, nil
}

// AddSubject creates a new empty subject
func (s *Service) AddSubject(name string) (*model.Subject, error) {
	return s.Execute(AddSubjectCommand{Name: name})
}

// AddEvaluation adds a graded evaluation to the subject with the given ID
func (s *Service) AddEvaluation(subjectID, name string, grade float64, weight int) (*model.Subject, error) {
	return s.Execute(AddEvaluationCommand{
		SubjectID: subjectID,
		Name:      name,
		Grade:     grade,
		Weight:    weight,
	})
}

// Subjects returns a snapshot of all subjects in display order
func (s *Service) Subjects() []*model.Subject {
	s.subjectsMutex.RLock()
	defer s.subjectsMutex.RUnlock()

	subjects := make([]*model.Subject, 0, len(s.subjects))
	for _, subject := range s.subjects {
		subjects = append(subjects, subject.Clone())
	}
	return subjects
}

// Subject returns a snapshot of the subject with the given ID
func (s *Service) Subject(id string) (*model.Subject, bool) {
	s.subjectsMutex.RLock()
	defer s.subjectsMutex.RUnlock()

	subject := findSubject(s.subjects, id)
	if subject == nil {
		return nil, false
	}
	return subject.Clone(), true
}

// Summary computes the derived statistics of the subject with the given ID
func (s *Service) Summary(id string) (model.Summary, error) {
	subject, exists := s.Subject(id)
	if !exists {
		return model.Summary{}, fmt.Errorf("%w: %s", ErrSubjectNotFound, id)
	}
	return model.Summarize(subject), nil
}

// Save persists the current session state
func (s *Service) Save() error {
	s.subjectsMutex.RLock()
	defer s.subjectsMutex.RUnlock()

	if err := s.repo.Save(s.subjects); err != nil {
		return fmt.Errorf("failed to save gradebook: %w", err)
	}
	return nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(subject *model.Subject) {
	s.subjectsMutex.RLock()
	onUpdate := s.onUpdate
	s.subjectsMutex.RUnlock()

	if onUpdate != nil {
		onUpdate(subject)
	}
}
