package architect

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/doffn/image-json-generator/pkg/formstate"
	"github.com/doffn/image-json-generator/pkg/schema"
)

// ErrLastSubject reports an attempt to remove the only remaining subject.
// The store below would allow it; the session keeps the floor so the form
// never renders without a subject.
var ErrLastSubject = errors.New("architect: cannot remove the last subject")

// Session owns one template's form state and its projection. Every mutation
// re-derives the document and its serialized form, so Document and JSON are
// always current. Methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	registry *schema.Registry
	template *schema.Template
	state    *formstate.FormState
	doc      schema.Document
	raw      string
}

// SessionOption configures NewSession.
type SessionOption func(*Session)

// WithRegistry replaces the template registry.
func WithRegistry(r *schema.Registry) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// NewSession starts a session on the given category with the template's
// prefilled initial state.
func NewSession(category Category, options ...SessionOption) (*Session, error) {
	s := &Session{registry: schema.Default()}
	for _, opt := range options {
		opt(s)
	}
	tmpl, err := s.registry.Get(category)
	if err != nil {
		return nil, err
	}
	s.template = tmpl
	s.state = tmpl.NewState()
	if err := s.projectLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// Category returns the active template's category.
func (s *Session) Category() Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template.Category
}

// Template returns the active template.
func (s *Session) Template() *schema.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// State returns a deep copy of the current form state.
func (s *Session) State() *formstate.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Document returns the current projection.
func (s *Session) Document() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// JSON returns the projection serialized with two-space indentation.
func (s *Session) JSON() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// SwitchTemplate discards the current state and restarts on another
// category's initial state. Switching to the active category resets it.
func (s *Session) SwitchTemplate(category Category) error {
	tmpl, err := s.registry.Get(category)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prevTemplate, prevState := s.template, s.state
	s.template = tmpl
	s.state = tmpl.NewState()
	if err := s.projectLocked(); err != nil {
		s.template, s.state = prevTemplate, prevState
		return err
	}
	return nil
}

// LoadExample replaces the state with the template's showcase preset.
func (s *Session) LoadExample() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(func(*formstate.FormState) (*formstate.FormState, error) {
		return s.template.Example(), nil
	})
}

// Clear blanks every field while keeping the template and the state's
// shape.
func (s *Session) Clear() error {
	return s.apply(formstate.ResetToEmpty)
}

// SetScalarField sets a flat template's scalar field.
func (s *Session) SetScalarField(field, value string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.SetScalarField(st, field, value)
	})
}

// SetSubjectField sets a scalar attribute of one subject.
func (s *Session) SetSubjectField(subjectID, field, value string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.SetSubjectField(st, subjectID, field, value)
	})
}

// SetSubjectArrayItem replaces one entry of a subject's outfit or pose.
func (s *Session) SetSubjectArrayItem(subjectID, field string, index int, value string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.SetSubjectArrayItem(st, subjectID, field, index, value)
	})
}

// AddSubjectArrayItem appends an empty entry to a subject's outfit or pose.
func (s *Session) AddSubjectArrayItem(subjectID, field string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.AddSubjectArrayItem(st, subjectID, field)
	})
}

// RemoveSubjectArrayItem drops one entry of a subject's outfit or pose.
func (s *Session) RemoveSubjectArrayItem(subjectID, field string, index int) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.RemoveSubjectArrayItem(st, subjectID, field, index)
	})
}

// AddSubject appends a freshly prefilled subject.
func (s *Session) AddSubject() error {
	return s.apply(formstate.AddSubject)
}

// RemoveSubject drops a subject by id, refusing to remove the last one.
func (s *Session) RemoveSubject(subjectID string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		if st.Person != nil && len(st.Person.Subjects) <= 1 {
			return nil, ErrLastSubject
		}
		return formstate.RemoveSubject(st, subjectID)
	})
}

// SetGlobalField sets a person template environment or technical field.
func (s *Session) SetGlobalField(section, field, value string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.SetGlobalField(st, section, field, value)
	})
}

// AddArrayItem appends a placeholder entry to a flat template's list field.
func (s *Session) AddArrayItem(field string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.AddArrayItem(st, field)
	})
}

// UpdateArrayItem sets the value of a list entry by id.
func (s *Session) UpdateArrayItem(field, itemID, value string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.UpdateArrayItem(st, field, itemID, value)
	})
}

// RemoveArrayItem drops a list entry by id.
func (s *Session) RemoveArrayItem(field, itemID string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.RemoveArrayItem(st, field, itemID)
	})
}

// AddCustomField appends an empty custom key/value pair.
func (s *Session) AddCustomField() error {
	return s.apply(formstate.AddCustomField)
}

// UpdateCustomField edits one half of a custom field by id.
func (s *Session) UpdateCustomField(fieldID string, part formstate.CustomFieldPart, value string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.UpdateCustomField(st, fieldID, part, value)
	})
}

// RemoveCustomField drops a custom field by id.
func (s *Session) RemoveCustomField(fieldID string) error {
	return s.apply(func(st *formstate.FormState) (*formstate.FormState, error) {
		return formstate.RemoveCustomField(st, fieldID)
	})
}

func (s *Session) apply(op func(*formstate.FormState) (*formstate.FormState, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(op)
}

// applyLocked runs a state transition and reprojects. A failed transition or
// projection leaves the previous state and document untouched.
func (s *Session) applyLocked(op func(*formstate.FormState) (*formstate.FormState, error)) error {
	next, err := op(s.state)
	if err != nil {
		return err
	}
	prev := s.state
	s.state = next
	if err := s.projectLocked(); err != nil {
		s.state = prev
		return err
	}
	return nil
}

func (s *Session) projectLocked() error {
	doc, err := s.template.Generate(s.state)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("architect: serialize document: %w", err)
	}
	s.doc = doc
	s.raw = string(raw)
	return nil
}
