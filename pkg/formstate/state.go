// Package formstate holds the mutable session data behind the prompt builder
// and the mutation operations that edit it. A FormState is shaped by the
// active template: the person template carries a list of subjects plus scene
// blocks, every other template is a flat record of scalar fields and named
// item lists. Operations never mutate in place; each returns a fresh state so
// callers can rely on simple identity checks for change detection.
package formstate

import "github.com/google/uuid"

// CustomField is a user-defined key/value pair merged into the generated
// document under custom_settings when both halves are non-empty.
type CustomField struct {
	ID    string
	Key   string
	Value string
}

// Item is a single entry of a named list field on a flat state. The ID stays
// stable across edits and reorderings and is the only handle used for
// targeted updates.
type Item struct {
	ID    string
	Value string
}

// Subject describes one person in the multi-subject template.
type Subject struct {
	ID        string
	Age       string
	Gender    string
	Ethnicity string
	Hair      string
	Eyes      string
	Outfit    []string
	Pose      []string
}

// Environment holds the person template's scene block.
type Environment struct {
	Location string
	Lighting string
}

// Technical holds the person template's camera block.
type Technical struct {
	Camera string
	Style  string
}

// SubjectsState is the person template's state shape.
type SubjectsState struct {
	Subjects     []Subject
	Environment  Environment
	Technical    Technical
	CustomFields []CustomField
}

// FlatState is the state shape shared by the brochure, sticker and
// advertisement templates: scalar fields keyed by field id plus zero or more
// named item lists.
type FlatState struct {
	Values       map[string]string
	Items        map[string][]Item
	CustomFields []CustomField
}

// FormState is the tagged variant over the two shapes. Exactly one of the
// fields is non-nil.
type FormState struct {
	Person *SubjectsState
	Flat   *FlatState
}

// NewID returns a random, collision-resistant identifier for list items,
// subjects and custom fields: 32 lowercase hex digits hyphenated 8-4-4-4-12.
// No uniqueness check is performed; the entropy makes collisions a
// non-concern within a session.
func NewID() string {
	return uuid.NewString()
}

// DefaultSubject builds the prefilled subject used when a template is
// initialised or a person is added.
func DefaultSubject() Subject {
	return Subject{
		ID:        NewID(),
		Age:       "30",
		Gender:    "Unspecified",
		Ethnicity: "Human",
		Hair:      "Short brown hair",
		Eyes:      "Blue eyes",
		Outfit:    []string{"Casual shirt", "Jeans"},
		Pose:      []string{"Standing neutral"},
	}
}

// NewItem builds a list item with a fresh identifier.
func NewItem(value string) Item {
	return Item{ID: NewID(), Value: value}
}

// NewCustomField builds an empty custom field with a fresh identifier.
func NewCustomField() CustomField {
	return CustomField{ID: NewID()}
}

// NewPerson wraps a SubjectsState into a FormState.
func NewPerson(state SubjectsState) *FormState {
	return &FormState{Person: &state}
}

// NewFlat wraps a FlatState into a FormState. Nil maps are replaced with
// empty ones so mutation operations never have to special-case them.
func NewFlat(state FlatState) *FormState {
	if state.Values == nil {
		state.Values = map[string]string{}
	}
	if state.Items == nil {
		state.Items = map[string][]Item{}
	}
	return &FormState{Flat: &state}
}

// Clone returns a deep copy of the state.
func (s *FormState) Clone() *FormState {
	if s == nil {
		return nil
	}
	out := &FormState{}
	if s.Person != nil {
		out.Person = s.Person.clone()
	}
	if s.Flat != nil {
		out.Flat = s.Flat.clone()
	}
	return out
}

func (s *SubjectsState) clone() *SubjectsState {
	out := &SubjectsState{
		Environment:  s.Environment,
		Technical:    s.Technical,
		Subjects:     make([]Subject, len(s.Subjects)),
		CustomFields: cloneCustomFields(s.CustomFields),
	}
	for i, subj := range s.Subjects {
		out.Subjects[i] = subj.clone()
	}
	return out
}

func (s Subject) clone() Subject {
	out := s
	out.Outfit = append([]string(nil), s.Outfit...)
	out.Pose = append([]string(nil), s.Pose...)
	return out
}

func (s *FlatState) clone() *FlatState {
	out := &FlatState{
		Values:       make(map[string]string, len(s.Values)),
		Items:        make(map[string][]Item, len(s.Items)),
		CustomFields: cloneCustomFields(s.CustomFields),
	}
	for k, v := range s.Values {
		out.Values[k] = v
	}
	for k, items := range s.Items {
		out.Items[k] = append([]Item(nil), items...)
	}
	return out
}

func cloneCustomFields(fields []CustomField) []CustomField {
	if fields == nil {
		return nil
	}
	return append([]CustomField(nil), fields...)
}
