package formstate

import (
	"errors"
	"fmt"
)

// ErrInvalidReference reports a mutation that targeted an id or field the
// state does not contain. Operations return it wrapped with context; check
// with errors.Is.
var ErrInvalidReference = errors.New("formstate: invalid reference")

// ErrShapeMismatch reports a mutation applied to the wrong state variant,
// such as a subject edit on a flat state.
var ErrShapeMismatch = errors.New("formstate: operation does not apply to this state shape")

// NewContentItemValue is the value given to list entries appended through
// AddArrayItem.
const NewContentItemValue = "New Content Item"

func invalidRef(format string, args ...any) error {
	return fmt.Errorf("formstate: %s: %w", fmt.Sprintf(format, args...), ErrInvalidReference)
}

// SetScalarField sets a flat scalar field. The field does not need to exist
// beforehand; templates seed their known fields but operations accept any id
// the template layer hands them.
func SetScalarField(s *FormState, field, value string) (*FormState, error) {
	if s == nil || s.Flat == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	out.Flat.Values[field] = value
	return out, nil
}

// SetSubjectField sets a scalar attribute on the subject with the given id.
func SetSubjectField(s *FormState, subjectID, field, value string) (*FormState, error) {
	if s == nil || s.Person == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	subj, err := out.Person.subjectByID(subjectID)
	if err != nil {
		return nil, err
	}
	switch field {
	case "age":
		subj.Age = value
	case "gender":
		subj.Gender = value
	case "ethnicity":
		subj.Ethnicity = value
	case "hair":
		subj.Hair = value
	case "eyes":
		subj.Eyes = value
	default:
		return nil, invalidRef("unknown subject field %q", field)
	}
	return out, nil
}

// SetSubjectArrayItem replaces one entry of a subject's outfit or pose list.
func SetSubjectArrayItem(s *FormState, subjectID, field string, index int, value string) (*FormState, error) {
	if s == nil || s.Person == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	subj, err := out.Person.subjectByID(subjectID)
	if err != nil {
		return nil, err
	}
	list, err := subj.arrayField(field)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(*list) {
		return nil, invalidRef("index %d out of range for %s", index, field)
	}
	(*list)[index] = value
	return out, nil
}

// AddSubjectArrayItem appends an empty entry to a subject's outfit or pose
// list.
func AddSubjectArrayItem(s *FormState, subjectID, field string) (*FormState, error) {
	if s == nil || s.Person == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	subj, err := out.Person.subjectByID(subjectID)
	if err != nil {
		return nil, err
	}
	list, err := subj.arrayField(field)
	if err != nil {
		return nil, err
	}
	*list = append(*list, "")
	return out, nil
}

// RemoveSubjectArrayItem drops one entry of a subject's outfit or pose list
// by position.
func RemoveSubjectArrayItem(s *FormState, subjectID, field string, index int) (*FormState, error) {
	if s == nil || s.Person == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	subj, err := out.Person.subjectByID(subjectID)
	if err != nil {
		return nil, err
	}
	list, err := subj.arrayField(field)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(*list) {
		return nil, invalidRef("index %d out of range for %s", index, field)
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	return out, nil
}

// AddSubject appends a freshly prefilled subject.
func AddSubject(s *FormState) (*FormState, error) {
	if s == nil || s.Person == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	out.Person.Subjects = append(out.Person.Subjects, DefaultSubject())
	return out, nil
}

// RemoveSubject drops the subject with the given id. It removes
// unconditionally; keeping at least one subject around is the caller's
// policy, not the store's.
func RemoveSubject(s *FormState, subjectID string) (*FormState, error) {
	if s == nil || s.Person == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	for i, subj := range out.Person.Subjects {
		if subj.ID == subjectID {
			out.Person.Subjects = append(out.Person.Subjects[:i], out.Person.Subjects[i+1:]...)
			return out, nil
		}
	}
	return nil, invalidRef("no subject with id %q", subjectID)
}

// SetGlobalField sets a field on the person state's environment or technical
// block. The section is the lowercased section name of the field descriptor.
func SetGlobalField(s *FormState, section, field, value string) (*FormState, error) {
	if s == nil || s.Person == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	switch section {
	case "environment":
		switch field {
		case "location":
			out.Person.Environment.Location = value
		case "lighting":
			out.Person.Environment.Lighting = value
		default:
			return nil, invalidRef("unknown environment field %q", field)
		}
	case "technical":
		switch field {
		case "camera":
			out.Person.Technical.Camera = value
		case "style":
			out.Person.Technical.Style = value
		default:
			return nil, invalidRef("unknown technical field %q", field)
		}
	default:
		return nil, invalidRef("unknown section %q", section)
	}
	return out, nil
}

// AddArrayItem appends a new placeholder entry to a flat state's named list.
// The list is created on first use.
func AddArrayItem(s *FormState, field string) (*FormState, error) {
	if s == nil || s.Flat == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	out.Flat.Items[field] = append(out.Flat.Items[field], NewItem(NewContentItemValue))
	return out, nil
}

// UpdateArrayItem sets the value of the list entry with the given id.
func UpdateArrayItem(s *FormState, field, itemID, value string) (*FormState, error) {
	if s == nil || s.Flat == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	items, ok := out.Flat.Items[field]
	if !ok {
		return nil, invalidRef("no list field %q", field)
	}
	for i := range items {
		if items[i].ID == itemID {
			items[i].Value = value
			return out, nil
		}
	}
	return nil, invalidRef("no item %q in %s", itemID, field)
}

// RemoveArrayItem drops the list entry with the given id.
func RemoveArrayItem(s *FormState, field, itemID string) (*FormState, error) {
	if s == nil || s.Flat == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	items, ok := out.Flat.Items[field]
	if !ok {
		return nil, invalidRef("no list field %q", field)
	}
	for i := range items {
		if items[i].ID == itemID {
			out.Flat.Items[field] = append(items[:i], items[i+1:]...)
			return out, nil
		}
	}
	return nil, invalidRef("no item %q in %s", itemID, field)
}

// AddCustomField appends an empty custom key/value pair.
func AddCustomField(s *FormState) (*FormState, error) {
	if s == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	switch {
	case out.Person != nil:
		out.Person.CustomFields = append(out.Person.CustomFields, NewCustomField())
	case out.Flat != nil:
		out.Flat.CustomFields = append(out.Flat.CustomFields, NewCustomField())
	default:
		return nil, ErrShapeMismatch
	}
	return out, nil
}

// CustomFieldPart selects which half of a custom field UpdateCustomField
// edits.
type CustomFieldPart string

const (
	CustomKey   CustomFieldPart = "key"
	CustomValue CustomFieldPart = "value"
)

// UpdateCustomField sets the key or the value of the custom field with the
// given id.
func UpdateCustomField(s *FormState, fieldID string, part CustomFieldPart, value string) (*FormState, error) {
	if s == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	fields := out.customFields()
	if fields == nil {
		return nil, ErrShapeMismatch
	}
	for i := range *fields {
		if (*fields)[i].ID != fieldID {
			continue
		}
		switch part {
		case CustomKey:
			(*fields)[i].Key = value
		case CustomValue:
			(*fields)[i].Value = value
		default:
			return nil, invalidRef("unknown custom field part %q", part)
		}
		return out, nil
	}
	return nil, invalidRef("no custom field with id %q", fieldID)
}

// RemoveCustomField drops the custom field with the given id.
func RemoveCustomField(s *FormState, fieldID string) (*FormState, error) {
	if s == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	fields := out.customFields()
	if fields == nil {
		return nil, ErrShapeMismatch
	}
	for i := range *fields {
		if (*fields)[i].ID == fieldID {
			*fields = append((*fields)[:i], (*fields)[i+1:]...)
			return out, nil
		}
	}
	return nil, invalidRef("no custom field with id %q", fieldID)
}

// ResetToEmpty blanks every field while keeping the state's shape. Subjects
// keep their identities; their scalar attributes become empty and their
// outfit/pose lists collapse to a single empty entry. Flat scalar values
// become empty, list entries keep their ids with empty values, and custom
// fields are dropped entirely.
func ResetToEmpty(s *FormState) (*FormState, error) {
	if s == nil {
		return nil, ErrShapeMismatch
	}
	out := s.Clone()
	switch {
	case out.Person != nil:
		for i := range out.Person.Subjects {
			subj := &out.Person.Subjects[i]
			subj.Age, subj.Gender, subj.Ethnicity, subj.Hair, subj.Eyes = "", "", "", "", ""
			subj.Outfit = []string{""}
			subj.Pose = []string{""}
		}
		out.Person.Environment = Environment{}
		out.Person.Technical = Technical{}
		out.Person.CustomFields = nil
	case out.Flat != nil:
		for k := range out.Flat.Values {
			out.Flat.Values[k] = ""
		}
		for _, items := range out.Flat.Items {
			for i := range items {
				items[i].Value = ""
			}
		}
		out.Flat.CustomFields = nil
	default:
		return nil, ErrShapeMismatch
	}
	return out, nil
}

func (s *SubjectsState) subjectByID(id string) (*Subject, error) {
	for i := range s.Subjects {
		if s.Subjects[i].ID == id {
			return &s.Subjects[i], nil
		}
	}
	return nil, invalidRef("no subject with id %q", id)
}

func (s *Subject) arrayField(field string) (*[]string, error) {
	switch field {
	case "outfit":
		return &s.Outfit, nil
	case "pose":
		return &s.Pose, nil
	default:
		return nil, invalidRef("unknown subject list field %q", field)
	}
}

func (s *FormState) customFields() *[]CustomField {
	switch {
	case s.Person != nil:
		return &s.Person.CustomFields
	case s.Flat != nil:
		return &s.Flat.CustomFields
	default:
		return nil
	}
}
