package formstate

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestNewIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if !idPattern.MatchString(id) {
			t.Fatalf("NewID() = %q, want hyphenated hex", id)
		}
		if seen[id] {
			t.Fatalf("NewID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func personState() *FormState {
	return NewPerson(SubjectsState{
		Subjects: []Subject{DefaultSubject()},
		Environment: Environment{
			Location: "A sunlit city park",
			Lighting: "Golden hour, soft daylight",
		},
		Technical: Technical{
			Camera: "50mm lens, f/1.8",
			Style:  "Photorealistic",
		},
	})
}

func flatState() *FormState {
	return NewFlat(FlatState{
		Values: map[string]string{
			"subject": "Cute robot cat",
			"style":   "Kawaii Vector",
		},
		Items: map[string][]Item{
			"contentPanels": {NewItem("Cover Headline: INNOVATION")},
		},
	})
}

func TestSetSubjectFieldDoesNotAliasInput(t *testing.T) {
	orig := personState()
	id := orig.Person.Subjects[0].ID

	next, err := SetSubjectField(orig, id, "hair", "Long red hair")
	if err != nil {
		t.Fatalf("SetSubjectField() error = %v", err)
	}
	if got := next.Person.Subjects[0].Hair; got != "Long red hair" {
		t.Fatalf("hair = %q, want %q", got, "Long red hair")
	}
	if got := orig.Person.Subjects[0].Hair; got != "Short brown hair" {
		t.Fatalf("original mutated: hair = %q", got)
	}
}

func TestSetSubjectFieldUnknownSubject(t *testing.T) {
	_, err := SetSubjectField(personState(), "missing", "hair", "x")
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("error = %v, want ErrInvalidReference", err)
	}
}

func TestSetSubjectFieldUnknownField(t *testing.T) {
	s := personState()
	_, err := SetSubjectField(s, s.Person.Subjects[0].ID, "height", "tall")
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("error = %v, want ErrInvalidReference", err)
	}
}

func TestSubjectArrayItemOps(t *testing.T) {
	s := personState()
	id := s.Person.Subjects[0].ID

	s, err := AddSubjectArrayItem(s, id, "outfit")
	if err != nil {
		t.Fatalf("AddSubjectArrayItem() error = %v", err)
	}
	s, err = SetSubjectArrayItem(s, id, "outfit", 2, "Leather boots")
	if err != nil {
		t.Fatalf("SetSubjectArrayItem() error = %v", err)
	}
	want := []string{"Casual shirt", "Jeans", "Leather boots"}
	if diff := cmp.Diff(want, s.Person.Subjects[0].Outfit); diff != "" {
		t.Fatalf("outfit mismatch (-want +got):\n%s", diff)
	}

	s, err = RemoveSubjectArrayItem(s, id, "outfit", 0)
	if err != nil {
		t.Fatalf("RemoveSubjectArrayItem() error = %v", err)
	}
	want = []string{"Jeans", "Leather boots"}
	if diff := cmp.Diff(want, s.Person.Subjects[0].Outfit); diff != "" {
		t.Fatalf("outfit after remove (-want +got):\n%s", diff)
	}

	if _, err := SetSubjectArrayItem(s, id, "outfit", 9, "x"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("out-of-range error = %v, want ErrInvalidReference", err)
	}
	if _, err := AddSubjectArrayItem(s, id, "accessories"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("unknown list error = %v, want ErrInvalidReference", err)
	}
}

func TestAddAndRemoveSubject(t *testing.T) {
	s := personState()
	s, err := AddSubject(s)
	if err != nil {
		t.Fatalf("AddSubject() error = %v", err)
	}
	if len(s.Person.Subjects) != 2 {
		t.Fatalf("subjects = %d, want 2", len(s.Person.Subjects))
	}
	if s.Person.Subjects[0].ID == s.Person.Subjects[1].ID {
		t.Fatal("new subject reuses existing id")
	}

	s, err = RemoveSubject(s, s.Person.Subjects[0].ID)
	if err != nil {
		t.Fatalf("RemoveSubject() error = %v", err)
	}
	if len(s.Person.Subjects) != 1 {
		t.Fatalf("subjects = %d, want 1", len(s.Person.Subjects))
	}

	// The store removes unconditionally, even the last subject.
	s, err = RemoveSubject(s, s.Person.Subjects[0].ID)
	if err != nil {
		t.Fatalf("RemoveSubject() last error = %v", err)
	}
	if len(s.Person.Subjects) != 0 {
		t.Fatalf("subjects = %d, want 0", len(s.Person.Subjects))
	}

	if _, err := RemoveSubject(s, "missing"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("error = %v, want ErrInvalidReference", err)
	}
}

func TestSetGlobalField(t *testing.T) {
	s := personState()
	s, err := SetGlobalField(s, "environment", "location", "A neon-lit rooftop")
	if err != nil {
		t.Fatalf("SetGlobalField() error = %v", err)
	}
	if got := s.Person.Environment.Location; got != "A neon-lit rooftop" {
		t.Fatalf("location = %q", got)
	}
	s, err = SetGlobalField(s, "technical", "style", "Film noir")
	if err != nil {
		t.Fatalf("SetGlobalField() error = %v", err)
	}
	if got := s.Person.Technical.Style; got != "Film noir" {
		t.Fatalf("style = %q", got)
	}
	if _, err := SetGlobalField(s, "scene", "location", "x"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("unknown section error = %v, want ErrInvalidReference", err)
	}
}

func TestScalarFieldOnFlatState(t *testing.T) {
	orig := flatState()
	next, err := SetScalarField(orig, "subject", "Grumpy robot dog")
	if err != nil {
		t.Fatalf("SetScalarField() error = %v", err)
	}
	if got := next.Flat.Values["subject"]; got != "Grumpy robot dog" {
		t.Fatalf("subject = %q", got)
	}
	if got := orig.Flat.Values["subject"]; got != "Cute robot cat" {
		t.Fatalf("original mutated: subject = %q", got)
	}
}

func TestScalarFieldShapeMismatch(t *testing.T) {
	if _, err := SetScalarField(personState(), "subject", "x"); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
	if _, err := AddSubject(flatState()); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestArrayItemOps(t *testing.T) {
	s := flatState()
	s, err := AddArrayItem(s, "contentPanels")
	if err != nil {
		t.Fatalf("AddArrayItem() error = %v", err)
	}
	items := s.Flat.Items["contentPanels"]
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[1].Value != NewContentItemValue {
		t.Fatalf("appended value = %q, want %q", items[1].Value, NewContentItemValue)
	}

	s, err = UpdateArrayItem(s, "contentPanels", items[1].ID, "Back Panel: Contact Us")
	if err != nil {
		t.Fatalf("UpdateArrayItem() error = %v", err)
	}
	if got := s.Flat.Items["contentPanels"][1].Value; got != "Back Panel: Contact Us" {
		t.Fatalf("updated value = %q", got)
	}

	s, err = RemoveArrayItem(s, "contentPanels", items[0].ID)
	if err != nil {
		t.Fatalf("RemoveArrayItem() error = %v", err)
	}
	if got := len(s.Flat.Items["contentPanels"]); got != 1 {
		t.Fatalf("items after remove = %d, want 1", got)
	}

	if _, err := UpdateArrayItem(s, "contentPanels", "missing", "x"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("unknown item error = %v, want ErrInvalidReference", err)
	}
	if _, err := RemoveArrayItem(s, "sidebars", items[0].ID); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("unknown list error = %v, want ErrInvalidReference", err)
	}
}

func TestCustomFieldLifecycle(t *testing.T) {
	for name, start := range map[string]*FormState{"person": personState(), "flat": flatState()} {
		t.Run(name, func(t *testing.T) {
			s, err := AddCustomField(start)
			if err != nil {
				t.Fatalf("AddCustomField() error = %v", err)
			}
			fields := *s.customFields()
			if len(fields) != 1 {
				t.Fatalf("custom fields = %d, want 1", len(fields))
			}
			id := fields[0].ID

			s, err = UpdateCustomField(s, id, CustomKey, "mood")
			if err != nil {
				t.Fatalf("UpdateCustomField(key) error = %v", err)
			}
			s, err = UpdateCustomField(s, id, CustomValue, "dreamy")
			if err != nil {
				t.Fatalf("UpdateCustomField(value) error = %v", err)
			}
			got := (*s.customFields())[0]
			if got.Key != "mood" || got.Value != "dreamy" {
				t.Fatalf("custom field = %+v", got)
			}

			s, err = RemoveCustomField(s, id)
			if err != nil {
				t.Fatalf("RemoveCustomField() error = %v", err)
			}
			if n := len(*s.customFields()); n != 0 {
				t.Fatalf("custom fields after remove = %d, want 0", n)
			}

			if _, err := UpdateCustomField(s, "missing", CustomKey, "x"); !errors.Is(err, ErrInvalidReference) {
				t.Fatalf("error = %v, want ErrInvalidReference", err)
			}
		})
	}
}

func TestResetToEmptyPerson(t *testing.T) {
	s := personState()
	id := s.Person.Subjects[0].ID
	s, err := AddCustomField(s)
	if err != nil {
		t.Fatalf("AddCustomField() error = %v", err)
	}

	s, err = ResetToEmpty(s)
	if err != nil {
		t.Fatalf("ResetToEmpty() error = %v", err)
	}
	subj := s.Person.Subjects[0]
	if subj.ID != id {
		t.Fatalf("reset changed subject id: %q != %q", subj.ID, id)
	}
	want := Subject{ID: id, Outfit: []string{""}, Pose: []string{""}}
	if diff := cmp.Diff(want, subj); diff != "" {
		t.Fatalf("subject after reset (-want +got):\n%s", diff)
	}
	if s.Person.Environment != (Environment{}) || s.Person.Technical != (Technical{}) {
		t.Fatalf("globals not cleared: %+v %+v", s.Person.Environment, s.Person.Technical)
	}
	if len(s.Person.CustomFields) != 0 {
		t.Fatalf("custom fields survived reset: %v", s.Person.CustomFields)
	}
}

func TestResetToEmptyFlat(t *testing.T) {
	s := flatState()
	itemID := s.Flat.Items["contentPanels"][0].ID

	s, err := ResetToEmpty(s)
	if err != nil {
		t.Fatalf("ResetToEmpty() error = %v", err)
	}
	for k, v := range s.Flat.Values {
		if v != "" {
			t.Fatalf("value %q not cleared: %q", k, v)
		}
	}
	items := s.Flat.Items["contentPanels"]
	if len(items) != 1 || items[0].ID != itemID || items[0].Value != "" {
		t.Fatalf("items after reset = %+v, want one empty entry keeping id %q", items, itemID)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := personState()
	c := s.Clone()
	c.Person.Subjects[0].Outfit[0] = "changed"
	c.Person.Subjects[0].Hair = "changed"
	if s.Person.Subjects[0].Outfit[0] == "changed" || s.Person.Subjects[0].Hair == "changed" {
		t.Fatal("Clone() shares memory with the source")
	}

	f := flatState()
	cf := f.Clone()
	cf.Flat.Values["subject"] = "changed"
	cf.Flat.Items["contentPanels"][0].Value = "changed"
	if f.Flat.Values["subject"] == "changed" || f.Flat.Items["contentPanels"][0].Value == "changed" {
		t.Fatal("Clone() shares memory with the source")
	}
}
