// Package builder walks a prompt template interactively in the terminal,
// applying form state operations as the user answers, and emits the
// generated JSON document at the end.
package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/doffn/image-json-generator/pkg/formstate"
	"github.com/doffn/image-json-generator/pkg/schema"
)

// Result is one completed builder run.
type Result struct {
	Category schema.Category
	State    *formstate.FormState
	Document schema.Document
	JSON     string
}

// Builder drives a template walk over a PromptDriver.
type Builder struct {
	driver   PromptDriver
	registry *schema.Registry
}

// Option configures a Builder.
type Option func(*Builder)

// WithDriver replaces the prompt driver.
func WithDriver(d PromptDriver) Option {
	return func(b *Builder) {
		if d != nil {
			b.driver = d
		}
	}
}

// WithRegistry replaces the template registry.
func WithRegistry(r *schema.Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// New builds a Builder. Without options it prompts on the terminal against
// the built-in templates.
func New(options ...Option) *Builder {
	b := &Builder{
		driver:   NewSurveyDriver(),
		registry: schema.Default(),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Run prompts for a category, walks its fields, and returns the filled state
// with its projected document.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	categories := b.registry.Categories()
	labels := make([]string, len(categories))
	for i, c := range categories {
		tmpl, err := b.registry.Get(c)
		if err != nil {
			return nil, err
		}
		labels[i] = tmpl.Label
	}

	idx, err := b.driver.Select(ctx, SelectConfig{Message: "Template", Options: labels})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(categories) {
		return nil, fmt.Errorf("builder: no template selected")
	}
	tmpl, err := b.registry.Get(categories[idx])
	if err != nil {
		return nil, err
	}

	useExample, err := b.driver.Confirm(ctx, ConfirmConfig{
		Message: "Start from the example preset?",
	})
	if err != nil {
		return nil, err
	}
	state := tmpl.NewState()
	if useExample {
		state = tmpl.Example()
	}

	switch {
	case state.Person != nil:
		state, err = b.walkPerson(ctx, tmpl, state)
	default:
		state, err = b.walkFlat(ctx, tmpl, state)
	}
	if err != nil {
		return nil, err
	}

	state, err = b.walkCustomFields(ctx, state)
	if err != nil {
		return nil, err
	}

	doc, err := tmpl.Generate(state)
	if err != nil {
		return nil, err
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("builder: serialize document: %w", err)
	}
	if err := b.driver.Info(ctx, string(raw)); err != nil {
		return nil, err
	}

	return &Result{
		Category: tmpl.Category,
		State:    state,
		Document: doc,
		JSON:     string(raw),
	}, nil
}

func (b *Builder) walkPerson(ctx context.Context, tmpl *schema.Template, state *formstate.FormState) (*formstate.FormState, error) {
	for i := 0; i < len(state.Person.Subjects); i++ {
		subj := state.Person.Subjects[i]
		if err := b.driver.Info(ctx, fmt.Sprintf("Subject %d", i+1)); err != nil {
			return nil, err
		}

		for _, field := range tmpl.Fields {
			value, err := b.driver.Input(ctx, InputConfig{
				Message:     field.Label,
				Default:     subjectValue(subj, field.ID),
				Placeholder: field.Placeholder,
			})
			if err != nil {
				return nil, err
			}
			state, err = formstate.SetSubjectField(state, subj.ID, field.ID, value)
			if err != nil {
				return nil, err
			}
		}

		for _, field := range tmpl.ArrayFields {
			var err error
			state, err = b.walkSubjectList(ctx, state, subj.ID, field)
			if err != nil {
				return nil, err
			}
		}

		if i == len(state.Person.Subjects)-1 {
			more, err := b.driver.Confirm(ctx, ConfirmConfig{Message: "Add another subject?"})
			if err != nil {
				return nil, err
			}
			if more {
				state, err = formstate.AddSubject(state)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	for _, field := range tmpl.GlobalFields {
		section := strings.ToLower(field.Section)
		value, err := b.driver.Input(ctx, InputConfig{
			Message:     field.Label,
			Default:     globalValue(state.Person, section, field.ID),
			Placeholder: field.Placeholder,
		})
		if err != nil {
			return nil, err
		}
		state, err = formstate.SetGlobalField(state, section, field.ID, value)
		if err != nil {
			return nil, err
		}
	}
	return state, nil
}

func (b *Builder) walkSubjectList(ctx context.Context, state *formstate.FormState, subjectID string, field schema.Field) (*formstate.FormState, error) {
	subj, err := findSubject(state, subjectID)
	if err != nil {
		return nil, err
	}
	entries := subj.Outfit
	if field.ID == "pose" {
		entries = subj.Pose
	}

	for idx := 0; idx < len(entries); idx++ {
		value, err := b.driver.Input(ctx, InputConfig{
			Message:     fmt.Sprintf("%s (%d)", field.Label, idx+1),
			Default:     entries[idx],
			Placeholder: field.Placeholder,
		})
		if err != nil {
			return nil, err
		}
		state, err = formstate.SetSubjectArrayItem(state, subjectID, field.ID, idx, value)
		if err != nil {
			return nil, err
		}

		if idx == len(entries)-1 {
			more, err := b.driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("Add another %s entry?", strings.ToLower(field.Label)),
			})
			if err != nil {
				return nil, err
			}
			if more {
				state, err = formstate.AddSubjectArrayItem(state, subjectID, field.ID)
				if err != nil {
					return nil, err
				}
				subj, err = findSubject(state, subjectID)
				if err != nil {
					return nil, err
				}
				entries = subj.Outfit
				if field.ID == "pose" {
					entries = subj.Pose
				}
			}
		}
	}
	return state, nil
}

func (b *Builder) walkFlat(ctx context.Context, tmpl *schema.Template, state *formstate.FormState) (*formstate.FormState, error) {
	for _, field := range tmpl.Fields {
		value, err := b.driver.Input(ctx, InputConfig{
			Message:     field.Label,
			Default:     state.Flat.Values[field.ID],
			Placeholder: field.Placeholder,
		})
		if err != nil {
			return nil, err
		}
		state, err = formstate.SetScalarField(state, field.ID, value)
		if err != nil {
			return nil, err
		}
	}

	for _, field := range tmpl.ArrayFields {
		items := state.Flat.Items[field.ID]
		for idx := 0; idx < len(items); idx++ {
			value, err := b.driver.Input(ctx, InputConfig{
				Message:     fmt.Sprintf("%s (%d)", field.Label, idx+1),
				Default:     items[idx].Value,
				Placeholder: field.Placeholder,
			})
			if err != nil {
				return nil, err
			}
			state, err = formstate.UpdateArrayItem(state, field.ID, items[idx].ID, value)
			if err != nil {
				return nil, err
			}

			if idx == len(items)-1 {
				more, err := b.driver.Confirm(ctx, ConfirmConfig{
					Message: fmt.Sprintf("Add another %s entry?", strings.ToLower(field.Label)),
				})
				if err != nil {
					return nil, err
				}
				if more {
					state, err = formstate.AddArrayItem(state, field.ID)
					if err != nil {
						return nil, err
					}
					items = state.Flat.Items[field.ID]
				}
			}
		}
	}
	return state, nil
}

func (b *Builder) walkCustomFields(ctx context.Context, state *formstate.FormState) (*formstate.FormState, error) {
	for {
		add, err := b.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add a custom setting?",
			Help:    "Extra key/value pairs merged into the document under custom_settings",
		})
		if err != nil {
			return nil, err
		}
		if !add {
			return state, nil
		}

		key, err := b.driver.Input(ctx, InputConfig{Message: "Setting key"})
		if err != nil {
			return nil, err
		}
		value, err := b.driver.Input(ctx, InputConfig{Message: "Setting value"})
		if err != nil {
			return nil, err
		}

		state, err = formstate.AddCustomField(state)
		if err != nil {
			return nil, err
		}
		fields := customFields(state)
		id := fields[len(fields)-1].ID
		state, err = formstate.UpdateCustomField(state, id, formstate.CustomKey, key)
		if err != nil {
			return nil, err
		}
		state, err = formstate.UpdateCustomField(state, id, formstate.CustomValue, value)
		if err != nil {
			return nil, err
		}
	}
}

func subjectValue(subj formstate.Subject, field string) string {
	switch field {
	case "age":
		return subj.Age
	case "gender":
		return subj.Gender
	case "ethnicity":
		return subj.Ethnicity
	case "hair":
		return subj.Hair
	case "eyes":
		return subj.Eyes
	default:
		return ""
	}
}

func globalValue(state *formstate.SubjectsState, section, field string) string {
	switch section + "/" + field {
	case "environment/location":
		return state.Environment.Location
	case "environment/lighting":
		return state.Environment.Lighting
	case "technical/camera":
		return state.Technical.Camera
	case "technical/style":
		return state.Technical.Style
	default:
		return ""
	}
}

func findSubject(state *formstate.FormState, id string) (formstate.Subject, error) {
	for _, subj := range state.Person.Subjects {
		if subj.ID == id {
			return subj, nil
		}
	}
	return formstate.Subject{}, fmt.Errorf("builder: subject %q disappeared mid-walk", id)
}

func customFields(state *formstate.FormState) []formstate.CustomField {
	if state.Person != nil {
		return state.Person.CustomFields
	}
	return state.Flat.CustomFields
}
