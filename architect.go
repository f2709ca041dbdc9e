// Package architect is the facade over the structured prompt builder: pick a
// template, edit its form state, and read back the generated JSON document.
// The heavy lifting lives in pkg/schema, pkg/formstate and pkg/orchestrator;
// this package re-exports the common surface and adds Session, a mutable
// builder that keeps state and projection in sync.
package architect

import (
	"github.com/doffn/image-json-generator/pkg/formstate"
	"github.com/doffn/image-json-generator/pkg/orchestrator"
	"github.com/doffn/image-json-generator/pkg/schema"
)

// Category re-exports schema.Category.
type Category = schema.Category

// Template categories.
const (
	Person        = schema.Person
	Brochure      = schema.Brochure
	Sticker       = schema.Sticker
	Advertisement = schema.Advertisement
)

// Document re-exports schema.Document.
type Document = schema.Document

// FormState re-exports formstate.FormState.
type FormState = formstate.FormState

// Categories lists the built-in template categories.
func Categories() []Category {
	return schema.Categories()
}

// AspectRatio returns the image aspect ratio used for a category.
func AspectRatio(c Category) string {
	return schema.AspectRatio(c)
}

// NewGenerator builds a generation orchestrator against the production API.
func NewGenerator(options ...orchestrator.Option) *orchestrator.Generator {
	return orchestrator.New(options...)
}
