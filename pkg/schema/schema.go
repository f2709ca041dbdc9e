// Package schema defines the prompt templates: the closed set of categories,
// their field descriptors, prefilled initial states, and the transforms that
// turn a form state into the structured JSON document sent to the image
// model. Templates are registered in a registry keyed by category; lookup of
// an unknown category is an error, never a nil template.
package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/doffn/image-json-generator/pkg/formstate"
)

// Category names a template. The set is closed; new categories are added
// here, not discovered at runtime.
type Category string

const (
	Person        Category = "person"
	Brochure      Category = "brochure"
	Sticker       Category = "sticker"
	Advertisement Category = "advertisement"
)

// Field describes a single input of a template: a stable id, the label and
// placeholder shown to the user, and the section heading it is grouped
// under.
type Field struct {
	ID          string
	Label       string
	Placeholder string
	Section     string
}

// Template bundles everything the builder and the projection need for one
// category.
type Template struct {
	Category    Category
	Label       string
	Description string

	// Fields are scalar inputs. For the person template they apply to each
	// subject; for flat templates they are top-level values.
	Fields []Field

	// ArrayFields are repeatable inputs: per-subject string lists for the
	// person template, identified item lists for flat templates.
	ArrayFields []Field

	// GlobalFields apply once per document regardless of subject count.
	// Only the person template has any.
	GlobalFields []Field

	// NewState builds the template's prefilled starting state.
	NewState func() *formstate.FormState

	// Example builds a fully filled showcase state.
	Example func() *formstate.FormState

	// Generate projects a state into the document for this category.
	Generate func(*formstate.FormState) (Document, error)
}

// AspectRatio returns the image aspect ratio requested for a category.
// Advertisements render wide; everything else is square.
func AspectRatio(c Category) string {
	if c == Advertisement {
		return "4:3"
	}
	return "1:1"
}

// Registry maps categories to templates.
type Registry struct {
	mu        sync.RWMutex
	templates map[Category]*Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: map[Category]*Template{}}
}

// Register adds a template. Registering a nil template, a template without a
// category, or a duplicate category is an error.
func (r *Registry) Register(t *Template) error {
	if t == nil {
		return fmt.Errorf("schema: cannot register nil template")
	}
	if t.Category == "" {
		return fmt.Errorf("schema: cannot register template without category")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.templates[t.Category]; exists {
		return fmt.Errorf("schema: template %q already registered", t.Category)
	}
	r.templates[t.Category] = t
	return nil
}

// MustRegister is Register but panics on error. Intended for package-level
// template definitions.
func (r *Registry) MustRegister(t *Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns the template for a category.
func (r *Registry) Get(c Category) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[c]
	if !ok {
		return nil, fmt.Errorf("schema: unknown category %q", c)
	}
	return t, nil
}

// Has reports whether a category is registered.
func (r *Registry) Has(c Category) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[c]
	return ok
}

// Categories returns the registered categories in sorted order.
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, 0, len(r.templates))
	for c := range r.templates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.MustRegister(personTemplate())
	defaultRegistry.MustRegister(brochureTemplate())
	defaultRegistry.MustRegister(stickerTemplate())
	defaultRegistry.MustRegister(adTemplate())
}

// Default returns the registry holding the built-in templates.
func Default() *Registry {
	return defaultRegistry
}

// Get looks a category up in the default registry.
func Get(c Category) (*Template, error) {
	return defaultRegistry.Get(c)
}

// MustGet is Get but panics on an unknown category.
func MustGet(c Category) *Template {
	t, err := defaultRegistry.Get(c)
	if err != nil {
		panic(err)
	}
	return t
}

// Categories lists the default registry's categories.
func Categories() []Category {
	return defaultRegistry.Categories()
}
