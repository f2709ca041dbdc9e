// Package orchestrator coordinates prompt documents with the generative
// backend: rendering a document into an image and producing a text analysis
// of it. It enforces the credential precondition before any network call and
// keeps provider rejections distinguishable from connectivity failures.
package orchestrator

import (
	"context"
	"strings"

	"github.com/doffn/image-json-generator/pkg/genai"
)

// SystemInstruction steers the analysis model.
const SystemInstruction = "You are a creative prompt analyst. Analyze the provided structured JSON prompt and generate a concise, descriptive text summary of the scene/design, focusing on mood, style, and key elements. Then, suggest one creative improvement. Format as a single paragraph."

const analysisQueryPrefix = "Analyze the following JSON prompt for image generation:\n\n"

const dataURIPrefix = "data:image/png;base64,"

// ImageRequest asks for one rendered image.
type ImageRequest struct {
	// Prompt is the serialized JSON document.
	Prompt string

	// AspectRatio of the output. Empty defaults to "1:1".
	AspectRatio string

	// Credential is the API key. Empty fails before any network call.
	Credential string
}

// AnalyzeRequest asks for a text critique of a document.
type AnalyzeRequest struct {
	Prompt     string
	Credential string
}

// Generator runs generation and analysis against a genai client.
type Generator struct {
	client *genai.Client
}

// Option configures a Generator.
type Option func(*Generator)

// WithClient replaces the backend client.
func WithClient(c *genai.Client) Option {
	return func(g *Generator) {
		if c != nil {
			g.client = c
		}
	}
}

// New builds a Generator. Without options it talks to the production API.
func New(options ...Option) *Generator {
	g := &Generator{client: genai.New()}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// GenerateImage renders the document and returns it as a PNG data URI.
func (g *Generator) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	if req.Credential == "" {
		return "", ErrMissingCredential
	}
	aspect := req.AspectRatio
	if aspect == "" {
		aspect = "1:1"
	}

	resp, err := g.client.Predict(ctx, req.Credential, genai.ImageRequest{
		Instances: []genai.ImageInstance{{Prompt: req.Prompt}},
		Parameters: genai.ImageParameters{
			SampleCount:    1,
			AspectRatio:    aspect,
			OutputMIMEType: "image/png",
		},
	})
	if err != nil {
		return "", &ConnectivityError{Op: "generate image", Err: err}
	}

	payload, ok := resp.FirstImage()
	if !ok {
		message := "Image generation failed"
		if resp.Error != nil && resp.Error.Message != "" {
			message = resp.Error.Message
		}
		return "", &ProviderError{Message: message}
	}
	return dataURIPrefix + payload, nil
}

// AnalyzePrompt asks the text model for a one-paragraph critique of the
// document.
func (g *Generator) AnalyzePrompt(ctx context.Context, req AnalyzeRequest) (string, error) {
	if req.Credential == "" {
		return "", ErrMissingCredential
	}

	var query strings.Builder
	query.WriteString(analysisQueryPrefix)
	query.WriteString(req.Prompt)

	resp, err := g.client.GenerateContent(ctx, req.Credential, genai.ContentRequest{
		Contents:          []genai.Content{{Parts: []genai.Part{{Text: query.String()}}}},
		SystemInstruction: &genai.Content{Parts: []genai.Part{{Text: SystemInstruction}}},
	})
	if err != nil {
		return "", &ConnectivityError{Op: "analyze prompt", Err: err}
	}

	text, ok := resp.FirstText()
	if !ok {
		return "", &ProviderError{Message: "Text analysis failed to return content"}
	}
	return text, nil
}
