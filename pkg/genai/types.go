// Package genai talks to the Generative Language API: image prediction and
// text generation over JSON HTTP. The client retries the transport with
// exponential backoff and is deliberately blind to HTTP status codes; a
// response body is decoded whatever the status, and callers inspect the
// decoded envelope to tell success from provider rejection.
package genai

import "fmt"

// ImageRequest is the predict endpoint payload.
type ImageRequest struct {
	Instances  []ImageInstance `json:"instances"`
	Parameters ImageParameters `json:"parameters"`
}

// ImageInstance carries one prompt to render.
type ImageInstance struct {
	Prompt string `json:"prompt"`
}

// ImageParameters configures a predict call.
type ImageParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMIMEType string `json:"outputMimeType"`
}

// ImageResponse is the predict endpoint envelope.
type ImageResponse struct {
	Predictions []Prediction `json:"predictions"`
	Error       *APIError    `json:"error,omitempty"`
}

// Prediction holds one generated image as base64 bytes.
type Prediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}

// FirstImage returns the base64 payload of the first prediction, reporting
// whether one with content exists.
func (r *ImageResponse) FirstImage() (string, bool) {
	if r == nil || len(r.Predictions) == 0 || r.Predictions[0].BytesBase64Encoded == "" {
		return "", false
	}
	return r.Predictions[0].BytesBase64Encoded, true
}

// ContentRequest is the generateContent endpoint payload.
type ContentRequest struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

// Content is a sequence of parts.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a single text fragment.
type Part struct {
	Text string `json:"text"`
}

// ContentResponse is the generateContent endpoint envelope.
type ContentResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *APIError   `json:"error,omitempty"`
}

// Candidate is one generated completion.
type Candidate struct {
	Content Content `json:"content"`
}

// FirstText returns the text of the first candidate's first part, reporting
// whether one with content exists.
func (r *ContentResponse) FirstText() (string, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", false
	}
	return parts[0].Text, true
}

// APIError is the provider's error envelope.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genai: provider error %d (%s): %s", e.Code, e.Status, e.Message)
}
