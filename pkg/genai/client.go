package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/doffn/image-json-generator/pkg/retry"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultImageModel renders images via the predict operation.
	DefaultImageModel = "imagen-4.0-generate-001"

	// DefaultTextModel produces analyses via the generateContent operation.
	DefaultTextModel = "gemini-2.5-flash-preview-09-2025"
)

// Client issues requests against the Generative Language API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	imageModel string
	textModel  string
	retryOpts  []retry.Option
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithImageModel overrides the predict model.
func WithImageModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.imageModel = model
		}
	}
}

// WithTextModel overrides the generateContent model.
func WithTextModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.textModel = model
		}
	}
}

// WithRetryOptions replaces the backoff configuration of the transport.
func WithRetryOptions(opts ...retry.Option) Option {
	return func(c *Client) {
		c.retryOpts = opts
	}
}

// New builds a client with the production defaults.
func New(options ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		imageModel: DefaultImageModel,
		textModel:  DefaultTextModel,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// ImageModel returns the configured predict model.
func (c *Client) ImageModel() string { return c.imageModel }

// TextModel returns the configured generateContent model.
func (c *Client) TextModel() string { return c.textModel }

// Predict renders images for the request and decodes the response envelope.
// The HTTP status does not influence the outcome; only transport failures
// are retried and surfaced as errors.
func (c *Client) Predict(ctx context.Context, apiKey string, req ImageRequest) (*ImageResponse, error) {
	var out ImageResponse
	if err := c.post(ctx, c.imageModel, "predict", apiKey, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateContent produces text for the request and decodes the response
// envelope. Same transport semantics as Predict.
func (c *Client) GenerateContent(ctx context.Context, apiKey string, req ContentRequest) (*ContentResponse, error) {
	var out ContentResponse
	if err := c.post(ctx, c.textModel, "generateContent", apiKey, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, model, operation, apiKey string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("genai: encode %s request: %w", operation, err)
	}

	query := url.Values{}
	query.Set("key", apiKey)
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:%s?%s", c.baseURL, model, operation, query.Encode())

	// Only the HTTP round trip is retried. Each attempt reads the payload
	// from a fresh reader and drains the response body before returning.
	raw, err := retry.Do(ctx, func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		return io.ReadAll(resp.Body)
	}, c.retryOpts...)
	if err != nil {
		return fmt.Errorf("genai: %s transport: %w", operation, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("genai: decode %s response: %w", operation, err)
	}
	return nil
}
