// Package server exposes the two proxy endpoints the browser builder talks
// to: POST /analyze-prompt and POST /generate-image. It holds the API key so
// the credential never reaches the client, and it maps the orchestrator's
// error taxonomy onto HTTP statuses: 400 for provider rejections, 500 for a
// missing credential or an unreachable backend.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/doffn/image-json-generator/pkg/orchestrator"
)

// Generator is the slice of the orchestrator the server needs.
type Generator interface {
	GenerateImage(ctx context.Context, req orchestrator.ImageRequest) (string, error)
	AnalyzePrompt(ctx context.Context, req orchestrator.AnalyzeRequest) (string, error)
}

// Server handles the builder page and its API.
type Server struct {
	generator Generator
	apiKey    string
	sanitizer *bluemonday.Policy
}

// New builds a Server. The key may be empty; requests then fail with the
// missing-credential response without touching the backend.
func New(generator Generator, apiKey string) *Server {
	return &Server{
		generator: generator,
		apiKey:    apiKey,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/analyze-prompt", s.handleAnalyze)
	mux.HandleFunc("/generate-image", s.handleGenerate)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type analyzeRequest struct {
	JSONOutput string `json:"jsonOutput"`
}

type analyzeResponse struct {
	Analysis string `json:"analysis"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}
	if s.apiKey == "" {
		writeJSON(w, http.StatusInternalServerError, errorBody("Missing GOOGLE_API_KEY environment variable"))
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
		return
	}

	analysis, err := s.generator.AnalyzePrompt(r.Context(), orchestrator.AnalyzeRequest{
		Prompt:     req.JSONOutput,
		Credential: s.apiKey,
	})
	if err != nil {
		var provider *orchestrator.ProviderError
		switch {
		case errors.As(err, &provider):
			writeJSON(w, http.StatusBadRequest, errorBody(provider.Message))
		default:
			log.Printf("analyze-prompt: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to analyze prompt"))
		}
		return
	}

	// The analysis is rendered into the page; strip any markup the model
	// may have produced.
	analysis = strings.TrimSpace(s.sanitizer.Sanitize(analysis))
	writeJSON(w, http.StatusOK, analyzeResponse{Analysis: analysis})
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	ImageData string `json:"imageData"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}
	if s.apiKey == "" {
		writeJSON(w, http.StatusInternalServerError, errorBody("Missing GOOGLE_API_KEY environment variable"))
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
		return
	}
	if req.AspectRatio == "" {
		req.AspectRatio = "1:1"
	}

	uri, err := s.generator.GenerateImage(r.Context(), orchestrator.ImageRequest{
		Prompt:      req.Prompt,
		AspectRatio: req.AspectRatio,
		Credential:  s.apiKey,
	})
	if err != nil {
		var provider *orchestrator.ProviderError
		switch {
		case errors.As(err, &provider):
			writeJSON(w, http.StatusBadRequest, errorBody(provider.Message))
		default:
			log.Printf("generate-image: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to generate image"))
		}
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{ImageData: uri})
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
