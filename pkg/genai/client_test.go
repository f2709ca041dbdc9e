package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doffn/image-json-generator/pkg/retry"
)

func noSleep() retry.Option {
	return retry.WithSleep(func(context.Context, time.Duration) error { return nil })
}

func TestPredictDecodesResponse(t *testing.T) {
	var gotPath, gotKey string
	var gotBody ImageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ImageResponse{
			Predictions: []Prediction{{BytesBase64Encoded: "aGVsbG8="}},
		})
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	resp, err := client.Predict(context.Background(), "secret", ImageRequest{
		Instances:  []ImageInstance{{Prompt: "a red cube"}},
		Parameters: ImageParameters{SampleCount: 1, AspectRatio: "1:1", OutputMIMEType: "image/png"},
	})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	if gotPath != "/v1beta/models/"+DefaultImageModel+":predict" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("key = %q", gotKey)
	}
	if gotBody.Instances[0].Prompt != "a red cube" {
		t.Fatalf("forwarded prompt = %q", gotBody.Instances[0].Prompt)
	}
	payload, ok := resp.FirstImage()
	if !ok || payload != "aGVsbG8=" {
		t.Fatalf("FirstImage() = %q, %v", payload, ok)
	}
}

func TestPredictIsStatusBlind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ImageResponse{
			Error: &APIError{Code: 400, Status: "INVALID_ARGUMENT", Message: "prompt blocked"},
		})
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithRetryOptions(noSleep()))
	resp, err := client.Predict(context.Background(), "k", ImageRequest{})
	if err != nil {
		t.Fatalf("Predict() error = %v, want decoded rejection", err)
	}
	if _, ok := resp.FirstImage(); ok {
		t.Fatal("FirstImage() reported content on a rejection")
	}
	if resp.Error == nil || resp.Error.Message != "prompt blocked" {
		t.Fatalf("decoded error = %+v", resp.Error)
	}
}

func TestPredictRetriesTransportFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			// Kill the connection so the client sees a transport error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("server does not support hijacking")
				return
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Errorf("hijack: %v", err)
				return
			}
			conn.Close()
			return
		}
		json.NewEncoder(w).Encode(ImageResponse{
			Predictions: []Prediction{{BytesBase64Encoded: "ZGF0YQ=="}},
		})
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithRetryOptions(noSleep()))
	resp, err := client.Predict(context.Background(), "k", ImageRequest{
		Instances: []ImageInstance{{Prompt: "p"}},
	})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("server saw %d calls, want 3", got)
	}
	if _, ok := resp.FirstImage(); !ok {
		t.Fatal("FirstImage() missing after retries")
	}
}

func TestPredictExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj := w.(http.Hijacker)
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		conn.Close()
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithRetryOptions(noSleep(), retry.WithMaxAttempts(3)))
	_, err := client.Predict(context.Background(), "k", ImageRequest{})
	var exhausted *retry.ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error = %v, want *retry.ExhaustedError", err)
	}
	if exhausted.Attempts != 3 {
		t.Fatalf("attempts = %d, want 3", exhausted.Attempts)
	}
}

func TestGenerateContentDecodesResponse(t *testing.T) {
	var gotBody ContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/"+DefaultTextModel+":generateContent" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ContentResponse{
			Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "a moody scene"}}}}},
		})
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	resp, err := client.GenerateContent(context.Background(), "k", ContentRequest{
		Contents:          []Content{{Parts: []Part{{Text: "analyze this"}}}},
		SystemInstruction: &Content{Parts: []Part{{Text: "you are an analyst"}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	want := ContentRequest{
		Contents:          []Content{{Parts: []Part{{Text: "analyze this"}}}},
		SystemInstruction: &Content{Parts: []Part{{Text: "you are an analyst"}}},
	}
	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Fatalf("forwarded payload (-want +got):\n%s", diff)
	}
	text, ok := resp.FirstText()
	if !ok || text != "a moody scene" {
		t.Fatalf("FirstText() = %q, %v", text, ok)
	}
}

func TestFirstTextEmptyCases(t *testing.T) {
	cases := map[string]*ContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"no parts":      {Candidates: []Candidate{{}}},
		"empty text":    {Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: ""}}}}}},
	}
	for name, resp := range cases {
		if _, ok := resp.FirstText(); ok {
			t.Fatalf("%s: FirstText() reported content", name)
		}
	}
}
