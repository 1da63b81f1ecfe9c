package translator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/valpere/travelrelay/internal/normalizer"
)

func hindiRequest() TranslateRequest {
	return TranslateRequest{
		Text:        "Hello",
		SourceLang:  "english",
		TargetLang:  "hindi",
		TargetLabel: "Hindi",
	}
}

func TestMagicLoopService_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if req["input_language"] != "english" {
			t.Errorf("expected input_language 'english', got %q", req["input_language"])
		}
		if req["output_language"] != "Hindi" {
			t.Errorf("expected output_language 'Hindi', got %q", req["output_language"])
		}
		if req["text"] != "Hello" {
			t.Errorf("expected text 'Hello', got %q", req["text"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{"Hindi": "नमस्ते"})
	}))
	defer server.Close()

	svc := NewMagicLoopService(server.URL, 0)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, hindiRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "नमस्ते" {
		t.Errorf("expected 'नमस्ते', got %q", result.TranslatedText)
	}
	if result.ServiceName != "magicloop" {
		t.Errorf("expected service name 'magicloop', got %q", result.ServiceName)
	}
}

func TestMagicLoopService_Translate_EndpointOverride(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"response": "ok"}`))
	}))
	defer server.Close()

	svc := NewMagicLoopService("http://127.0.0.1:1", 0)

	result, err := svc.Translate(context.Background(), ServiceConfig{Endpoint: server.URL}, hindiRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected endpoint override to be used")
	}
	if result.TranslatedText != "ok" {
		t.Errorf("expected 'ok', got %q", result.TranslatedText)
	}
}

func TestMagicLoopService_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewMagicLoopService(server.URL, 0)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, hindiRequest())
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestMagicLoopService_Translate_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	svc := NewMagicLoopService(server.URL, 0)

	_, err := svc.Translate(context.Background(), ServiceConfig{}, hindiRequest())
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestMagicLoopService_Translate_NoTranslation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["Hello"]`))
	}))
	defer server.Close()

	svc := NewMagicLoopService(server.URL, 0)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, hindiRequest())
	if !errors.Is(err, normalizer.ErrNoTranslation) {
		t.Errorf("expected ErrNoTranslation, got %v", err)
	}
	if result.Metadata["raw_response"] != `["Hello"]` {
		t.Errorf("expected raw response in metadata, got %v", result.Metadata)
	}
}

func TestMagicLoopService_Translate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	svc := NewMagicLoopService(url, 0)

	_, err := svc.Translate(context.Background(), ServiceConfig{}, hindiRequest())
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestMagicLoopService_DefaultEndpoint(t *testing.T) {
	svc := NewMagicLoopService("", 0)

	if svc.endpoint != DefaultMagicLoopEndpoint {
		t.Errorf("expected default endpoint, got %q", svc.endpoint)
	}
	if err := svc.IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGoogleService_Translate_InvalidTarget(t *testing.T) {
	svc := NewGoogleService()

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "Hello",
		SourceLang: "english",
		TargetLang: "not a language",
	})

	if err == nil {
		t.Error("expected error for unknown target language")
	}
	if errors.Is(err, ErrUpstream) {
		t.Error("invalid input must not be reported as an upstream failure")
	}
	if result == nil || result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestServiceNames(t *testing.T) {
	if NewGoogleService().Name() != "google" {
		t.Error("expected 'google'")
	}
	if NewMagicLoopService("", 0).Name() != "magicloop" {
		t.Error("expected 'magicloop'")
	}
}
