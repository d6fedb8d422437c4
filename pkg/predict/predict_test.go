package predict

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shushrut/shushrut_backend/config"
)

func TestAnalyzeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ObjID != "abc123" {
			t.Errorf("obj_id = %q, want abc123", req.ObjID)
		}
		json.NewEncoder(w).Encode(Response{
			ImageURL:   "https://cdn.example.com/x.jpg",
			Verify:     "yes",
			Prediction: "Melanoma,82.5%,urgent referral recommended",
			Report:     "full report text",
			Jarvis:     "assistant notes",
		})
	}))
	defer srv.Close()

	c := New(config.PredictConfig{BaseURL: srv.URL})
	res, err := c.Analyze(context.Background(), Request{ObjID: "abc123"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Prediction != "Melanoma,82.5%,urgent referral recommended" {
		t.Errorf("prediction = %q", res.Prediction)
	}
	if res.ImageURL != "https://cdn.example.com/x.jpg" {
		t.Errorf("image_url = %q", res.ImageURL)
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"invalid image"}`))
	}))
	defer srv.Close()

	c := New(config.PredictConfig{BaseURL: srv.URL})
	_, err := c.Analyze(context.Background(), Request{ObjID: "abc123"})

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if ue.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", ue.StatusCode)
	}
	if ue.Body != `{"detail":"invalid image"}` {
		t.Errorf("body = %q", ue.Body)
	}
}

func TestAnalyzeTransportError(t *testing.T) {
	c := New(config.PredictConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Analyze(context.Background(), Request{ObjID: "abc123"})
	if err == nil {
		t.Fatal("expected error")
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		t.Fatalf("transport failure must not be an UpstreamError: %v", err)
	}
}
