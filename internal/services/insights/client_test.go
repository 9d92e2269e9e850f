package insights

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"repkit/internal/services"
)

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	payload := map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{"content": content},
			},
		},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return encoded
}

func TestGenerateExerciseInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = w.Write(completionBody(t, `{"description":"Press with control.","sets":"3","reps":"8-12","tempo":"2-0-2","rest":"90s","equipment":"barbell","cues":["brace"],"benefits":["pressing strength"],"safety_notes":"Use a spotter."}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	got, err := client.GenerateExerciseInsights(context.Background(), ExerciseRequest{
		ExerciseName: "Incline Bench Press",
		MuscleLabel:  "Chest",
		Instructions: []string{"Press the bar."},
	})
	if err != nil {
		t.Fatalf("GenerateExerciseInsights: %v", err)
	}
	if got.Description != "Press with control." || got.Sets != "3" {
		t.Errorf("unexpected insights: %+v", got)
	}
}

func TestGenerateSectionOverviewCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(completionBody(t, "```json\n{\"focus\":\"pressing\",\"adaptation_goal\":\"hypertrophy\",\"warmup_tip\":\"band pull-aparts\"}\n```"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	got, err := client.GenerateSectionOverview(context.Background(), OverviewRequest{
		MuscleLabel:   "Chest",
		ExerciseNames: []string{"Push-Up"},
	})
	if err != nil {
		t.Fatalf("GenerateSectionOverview: %v", err)
	}
	if got.Focus != "pressing" {
		t.Errorf("overview = %+v", got)
	}
}

func TestGenerateRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(completionBody(t, `{"focus":"f","adaptation_goal":"a","warmup_tip":"w"}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"},
		WithRetryBackoff(time.Millisecond, time.Millisecond))
	_, err := client.GenerateSectionOverview(context.Background(), OverviewRequest{
		MuscleLabel:   "Back",
		ExerciseNames: []string{"Row"},
	})
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestGenerateDoesNotRetryRejections(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad", BaseURL: server.URL, Model: "demo"})
	_, err := client.GenerateSectionOverview(context.Background(), OverviewRequest{
		MuscleLabel:   "Back",
		ExerciseNames: []string{"Row"},
	})
	if !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("err = %v, want upstream classification", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	_, err := client.GenerateExerciseInsights(ctx, ExerciseRequest{ExerciseName: "Push-Up"})
	if !services.IsCancellation(err) {
		t.Fatalf("err = %v, want cancellation", err)
	}
}

func TestGenerateMissingAPIKey(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.GenerateExerciseInsights(context.Background(), ExerciseRequest{ExerciseName: "Push-Up"})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestDecodeJSONPayload(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"direct", `{"focus":"x"}`, false},
		{"fenced", "```json\n{\"focus\":\"x\"}\n```", false},
		{"prose wrapped", "Here you go: {\"focus\":\"x\"} enjoy", false},
		{"empty", "  ", true},
		{"garbage", "not json at all", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out SectionOverview
			err := DecodeJSONPayload(tt.content, &out)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeJSONPayload(%q) err = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
		})
	}
}
