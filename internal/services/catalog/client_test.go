package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"repkit/internal/services"
)

func TestFetchMuscleGroupsPagination(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/muscle/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		offset := r.URL.Query().Get("offset")
		var payload map[string]any
		switch offset {
		case "0":
			payload = map[string]any{
				"count": 3,
				"next":  server.URL + "/muscle/?limit=2&offset=2",
				"results": []any{
					map[string]any{"id": 1, "name": "Pectoralis major", "name_en": "Chest", "is_front": true},
					map[string]any{"id": 4, "name": "Anterior deltoid", "name_en": "Shoulders", "is_front": true},
				},
			}
		default:
			payload = map[string]any{
				"count": 3,
				"next":  "",
				"results": []any{
					map[string]any{"id": 9, "name": "Pectoralis minor", "name_en": "Chest", "is_front": true},
				},
			}
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client, err := New(server.URL, WithPageSize(2))
	if err != nil {
		t.Fatal(err)
	}
	groups, err := client.FetchMuscleGroups(context.Background())
	if err != nil {
		t.Fatalf("FetchMuscleGroups: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (chest rows merged)", len(groups))
	}
	chest := groups[0]
	if chest.ID != "chest" || chest.Label != "Chest" {
		t.Errorf("first group = %+v", chest)
	}
	if len(chest.APIIDs) != 2 || chest.APIIDs[0] != 1 || chest.APIIDs[1] != 9 {
		t.Errorf("chest APIIDs = %v, want [1 9]", chest.APIIDs)
	}
	if groups[1].ID != "shoulders" {
		t.Errorf("second group = %+v", groups[1])
	}
}

func TestFetchMuscleGroupsFallsBackToLatinName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count": 1,
			"next":  "",
			"results": []any{
				map[string]any{"id": 7, "name": "Soleus", "name_en": ""},
			},
		})
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	groups, err := client.FetchMuscleGroups(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || groups[0].Label != "Soleus" {
		t.Errorf("groups = %+v", groups)
	}
}

func TestFetchMuscleGroupsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.FetchMuscleGroups(context.Background())
	if !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("err = %v, want upstream classification", err)
	}
}

func TestFetchMuscleGroupsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be issued after cancellation")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.FetchMuscleGroups(ctx)
	if !services.IsCancellation(err) {
		t.Fatalf("err = %v, want cancellation", err)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New("   "); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}
