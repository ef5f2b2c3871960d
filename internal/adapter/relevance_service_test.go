package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	m "selectest.dev/pkg/selectest/internal/model"
)

func newTestService(t *testing.T, handler http.HandlerFunc, opts ...HTTPOption) *HTTPRelevanceService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := ServiceConfig{URL: server.URL + "/", Project: "mongodb-mongo-master", AuthUser: "ci", AuthToken: "secret"}
	opts = append([]HTTPOption{WithRetryWait(time.Millisecond, 5*time.Millisecond)}, opts...)

	return NewHTTPRelevanceService(config, opts...)
}

func TestHTTPRelevanceService_GetTestMappings(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/mongodb-mongo-master/test-mappings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		query := r.URL.Query()
		if got := query.Get("threshold"); got != "0.1" {
			t.Errorf("threshold = %q, want 0.1", got)
		}

		if got := query.Get("changed_files"); got != "src/a.cpp,src/b.cpp" {
			t.Errorf("changed_files = %q", got)
		}

		if cookie, err := r.Cookie("auth_user"); err != nil || cookie.Value != "ci" {
			t.Errorf("auth_user cookie missing: %v", err)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"test_mappings": []map[string]any{{
				"source_file":            "src/a.cpp",
				"source_file_seen_count": 3,
				"test_files": []map[string]any{
					{"name": "jstests/core/a.js", "test_file_seen_count": 2},
				},
			}},
		})
	})

	mappings, err := service.GetTestMappings(context.Background(), 0.1, m.NewChangedFiles("src/b.cpp", "src/a.cpp"))
	if err != nil {
		t.Fatalf("GetTestMappings() error = %v", err)
	}

	if len(mappings) != 1 || mappings[0].SourceFile != "src/a.cpp" || mappings[0].SourceFileSeenCount != 3 {
		t.Fatalf("GetTestMappings() = %+v", mappings)
	}

	if len(mappings[0].TestFiles) != 1 || mappings[0].TestFiles[0].Name != "jstests/core/a.js" {
		t.Fatalf("unexpected test files %+v", mappings[0].TestFiles)
	}
}

func TestHTTPRelevanceService_GetTaskMappings(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/task-mappings") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		_, _ = w.Write([]byte(`{"task_mappings":[{"source_file":"src/a.cpp","tasks":[{"name":"jsCore","variant":"v","flip_count":5}]}]}`))
	})

	mappings, err := service.GetTaskMappings(context.Background(), 0.1, m.NewChangedFiles("src/a.cpp"))
	if err != nil {
		t.Fatalf("GetTaskMappings() error = %v", err)
	}

	if len(mappings) != 1 || len(mappings[0].Tasks) != 1 {
		t.Fatalf("GetTaskMappings() = %+v", mappings)
	}

	if got := mappings[0].Tasks[0]; got.Name != "jsCore" || got.FlipCount != 5 {
		t.Fatalf("unexpected task %+v", got)
	}
}

func TestHTTPRelevanceService_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	service := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write([]byte(`{"task_mappings":[]}`))
	}, WithRetryMax(3))

	if _, err := service.GetTaskMappings(context.Background(), 0.1, m.NewChangedFiles("a.cpp")); err != nil {
		t.Fatalf("GetTaskMappings() error = %v", err)
	}

	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestHTTPRelevanceService_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error after retries",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"test_mappings":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, tt.handler, WithRetryMax(1), WithTimeout(5*time.Second))

			if _, err := service.GetTestMappings(context.Background(), 0.1, m.NewChangedFiles("a.cpp")); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadServiceConfig(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "service.yml")
	writeFixture(t, valid, "url: https://selected-tests.example.com\nproject: mongodb-mongo-master\nauth_user: ci\nauth_token: secret\n")

	config, err := LoadServiceConfig(m.Path(valid))
	if err != nil {
		t.Fatalf("LoadServiceConfig() error = %v", err)
	}

	want := ServiceConfig{URL: "https://selected-tests.example.com", Project: "mongodb-mongo-master", AuthUser: "ci", AuthToken: "secret"}
	if config != want {
		t.Fatalf("LoadServiceConfig() = %+v, want %+v", config, want)
	}

	incomplete := filepath.Join(dir, "incomplete.yml")
	writeFixture(t, incomplete, "project: mongodb-mongo-master\n")

	if _, err := LoadServiceConfig(m.Path(incomplete)); err == nil {
		t.Fatal("expected an error for a config without url")
	}

	if _, err := LoadServiceConfig(m.Path(filepath.Join(dir, "missing.yml"))); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
