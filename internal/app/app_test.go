package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/repoforge/forge/internal/ai"
	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/github"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// TestGenerationLog tests append-only ordering and monotonic timestamps.
func TestGenerationLog(t *testing.T) {
	log := NewLog()
	log.Infof("one")
	log.Successf("two")
	log.Warnf("three %d", 3)

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Message != "one" || entries[2].Message != "three 3" {
		t.Errorf("unexpected messages: %+v", entries)
	}
	if entries[0].Severity != SeverityInfo || entries[1].Severity != SeveritySuccess || entries[2].Severity != SeverityWarn {
		t.Errorf("unexpected severities: %+v", entries)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Time.Before(entries[i-1].Time) {
			t.Errorf("timestamps not monotonic: %v before %v", entries[i].Time, entries[i-1].Time)
		}
	}

	// Entries returns a copy.
	entries[0].Message = "mutated"
	if log.Entries()[0].Message != "one" {
		t.Errorf("Entries exposed internal slice")
	}
}

// TestGenerationLog_NilSafe tests that a nil log is usable.
func TestGenerationLog_NilSafe(t *testing.T) {
	var log *GenerationLog
	log.Infof("ignored")
	if log.Entries() != nil {
		t.Errorf("nil log produced entries")
	}
}

// TestDetect_RejectsProse tests inline input validation.
func TestDetect_RejectsProse(t *testing.T) {
	_, err := Detect(context.Background(), DetectOptions{
		RawInput: "just some words about the weather",
		Client:   ai.NewClient(""),
	})

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("error = %v, want *InputError", err)
	}
}

// TestDetect_RepoSummarySkipsCheck tests that fetched-repo input bypasses
// the code-likeness check.
func TestDetect_RepoSummarySkipsCheck(t *testing.T) {
	result, err := Detect(context.Background(), DetectOptions{
		RawInput: "Repository: alice/demo\n\nRoot listing:\n- src/\n- README.md\n",
		FromRepo: true,
		Client:   ai.NewClient(""),
	})
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if result.Source != ai.SourceFallback {
		t.Errorf("keyless detection source = %v, want fallback", result.Source)
	}
}

// TestGenerate_FallbackWithoutKey tests keyless generation with logging.
func TestGenerate_FallbackWithoutKey(t *testing.T) {
	log := NewLog()
	cfg := config.DefaultRepoConfig()
	cfg.Name = "demo-app"

	result, err := Generate(context.Background(), GenerateOptions{
		Config:   cfg,
		RawInput: "const x = 1;",
		Client:   ai.NewClient(""),
		Log:      log,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.Source != ai.SourceFallback {
		t.Errorf("source = %v, want fallback", result.Source)
	}
	if result.FileCount == 0 || len(result.Nodes) == 0 {
		t.Errorf("empty generation result: %+v", result)
	}

	warned := false
	for _, e := range log.Entries() {
		if e.Severity == SeverityWarn {
			warned = true
		}
	}
	if !warned {
		t.Errorf("fallback substitution not logged as warning")
	}
}

// TestGenerate_InvalidConfig tests that validation failures stop the run.
func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := config.DefaultRepoConfig()
	cfg.Name = "Bad Name!"

	_, err := Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Client: ai.NewClient(""),
	})

	var valErr *config.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want *config.ValidationError", err)
	}
}

// TestRefactor_InputValidation tests inline refactor validation.
func TestRefactor_InputValidation(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		instruction string
	}{
		{"empty instruction", "let a;", "  "},
		{"empty content", "", "tidy this up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Refactor(context.Background(), RefactorOptions{
				FileName:    "a.js",
				Content:     tt.content,
				Instruction: tt.instruction,
				Client:      ai.NewClient(""),
			})
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Errorf("error = %v, want *InputError", err)
			}
		})
	}
}

// pushTestServer serves a minimal create+push API; failPush breaks the
// blob-create step.
func pushTestServer(t *testing.T, failPush bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /user/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"full_name":      "alice/demo-app",
			"html_url":       "https://github.com/alice/demo-app",
			"default_branch": "main",
		})
	})
	mux.HandleFunc("GET /repos/alice/demo-app/git/ref/heads/main", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"object": map[string]any{"sha": "head"}})
	})
	mux.HandleFunc("GET /repos/alice/demo-app/git/commits/head", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"tree": map[string]any{"sha": "base"}})
	})
	mux.HandleFunc("POST /repos/alice/demo-app/git/blobs", func(w http.ResponseWriter, r *http.Request) {
		if failPush {
			http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"sha": "blob"})
	})
	mux.HandleFunc("POST /repos/alice/demo-app/git/trees", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"sha": "tree"})
	})
	mux.HandleFunc("POST /repos/alice/demo-app/git/commits", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"sha": "commit"})
	})
	mux.HandleFunc("PATCH /repos/alice/demo-app/git/refs/heads/main", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ref": "refs/heads/main"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// TestCreateAndPush tests the full create-then-push flow.
func TestCreateAndPush(t *testing.T) {
	server := pushTestServer(t, false)
	client := github.NewClient("tok")
	client.APIURL = server.URL

	result, err := CreateAndPush(context.Background(), PushOptions{
		Name:   "demo-app",
		Nodes:  []*tree.Node{tree.File("README.md", "# demo")},
		Client: client,
	})
	if err != nil {
		t.Fatalf("CreateAndPush returned error: %v", err)
	}
	if !result.Pushed || result.CommitSHA != "commit" || result.Repo == nil {
		t.Errorf("unexpected result: %+v", result)
	}
}

// TestCreateAndPush_PartialFailure tests create-succeeded/push-failed: the
// repo handle survives so only the push phase needs retrying.
func TestCreateAndPush_PartialFailure(t *testing.T) {
	server := pushTestServer(t, true)
	client := github.NewClient("tok")
	client.APIURL = server.URL

	result, err := CreateAndPush(context.Background(), PushOptions{
		Name:   "demo-app",
		Nodes:  []*tree.Node{tree.File("README.md", "# demo")},
		Client: client,
	})
	if err == nil {
		t.Fatalf("expected push failure")
	}
	if result == nil || result.Repo == nil {
		t.Fatalf("created repo lost on push failure")
	}
	if result.Pushed {
		t.Errorf("result claims pushed despite failure")
	}
}

// TestCreateAndPush_EmptyTree tests input validation.
func TestCreateAndPush_EmptyTree(t *testing.T) {
	_, err := CreateAndPush(context.Background(), PushOptions{Name: "x", Client: github.NewClient("t")})
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("error = %v, want *InputError", err)
	}
}

// TestWriteTree tests disk materialization with skip and overwrite.
func TestWriteTree(t *testing.T) {
	dir := t.TempDir()
	nodes := []*tree.Node{
		tree.File("README.md", "# one"),
		tree.Folder("src", tree.File("index.js", "x")),
	}

	result, err := WriteTree(context.Background(), dir, nodes, false, NewLog())
	if err != nil {
		t.Fatalf("WriteTree returned error: %v", err)
	}
	if result.FilesCreated != 2 {
		t.Errorf("FilesCreated = %d, want 2", result.FilesCreated)
	}

	content, err := os.ReadFile(filepath.Join(dir, "src", "index.js"))
	if err != nil || string(content) != "x" {
		t.Errorf("nested file wrong: %q, %v", content, err)
	}

	// Second write without overwrite skips everything.
	nodes[0].Content = "# two"
	result, err = WriteTree(context.Background(), dir, nodes, false, NewLog())
	if err != nil {
		t.Fatalf("second WriteTree returned error: %v", err)
	}
	if result.FilesSkipped != 2 || result.FilesCreated != 0 {
		t.Errorf("skip counts wrong: %+v", result)
	}

	// With overwrite the new content lands.
	result, err = WriteTree(context.Background(), dir, nodes, true, NewLog())
	if err != nil {
		t.Fatalf("overwrite WriteTree returned error: %v", err)
	}
	if result.FilesOverwritten != 2 {
		t.Errorf("FilesOverwritten = %d, want 2", result.FilesOverwritten)
	}
	content, _ = os.ReadFile(filepath.Join(dir, "README.md"))
	if string(content) != "# two" {
		t.Errorf("overwrite did not replace content: %q", content)
	}
}

// TestExportZip tests archive export to disk.
func TestExportZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.zip")
	nodes := []*tree.Node{tree.File("README.md", "# demo")}

	if err := ExportZip(path, nodes, NewLog()); err != nil {
		t.Fatalf("ExportZip returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("archive missing or empty: %v", err)
	}
}

// TestExportZip_FailureIsWarning tests that packaging failure is logged as
// a warning and returned without panicking the flow.
func TestExportZip_FailureIsWarning(t *testing.T) {
	log := NewLog()
	err := ExportZip(filepath.Join(t.TempDir(), "no", "such", "dir.zip"),
		[]*tree.Node{tree.File("a", "")}, log)
	if err == nil {
		t.Fatalf("expected error for unwritable path")
	}
	entries := log.Entries()
	if len(entries) == 0 || entries[0].Severity != SeverityWarn {
		t.Errorf("failure not logged as warning: %+v", entries)
	}
}
