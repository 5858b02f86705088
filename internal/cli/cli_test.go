package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeData(t *testing.T, out string) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("output missing data envelope: %s", out)
	}
	return data
}

func TestSectionsList(t *testing.T) {
	out, err := runCmd(t, "sections", "list")
	if err != nil {
		t.Fatalf("sections list: %v", err)
	}
	data := decodeData(t, out)
	sections, ok := data["sections"].([]any)
	if !ok || len(sections) == 0 {
		t.Fatalf("no sections in output: %s", out)
	}
	first, _ := sections[0].(map[string]any)
	if first["id"] == "" || first["title"] == "" {
		t.Errorf("section row missing fields: %v", first)
	}
}

func TestSectionsShow(t *testing.T) {
	out, err := runCmd(t, "sections", "show", "gallery")
	if err != nil {
		t.Fatalf("sections show: %v", err)
	}
	data := decodeData(t, out)
	sec, _ := data["section"].(map[string]any)
	if sec["id"] != "gallery" {
		t.Fatalf("section id = %v", sec["id"])
	}

	if _, err := runCmd(t, "sections", "show", "nope"); err == nil {
		t.Error("unknown section should fail")
	}
}

func TestMemoriesListEmptyStore(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "--data-dir", dir, "memories", "list")
	if err != nil {
		t.Fatalf("memories list: %v", err)
	}
	data := decodeData(t, out)
	if uploads, ok := data["uploads"].([]any); ok && len(uploads) != 0 {
		t.Fatalf("fresh store has uploads: %v", uploads)
	}
}

func TestMemoriesAddAndPending(t *testing.T) {
	dir := t.TempDir()

	// Smallest valid PNG header so content detection sees an image.
	img := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	path := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(path, img, 0o644); err != nil {
		t.Fatal(err)
	}

	// No backend configured: add lands in the local queue and succeeds.
	out, err := runCmd(t, "--data-dir", dir, "memories", "add", path)
	if err != nil {
		t.Fatalf("memories add: %v", err)
	}
	result, _ := decodeData(t, out)["result"].(map[string]any)
	if result["local"] != float64(1) {
		t.Fatalf("result = %v, want 1 local", result)
	}

	out, err = runCmd(t, "--data-dir", dir, "memories", "pending")
	if err != nil {
		t.Fatalf("memories pending: %v", err)
	}
	pending, _ := decodeData(t, out)["pending"].([]any)
	if len(pending) != 1 {
		t.Fatalf("pending = %v, want 1 entry", pending)
	}
}

func TestMemoriesAddRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCmd(t, "--data-dir", dir, "memories", "add", path); err == nil {
		t.Error("non-image file should be rejected")
	}
}

func TestMemoriesSyncUnconfigured(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCmd(t, "--data-dir", dir, "memories", "sync"); err == nil {
		t.Error("sync without a backend should fail")
	}
}

func TestDoctorDemoModeHealthy(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "--data-dir", dir, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	data := decodeData(t, out)
	if data["healthy"] != true {
		t.Fatalf("demo mode should be healthy: %s", out)
	}
}

func TestDocsTopicsAndTopic(t *testing.T) {
	out, err := runCmd(t, "docs")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	topics, _ := decodeData(t, out)["topics"].([]any)
	if len(topics) == 0 {
		t.Fatal("no docs topics")
	}

	out, err = runCmd(t, "docs", "backend", "--raw")
	if err != nil {
		t.Fatalf("docs backend: %v", err)
	}
	if len(out) == 0 {
		t.Error("raw docs output empty")
	}

	if _, err := runCmd(t, "docs", "no-such-topic"); err == nil {
		t.Error("unknown topic should fail")
	}
}
