package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scenecut/config"
	"scenecut/segmenter"
	"scenecut/store"
)

func newTestServer(t *testing.T) (*httptest.Server, config.Settings) {
	t.Helper()
	settings := config.FromOutputDir(t.TempDir())
	if err := settings.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	e := New(settings, store.New(settings.SegmenterDir))
	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return ts, settings
}

const runBody = `{
	"source_folder": "campfire",
	"style": "storybook",
	"alignment": [
		{"word": "The", "begin": 0, "end": 0.5},
		{"word": "fire", "begin": 0.5, "end": 1.0},
		{"word": "burned.", "begin": 1.0, "end": 1.7},
		{"word": "Smoke", "begin": 2.9, "end": 3.5},
		{"word": "rose", "begin": 3.5, "end": 4.2},
		{"word": "slowly.", "begin": 4.2, "end": 4.9}
	]
}`

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["output_writable"] != true {
		t.Errorf("output_writable = %v", body["output_writable"])
	}
}

func TestRunSegmenter(t *testing.T) {
	ts, settings := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/segmenter/run", runBody)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		segmenter.Result
		OutputFolder string `json:"output_folder"`
		OutputPath   string `json:"output_path"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Stats.SegmentCount != 2 || body.Stats.FillerCount != 1 {
		t.Errorf("stats = %+v", body.Stats)
	}
	if body.Metadata.SourceFolder != "campfire" || body.Metadata.Style != "storybook" {
		t.Errorf("metadata = %+v", body.Metadata)
	}
	if !strings.HasPrefix(body.OutputFolder, "campfire_") {
		t.Errorf("output folder = %q", body.OutputFolder)
	}
	// Saved by default.
	saved := filepath.Join(settings.SegmenterDir, body.OutputFolder, "segmented.json")
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("result not persisted at %s: %v", saved, err)
	}
}

func TestRunSegmenterNoSave(t *testing.T) {
	ts, settings := newTestServer(t)
	body := strings.TrimSuffix(runBody, "}") + `, "save": false}`
	resp := postJSON(t, ts.URL+"/api/segmenter/run", body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatal(err)
	}
	if _, ok := parsed["output_folder"]; ok {
		t.Errorf("output_folder present on a save=false run")
	}
	entries, _ := os.ReadDir(settings.SegmenterDir)
	if len(entries) != 0 {
		t.Errorf("segmenter dir not empty after save=false run")
	}
}

func TestRunSegmenterConfigOverride(t *testing.T) {
	ts, _ := newTestServer(t)
	body := strings.TrimSuffix(runBody, "}") + `, "config": {"gap_filler": 2.0}, "save": false}`
	resp := postJSON(t, ts.URL+"/api/segmenter/run", body)
	defer resp.Body.Close()

	var parsed struct {
		Config segmenter.Config `json:"config"`
		Stats  segmenter.Stats  `json:"stats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.Config.GapFiller != 2.0 {
		t.Errorf("resolved gap_filler = %v, want 2.0", parsed.Config.GapFiller)
	}
	if parsed.Config.TargetMin != 1.5 {
		t.Errorf("unset fields should keep defaults: %+v", parsed.Config)
	}
	// 1.2s gap is now below the filler threshold.
	if parsed.Stats.FillerCount != 0 {
		t.Errorf("filler count = %d, want 0", parsed.Stats.FillerCount)
	}
}

func TestRunSegmenterMissingAlignment(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/segmenter/run", `{"source_folder": "x"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] == "" {
		t.Errorf("error body missing: %v", body)
	}
}

func TestHistoryAndGet(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/segmenter/run", runBody)
	var run struct {
		OutputFolder string `json:"output_folder"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/api/segmenter/history")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var items []store.RunSummary
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Folder != run.OutputFolder {
		t.Errorf("history = %+v", items)
	}

	resp, err = http.Get(ts.URL + "/api/segmenter/" + run.OutputFolder)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var result segmenter.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Stats.SegmentCount != 2 {
		t.Errorf("stats = %+v", result.Stats)
	}
}

func TestGetUnknownRun(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/segmenter/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestListAlignmentsEmpty(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/alignments")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var items []any
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}
