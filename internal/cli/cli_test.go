package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shigedangao/simmer/internal/domain"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	stemExplain = false
	jsonOutput = false
	cfgFile = ""
	rootDir = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("simmer %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestStemCommand(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "--dir", dir, "stem", "caresses", "Ponies", "hopping")

	want := "caress\nponi\nhop\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestStemCommand_Explain(t *testing.T) {
	out := execute(t, "--dir", t.TempDir(), "stem", "--explain", "hopping")

	if !strings.Contains(out, "[CVCVC] m=2") {
		t.Errorf("missing pattern and measure in %q", out)
	}
	if !strings.Contains(out, "=> hop") {
		t.Errorf("missing final stem in %q", out)
	}
}

func TestStemCommand_ExplainJSONKeepsZeroMeasure(t *testing.T) {
	out := execute(t, "--dir", t.TempDir(), "--json", "stem", "--explain", "tree")

	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %v", results)
	}
	m, ok := results[0]["measure"]
	if !ok || m.(float64) != 0 {
		t.Errorf("expected measure 0 in output, got %v", results[0])
	}
}

func TestSentenceCommand(t *testing.T) {
	out := execute(t, "--dir", t.TempDir(), "sentence", "Alex was an excellent dancer.")

	if strings.TrimSpace(out) != "alex wa an excel dancer" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCompareCommand_JSON(t *testing.T) {
	out := execute(t, "--dir", t.TempDir(), "--json", "compare", "plays")

	var results []domain.Comparison
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(results) != 1 || results[0].Porter != "plai" || results[0].Snowball != "play" || results[0].Agree {
		t.Errorf("unexpected comparison: %+v", results)
	}
}

func TestIndexThenLookup(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("Connected, connecting and connections."), 0644); err != nil {
		t.Fatal(err)
	}

	execute(t, "--dir", dir, "--json", "index")

	out := execute(t, "--dir", dir, "--json", "lookup", "connect")
	var group domain.StemGroup
	if err := json.Unmarshal([]byte(out), &group); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if group.Stem != "connect" || group.Total != 3 || group.Forms["connections"] != 1 {
		t.Errorf("unexpected group: %+v", group)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "<1s"},
		{42, "42s"},
		{125, "2m5s"},
		{3720, "1h2m"},
	}
	for _, tt := range tests {
		if got := formatDuration(time.Duration(tt.secs) * time.Second); got != tt.want {
			t.Errorf("formatDuration(%ds) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
