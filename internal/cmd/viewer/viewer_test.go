package viewer

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfigRequiresAssets(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected missing assets error")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-assets", "/srv/mmd"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.AssetDir != "/srv/mmd" {
		t.Fatalf("AssetDir = %q, want %q", cfg.AssetDir, "/srv/mmd")
	}
	if !cfg.Stage {
		t.Fatal("Stage = false, want true")
	}
	if cfg.Progress != "high-water" {
		t.Fatalf("Progress = %q, want %q", cfg.Progress, "high-water")
	}
	if cfg.Duration != 10*time.Second {
		t.Fatalf("Duration = %v, want %v", cfg.Duration, 10*time.Second)
	}
}

func TestParseConfigOverrideDuration(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-asset-url", "http://localhost:3000", "-duration", "2s", "-stage=false"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Duration != 2*time.Second || cfg.Stage {
		t.Fatalf("config = %+v", cfg)
	}
}

func writeAssets(t *testing.T, stage bool) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Towa.bpmx":   "BPMX model",
		"dance.bvmd":  "BVMD dance",
		"camera.bvmd": "BVMD camera",
	}
	if stage {
		files["stage.bpmx"] = "BPMX stage"
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestRunPrintsProgressAndFinalState(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := Config{AssetDir: writeAssets(t, true), Stage: true, Progress: "high-water", Duration: 20 * time.Millisecond}
	if err := run(context.Background(), cfg, &out, log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "100% ") {
		t.Fatalf("output missing completed progress: %q", got)
	}
	if !strings.Contains(got, "state=running") {
		t.Fatalf("output missing running state: %q", got)
	}
}

func TestRunFailsOnMissingModel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{AssetDir: dir, Progress: "slice", Duration: time.Millisecond}
	if err := run(context.Background(), cfg, io.Discard, log.New(io.Discard, "", 0)); err == nil {
		t.Fatal("expected load error")
	}
}

func TestRunCancelledContextReturnsNil(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := Config{AssetDir: writeAssets(t, false), Duration: time.Hour}
	if err := run(ctx, cfg, io.Discard, log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("run() error = %v, want nil", err)
	}
}
