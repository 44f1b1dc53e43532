package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsfmt/jsfmt/internal/options"
)

func TestDefaultConfigMergeIsNoOp(t *testing.T) {
	base := options.Default()
	merged := DefaultConfig().Merge(base)
	if merged != base {
		t.Errorf("Merge(DefaultConfig(), base) = %+v, want unchanged %+v", merged, base)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")

	yaml := `printWidth: 100
singleQuote: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	merged := cfg.Merge(options.Default())
	if merged.PrintWidth != 100 {
		t.Errorf("PrintWidth: got %d, want 100", merged.PrintWidth)
	}
	if !merged.SingleQuote {
		t.Error("SingleQuote: got false, want true")
	}
	// Unspecified fields retain defaults.
	if merged.TabWidth != options.Default().TabWidth {
		t.Errorf("TabWidth: got %d, want default %d", merged.TabWidth, options.Default().TabWidth)
	}
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(origWd); err != nil {
			t.Fatal(err)
		}
	}()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	merged := cfg.Merge(options.Default())
	if merged != options.Default() {
		t.Errorf("expected default options, got %+v", merged)
	}
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := []byte("printWidth: 100\n")

	for _, name := range []string{".jsfmtrc.yml", ".jsfmtrc.yaml", "jsfmt.yml", "jsfmt.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := Discover(dir)
	want := filepath.Join(dir, ".jsfmtrc.yml")
	if got != want {
		t.Errorf("Discover = %q, want %q", got, want)
	}

	os.Remove(filepath.Join(dir, ".jsfmtrc.yml"))
	got = Discover(dir)
	want = filepath.Join(dir, ".jsfmtrc.yaml")
	if got != want {
		t.Errorf("after removing .jsfmtrc.yml: Discover = %q, want %q", got, want)
	}

	os.Remove(filepath.Join(dir, ".jsfmtrc.yaml"))
	got = Discover(dir)
	want = filepath.Join(dir, "jsfmt.yml")
	if got != want {
		t.Errorf("after removing .jsfmtrc.yaml: Discover = %q, want %q", got, want)
	}

	os.Remove(filepath.Join(dir, "jsfmt.yml"))
	got = Discover(dir)
	want = filepath.Join(dir, "jsfmt.yaml")
	if got != want {
		t.Errorf("after removing jsfmt.yml: Discover = %q, want %q", got, want)
	}
}

func TestDiscoverNoFiles(t *testing.T) {
	dir := t.TempDir()
	got := Discover(dir)
	if got != "" {
		t.Errorf("Discover in empty dir: got %q, want empty string", got)
	}
}

func TestLoadPartialYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")

	yaml := `useTabs: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	merged := cfg.Merge(options.Default())
	if !merged.UseTabs {
		t.Error("UseTabs: got false, want true")
	}
	if merged.PrintWidth != options.Default().PrintWidth {
		t.Errorf("PrintWidth: got %d, want default %d", merged.PrintWidth, options.Default().PrintWidth)
	}
	if merged.Semi != options.Default().Semi {
		t.Errorf("Semi: got %v, want default %v", merged.Semi, options.Default().Semi)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	if err := os.WriteFile(path, []byte("{{{{not valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	if err == nil {
		t.Error("expected error for missing explicit path, got nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	merged := cfg.Merge(options.Default())
	if merged != options.Default() {
		t.Errorf("expected default options for empty file, got %+v", merged)
	}
}

func TestLoadTrailingCommaAndParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tc.yml")

	yaml := `trailingComma: all
parser: jsfmt
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	merged := cfg.Merge(options.Default())
	if merged.TrailingComma != options.TrailingCommaAll {
		t.Errorf("TrailingComma: got %q, want %q", merged.TrailingComma, options.TrailingCommaAll)
	}
	if merged.Parser != options.DefaultParser {
		t.Errorf("Parser: got %q, want %q", merged.Parser, options.DefaultParser)
	}
}
