package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const projectYAML = `app:
  mainComponent: ./app.vue
  rootComponent: ./root.vue
  errorComponent: ./error.vue
  plugins:
    - ./plugins/router.ts
  layouts:
    default: ./layouts/default.vue
options:
  css: [./assets/main.css]
`

func writeProject(t *testing.T, contents string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	config := filepath.Join(dir, "nuxtgen.yaml")
	if err := os.WriteFile(config, []byte(contents), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}
	return dir, config
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type fakePrompter struct {
	picked []int
	seen   SelectConfig
}

func (f *fakePrompter) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	f.seen = cfg
	return f.picked, nil
}

func TestList(t *testing.T) {
	stdout, _, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 17 {
		t.Fatalf("expected header plus 16 templates, got %d lines:\n%s", len(lines), stdout)
	}
	if !strings.HasPrefix(lines[1], "vue-shim") || !strings.Contains(lines[1], "types/vue-shim.d.ts") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestGenerate_WritesPersistedTemplates(t *testing.T) {
	dir, config := writeProject(t, projectYAML)

	stdout, _, err := execute(t, "generate", "--config", config)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	buildDir := filepath.Join(dir, ".nuxt")
	want := "wrote 1 file(s) to " + buildDir + ", 0 unchanged, 15 virtual\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(buildDir, "app.config.mjs")); err != nil {
		t.Fatalf("expected app.config.mjs: %v", err)
	}

	stdout, _, err = execute(t, "generate", "--config", config)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if !strings.Contains(stdout, "wrote 0 file(s)") || !strings.Contains(stdout, "1 unchanged") {
		t.Fatalf("expected unchanged rerun, got %q", stdout)
	}
}

func TestGenerate_WriteAllOnlyAndOverrides(t *testing.T) {
	_, config := writeProject(t, projectYAML)
	out := t.TempDir()

	_, _, err := execute(t, "generate",
		"--config", config,
		"--out", out,
		"--write-all",
		"--only", "layouts,css",
		"--set", "options.css=[reset.css]",
		"--concurrency", "4",
		"--banner", "generated by nuxtgen",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "css.mjs"))
	if err != nil {
		t.Fatalf("read css.mjs: %v", err)
	}
	if diff := cmp.Diff("// generated by nuxtgen\nimport \"reset.css\"", string(data)); diff != "" {
		t.Fatalf("css mismatch (-want +got):\n%s", diff)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read out: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected only the selected templates, got %d entries", len(entries))
	}
}

func TestGenerate_DryRun(t *testing.T) {
	dir, config := writeProject(t, projectYAML)
	stdout, _, err := execute(t, "generate", "--config", config, "--dry-run", "--write-all")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(stdout, "would write 16 file(s)") {
		t.Fatalf("unexpected summary %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, ".nuxt")); !os.IsNotExist(err) {
		t.Fatalf("dry run created the build directory")
	}
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	_, config := writeProject(t, projectYAML)
	_, _, err := execute(t, "generate", "--config", config, "--only", "nope")
	if err == nil || !strings.Contains(err.Error(), `unknown template "nope"`) {
		t.Fatalf("expected unknown template error, got %v", err)
	}
}

func TestGenerate_InvalidLogLevel(t *testing.T) {
	if _, _, err := execute(t, "--log-level", "loud", "list"); err == nil {
		t.Fatalf("expected log level error")
	}
}

func TestGenerate_Interactive(t *testing.T) {
	fake := &fakePrompter{picked: []int{1}}
	restore := newPrompter
	newPrompter = func() Prompter { return fake }
	t.Cleanup(func() { newPrompter = restore })

	_, config := writeProject(t, projectYAML)
	out := t.TempDir()
	if _, _, err := execute(t, "generate", "--config", config, "--out", out, "--write-all", "--interactive", "--only", "css"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(fake.seen.Options) != 16 {
		t.Fatalf("prompt offered %d options", len(fake.seen.Options))
	}
	if diff := cmp.Diff([]int{4}, fake.seen.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(out, "app-component.mjs")); err != nil {
		t.Fatalf("expected picked template on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "css.mjs")); !os.IsNotExist(err) {
		t.Fatalf("unpicked template was written")
	}
}

func TestLint(t *testing.T) {
	_, config := writeProject(t, `app:
  mainComponent: ./app.vue
  plugins:
    - ./plugins/a.ts
    - ./plugins/b.coffee
options:
  modules:
    - meta:
        configKey: orphan
`)

	_, stderr, err := execute(t, "lint", config)
	if err == nil {
		t.Fatalf("expected lint failure")
	}
	for _, fragment := range []string{
		`app.plugins[1] -> extension ".coffee" is not listed in options.extensions`,
		"options.modules[0] -> configKey without meta.name is left out of schema.d.ts",
	} {
		if !strings.Contains(stderr, fragment) {
			t.Fatalf("missing %q in:\n%s", fragment, stderr)
		}
	}
}

func TestLint_DuplicatePluginFailsLoading(t *testing.T) {
	_, config := writeProject(t, "app:\n  mainComponent: ./app.vue\n  plugins:\n    - ./plugins/a.ts\n    - ./plugins/a.ts\n")
	_, _, err := execute(t, "lint", config)
	if err == nil || !strings.Contains(err.Error(), "duplicate plugin") {
		t.Fatalf("expected duplicate plugin error, got %v", err)
	}
}

func TestLint_Clean(t *testing.T) {
	_, config := writeProject(t, projectYAML)
	if _, stderr, err := execute(t, "lint", config); err != nil {
		t.Fatalf("lint: %v\n%s", err, stderr)
	}
}
