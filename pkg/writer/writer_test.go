package writer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nuxtgen/pkg/render"
	"github.com/goliatone/go-nuxtgen/pkg/writer"
)

func sampleFiles() []render.File {
	return []render.File{
		{Name: "app-config", Filename: "app.config.mjs", Contents: "export default {}", Write: true},
		{Name: "vue-shim", Filename: "types/vue-shim.d.ts", Contents: "declare module '*.vue' {}", Write: true},
		{Name: "css", Filename: "css.mjs", Contents: "import \"main.css\""},
	}
}

func TestWrite_PersistsFlaggedFiles(t *testing.T) {
	dir := t.TempDir()
	result, err := writer.New().Write(context.Background(), dir, sampleFiles())
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	want := writer.Result{
		Written: []string{"app.config.mjs", "types/vue-shim.d.ts"},
		Skipped: []string{"css.mjs"},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(filepath.Join(dir, "types", "vue-shim.d.ts"))
	if err != nil {
		t.Fatalf("read nested file: %v", err)
	}
	if string(data) != "declare module '*.vue' {}" {
		t.Fatalf("unexpected contents %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "css.mjs")); !os.IsNotExist(err) {
		t.Fatalf("virtual file should not be written, stat err = %v", err)
	}
}

func TestWrite_SkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	w := writer.New(writer.WithWriteAll(true))
	if _, err := w.Write(context.Background(), dir, sampleFiles()); err != nil {
		t.Fatalf("first write: %v", err)
	}

	files := sampleFiles()
	files[2].Contents = "import \"other.css\""
	result, err := w.Write(context.Background(), dir, files)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	want := writer.Result{
		Written:   []string{"css.mjs"},
		Unchanged: []string{"app.config.mjs", "types/vue-shim.d.ts"},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_DryRunLeavesDiskUntouched(t *testing.T) {
	dir := t.TempDir()
	handler := memory.New()
	w := writer.New(
		writer.WithDryRun(true),
		writer.WithLogger(&log.Logger{Handler: handler, Level: log.InfoLevel}),
	)

	result, err := w.Write(context.Background(), dir, sampleFiles())
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if len(result.Written) != 2 {
		t.Fatalf("expected 2 reported writes, got %v", result.Written)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry run created %d entries", len(entries))
	}
	if len(handler.Entries) != 2 || handler.Entries[0].Message != "would write" {
		t.Fatalf("unexpected log entries: %+v", handler.Entries)
	}
}

func TestWrite_RejectsEscapingFilenames(t *testing.T) {
	files := []render.File{{Name: "bad", Filename: "../outside.mjs", Write: true}}
	if _, err := writer.New().Write(context.Background(), t.TempDir(), files); err == nil {
		t.Fatalf("expected error for escaping filename")
	}
}

func TestWrite_RequiresDirectory(t *testing.T) {
	if _, err := writer.New().Write(context.Background(), "", sampleFiles()); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}

func TestMemory(t *testing.T) {
	mem := writer.Memory(sampleFiles())
	want := map[string]string{"css.mjs": "import \"main.css\""}
	if diff := cmp.Diff(want, mem); diff != "" {
		t.Fatalf("memory mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"css.mjs"}, writer.Filenames(mem)); diff != "" {
		t.Fatalf("filenames mismatch (-want +got):\n%s", diff)
	}
}
