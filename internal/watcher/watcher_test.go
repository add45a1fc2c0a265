package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

// collector records ingested paths.
type collector struct {
	mu    sync.Mutex
	paths []string
}

func (c *collector) ingest(_ context.Context, path string) {
	c.mu.Lock()
	c.paths = append(c.paths, path)
	c.mu.Unlock()
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]string(nil), c.paths...)
	sort.Strings(out)
	return out
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func hasSuffix(paths []string, suffix string) bool {
	for _, p := range paths {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}

func TestWatcher_AddRemoveDirectories(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}
	w := New(nil, nil, true, c.ingest)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := w.AddDirectory(dir, false); err != nil {
		t.Fatal(err)
	}
	if err := w.AddDirectory(dir, false); err != nil {
		t.Fatal(err)
	}
	dirs := w.Directories()
	if len(dirs) != 1 || filepath.Clean(dirs[0]) != filepath.Clean(dir) {
		t.Errorf("Directories() = %v", dirs)
	}

	if err := w.RemoveDirectory(dir); err != nil {
		t.Fatal(err)
	}
	if len(w.Directories()) != 0 {
		t.Errorf("after remove: %v", w.Directories())
	}
	if err := w.RemoveDirectory(dir); err != nil {
		t.Errorf("removing an unknown directory should be a no-op: %v", err)
	}
}

func TestWatcher_AddDirectory_syncExisting(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(filepath.Join(dir, "ct.dcm"), "x"); err != nil {
		t.Fatal(err)
	}
	c := &collector{}
	w := New(nil, []string{".dcm"}, true, c.ingest, WithSettleDelay(20*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := w.AddDirectory(dir, true); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, func() bool { return hasSuffix(c.snapshot(), "ct.dcm") }) {
		t.Errorf("existing file not ingested: %v", c.snapshot())
	}
}

func TestWatcher_SettleAndExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	c := &collector{}
	w := New([]string{dir}, []string{".dcm"}, true, c.ingest, WithSettleDelay(50*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := writeFile(filepath.Join(sub, "mr.dcm"), "first"); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(sub, "notes.txt"), "skip"); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, func() bool { return hasSuffix(c.snapshot(), "mr.dcm") }) {
		t.Fatalf("expected mr.dcm to be ingested, got %v", c.snapshot())
	}
	time.Sleep(150 * time.Millisecond)
	got := c.snapshot()
	if hasSuffix(got, "notes.txt") {
		t.Errorf("notes.txt should be filtered out: %v", got)
	}
	if len(got) != 1 {
		t.Errorf("repeated writes should settle into one ingest, got %v", got)
	}
}

func TestMatchExtension(t *testing.T) {
	tests := []struct {
		path       string
		extensions []string
		want       bool
	}{
		{"/a/b.dcm", []string{".dcm"}, true},
		{"/a/b.DCM", []string{"dcm"}, true},
		{"/a/b.txt", []string{".dcm"}, false},
		{"/a/IM000001", nil, true},
		{"/a/IM000001", []string{}, true},
		{"/a/IM000001", []string{".dcm"}, false},
	}
	for _, tt := range tests {
		got := matchExtension(tt.path, tt.extensions)
		if got != tt.want {
			t.Errorf("matchExtension(%q, %v) = %v, want %v", tt.path, tt.extensions, got, tt.want)
		}
	}
}

func TestInDir(t *testing.T) {
	tests := []struct {
		dir  string
		path string
		want bool
	}{
		{"/tmp/a", "/tmp/a", true},
		{"/tmp/a", "/tmp/a/b.dcm", true},
		{"/tmp/a", "/tmp/b", false},
		{"/tmp/a", "/tmp/a/../b", false},
		{"/tmp/a", "/tmp/ab", false},
	}
	for _, tt := range tests {
		got := inDir(tt.dir, tt.path)
		if got != tt.want {
			t.Errorf("inDir(%q, %q) = %v, want %v", tt.dir, tt.path, got, tt.want)
		}
	}
}

func TestWatcher_SyncExistingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(filepath.Join(dir, "a.dcm"), "x"); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(dir, "ignore.xyz"), "x"); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(dir, "nested", "b.dcm"), "x"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		recursive bool
		want      int
	}{
		{"recursive", true, 2},
		{"flat", false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &collector{}
			w := New([]string{dir}, []string{".dcm"}, tt.recursive, c.ingest)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if err := w.Start(ctx); err != nil {
				t.Fatal(err)
			}
			defer w.Stop()
			w.SyncExistingFiles()
			got := c.snapshot()
			if len(got) != tt.want || !hasSuffix(got, "a.dcm") {
				t.Errorf("ingested %v, want %d files including a.dcm", got, tt.want)
			}
		})
	}
}

func TestWatcher_Start_createsMissingRootDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "watch", "me")
	w := New([]string{root}, nil, true, (&collector{}).ingest)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	if _, err := os.Stat(root); err != nil {
		t.Errorf("root directory should exist after Start: %v", err)
	}
}

func TestWatcher_NewDirectory_recursiveSubfolders(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}
	w := New([]string{dir}, []string{".dcm"}, true, c.ingest, WithSettleDelay(50*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	nested := filepath.Join(dir, "study", "series")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(nested, "deep.dcm"), "deep"); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, func() bool { return hasSuffix(c.snapshot(), "deep.dcm") }) {
		t.Errorf("expected deep.dcm to be ingested, got %v", c.snapshot())
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := New([]string{t.TempDir()}, nil, true, (&collector{}).ingest)
	w.Stop()
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
	if err := w.AddDirectory(t.TempDir(), false); err != nil {
		t.Errorf("AddDirectory after Stop: %v", err)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
