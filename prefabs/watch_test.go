package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want ChangeKind
	}{
		{"levels/meadow.yaml", ChangeLevel},
		{"prefabs/player.yaml", ChangePrefab},
		{"prefabs/scripts/pace.tengo", ChangeScript},
		{"prefabs/player.yaml~", ChangeOther},
		{"levels/.meadow.yaml.swp", ChangeOther},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Fatalf("Classify(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewWatcherNothingToWatch(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrNothingToWatch) {
		t.Fatalf("err = %v, want ErrNothingToWatch", err)
	}
}

func TestWatcherBatchesWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "levels")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	name := filepath.Join(dir, "meadow.yaml")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(name, []byte("width: 100\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Changes:
		if len(c.Paths) != 1 || c.Paths[0] != name {
			t.Fatalf("paths = %v, want [%s]", c.Paths, name)
		}
		if !c.Has(ChangeLevel) || c.Has(ChangeScript) {
			t.Fatalf("unexpected kinds in %v", c.Paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported")
	}
}
