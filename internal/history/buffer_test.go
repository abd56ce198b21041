package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBufferPushAndAt(t *testing.T) {
	b := NewBuffer(3)
	b.Push("ls")
	b.Push("cd /tmp")
	b.Push("pwd")

	tests := []struct {
		name  string
		index int
		want  string
		ok    bool
	}{
		{"most recent", 0, "pwd", true},
		{"middle", 1, "cd /tmp", true},
		{"oldest", 2, "ls", true},
		{"out of range", 3, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.At(tt.index)
			if ok != tt.ok || got != tt.want {
				t.Errorf("At(%d) = %q,%v want %q,%v", tt.index, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBufferEvictsOldestAtCapacity(t *testing.T) {
	b := NewBuffer(2)
	b.Push("one")
	b.Push("two")
	b.Push("three")

	if got := b.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got, _ := b.At(0); got != "three" {
		t.Errorf("At(0) = %q, want three", got)
	}
	if got, _ := b.At(1); got != "two" {
		t.Errorf("At(1) = %q, want two", got)
	}
}

func TestBufferSearch(t *testing.T) {
	b := NewBuffer(10)
	b.Push("git status")
	b.Push("git commit -m fix")
	b.Push("ls -la")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches two entries", "git", []string{"git commit -m fix", "git status"}},
		{"case insensitive", "LS", []string{"ls -la"}},
		{"no match", "docker", nil},
		{"empty query returns nothing", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Search(tt.query, 0)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Search(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBufferSaveAndLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyc_history")

	b := NewBuffer(10)
	b.Push("ls")
	b.Push("cd /tmp")
	b.Push("pwd")

	if err := b.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	loaded := NewBuffer(10)
	if err := loaded.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if loaded.Len() != b.Len() {
		t.Fatalf("loaded Len() = %d, want %d", loaded.Len(), b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		want, _ := b.At(i)
		got, _ := loaded.At(i)
		if got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestBufferLoadFileMissingIsNotError(t *testing.T) {
	b := NewBuffer(10)
	if err := b.LoadFile(filepath.Join(os.TempDir(), "pyc-history-does-not-exist")); err != nil {
		t.Fatalf("LoadFile() on missing file: error = %v, want nil", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}
