package lineditor

import (
	"bufio"
	"os"
	"testing"
	"time"

	"github.com/chrisvisintin/pyc-go/internal/history"
)

func TestExpandHistoryRecall(t *testing.T) {
	h := history.NewBuffer(10)
	h.Push("git status")
	h.Push("ls -la")
	e := &Editor{hist: h}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"recalls by index", "!{0}", "ls -la"},
		{"recalls older entry", "!{1}", "git status"},
		{"out of range passes through", "!{9}", "!{9}"},
		{"no prefix passes through", "pwd", "pwd"},
		{"unterminated brace passes through", "!{0", "!{0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.expandHistoryRecall(tt.input); got != tt.want {
				t.Errorf("expandHistoryRecall(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInsertAt(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		pos  int
		r    rune
		want string
	}{
		{"insert at start", "bc", 0, 'a', "abc"},
		{"insert at end", "ab", 2, 'c', "abc"},
		{"insert in middle", "ac", 1, 'b', "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insertAt([]rune(tt.buf), tt.pos, tt.r)
			if string(got) != tt.want {
				t.Errorf("insertAt(%q, %d, %q) = %q, want %q", tt.buf, tt.pos, tt.r, string(got), tt.want)
			}
		})
	}
}

func TestUtf8SeqLen(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want int
	}{
		{"ascii", 'a', 1},
		{"two byte lead", 0xD0, 2},
		{"three byte lead", 0xE2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utf8SeqLen(tt.b); got != tt.want {
				t.Errorf("utf8SeqLen(%x) = %d, want %d", tt.b, got, tt.want)
			}
		})
	}
}

func TestPollKeyTimesOutWithoutError(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()
	e := &Editor{in: r, reader: bufio.NewReader(r)}

	_, ok, err := e.PollKey(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("PollKey() error = %v, want nil", err)
	}
	if ok {
		t.Error("ok = true, want false on an empty pipe")
	}
}

func TestPollKeyReportsCtrlC(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	e := &Editor{in: r, reader: bufio.NewReader(r)}

	if _, err := w.Write([]byte{ctrlC}); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()

	ev, ok, err := e.PollKey(100 * time.Millisecond)
	if err != nil {
		t.Fatalf("PollKey() error = %v, want nil", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if !ev.CtrlC {
		t.Errorf("ev.CtrlC = false, want true")
	}
}

func TestFirstHistoryMatch(t *testing.T) {
	h := history.NewBuffer(10)
	h.Push("git status")
	h.Push("git commit")
	e := &Editor{hist: h}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"matches most recent", "git", "git commit"},
		{"no match", "docker", ""},
		{"empty query", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.firstHistoryMatch(tt.query); got != tt.want {
				t.Errorf("firstHistoryMatch(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
