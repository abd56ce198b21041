package shellbridge

import (
	"os"
	"testing"
	"time"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantStatus  int
		wantWorkdir string
		wantUUID    string
		wantBad     bool
	}{
		{
			name:        "well formed",
			payload:     "0;/home/user;1234-uuid",
			wantStatus:  0,
			wantWorkdir: "/home/user",
			wantUUID:    "1234-uuid",
		},
		{
			name:        "nonzero exit status",
			payload:     "127;/tmp;abcd",
			wantStatus:  127,
			wantWorkdir: "/tmp",
			wantUUID:    "abcd",
		},
		{
			name:    "missing field",
			payload: "0;/tmp",
			wantBad: true,
		},
		{
			name:    "non numeric status",
			payload: "oops;/tmp;abcd",
			wantBad: true,
		},
		{
			name:        "cwd containing semicolons splits from the right",
			payload:     "0;/tmp/a;b;1234-uuid",
			wantStatus:  0,
			wantWorkdir: "/tmp/a;b",
			wantUUID:    "1234-uuid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, workdir, id, malformed := parsePayload(tt.payload)
			if malformed != tt.wantBad {
				t.Fatalf("malformed = %v, want %v", malformed, tt.wantBad)
			}
			if tt.wantBad {
				return
			}
			if status != tt.wantStatus || workdir != tt.wantWorkdir || id != tt.wantUUID {
				t.Errorf("parsePayload(%q) = %d,%q,%q; want %d,%q,%q",
					tt.payload, status, workdir, id, tt.wantStatus, tt.wantWorkdir, tt.wantUUID)
			}
		})
	}
}

func TestParsePayloadMalformedStillReportsUUID(t *testing.T) {
	status, workdir, id, malformed := parsePayload("oops;/tmp;abcd")
	if !malformed {
		t.Fatalf("malformed = false, want true")
	}
	if id != "abcd" {
		t.Errorf("id = %q, want %q (uuid must be recoverable even when the rest is corrupt)", id, "abcd")
	}
	if status != 0 || workdir != "/tmp" {
		t.Errorf("status,workdir = %d,%q; want 0,%q", status, workdir, "/tmp")
	}
}

func TestBridgeFrame(t *testing.T) {
	const id = "sentinel-uuid"

	tests := []struct {
		name        string
		chunk       string
		wantVisible string
		wantIdle    bool
	}{
		{
			name:        "plain output without sentinel",
			chunk:       "hello world\n",
			wantVisible: "hello world\n",
		},
		{
			name:        "complete sentinel frame consumed",
			chunk:       "output\n" + "\x02" + "0;/root;" + id + "\x03" + "trailing",
			wantVisible: "output\ntrailing",
			wantIdle:    true,
		},
		{
			name:        "mismatched uuid passes through as output",
			chunk:       "\x02" + "0;/root;not-our-uuid" + "\x03",
			wantVisible: "\x020;/root;not-our-uuid\x03",
		},
		{
			name:        "cwd containing semicolons still consumed",
			chunk:       "output\n" + "\x02" + "0;/tmp/a;b;" + id + "\x03" + "trailing",
			wantVisible: "output\ntrailing",
			wantIdle:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bridge{uuid: id, state: Running, startTime: time.Now()}
			visible, idle := b.frame(tt.chunk)
			if visible != tt.wantVisible {
				t.Errorf("frame(%q) visible = %q, want %q", tt.chunk, visible, tt.wantVisible)
			}
			if idle != tt.wantIdle {
				t.Errorf("frame(%q) idle = %v, want %v", tt.chunk, idle, tt.wantIdle)
			}
		})
	}
}

func TestBridgeFrameMalformedMatchingUUIDForcesIdle(t *testing.T) {
	const id = "sentinel-uuid"
	b := &Bridge{uuid: id, state: Running, startTime: time.Now()}

	visible, idle := b.frame("output\n" + "\x02" + "oops;/tmp;" + id + "\x03" + "trailing")
	if visible != "output\ntrailing" {
		t.Errorf("visible = %q, want %q", visible, "output\ntrailing")
	}
	if !idle {
		t.Fatal("idle = false, want true: a matched-but-corrupt sentinel must still force Idle to avoid a hang")
	}
	if b.state != Idle {
		t.Errorf("state = %v, want Idle", b.state)
	}
}

func TestBridgeFrameWorkDirContainingSemicolon(t *testing.T) {
	const id = "sentinel-uuid"
	b := &Bridge{uuid: id, state: Running, startTime: time.Now()}

	_, idle := b.frame("\x02" + "0;/tmp/a;b;" + id + "\x03")
	if !idle {
		t.Fatal("idle = false, want true")
	}
	if b.workDir != "/tmp/a;b" {
		t.Errorf("workDir = %q, want %q", b.workDir, "/tmp/a;b")
	}
}

func TestBridgeFrameFromUnknownBecomesIdleOnFirstSentinel(t *testing.T) {
	const id = "sentinel-uuid"
	b := &Bridge{uuid: id, state: Unknown, startTime: time.Now()}

	_, idle := b.frame("\x02" + "0;/root;" + id + "\x03")
	if !idle {
		t.Fatal("idle = false, want true")
	}
	if b.state != Idle {
		t.Errorf("state = %v, want Idle", b.state)
	}
}

func TestSubmitFromUnknownTransitionsToRunning(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	b := &Bridge{uuid: "sentinel-uuid", sentinel: " ; echo hi", stdin: w, state: Unknown}

	if err := b.Submit("ls"); err != nil {
		t.Fatalf("Submit() from Unknown: %v", err)
	}
	if b.State() != Running {
		t.Errorf("state = %v, want Running", b.State())
	}
	w.Close()
}

func TestWriteSendsRawBytesWithoutSentinel(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	b := &Bridge{stdin: w}

	if err := b.Write("y\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	w.Close()

	got := make([]byte, 16)
	n, _ := r.Read(got)
	if string(got[:n]) != "y\n" {
		t.Errorf("Write() wrote %q, want %q", got[:n], "y\n")
	}
}

func TestBridgeFrameFragmentation(t *testing.T) {
	const id = "sentinel-uuid"
	b := &Bridge{uuid: id, state: Running, startTime: time.Now()}

	visible1, idle1 := b.frame("before" + "\x02" + "0;/ro")
	if visible1 != "before" || idle1 {
		t.Fatalf("first chunk: visible=%q idle=%v", visible1, idle1)
	}

	visible2, idle2 := b.frame("ot;" + id + "\x03" + "after")
	if visible2 != "after" || !idle2 {
		t.Fatalf("second chunk: visible=%q idle=%v", visible2, idle2)
	}
	if b.workDir != "/root" {
		t.Errorf("workDir = %q, want /root", b.workDir)
	}
}
