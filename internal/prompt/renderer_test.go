package prompt

import (
	"testing"
	"time"

	"github.com/chrisvisintin/pyc-go/internal/domain"
	"github.com/chrisvisintin/pyc-go/internal/ioprocessor"
	"github.com/chrisvisintin/pyc-go/internal/translator"
)

func newRenderer(cfg domain.Config) *Renderer {
	p := ioprocessor.New(translator.New(translator.Russian))
	r := New(cfg, translator.Russian, p)
	r.username = "nik"
	r.hostname = "box"
	return r
}

func TestRenderBasicKeys(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{PromptLine: "${USER}@${HOSTNAME}:${WRKDIR}$"}}
	r := newRenderer(cfg)

	got := r.Render(State{WorkDir: "/tmp"})
	want := "nik@box:/tmp$"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderUnresolvedKeyPassesThrough(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{PromptLine: "${USER} ${FOOBAR}"}}
	r := newRenderer(cfg)

	got := r.Render(State{})
	want := "nik ${FOOBAR}"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderRCKey(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{
		PromptLine: "${RC} ${USER}",
		RC:         domain.RCGlyphs{OK: "OK", Error: "ERR"},
	}}
	r := newRenderer(cfg)

	tests := []struct {
		name string
		rc   int
		want string
	}{
		{"success", 0, "OK nik"},
		{"failure", 1, "ERR nik"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Render(State{ExitStatus: tt.rc})
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCmdTimeBelowMinimumIsEmpty(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{
		PromptLine: "${USER} ${CMD_TIME}",
		Duration:   domain.DurationConfig{MinElapsedTimeMS: 1000},
	}}
	r := newRenderer(cfg)

	got := r.Render(State{ExecTime: 200 * time.Millisecond})
	want := "nik"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCmdTimeAboveMinimum(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{
		PromptLine: "${CMD_TIME}",
		Duration:   domain.DurationConfig{MinElapsedTimeMS: 100},
	}}
	r := newRenderer(cfg)

	got := r.Render(State{ExecTime: 5100 * time.Millisecond})
	want := "took 5.1s"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderBreakLine(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{
		PromptLine: "${USER}",
		Break:      domain.BreakSettings{Enabled: true, With: "❯"},
	}}
	r := newRenderer(cfg)

	got := r.Render(State{})
	want := "nik\n❯"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderLangKeyIsFlagColored(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{PromptLine: "${LANG}"}}
	r := newRenderer(cfg)

	got := r.Render(State{})
	colors := translator.Russian.FlagColors()
	label := []rune(translator.Russian.Label())
	want := colors[0] + string(label[0]) + colors[1] + string(label[1]) + colors[2] + string(label[2]) + colorReset
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderGitOutsideRepoIsEmpty(t *testing.T) {
	cfg := domain.Config{Prompt: domain.PromptSettings{
		PromptLine: "${USER} ${GIT_BRANCH}",
		Git:        domain.GitPromptConfig{Branch: true},
	}}
	r := newRenderer(cfg)

	got := r.Render(State{WorkDir: "/"})
	want := "nik"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
