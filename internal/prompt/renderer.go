// Package prompt renders the configurable ${KEY}-templated prompt line
// against the shell's current state: working directory, last exit status,
// command duration, and (optionally) the enclosing git repository.
package prompt

import (
	"fmt"
	"os"
	"os/user"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/chrisvisintin/pyc-go/internal/domain"
	"github.com/chrisvisintin/pyc-go/internal/ioprocessor"
	"github.com/chrisvisintin/pyc-go/internal/translator"
)

var keyPattern = regexp.MustCompile(`\$\{(.*?)\}`)

// State is the subset of shell/process information the renderer needs for
// one render pass.
type State struct {
	WorkDir    string
	ExitStatus int
	ExecTime   time.Duration
}

// Renderer expands a configured prompt line against a State.
type Renderer struct {
	cfg      domain.Config
	lang     translator.Language
	io       *ioprocessor.Processor
	cache    cache
	username string
	hostname string
}

// New builds a Renderer. Username and hostname are resolved once at
// startup, matching the teacher's process-wide shell-environment snapshot.
func New(cfg domain.Config, lang translator.Language, io *ioprocessor.Processor) *Renderer {
	return &Renderer{
		cfg:      cfg,
		lang:     lang,
		io:       io,
		username: currentUsername(),
		hostname: currentHostname(),
	}
}

// Render expands the configured prompt_line against state, trims the
// result, appends a break line when configured, and re-runs the line
// through the IOProcessor when prompt.translate is set.
func (r *Renderer) Render(state State) string {
	line := r.cfg.Prompt.PromptLine
	if line == "" {
		line = "${USER}@${HOSTNAME}:${WRKDIR}$"
	}

	line = keyPattern.ReplaceAllStringFunc(line, func(match string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if resolved, ok := r.resolveKey(key, state); ok {
			return resolved
		}
		return match
	})

	line = strings.TrimSpace(line)

	if r.cfg.IsBreakEnabled() {
		line += "\n" + strings.TrimSpace(r.cfg.GetBreakGlyph())
	}

	r.cache.invalidate()

	if r.cfg.ShouldTranslatePrompt() {
		line = r.io.TextToSource(line)
	}

	return line
}

func (r *Renderer) resolveKey(key string, state State) (string, bool) {
	if color, ok := colorKeys[key]; ok {
		return color, true
	}

	switch key {
	case "USER":
		return r.username, true
	case "HOSTNAME":
		return r.hostname, true
	case "WRKDIR":
		return state.WorkDir, true
	case "LANG":
		return r.langLabel(), true
	case "RC":
		return r.cfg.GetRCGlyph(state.ExitStatus), true
	case "CMD_TIME":
		return r.cmdTime(state.ExecTime), true
	case "GIT_BRANCH":
		return r.gitBranch(state.WorkDir), true
	case "GIT_COMMIT":
		return r.gitCommit(state.WorkDir), true
	default:
		return "", false
	}
}

// langLabel paints the language's short label one character at a time in
// its country flag's stripe colors, cycling through them if the label runs
// longer than the color list.
func (r *Renderer) langLabel() string {
	label := r.lang.Label()
	colors := r.lang.FlagColors()
	if len(colors) == 0 {
		return label
	}

	var out strings.Builder
	for i, ru := range []rune(label) {
		out.WriteString(colors[i%len(colors)])
		out.WriteRune(ru)
	}
	out.WriteString(colorReset)
	return out.String()
}

func (r *Renderer) cmdTime(elapsed time.Duration) string {
	minimum := time.Duration(r.cfg.GetMinElapsedTimeMS()) * time.Millisecond
	if elapsed < minimum {
		return ""
	}
	secs := elapsed.Seconds()
	return fmt.Sprintf("took %ss", humanize.FormatFloat("#.#", secs))
}

func (r *Renderer) gitBranch(dir string) string {
	if !r.cfg.IsGitBranchEnabled() {
		return ""
	}
	repo, ok := r.cache.repoFor(dir)
	if !ok {
		return ""
	}
	return repo.branch()
}

func (r *Renderer) gitCommit(dir string) string {
	if !r.cfg.IsGitBranchEnabled() {
		return ""
	}
	repo, ok := r.cache.repoFor(dir)
	if !ok {
		return ""
	}
	commit := repo.commit(r.cfg.GetCommitRefLen())
	if commit == "" {
		return ""
	}
	return r.cfg.Prompt.Git.CommitPrepend + commit + r.cfg.Prompt.Git.CommitAppend
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func currentHostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "localhost"
}
