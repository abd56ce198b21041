package domain

// Config mirrors $HOME/.config/pyc/pyc.yml.
type Config struct {
	Language string         `yaml:"language"`
	Shell    ShellSettings  `yaml:"shell"`
	Alias    []AliasEntry   `yaml:"alias"`
	Output   OutputSettings `yaml:"output"`
	Prompt   PromptSettings `yaml:"prompt"`
}

// ShellSettings names the child shell binary and its argv.
type ShellSettings struct {
	Exec string   `yaml:"exec"`
	Args []string `yaml:"args"`
}

// AliasEntry overrides a first token's default transliteration: Source is
// matched against the token after it has already been run through the
// translator, Latin is what gets substituted in its place.
type AliasEntry struct {
	Source string `yaml:"source"`
	Latin  string `yaml:"latin"`
}

// OutputSettings controls whether shell output is translated back.
type OutputSettings struct {
	Translate bool `yaml:"translate"`
}

// PromptSettings configures the rendered prompt line.
type PromptSettings struct {
	PromptLine  string         `yaml:"prompt_line"`
	HistorySize int            `yaml:"history_size"`
	Translate   bool           `yaml:"translate"`
	Break       BreakSettings  `yaml:"break"`
	Duration    DurationConfig `yaml:"duration"`
	RC          RCGlyphs       `yaml:"rc"`
	Git         GitPromptConfig `yaml:"git"`
}

// BreakSettings configures the line emitted after the prompt.
type BreakSettings struct {
	Enabled bool   `yaml:"enabled"`
	With    string `yaml:"with"`
}

// DurationConfig configures the CMD_TIME prompt key.
type DurationConfig struct {
	MinElapsedTimeMS int64 `yaml:"min_elapsed_time"`
}

// RCGlyphs configures the RC prompt key.
type RCGlyphs struct {
	OK    string `yaml:"ok"`
	Error string `yaml:"error"`
}

// GitPromptConfig configures GIT_BRANCH/GIT_COMMIT.
type GitPromptConfig struct {
	Branch         bool   `yaml:"branch"`
	CommitRefLen   int    `yaml:"commit_ref_len"`
	CommitPrepend  string `yaml:"commit_prepend"`
	CommitAppend   string `yaml:"commit_append"`
}
