package domain

// GetExecShell returns the configured child shell binary, defaulting to
// "sh" when unset.
func (c *Config) GetExecShell() string {
	if c.Shell.Exec == "" {
		return "sh"
	}
	return c.Shell.Exec
}

// GetExecArgs returns the configured child shell argv.
func (c *Config) GetExecArgs() []string {
	return c.Shell.Args
}

// ResolveAlias replaces token with its configured Latin replacement if an
// alias entry matches, otherwise returns token unchanged.
func (c *Config) ResolveAlias(token string) string {
	for _, a := range c.Alias {
		if a.Source == token {
			return a.Latin
		}
	}
	return token
}

// ShouldTranslateOutput reports whether shell output should be
// transliterated back to the configured alphabet.
func (c *Config) ShouldTranslateOutput() bool {
	return c.Output.Translate
}

// ShouldTranslatePrompt reports whether the expanded prompt line should be
// re-run through the IOProcessor.
func (c *Config) ShouldTranslatePrompt() bool {
	return c.Prompt.Translate
}

// GetHistorySize returns the configured prompt history size, defaulting to
// 1000 when unset or non-positive.
func (c *Config) GetHistorySize() int {
	const defaultHistorySize = 1000
	if c.Prompt.HistorySize <= 0 {
		return defaultHistorySize
	}
	return c.Prompt.HistorySize
}

// GetMinElapsedTimeMS returns the minimum elapsed time, in milliseconds,
// before CMD_TIME renders.
func (c *Config) GetMinElapsedTimeMS() int64 {
	return c.Prompt.Duration.MinElapsedTimeMS
}

// IsBreakEnabled reports whether a break line follows the prompt.
func (c *Config) IsBreakEnabled() bool {
	return c.Prompt.Break.Enabled
}

// GetBreakGlyph returns the break line's glyph.
func (c *Config) GetBreakGlyph() string {
	return c.Prompt.Break.With
}

// GetRCGlyph returns the glyph for the RC prompt key given the last exit
// status.
func (c *Config) GetRCGlyph(exitStatus int) string {
	if exitStatus == 0 {
		return c.Prompt.RC.OK
	}
	return c.Prompt.RC.Error
}

// IsGitBranchEnabled reports whether GIT_BRANCH/GIT_COMMIT resolve at all.
func (c *Config) IsGitBranchEnabled() bool {
	return c.Prompt.Git.Branch
}

// GetCommitRefLen returns the configured commit ref truncation length,
// defaulting to 7 when unset or non-positive. Per design decision, a
// length longer than the available ref is clamped by the caller, never
// padded or treated as an error.
func (c *Config) GetCommitRefLen() int {
	const defaultCommitRefLen = 7
	if c.Prompt.Git.CommitRefLen <= 0 {
		return defaultCommitRefLen
	}
	return c.Prompt.Git.CommitRefLen
}
