package domain_test

import (
	"testing"

	"github.com/chrisvisintin/pyc-go/internal/domain"
)

func TestConfig_GetExecShell(t *testing.T) {
	tests := []struct {
		name   string
		config domain.Config
		want   string
	}{
		{
			name:   "returns configured shell",
			config: domain.Config{Shell: domain.ShellSettings{Exec: "/bin/zsh"}},
			want:   "/bin/zsh",
		},
		{
			name:   "defaults to sh when unset",
			config: domain.Config{},
			want:   "sh",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetExecShell(); got != tt.want {
				t.Errorf("GetExecShell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_ResolveAlias(t *testing.T) {
	config := domain.Config{
		Alias: []domain.AliasEntry{
			{Source: "пвд", Latin: "pwd"},
			{Source: "лс", Latin: "ls"},
		},
	}

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"known alias resolves", "пвд", "pwd"},
		{"other known alias resolves", "лс", "ls"},
		{"unknown token passes through", "эхо", "эхо"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.ResolveAlias(tt.token); got != tt.want {
				t.Errorf("ResolveAlias(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestConfig_GetHistorySize(t *testing.T) {
	tests := []struct {
		name   string
		config domain.Config
		want   int
	}{
		{"configured value used", domain.Config{Prompt: domain.PromptSettings{HistorySize: 500}}, 500},
		{"zero falls back to default", domain.Config{}, 1000},
		{"negative falls back to default", domain.Config{Prompt: domain.PromptSettings{HistorySize: -1}}, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetHistorySize(); got != tt.want {
				t.Errorf("GetHistorySize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfig_GetRCGlyph(t *testing.T) {
	config := domain.Config{
		Prompt: domain.PromptSettings{
			RC: domain.RCGlyphs{OK: "✓", Error: "✗"},
		},
	}

	tests := []struct {
		name       string
		exitStatus int
		want       string
	}{
		{"zero status yields ok glyph", 0, "✓"},
		{"nonzero status yields error glyph", 1, "✗"},
		{"negative status yields error glyph", -1, "✗"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.GetRCGlyph(tt.exitStatus); got != tt.want {
				t.Errorf("GetRCGlyph(%d) = %q, want %q", tt.exitStatus, got, tt.want)
			}
		})
	}
}

func TestConfig_GetCommitRefLen(t *testing.T) {
	tests := []struct {
		name   string
		config domain.Config
		want   int
	}{
		{"configured value used", domain.Config{Prompt: domain.PromptSettings{Git: domain.GitPromptConfig{CommitRefLen: 12}}}, 12},
		{"zero falls back to default", domain.Config{}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetCommitRefLen(); got != tt.want {
				t.Errorf("GetCommitRefLen() = %d, want %d", got, tt.want)
			}
		})
	}
}
