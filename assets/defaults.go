package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration, written
// out on first run when no configuration file exists yet.
//
//go:embed defaults/pyc.yml
var DefaultConfigYAML []byte
