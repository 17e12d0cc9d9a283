// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Cipher CipherConfig `toml:"cipher"`
	Crack  CrackConfig  `toml:"crack"`
	Puzzle PuzzleConfig `toml:"puzzle"`
}

// CipherConfig maps settings shared by every cipher.
type CipherConfig struct {
	Alphabet *string `toml:"alphabet"`
}

// CrackConfig maps crack-related settings.
type CrackConfig struct {
	Top             *int    `toml:"top"`
	Workers         *int    `toml:"workers"`
	Remote          *bool   `toml:"remote"`
	RemoteURL       *string `toml:"remote-url"`
	RemoteTimeoutMs *int    `toml:"remote-timeout-ms"`
	KeywordsFile    *string `toml:"keywords-file"`
	WaitRemote      *bool   `toml:"wait-remote"`
}

// PuzzleConfig maps puzzle-related settings.
type PuzzleConfig struct {
	Ciphers *[]string `toml:"ciphers"`
	Hints   *bool     `toml:"hints"`
}

// Template is written by `codeclub config` when no config file exists.
const Template = `# codeclub configuration

[cipher]
# alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

[crack]
# top = 10
# workers = 4
# remote = true
# remote-url = "https://api.datamuse.com/words?ml=secret+code&max=50"
# remote-timeout-ms = 3000
# keywords-file = ""
# wait-remote = false

[puzzle]
# ciphers = ["caesar", "keyword", "atbash"]
# hints = true
`

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
