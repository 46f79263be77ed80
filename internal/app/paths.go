package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .hue/ project directory.
type Paths struct {
	Root   string // .hue/
	DB     string // .hue/hue.db
	Config string // .hue/config.yaml
	LogDir string // .hue/log/
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".hue")
	return &Paths{
		Root:   root,
		DB:     filepath.Join(root, "hue.db"),
		Config: filepath.Join(root, "config.yaml"),
		LogDir: filepath.Join(root, "log"),
	}
}

// EnsureDirs creates all subdirectories under .hue/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.LogDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}
