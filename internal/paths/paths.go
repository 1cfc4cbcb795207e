package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns ~/.segmenu.
func Dir() string {
	return filepath.Join(home(), ".segmenu")
}

// ConfigFile returns ~/.segmenu/config.yaml.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// ForestFile returns ~/.segmenu/forest.yaml.
func ForestFile() string {
	return filepath.Join(Dir(), "forest.yaml")
}

// LogFile returns ~/.segmenu/logs/segmenu.log.
func LogFile() string {
	return filepath.Join(Dir(), "logs", "segmenu.log")
}
