package constants

import "os"

const (
	MinMIDI = 0
	MaxMIDI = 127

	// DefaultOctave is used whenever an octave selection is empty.
	DefaultOctave = 3

	DefaultStringCount = 6
	DefaultFretCount   = 22
)

// GetConfigDir returns the directory holding the CLI defaults file.
func GetConfigDir() string {
	if path := os.Getenv("FRETMAP_CONFIG_DIR"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home + "/.config/fretmap"
}
