// Package midi wraps the gomidi SMF read/write entry points used by the
// export and inspect commands.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a standard MIDI file. The smf reader can panic on
// malformed input, so that is caught and surfaced as an error.
// https://github.com/gomidi/midi/issues/20
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// WriteFile writes an SMF to disk.
func WriteFile(path string, s *smf.SMF) error {
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("writing midi file: %w", err)
	}
	return nil
}
