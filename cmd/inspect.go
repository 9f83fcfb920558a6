package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/midi"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Names the chords found in a MIDI file",
	Long:  `Names the chords found in a MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadFile(path)
	if err != nil {
		return err
	}

	sets := chord.FromSMF(s)
	if len(sets) == 0 {
		fmt.Println("no chords found")
		return nil
	}
	for _, notes := range sets {
		printMatches(notes)
	}
	return nil
}
