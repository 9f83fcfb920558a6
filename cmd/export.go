package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/constants"
	"github.com/fretmap/fretmap/export"
	"github.com/fretmap/fretmap/midi"
	"github.com/fretmap/fretmap/pitch"
	"github.com/fretmap/fretmap/scale"
)

var exportFlags struct {
	root      string
	scaleName string
	chordType string
	inversion int
	octave    int
	tempo     float64
	out       string
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.root, "root", "C", "root pitch class")
	f.StringVar(&exportFlags.scaleName, "scale", "", "scale to export as a run")
	f.StringVar(&exportFlags.chordType, "chord", "", "chord to export as a voicing")
	f.IntVar(&exportFlags.inversion, "inversion", 0, "chord inversion")
	f.IntVar(&exportFlags.octave, "octave", constants.DefaultOctave, "starting octave")
	f.Float64Var(&exportFlags.tempo, "tempo", 100, "tempo in BPM")
	f.StringVar(&exportFlags.out, "out", "fretmap.mid", "output file")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a scale run or chord voicing as a MIDI file",
	Long:  `Writes a scale run or chord voicing as a MIDI file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport()
	},
}

func runExport() error {
	root, err := pitch.ParseClass(exportFlags.root)
	if err != nil {
		return err
	}
	pref := scale.SpellingFor(root)
	rootNote := pitch.Note{Class: root, Octave: exportFlags.octave, Spelling: pref}

	switch {
	case exportFlags.chordType != "":
		c, ok := chord.Get(exportFlags.chordType)
		if !ok {
			return fmt.Errorf("unknown chord type %q", exportFlags.chordType)
		}
		voicing, err := c.Voicing(rootNote, chord.Inversion(exportFlags.inversion))
		if err != nil {
			return err
		}
		s, err := export.Voicing(voicing, exportFlags.tempo)
		if err != nil {
			return err
		}
		if err := midi.WriteFile(exportFlags.out, s); err != nil {
			return err
		}
		fmt.Printf("wrote %v (%v)\n", exportFlags.out,
			c.DisplayName(root, chord.Inversion(exportFlags.inversion), pref))
	case exportFlags.scaleName != "":
		sc, ok := scale.Get(exportFlags.scaleName)
		if !ok {
			return fmt.Errorf("unknown scale %q", exportFlags.scaleName)
		}
		s, err := export.ScaleRun(sc, rootNote, exportFlags.tempo)
		if err != nil {
			return err
		}
		if err := midi.WriteFile(exportFlags.out, s); err != nil {
			return err
		}
		fmt.Printf("wrote %v (%v %v)\n", exportFlags.out, rootNote.ClassName(), sc.Name)
	default:
		return fmt.Errorf("pass --scale or --chord")
	}
	return nil
}
