package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretmap",
	Short: "Guitar fretboard and music theory toolkit",
	Long:  `Computes scale, chord and interval highlight maps over a fretboard and serves them to terminals, HTTP clients and MIDI files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
