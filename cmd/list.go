package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/scale"
	"github.com/fretmap/fretmap/tuning"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the scale, chord and tuning catalogs",
	Long:  `Prints the scale, chord and tuning catalogs`,
	Run: func(cmd *cobra.Command, args []string) {
		list()
	},
}

func list() {
	fmt.Println("scales:")
	for _, name := range scale.Names() {
		s, _ := scale.Get(name)
		line := fmt.Sprintf("  %-18v %v", s.Name, s.Steps)
		if len(s.ModeNames) > 0 {
			line += "  modes: " + strings.Join(s.ModeNames, ", ")
		}
		fmt.Println(line)
	}

	fmt.Println("chords:")
	for _, typ := range chord.Types() {
		c, _ := chord.Get(typ)
		symbol := c.Symbol
		if symbol == "" {
			symbol = "(none)"
		}
		fmt.Printf("  %-18v %-8v %v\n", c.Type, symbol, c.Intervals)
	}

	fmt.Println("tunings:")
	for _, name := range tuning.Names() {
		t, _ := tuning.Get(name)
		fmt.Printf("  %-18v %v\n", t.Name, t)
	}
}
