package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/config"
	"github.com/fretmap/fretmap/fretboard"
	"github.com/fretmap/fretmap/pitch"
	"github.com/fretmap/fretmap/tuning"
)

var showFlags struct {
	root       string
	view       string
	scaleName  string
	mode       int
	chordType  string
	inversion  int
	tuningName string
	frets      int
	octaves    []int
	intervals  []int
	additional bool
	all        bool
	fretStart  int
	fretEnd    int
	left       bool
	bassTop    bool
	noteNames  bool
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showFlags.root, "root", "C", "root pitch class")
	f.StringVar(&showFlags.view, "view", "scales", "view mode (intervals, scales, chord-inversions, open-chords, barre-chords, advanced-chords)")
	f.StringVar(&showFlags.scaleName, "scale", "major", "scale name")
	f.IntVar(&showFlags.mode, "mode", 0, "mode index within the scale")
	f.StringVar(&showFlags.chordType, "chord", "major", "chord type")
	f.IntVar(&showFlags.inversion, "inversion", 0, "chord inversion")
	f.StringVar(&showFlags.tuningName, "tuning", "", "tuning name (defaults from config)")
	f.IntVar(&showFlags.frets, "frets", 0, "fret count (defaults from config)")
	f.IntSliceVar(&showFlags.octaves, "octaves", nil, "octaves to highlight")
	f.IntSliceVar(&showFlags.intervals, "intervals", nil, "interval offsets to highlight (interval view)")
	f.BoolVar(&showFlags.additional, "additional-octaves", false, "mark chord tones outside the selected octaves")
	f.BoolVar(&showFlags.all, "all-positions", false, "show the whole neck")
	f.IntVar(&showFlags.fretStart, "fret-start", 0, "first visible fret")
	f.IntVar(&showFlags.fretEnd, "fret-end", 0, "fret after the last visible one")
	f.BoolVar(&showFlags.left, "left", false, "left-handed layout")
	f.BoolVar(&showFlags.bassTop, "bass-top", false, "lowest string at the top")
	f.BoolVar(&showFlags.noteNames, "note-names", false, "label cells with note names instead of intervals")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints a highlighted fretboard",
	Long:  `Prints a highlighted fretboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return show()
	},
}

func showConfig() (fretboard.Config, error) {
	defaults, err := config.Load()
	if err != nil {
		return fretboard.Config{}, err
	}

	cfg := fretboard.Default()
	root, err := pitch.ParseClass(showFlags.root)
	if err != nil {
		return cfg, err
	}
	view, err := fretboard.ParseViewMode(showFlags.view)
	if err != nil {
		return cfg, err
	}

	tuningName := showFlags.tuningName
	if tuningName == "" {
		tuningName = defaults.Tuning
	}
	t, ok := tuning.Get(tuningName)
	if !ok {
		return cfg, fmt.Errorf("unknown tuning %q", tuningName)
	}

	cfg = cfg.WithRoot(root).
		WithView(view).
		WithScale(showFlags.scaleName, showFlags.mode).
		WithChord(showFlags.chordType, chord.Inversion(showFlags.inversion)).
		WithTuning(t).
		WithOctaves(showFlags.octaves).
		WithIntervals(showFlags.intervals)
	cfg.FretCount = defaults.FretCount
	if showFlags.frets > 0 {
		cfg.FretCount = showFlags.frets
	}
	cfg.ShowAdditionalOctaves = showFlags.additional
	cfg.ShowAllPositions = showFlags.all
	if showFlags.fretEnd > showFlags.fretStart {
		cfg = cfg.WithFretWindow(showFlags.fretStart, showFlags.fretEnd)
	}

	layout := fretboard.Layout{}
	if showFlags.left || defaults.LeftHanded {
		layout.Handedness = fretboard.LeftHanded
	}
	if showFlags.bassTop || defaults.BassOnTop {
		layout.Bass = fretboard.BassTop
	}
	return cfg.WithLayout(layout), nil
}

var (
	rootStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	toneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	additionalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	frameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func cellLabel(h fretboard.Highlight) string {
	if showFlags.noteNames {
		n, err := pitch.FromMIDI(h.MIDI)
		if err != nil {
			return "?"
		}
		return n.ClassName()
	}
	return h.Interval
}

func renderCell(h fretboard.Highlight, ok bool) string {
	if !ok {
		return frameStyle.Render("·--")
	}
	label := fmt.Sprintf("%-3s", cellLabel(h))
	switch {
	case h.Additional:
		return additionalStyle.Render(label)
	case h.Role == fretboard.RoleRoot:
		return rootStyle.Render(label)
	}
	return toneStyle.Render(label)
}

func show() error {
	cfg, err := showConfig()
	if err != nil {
		return err
	}
	m, err := fretboard.Compute(cfg)
	if err != nil {
		return err
	}

	start, end := cfg.FretWindow()
	numStrings := cfg.StringCount()

	fmt.Printf("%v  (octaves %v)\n", m.Label, m.Octaves)

	// header: fret numbers under the layout's column order
	header := make([]string, end-start)
	for f := start; f < end; f++ {
		_, col := cfg.Layout.Screen(fretboard.Cell{Fret: f}, numStrings, start, end)
		header[col] = fmt.Sprintf("%-3d", f)
	}
	fmt.Println(frameStyle.Render("    " + strings.Join(header, " ")))

	for row := 0; row < numStrings; row++ {
		cells := make([]string, end-start)
		var open pitch.Note
		for col := 0; col < end-start; col++ {
			cell := cfg.Layout.CellAt(row, col, numStrings, start, end)
			h, ok := m.Cells[cell]
			cells[col] = renderCell(h, ok)
			open = cfg.Tuning.Open[cell.String]
		}
		fmt.Printf("%3s %v\n", open.String(), strings.Join(cells, " "))
	}
	return nil
}
