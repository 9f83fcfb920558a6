package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/util"
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords played on a MIDI input",
	Long:  `Names the chords played on a MIDI input`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen()
	},
}

func printMatches(notes []int) {
	if len(notes) < 2 {
		return
	}
	matches := chord.Identify(notes)
	if len(matches) == 0 {
		fmt.Printf("%v: no catalog match\n", chord.Key(notes))
		return
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	fmt.Printf("%v: %v\n", chord.Key(notes), names)
}

func listen() error {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(listenPort)
	if err != nil {
		return fmt.Errorf("no MIDI input on port %v: %w", listenPort, err)
	}

	var mu sync.Mutex
	held := make(map[int]bool)

	// a strum arrives as a burst of note-ons; identify once it settles
	debounced := debounce.New(50 * time.Millisecond)
	snapshot := func() {
		mu.Lock()
		notes := util.Keys(held)
		mu.Unlock()
		printMatches(notes)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			held[int(key)] = true
			mu.Unlock()
			debounced(snapshot)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(held, int(key))
			mu.Unlock()
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	fmt.Printf("listening on %v, play something (ctrl-c to quit)\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
