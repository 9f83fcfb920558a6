package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap/chord"
	"github.com/fretmap/fretmap/constants"
	"github.com/fretmap/fretmap/fretboard"
	"github.com/fretmap/fretmap/model"
	"github.com/fretmap/fretmap/pitch"
	"github.com/fretmap/fretmap/scale"
	"github.com/fretmap/fretmap/tuning"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves highlight maps and catalogs over HTTP",
	Long:  `Serves highlight maps and catalogs over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// buildConfig maps an HTTP request body onto a fretboard config, filling
// unset fields from the defaults.
func buildConfig(req model.HighlightRequest) (fretboard.Config, error) {
	cfg := fretboard.Default()

	if req.Root != "" {
		root, err := pitch.ParseClass(req.Root)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithRoot(root)
	}
	if req.View != "" {
		view, err := fretboard.ParseViewMode(req.View)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithView(view)
	}
	if req.Scale != "" {
		cfg = cfg.WithScale(req.Scale, req.Mode)
	} else {
		cfg = cfg.WithScale(cfg.ScaleName, req.Mode)
	}
	if req.Chord != "" {
		cfg = cfg.WithChord(req.Chord, chord.Inversion(req.Inversion))
	} else {
		cfg = cfg.WithChord(cfg.ChordType, chord.Inversion(req.Inversion))
	}
	switch {
	case len(req.TuningNotes) > 0:
		t, err := tuning.FromNames("custom", req.TuningNotes)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithTuning(t)
	case req.Tuning != "":
		t, ok := tuning.Get(req.Tuning)
		if !ok {
			return cfg, fmt.Errorf("unknown tuning %q", req.Tuning)
		}
		cfg = cfg.WithTuning(t)
	}
	if req.FretCount > 0 {
		cfg.FretCount = req.FretCount
	}
	cfg = cfg.WithOctaves(req.Octaves).WithIntervals(req.Intervals)
	cfg.ShowAdditionalOctaves = req.ShowAdditionalOctaves
	cfg.ShowAllPositions = req.ShowAllPositions
	if req.FretEnd > req.FretStart {
		cfg = cfg.WithFretWindow(req.FretStart, req.FretEnd)
	}
	return cfg, nil
}

// HandleHighlights computes the highlight map for a posted config.
func HandleHighlights(w http.ResponseWriter, r *http.Request) {
	var req model.HighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	cfg, err := buildConfig(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := fretboard.Compute(cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fretboard.ErrUnknownScale) || errors.Is(err, fretboard.ErrUnknownChord) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	resp := model.HighlightResponse{
		Label:   m.Label,
		Root:    pitch.ClassName(m.Root, scale.SpellingFor(m.Root)),
		Octaves: m.Octaves,
	}
	for cell, h := range m.Cells {
		resp.Cells = append(resp.Cells, model.CellHighlight{
			String:     cell.String,
			Fret:       cell.Fret,
			Midi:       h.MIDI,
			Role:       h.Role.String(),
			Additional: h.Additional,
			Degree:     h.Degree,
			Interval:   h.Interval,
			ColorKey:   h.ColorKey,
		})
	}
	sort.Slice(resp.Cells, func(i, j int) bool {
		if resp.Cells[i].String != resp.Cells[j].String {
			return resp.Cells[i].String < resp.Cells[j].String
		}
		return resp.Cells[i].Fret < resp.Cells[j].Fret
	})
	writeJSON(w, resp)
}

// HandleVoicing builds one chord voicing.
func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	var req model.VoicingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	root, err := pitch.ParseClass(req.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, ok := chord.Get(req.Chord)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chord type %q", req.Chord))
		return
	}
	octave := req.Octave
	if octave == 0 {
		octave = constants.DefaultOctave
	}
	pref := scale.SpellingFor(root)
	voicing, err := c.Voicing(pitch.Note{Class: root, Octave: octave, Spelling: pref}, chord.Inversion(req.Inversion))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := model.VoicingResponse{
		Name: c.DisplayName(root, chord.Inversion(req.Inversion), pref),
		Midi: voicing,
	}
	for _, m := range voicing {
		n, _ := pitch.FromMIDI(m)
		resp.Notes = append(resp.Notes, n.String())
	}
	writeJSON(w, resp)
}

// HandleScales lists the scale catalog.
func HandleScales(w http.ResponseWriter, r *http.Request) {
	var infos []model.ScaleInfo
	for _, name := range scale.Names() {
		s, _ := scale.Get(name)
		infos = append(infos, model.ScaleInfo{
			Name:  s.Name,
			Steps: s.Steps,
			Modes: s.ModeNames,
		})
	}
	writeJSON(w, infos)
}

// HandleChords lists the chord catalog.
func HandleChords(w http.ResponseWriter, r *http.Request) {
	var infos []model.ChordInfo
	for _, typ := range chord.Types() {
		c, _ := chord.Get(typ)
		infos = append(infos, model.ChordInfo{
			Type:      c.Type,
			Symbol:    c.Symbol,
			Intervals: c.Intervals,
		})
	}
	writeJSON(w, infos)
}

// HandleTunings lists the tuning catalog.
func HandleTunings(w http.ResponseWriter, r *http.Request) {
	var infos []model.TuningInfo
	for _, name := range tuning.Names() {
		t, _ := tuning.Get(name)
		info := model.TuningInfo{Name: t.Name}
		for _, n := range t.Open {
			info.Strings = append(info.Strings, n.String())
		}
		infos = append(infos, info)
	}
	writeJSON(w, infos)
}

// NewRouter wires the HTTP surface. Exported so the e2e tests can hit the
// exact router the server runs.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/highlights", HandleHighlights).Methods("POST")
	router.HandleFunc("/voicing", HandleVoicing).Methods("POST")
	router.HandleFunc("/scales", HandleScales).Methods("GET")
	router.HandleFunc("/chords", HandleChords).Methods("GET")
	router.HandleFunc("/tunings", HandleTunings).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	addr := fmt.Sprintf(":%d", servePort)
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
