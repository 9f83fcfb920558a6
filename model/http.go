package model

// HighlightRequest is the JSON body of POST /highlights. Zero values fall
// back to the server-side defaults, mirroring the CLI flags.
type HighlightRequest struct {
	Root                  string   `json:"root"`
	View                  string   `json:"view"`
	Scale                 string   `json:"scale,omitempty"`
	Mode                  int      `json:"mode,omitempty"`
	Chord                 string   `json:"chord,omitempty"`
	Inversion             int      `json:"inversion,omitempty"`
	Tuning                string   `json:"tuning,omitempty"`
	TuningNotes           []string `json:"tuning_notes,omitempty"`
	FretCount             int      `json:"fret_count,omitempty"`
	Octaves               []int    `json:"octaves,omitempty"`
	Intervals             []int    `json:"intervals,omitempty"`
	ShowAdditionalOctaves bool     `json:"show_additional_octaves,omitempty"`
	ShowAllPositions      bool     `json:"show_all_positions,omitempty"`
	FretStart             int      `json:"fret_start,omitempty"`
	FretEnd               int      `json:"fret_end,omitempty"`
}

// CellHighlight is one highlighted fretboard position.
type CellHighlight struct {
	String     int    `json:"string"`
	Fret       int    `json:"fret"`
	Midi       int    `json:"midi"`
	Role       string `json:"role"`
	Additional bool   `json:"additional,omitempty"`
	Degree     int    `json:"degree"`
	Interval   string `json:"interval"`
	ColorKey   string `json:"color_key"`
}

type HighlightResponse struct {
	Label   string          `json:"label"`
	Root    string          `json:"root"`
	Octaves []int           `json:"octaves"`
	Cells   []CellHighlight `json:"cells"`
}

// VoicingRequest is the JSON body of POST /voicing.
type VoicingRequest struct {
	Root      string `json:"root"`
	Chord     string `json:"chord"`
	Inversion int    `json:"inversion,omitempty"`
	Octave    int    `json:"octave,omitempty"`
}

type VoicingResponse struct {
	Name  string   `json:"name"`
	Midi  []int    `json:"midi"`
	Notes []string `json:"notes"`
}

// ScaleInfo and ChordInfo describe catalog entries for GET /scales and
// GET /chords.
type ScaleInfo struct {
	Name  string   `json:"name"`
	Steps []int    `json:"steps"`
	Modes []string `json:"modes,omitempty"`
}

type ChordInfo struct {
	Type      string `json:"type"`
	Symbol    string `json:"symbol"`
	Intervals []int  `json:"intervals"`
}

type TuningInfo struct {
	Name    string   `json:"name"`
	Strings []string `json:"strings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
