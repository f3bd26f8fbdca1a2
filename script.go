package timely

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a morph script.
type scriptStep struct {
	Action string `json:"action"`
	Glyph  string `json:"glyph,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// morphScript is the top-level JSON structure for a morph script.
type morphScript struct {
	Steps []scriptStep `json:"steps"`
}

// MorphScript sequences glyph changes across frames, for demos and for
// exporting reproducible frame sequences. Supported actions:
//
//	{"action": "show", "glyph": "3"}             show a glyph immediately
//	{"action": "animate", "from": "1", "to": "2"} explicit transition
//	{"action": "enter", "to": "5"}               transition from blank
//	{"action": "retarget", "to": "7"}            continue from the screen
//	{"action": "cancel"}                         stop the running transition
//	{"action": "wait", "frames": 10}             idle for a number of frames
//	{"action": "settle"}                         idle until no transition runs
//	{"action": "capture", "label": "mid"}        call OnCapture
//
// Glyphs are written "0" to "9" or "blank".
type MorphScript struct {
	// OnCapture is called for every capture step.
	OnCapture func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadMorphScript parses a JSON morph script. Glyph names and actions are
// checked up front so a bad script fails before it drives anything.
func LoadMorphScript(jsonData []byte) (*MorphScript, error) {
	var script morphScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("timely: parse morph script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("timely: parse morph script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("timely: parse morph script: step %d: %w", i, err)
		}
	}
	return &MorphScript{steps: script.Steps}, nil
}

func (st scriptStep) check() error {
	var names []string
	switch st.Action {
	case "show":
		names = []string{st.Glyph}
	case "animate":
		names = []string{st.From, st.To}
	case "enter", "retarget":
		names = []string{st.To}
	case "cancel", "wait", "settle", "capture":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	for _, n := range names {
		if _, err := parseGlyphKey(n); err != nil {
			return err
		}
	}
	return nil
}

// Done reports whether every step has been executed.
func (r *MorphScript) Done() bool {
	return r.done
}

// Step advances the script by one frame against d. Call it once per frame,
// alongside d.Update. Errors come from the display and stop nothing: the
// failing step is skipped.
func (r *MorphScript) Step(d *Display) error {
	if r.done {
		return nil
	}
	if r.settling {
		if d.Animating() {
			return nil
		}
		r.settling = false
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "show":
		err = d.Show(mustGlyphKey(st.Glyph))
	case "animate":
		err = d.Animate(mustGlyphKey(st.From), mustGlyphKey(st.To))
	case "enter":
		err = d.AnimateIn(mustGlyphKey(st.To))
	case "retarget":
		err = d.Retarget(mustGlyphKey(st.To))
	case "cancel":
		d.Stop()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = d.Animating()
	case "capture":
		if r.OnCapture != nil {
			r.OnCapture(st.Label)
		}
	}

	r.checkDone()
	if err != nil {
		return fmt.Errorf("timely: morph script step %d (%s): %w", r.cursor-1, st.Action, err)
	}
	return nil
}

func (r *MorphScript) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling {
		r.done = true
	}
}

// mustGlyphKey parses a glyph name already accepted by LoadMorphScript.
func mustGlyphKey(key string) GlyphID {
	id, err := parseGlyphKey(key)
	if err != nil {
		panic(err)
	}
	return id
}
