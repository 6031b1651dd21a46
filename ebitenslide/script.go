package ebitenslide

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Notch  float64 `yaml:"notch,omitempty"`
	Label  string  `yaml:"label,omitempty"`
}

// scriptFile is the top-level structure of a script document.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "drag": true, "wheel": true,
	"wait": true, "show": true, "hide": true, "toggle": true, "screenshot": true,
}

// Script sequences injected input and layout commands across frames, for
// demos and automated checks. Attach one with Host.SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) script. Example:
//
//	steps:
//	  - action: drag
//	    fromX: 100
//	    fromY: 50
//	    toX: 100
//	    toY: 400
//	    frames: 10
//	  - action: wait
//	    frames: 30
//	  - action: show
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script. Its step runs at the start of every frame.
func (h *Host) SetScript(s *Script) {
	h.script = s
}

// Done reports whether every step has run and all injected input drained.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(h *Host) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		h.InjectPress(st.X, st.Y)
	case "move":
		h.InjectMove(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		notch := st.Notch
		if notch == 0 {
			notch = 1
		}
		h.InjectWheel(notch)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "show":
		h.layout.Show()
	case "hide":
		h.layout.Hide()
	case "toggle":
		h.layout.Toggle()
	case "screenshot":
		h.Screenshot(st.Label)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(h.injectQueue) == 0 {
		s.done = true
	}
}
