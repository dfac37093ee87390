package joystick

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/joystick/stick"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action    string  `json:"action"`
	Label     string  `json:"label,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	FromX     float64 `json:"fromX,omitempty"`
	FromY     float64 `json:"fromY,omitempty"`
	ToX       float64 `json:"toX,omitempty"`
	ToY       float64 `json:"toY,omitempty"`
	Frames    int     `json:"frames,omitempty"`
	Direction string  `json:"direction,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "drag": true,
	"wait": true, "screenshot": true, "expect": true,
}

// TestRunner sequences injected input, direction checks and screenshots
// across frames for automated testing. Attach to a Joystick via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "expect" {
			if _, err := stick.ParseDirection(st.Direction); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs from Update
// before input processing each frame.
func (j *Joystick) SetTestRunner(runner *TestRunner) {
	j.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of failed expect steps.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame.
func (r *TestRunner) step(j *Joystick) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(j.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		j.Screenshot(st.Label)
	case "press":
		j.InjectPress(st.X, st.Y)
	case "move":
		j.InjectMove(st.X, st.Y)
	case "release":
		j.InjectRelease(st.X, st.Y)
	case "drag":
		j.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		want, _ := stick.ParseDirection(st.Direction)
		if got := j.Direction(); got != want {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: direction %v, want %v", r.cursor-1, got, want))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(j.injectQueue) == 0 {
		r.done = true
	}
}
