// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is a viewer command.
type Action int

// Viewer actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionRollLeft
	ActionRollRight
	ActionReset
	ActionToggleFaces
	ActionToggleWireframe
	ActionToggleBoundingBoxes
	ActionToggleProjection
	ActionScreenshot
	ActionOpenModel
)

// String returns the action name.
func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

var actionNames = [...]string{
	"none", "quit",
	"yaw-left", "yaw-right", "pitch-up", "pitch-down", "roll-left", "roll-right",
	"reset", "toggle-faces", "toggle-wireframe", "toggle-bbox", "toggle-projection",
	"screenshot", "open-model",
}

// Bindings maps scancodes to actions.
type Bindings map[sdl.Scancode]Action

// DefaultBindings: arrows yaw/pitch, Q/E roll, R reset, F/W/B toggles,
// P projection, F12 screenshot, O open, Escape quit.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_ESCAPE: ActionQuit,
		sdl.SCANCODE_LEFT:   ActionYawLeft,
		sdl.SCANCODE_RIGHT:  ActionYawRight,
		sdl.SCANCODE_UP:     ActionPitchUp,
		sdl.SCANCODE_DOWN:   ActionPitchDown,
		sdl.SCANCODE_Q:      ActionRollLeft,
		sdl.SCANCODE_E:      ActionRollRight,
		sdl.SCANCODE_R:      ActionReset,
		sdl.SCANCODE_F:      ActionToggleFaces,
		sdl.SCANCODE_W:      ActionToggleWireframe,
		sdl.SCANCODE_B:      ActionToggleBoundingBoxes,
		sdl.SCANCODE_P:      ActionToggleProjection,
		sdl.SCANCODE_F12:    ActionScreenshot,
		sdl.SCANCODE_O:      ActionOpenModel,
	}
}

// Input collects actions from SDL events.
type Input struct {
	bindings Bindings
	actions  []Action
}

// New creates an input handler with the given bindings.
func New(b Bindings) *Input {
	return &Input{
		bindings: b,
		actions:  make([]Action, 0, 8),
	}
}

// Update polls SDL events. Key repeats produce one action per repeat so a
// held arrow keeps rotating.
func (i *Input) Update() {
	i.actions = i.actions[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
}

func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.actions = append(i.actions, ActionQuit)
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return
		}
		if a, ok := i.bindings[e.Keysym.Scancode]; ok {
			i.actions = append(i.actions, a)
		}
	}
}

// Actions returns the actions from the last Update.
func (i *Input) Actions() []Action {
	return i.actions
}
