// Package mode holds the top-level game mode state machine. Systems ask for a
// mode change by spawning a component.ModeChangeRequest; the game loop
// collects those at the end of the tick and applies the switch, running the
// exit hook of the old mode and then the enter hook of the new one.
package mode

import (
	"fmt"

	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

type Mode = component.GameMode

const (
	Overworld = component.ModeOverworld
	Combat    = component.ModeCombat
)

// Hooks run on the world when a mode is entered or left. Either may be nil.
type Hooks struct {
	OnEnter func(w *ecs.World) error
	OnExit  func(w *ecs.World) error
}

type Machine struct {
	current    Mode
	pending    Mode
	hasPending bool
	hooks      map[Mode]Hooks
}

func NewMachine(initial Mode) *Machine {
	return &Machine{
		current: initial,
		hooks:   make(map[Mode]Hooks),
	}
}

func (m *Machine) Current() Mode {
	return m.current
}

func (m *Machine) Register(mode Mode, hooks Hooks) {
	m.hooks[mode] = hooks
}

// Request defers a switch to mode until the next Apply. A later request in
// the same tick replaces an earlier one.
func (m *Machine) Request(mode Mode) {
	m.pending = mode
	m.hasPending = true
}

func (m *Machine) Pending() (Mode, bool) {
	return m.pending, m.hasPending
}

// Collect consumes every ModeChangeRequest entity in the world and requests
// the last one seen.
func (m *Machine) Collect(w *ecs.World) {
	kind := component.ModeChangeRequestComponent.Kind()
	for _, e := range ecs.Query(w, kind) {
		if req, ok := ecs.Get(w, e, kind); ok {
			m.Request(req.Mode)
		}
		ecs.DestroyEntity(w, e)
	}
}

// Apply performs the pending switch. It reports whether the mode changed;
// requesting the current mode is a no-op.
func (m *Machine) Apply(w *ecs.World) (bool, error) {
	if !m.hasPending {
		return false, nil
	}
	next := m.pending
	m.hasPending = false
	if next == m.current {
		return false, nil
	}

	prev := m.current
	if h := m.hooks[prev]; h.OnExit != nil {
		if err := h.OnExit(w); err != nil {
			return false, fmt.Errorf("mode: exit %s: %w", prev, err)
		}
	}
	m.current = next
	if h := m.hooks[next]; h.OnEnter != nil {
		if err := h.OnEnter(w); err != nil {
			return true, fmt.Errorf("mode: enter %s: %w", next, err)
		}
	}
	return true, nil
}
