package wizard

import (
	"sync"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/clock"
)

// Snapshot is what the hosting shell renders: the draft, where the wizard
// is, and whether the draft is valid
type Snapshot struct {
	Draft         *dnd5e.CharacterDraft `json:"draft"`
	Step          Step                  `json:"step"`
	Sequence      []Step                `json:"sequence"`
	NameConfirmed bool                  `json:"name_confirmed"`
	Validation    Validation            `json:"validation"`
	MissingFields []string              `json:"missing_fields"`
}

// Controller is the only writer of its draft. Apply is safe for concurrent
// use; notifications are delivered in the order the changes were applied.
// Handlers run while notifications are serialized and must not call back
// into the controller.
type Controller struct {
	mu       sync.Mutex
	notifyMu sync.Mutex
	state    State
	clock    clock.Clock
	inputs   validationInputs

	validation Dispatcher[Validation]
	changes    Dispatcher[*dnd5e.CharacterDraft]
}

// NewController starts a controller on draft. A nil clock uses wall time.
func NewController(draft *dnd5e.CharacterDraft, clk clock.Clock) *Controller {
	if clk == nil {
		clk = clock.New()
	}

	state := NewState(draft)
	if state.Draft.CreatedAt == 0 {
		now := clk.Now().Unix()
		state.Draft.CreatedAt = now
		state.Draft.UpdatedAt = now
	}

	return &Controller{
		state:  state,
		clock:  clk,
		inputs: inputsOf(state.Draft),
	}
}

// Apply reduces each event in order and notifies handlers of the result
func (c *Controller) Apply(events ...Event) Snapshot {
	c.mu.Lock()
	return c.applyLocked(events...)
}

// Update picks an event from the current snapshot and applies it in one
// step, so nothing can change the draft between the decision and the
// reduce. decide runs with the controller locked and must not call back
// into it. When decide fails the state is left untouched.
func (c *Controller) Update(decide func(Snapshot) (Event, error)) (Snapshot, error) {
	c.mu.Lock()

	event, err := c.decideLocked(decide)
	if err != nil {
		return Snapshot{}, err
	}
	return c.applyLocked(event), nil
}

// decideLocked runs decide with c.mu held and releases the lock unless
// decide returned an event to apply
func (c *Controller) decideLocked(decide func(Snapshot) (Event, error)) (event Event, err error) {
	keep := false
	defer func() {
		if !keep {
			c.mu.Unlock()
		}
	}()

	event, err = decide(c.snapshotLocked())
	keep = err == nil
	return event, err
}

// applyLocked is entered with c.mu held and releases it
func (c *Controller) applyLocked(events ...Event) Snapshot {
	changed := false
	for _, e := range events {
		next, ok := reduce(c.state, e)
		c.state = next
		changed = changed || ok
	}
	if changed {
		c.state.Draft.UpdatedAt = c.clock.Now().Unix()
	}

	snap := c.snapshotLocked()
	inputs := inputsOf(c.state.Draft)
	validationChanged := inputs != c.inputs
	c.inputs = inputs

	// Hand over to the notify lock before releasing the state lock so
	// notifications can't overtake each other
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	if changed {
		c.changes.Dispatch(snap.Draft.Clone())
	}
	if validationChanged {
		c.validation.Dispatch(snap.Validation)
	}

	return snap
}

// Snapshot returns the current view without changing anything
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Reachable reports whether the user may fill step from this snapshot
func (s Snapshot) Reachable(step Step) bool {
	return reachableFrom(s.NameConfirmed, step, s.Draft)
}

func (c *Controller) snapshotLocked() Snapshot {
	draft := c.state.Draft.Clone()
	return Snapshot{
		Draft:         draft,
		Step:          c.state.Step,
		Sequence:      Sequence(draft),
		NameConfirmed: c.state.NameConfirmed,
		Validation:    Validate(draft),
		MissingFields: MissingFields(draft),
	}
}

// OnValidation installs the validation callback, replacing any earlier one,
// and immediately reports the current status to it
func (c *Controller) OnValidation(fn func(valid bool, errors []string)) *Registration[Validation] {
	var handler func(Validation)
	if fn != nil {
		handler = func(v Validation) { fn(v.Valid, v.Errors) }
	}

	c.mu.Lock()
	current := Validate(c.state.Draft)
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	reg := c.validation.Install(handler)
	if handler != nil {
		reg.Call(current)
	}
	return reg
}

// OnChange installs the draft change callback, replacing any earlier one
func (c *Controller) OnChange(fn func(draft *dnd5e.CharacterDraft)) *Registration[*dnd5e.CharacterDraft] {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	return c.changes.Install(fn)
}
