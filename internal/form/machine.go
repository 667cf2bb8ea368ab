package form

import (
	"errors"
	"fmt"

	"github.com/five82/podium/internal/api"
)

// State is a form lifecycle state.
type State int

const (
	Closed State = iota
	Adding
	Previewing
	Editing
	Submitting
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Adding:
		return "adding"
	case Previewing:
		return "previewing"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrTransition is wrapped by every rejected state change.
var ErrTransition = errors.New("invalid form transition")

// Machine tracks where a form is in its lifecycle. The zero value is Closed.
type Machine struct {
	state     State
	prev      State
	editingID string
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Open reports whether a form is showing.
func (m *Machine) Open() bool { return m.state != Closed }

// EditingID returns the id of the entity being edited, or "".
func (m *Machine) EditingID() string { return m.editingID }

// IsEditing reports whether the form targets an existing entity, including
// while that edit is being submitted.
func (m *Machine) IsEditing() bool { return m.editingID != "" }

// OpenAdd moves from Closed to Adding.
func (m *Machine) OpenAdd() error {
	if m.state != Closed {
		return transitionError("open add form", m.state)
	}
	m.state = Adding
	m.editingID = ""
	return nil
}

// OpenAddSingle is OpenAdd for entities that may exist only once. With at
// least one existing entity it fails with a ValidationError carrying message
// and leaves the state unchanged.
func (m *Machine) OpenAddSingle(existing int, message string) error {
	if existing > 0 && !m.IsEditing() {
		return api.Invalid("", message)
	}
	return m.OpenAdd()
}

// Edit targets the entity id. It is rejected while a submission is in
// flight; from any other state it replaces the current form.
func (m *Machine) Edit(id string) error {
	if m.state == Submitting {
		return transitionError("edit", m.state)
	}
	if id == "" {
		return api.Invalid("id", "An id is required.")
	}
	m.state = Editing
	m.editingID = id
	return nil
}

// Preview moves from Adding to Previewing once check passes.
func (m *Machine) Preview(check func() error) error {
	if m.state != Adding {
		return transitionError("preview", m.state)
	}
	if check != nil {
		if err := check(); err != nil {
			return err
		}
	}
	m.state = Previewing
	return nil
}

// Back returns from Previewing to Adding.
func (m *Machine) Back() error {
	if m.state != Previewing {
		return transitionError("leave preview", m.state)
	}
	m.state = Adding
	return nil
}

// Submit enters Submitting from Adding, Previewing or Editing.
func (m *Machine) Submit() error {
	switch m.state {
	case Adding, Previewing, Editing:
		m.prev = m.state
		m.state = Submitting
		return nil
	default:
		return transitionError("submit", m.state)
	}
}

// Succeed closes the form after a confirmed submission.
func (m *Machine) Succeed() {
	if m.state != Submitting {
		return
	}
	m.reset()
}

// Fail returns a failed submission to the state it was sent from.
func (m *Machine) Fail() {
	if m.state != Submitting {
		return
	}
	m.state = m.prev
	m.prev = Closed
}

// Cancel closes the form from any state.
func (m *Machine) Cancel() {
	m.reset()
}

func (m *Machine) reset() {
	m.state = Closed
	m.prev = Closed
	m.editingID = ""
}

func transitionError(action string, from State) error {
	return fmt.Errorf("%s from %s: %w", action, from, ErrTransition)
}
