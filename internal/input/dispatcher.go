package input

import (
	"github.com/ja-he/flycreate/internal/control/action"
)

// Dispatcher is the table of globally bound key combinations.
// Each combination triggers at most one action; binding a combination again
// replaces the previous binding.
//
// Implements SimpleInputProcessor.
type Dispatcher struct {
	bindings map[comboSlot]binding
}

type binding struct {
	combo  Combo
	owner  string
	action action.Action
}

// NewDispatcher returns a pointer to a new dispatcher without bindings.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{bindings: make(map[comboSlot]binding)}
}

// Bind binds the combination to the action on behalf of owner.
func (d *Dispatcher) Bind(c Combo, owner string, a action.Action) {
	d.bindings[c.slot()] = binding{combo: c, owner: owner, action: a}
}

// Unbind removes the binding for the combination, if it is held by owner.
// Returns whether a binding was removed.
func (d *Dispatcher) Unbind(c Combo, owner string) bool {
	b, ok := d.bindings[c.slot()]
	if !ok || b.owner != owner {
		return false
	}
	delete(d.bindings, c.slot())
	return true
}

// Owner returns the owner of the binding for the combination, if any.
func (d *Dispatcher) Owner(c Combo) (string, bool) {
	b, ok := d.bindings[c.slot()]
	return b.owner, ok
}

// Len returns the number of bound combinations.
func (d *Dispatcher) Len() int {
	return len(d.bindings)
}

// CapturesInput always returns false; the dispatcher only acts on bound
// combinations.
func (d *Dispatcher) CapturesInput() bool { return false }

// ProcessInput triggers the action bound to the key press, if any.
// Returns whether an action was triggered, in which case the key press is
// consumed.
func (d *Dispatcher) ProcessInput(k Key) bool {
	for _, slot := range k.normalized() {
		if b, ok := d.bindings[slot]; ok {
			b.action.Do()
			return true
		}
	}
	return false
}

// GetHelp returns the explanations of all bound combinations.
func (d *Dispatcher) GetHelp() Help {
	result := Help{}
	for _, b := range d.bindings {
		result[b.combo.Identifier()] = b.action.Explain()
	}
	return result
}
