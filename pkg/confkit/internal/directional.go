package internal

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

// DirectionalRepeat turns a held gamepad direction into repeated key
// presses: one after Delay, then one every Interval until release.
type DirectionalRepeat struct {
	Delay    time.Duration
	Interval time.Duration

	held        constants.VirtualButton
	since       time.Time
	hasRepeated bool
}

// NewDirectionalRepeat creates a repeater with 300ms initial delay and 50ms interval.
func NewDirectionalRepeat() *DirectionalRepeat {
	return &DirectionalRepeat{
		Delay:    300 * time.Millisecond,
		Interval: 50 * time.Millisecond,
	}
}

func isDirection(b constants.VirtualButton) bool {
	switch b {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// Press records a direction being held. Returns false for non-directional buttons.
func (d *DirectionalRepeat) Press(button constants.VirtualButton, now time.Time) bool {
	if !isDirection(button) {
		return false
	}
	d.held = button
	d.since = now
	d.hasRepeated = false
	return true
}

// Release stops repeating if button is the held direction.
func (d *DirectionalRepeat) Release(button constants.VirtualButton) bool {
	if !isDirection(button) {
		return false
	}
	if d.held == button {
		d.Reset()
	}
	return true
}

// Held returns the held direction, or VirtualButtonUnassigned.
func (d *DirectionalRepeat) Held() constants.VirtualButton {
	return d.held
}

// Update returns the key to repeat at now, or KeyUnknown when nothing is due.
// Call once per frame.
func (d *DirectionalRepeat) Update(now time.Time) constants.Key {
	if d.held == constants.VirtualButtonUnassigned {
		return constants.KeyUnknown
	}

	threshold := d.Interval
	if !d.hasRepeated {
		threshold = d.Delay
	}

	if now.Sub(d.since) >= threshold {
		d.since = now
		d.hasRepeated = true
		return d.held.Key()
	}
	return constants.KeyUnknown
}

// Reset clears the held direction.
func (d *DirectionalRepeat) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
}
