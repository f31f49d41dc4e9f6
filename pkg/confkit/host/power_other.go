//go:build !linux

package host

import "errors"

type powerButton struct{}

func watchPowerButton(string) (*powerButton, error) {
	return nil, errors.New("power button watching needs evdev")
}

func (pb *powerButton) take() bool { return false }
func (pb *powerButton) close()     {}
