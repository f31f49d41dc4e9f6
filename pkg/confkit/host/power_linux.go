//go:build linux

package host

import (
	"errors"
	"os"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// powerButton watches an evdev device for KEY_POWER. A press sets the
// pending flag; the frame loop turns it into a close request.
type powerButton struct {
	device  *evdev.InputDevice
	pending atomic.Bool
}

func watchPowerButton(path string) (*powerButton, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	pb := &powerButton{device: device}
	go pb.run()
	logger().Debug("watching power button", "device", path)
	return pb, nil
}

func (pb *powerButton) run() {
	for {
		event, err := pb.device.ReadOne()
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				logger().Debug("power button watcher stopped", "error", err)
			}
			return
		}
		if event.Type == evdev.EV_KEY && event.Code == evdev.KEY_POWER && event.Value == 1 {
			pb.pending.Store(true)
		}
	}
}

// take reports and clears a pending press.
func (pb *powerButton) take() bool {
	if pb == nil {
		return false
	}
	return pb.pending.CompareAndSwap(true, false)
}

func (pb *powerButton) close() {
	if pb == nil {
		return
	}
	// Closing the device ends the blocked read in run.
	pb.device.Close()
}
