package internal

import (
	"math"
	"testing"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

const frame = time.Second / 60

func TestDampNeverOvershoots(t *testing.T) {
	current := 0.0
	for i := 0; i < 200; i++ {
		current = Damp(current, 20, 0.3, 0.5, frame, frame)
		if current > 20 {
			t.Fatalf("frame %d: current = %v, overshot 20", i, current)
		}
	}
	if current != 20 {
		t.Errorf("current = %v, want snapped to 20", current)
	}
}

func TestDampFrameRateIndependent(t *testing.T) {
	oneStep := Damp(0, 100, 0.3, 0, 2*frame, frame)

	twoSteps := Damp(0, 100, 0.3, 0, frame, frame)
	twoSteps = Damp(twoSteps, 100, 0.3, 0, frame, frame)

	if math.Abs(oneStep-twoSteps) > 1e-9 {
		t.Errorf("one double frame = %v, two frames = %v", oneStep, twoSteps)
	}
	if want := 100 * (1 - 0.7*0.7); math.Abs(oneStep-want) > 1e-9 {
		t.Errorf("Damp = %v, want %v", oneStep, want)
	}
}

func TestDampFactorBounds(t *testing.T) {
	if got := DampFactor(0.3, 0, frame); got != 0 {
		t.Errorf("zero dt factor = %v, want 0", got)
	}
	if got := DampFactor(0.3, time.Hour, frame); got > 1 {
		t.Errorf("huge dt factor = %v, want <= 1", got)
	}
}

func TestApproach(t *testing.T) {
	span := 84 * time.Millisecond

	p := 0.0
	p = Approach(p, 1, 42*time.Millisecond, span)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("half way = %v, want 0.5", p)
	}
	p = Approach(p, 1, time.Second, span)
	if p != 1 {
		t.Errorf("after long step = %v, want 1", p)
	}
	p = Approach(p, 0, time.Second, span)
	if p != 0 {
		t.Errorf("back = %v, want 0", p)
	}
}

func TestDirectionalRepeat(t *testing.T) {
	d := NewDirectionalRepeat()
	start := time.Unix(0, 0)

	if d.Press(constants.VirtualButtonA, start) {
		t.Error("A is not a direction")
	}
	if !d.Press(constants.VirtualButtonDown, start) {
		t.Fatal("Down should be accepted")
	}
	if d.Held() != constants.VirtualButtonDown {
		t.Errorf("Held = %v, want Down", d.Held())
	}

	if got := d.Update(start.Add(100 * time.Millisecond)); got != constants.KeyUnknown {
		t.Errorf("before delay = %v, want Unknown", got)
	}
	if got := d.Update(start.Add(300 * time.Millisecond)); got != constants.KeyDown {
		t.Errorf("after delay = %v, want Down", got)
	}
	if got := d.Update(start.Add(320 * time.Millisecond)); got != constants.KeyUnknown {
		t.Errorf("inside interval = %v, want Unknown", got)
	}
	if got := d.Update(start.Add(350 * time.Millisecond)); got != constants.KeyDown {
		t.Errorf("after interval = %v, want Down", got)
	}

	d.Release(constants.VirtualButtonDown)
	if d.Held() != constants.VirtualButtonUnassigned {
		t.Errorf("Held after release = %v", d.Held())
	}
	if got := d.Update(start.Add(time.Second)); got != constants.KeyUnknown {
		t.Errorf("after release = %v, want Unknown", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range tests {
		if got := ParseLevel(in).String(); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
