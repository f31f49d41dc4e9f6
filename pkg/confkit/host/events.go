package host

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// inputProcessor turns SDL events into Screen input. Gamepad buttons are
// mapped to keys; held directions repeat.
type inputProcessor struct {
	pointer     confkit.Point
	repeat      *internal.DirectionalRepeat
	controllers map[sdl.JoystickID]*sdl.GameController
	lastInput   time.Time
	inputDelay  time.Duration
	outputSize  func() (int32, int32) // Renderer size in pixels
}

func newInputProcessor(inputDelay time.Duration, outputSize func() (int32, int32)) *inputProcessor {
	p := &inputProcessor{
		pointer:     confkit.Point{X: -1, Y: -1},
		repeat:      internal.NewDirectionalRepeat(),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		inputDelay:  inputDelay,
		outputSize:  outputSize,
	}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.openController(i)
	}
	return p
}

func (p *inputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		logger().Debug("failed to open controller", "index", index)
		return
	}
	id := gc.Joystick().InstanceID()
	p.controllers[id] = gc
	logger().Debug("controller connected", "name", gc.Name(), "id", id)
}

func (p *inputProcessor) closeController(id sdl.JoystickID) {
	if gc, ok := p.controllers[id]; ok {
		gc.Close()
		delete(p.controllers, id)
		logger().Debug("controller disconnected", "id", id)
	}
}

func (p *inputProcessor) close() {
	for id := range p.controllers {
		p.closeController(id)
	}
}

func translateKey(sym sdl.Keycode) constants.Key {
	switch sym {
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return constants.KeyEnter
	case sdl.K_ESCAPE:
		return constants.KeyEscape
	case sdl.K_SPACE:
		return constants.KeySpace
	case sdl.K_TAB:
		return constants.KeyTab
	case sdl.K_BACKSPACE:
		return constants.KeyBackspace
	case sdl.K_DELETE:
		return constants.KeyDelete
	case sdl.K_LEFT:
		return constants.KeyLeft
	case sdl.K_RIGHT:
		return constants.KeyRight
	case sdl.K_UP:
		return constants.KeyUp
	case sdl.K_DOWN:
		return constants.KeyDown
	case sdl.K_HOME:
		return constants.KeyHome
	case sdl.K_END:
		return constants.KeyEnd
	case sdl.K_a:
		return constants.KeyA
	case sdl.K_c:
		return constants.KeyC
	case sdl.K_v:
		return constants.KeyV
	}
	return constants.KeyUnknown
}

func translateMods(mod uint16) constants.Modifier {
	m := sdl.Keymod(mod)
	out := constants.ModNone
	if m&sdl.KMOD_SHIFT != 0 {
		out |= constants.ModShift
	}
	if m&sdl.KMOD_CTRL != 0 {
		out |= constants.ModCtrl
	}
	if m&sdl.KMOD_ALT != 0 {
		out |= constants.ModAlt
	}
	if m&sdl.KMOD_GUI != 0 {
		out |= constants.ModSuper
	}
	return out
}

func translateMouseButton(b uint8) (constants.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return constants.MouseButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return constants.MouseButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return constants.MouseButtonMiddle, true
	}
	return 0, false
}

func translateControllerButton(b uint8) constants.VirtualButton {
	switch sdl.GameControllerButton(b) {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	}
	return constants.VirtualButtonUnassigned
}

// dispatch forwards one event to the screen. Window close and quit events
// become close requests so pending changes still get confirmed.
func (p *inputProcessor) dispatch(s *confkit.Screen, event sdl.Event, now time.Time) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.RequestClose()

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			// Data1 and Data2 are window coordinates; lay out in renderer pixels
			// like Run and Configure do.
			s.Resize(p.outputSize())
		}

	case *sdl.MouseMotionEvent:
		p.pointer = confkit.Point{X: e.X, Y: e.Y}
		if e.State&sdl.ButtonLMask() != 0 {
			s.HandlePointerDrag(p.pointer, constants.MouseButtonLeft, e.XRel, e.YRel)
		}

	case *sdl.MouseButtonEvent:
		p.pointer = confkit.Point{X: e.X, Y: e.Y}
		button, ok := translateMouseButton(e.Button)
		if !ok {
			return
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			s.HandlePointerDown(p.pointer, button)
		} else {
			s.HandlePointerUp(p.pointer, button)
		}

	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		s.HandleScroll(p.pointer, dy)

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return
		}
		if key := translateKey(e.Keysym.Sym); key != constants.KeyUnknown {
			s.HandleKey(key, translateMods(e.Keysym.Mod))
		}

	case *sdl.TextInputEvent:
		for _, r := range e.GetText() {
			s.HandleChar(r)
		}

	case *sdl.ControllerButtonEvent:
		button := translateControllerButton(e.Button)
		if button == constants.VirtualButtonUnassigned {
			return
		}
		if e.Type == sdl.CONTROLLERBUTTONUP {
			p.repeat.Release(button)
			return
		}
		if now.Sub(p.lastInput) < p.inputDelay {
			return
		}
		p.lastInput = now
		p.repeat.Press(button, now)
		s.HandleKey(button.Key(), constants.ModNone)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(e.Which)
		}
	}
}

// repeatHeld sends the held direction again when its repeat is due.
func (p *inputProcessor) repeatHeld(s *confkit.Screen, now time.Time) {
	if key := p.repeat.Update(now); key != constants.KeyUnknown {
		s.HandleKey(key, constants.ModNone)
	}
}
