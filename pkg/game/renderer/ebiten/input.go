package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	engineinput "spacemerc/pkg/engine/input"
)

// keyBinding maps an Ebiten key to the raw code the bindings table knows.
// Held keys with repeat set fire again after the initial delay.
type keyBinding struct {
	key    ebiten.Key
	code   string
	repeat bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeySpace, "space", true},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyF, "f", true},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyBackspace, "backspace", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyF9, "f9", false},
	{ebiten.KeyF12, "f12", false},
}

// gamepadButtons uses the usual XInput-style layout under Ebiten.
var gamepadButtons = []struct {
	button ebiten.GamepadButton
	code   string
	repeat bool
}{
	{ebiten.GamepadButton11, "gamepad_dpad_up", true},
	{ebiten.GamepadButton12, "gamepad_dpad_right", true},
	{ebiten.GamepadButton13, "gamepad_dpad_down", true},
	{ebiten.GamepadButton14, "gamepad_dpad_left", true},
	{ebiten.GamepadButton0, "gamepad_a", true},
	{ebiten.GamepadButton1, "gamepad_b", false},
	{ebiten.GamepadButton7, "gamepad_start", false},
}

// Update implements ebiten.Game.
func (e *EbitenRenderer) Update() error {
	if !e.windowOpened {
		e.windowOpened = true
		e.log.Info("main window opened", zap.Int("width", e.windowWidth), zap.Int("height", e.windowHeight))
	}

	e.app.SetFocused(ebiten.IsFocused())

	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}
	e.app.HandleIntent(intent)
	e.app.Update()

	if e.app.Quit() {
		return ebiten.Termination
	}
	return nil
}

func toIntent(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: device,
		Code:   code,
	}))
}

// checkInput returns the intent of the first key that fires this frame.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, b := range keyBindings {
		key := b.key
		fired := false
		if b.repeat {
			fired = e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, b.code)
		} else {
			fired = inpututil.IsKeyJustPressed(key)
		}
		if fired {
			return toIntent(engineinput.DeviceKeyboard, b.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput reads the left stick and buttons of every connected
// gamepad. The stick acts as a D-pad.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		stickX := ebiten.GamepadAxisValue(id, 0)
		stickY := ebiten.GamepadAxisValue(id, 1)
		sticks := []struct {
			name   string
			active bool
			code   string
		}{
			{"left", stickX < -deadZone, "gamepad_dpad_left"},
			{"right", stickX > deadZone, "gamepad_dpad_right"},
			{"up", stickY < -deadZone, "gamepad_dpad_up"},
			{"down", stickY > deadZone, "gamepad_dpad_down"},
		}
		for _, st := range sticks {
			active := st.active
			if e.shouldRepeatKey(func() bool { return active }, fmt.Sprintf("gamepad_%d_stick_%s", id, st.name)) {
				return toIntent(engineinput.DeviceGamepad, st.code)
			}
		}

		for _, b := range gamepadButtons {
			button := b.button
			fired := false
			if b.repeat {
				fired = e.shouldRepeatKey(func() bool { return ebiten.IsGamepadButtonPressed(id, button) }, fmt.Sprintf("gamepad_%d_%d", id, button))
			} else {
				fired = inpututil.IsGamepadButtonJustPressed(id, button)
			}
			if fired {
				return toIntent(engineinput.DeviceGamepad, b.code)
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()
	state, exists := e.keyRepeatState[code]

	if !isPressed() {
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= e.repeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// Vibrate rumbles every connected gamepad.
func (e *EbitenRenderer) Vibrate() {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:        200 * time.Millisecond,
			StrongMagnitude: 1,
			WeakMagnitude:   1,
		})
	}
}
