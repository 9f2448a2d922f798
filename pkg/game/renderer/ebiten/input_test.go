package ebiten

import (
	"testing"

	"github.com/stretchr/testify/assert"

	engineinput "spacemerc/pkg/engine/input"
)

func TestEveryKeyBindingMapsToAnAction(t *testing.T) {
	for _, b := range keyBindings {
		intent := toIntent(engineinput.DeviceKeyboard, b.code)
		assert.NotEqual(t, engineinput.ActionNone, intent.Action, b.code)
	}
	for _, b := range gamepadButtons {
		intent := toIntent(engineinput.DeviceGamepad, b.code)
		assert.NotEqual(t, engineinput.ActionNone, intent.Action, b.code)
	}
}

func TestShouldRepeatKeyWaitsForInitialDelay(t *testing.T) {
	e := &EbitenRenderer{keyRepeatState: map[string]keyRepeatInfo{}, repeatInterval: 100}
	held := true
	pressed := func() bool { return held }

	assert.True(t, e.shouldRepeatKey(pressed, "w"), "first press fires")
	assert.False(t, e.shouldRepeatKey(pressed, "w"), "held key waits for the delay")

	held = false
	assert.False(t, e.shouldRepeatKey(pressed, "w"))
	assert.NotContains(t, e.keyRepeatState, "w")

	held = true
	assert.True(t, e.shouldRepeatKey(pressed, "w"), "release resets the repeat")
}

func TestStyleColorFallsBackToText(t *testing.T) {
	assert.Equal(t, colorText, styleColor(-1))
	assert.Equal(t, 20, columns(144))
}
