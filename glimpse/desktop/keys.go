package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/appbase/glimpse"
)

var glfwToKey = map[glfw.Key]glimpse.Key{
	glfw.KeyEscape: glimpse.KeyEscape,

	glfw.KeyF1:  glimpse.KeyF1,
	glfw.KeyF2:  glimpse.KeyF2,
	glfw.KeyF3:  glimpse.KeyF3,
	glfw.KeyF4:  glimpse.KeyF4,
	glfw.KeyF5:  glimpse.KeyF5,
	glfw.KeyF6:  glimpse.KeyF6,
	glfw.KeyF7:  glimpse.KeyF7,
	glfw.KeyF8:  glimpse.KeyF8,
	glfw.KeyF9:  glimpse.KeyF9,
	glfw.KeyF10: glimpse.KeyF10,
	glfw.KeyF11: glimpse.KeyF11,
	glfw.KeyF12: glimpse.KeyF12,

	glfw.Key1: glimpse.KeyOne,
	glfw.Key2: glimpse.KeyTwo,
	glfw.Key3: glimpse.KeyThree,
	glfw.Key4: glimpse.KeyFour,
	glfw.Key5: glimpse.KeyFive,
	glfw.Key6: glimpse.KeySix,
	glfw.Key7: glimpse.KeySeven,
	glfw.Key8: glimpse.KeyEight,
	glfw.Key9: glimpse.KeyNine,
	glfw.Key0: glimpse.KeyZero,

	glfw.KeyA: glimpse.KeyA,
	glfw.KeyB: glimpse.KeyB,
	glfw.KeyC: glimpse.KeyC,
	glfw.KeyD: glimpse.KeyD,
	glfw.KeyE: glimpse.KeyE,
	glfw.KeyF: glimpse.KeyF,
	glfw.KeyG: glimpse.KeyG,
	glfw.KeyH: glimpse.KeyH,
	glfw.KeyI: glimpse.KeyI,
	glfw.KeyJ: glimpse.KeyJ,
	glfw.KeyK: glimpse.KeyK,
	glfw.KeyL: glimpse.KeyL,
	glfw.KeyM: glimpse.KeyM,
	glfw.KeyN: glimpse.KeyN,
	glfw.KeyO: glimpse.KeyO,
	glfw.KeyP: glimpse.KeyP,
	glfw.KeyQ: glimpse.KeyQ,
	glfw.KeyR: glimpse.KeyR,
	glfw.KeyS: glimpse.KeyS,
	glfw.KeyT: glimpse.KeyT,
	glfw.KeyU: glimpse.KeyU,
	glfw.KeyV: glimpse.KeyV,
	glfw.KeyW: glimpse.KeyW,
	glfw.KeyX: glimpse.KeyX,
	glfw.KeyY: glimpse.KeyY,
	glfw.KeyZ: glimpse.KeyZ,

	glfw.KeyUp:    glimpse.KeyUp,
	glfw.KeyDown:  glimpse.KeyDown,
	glfw.KeyLeft:  glimpse.KeyLeft,
	glfw.KeyRight: glimpse.KeyRight,

	glfw.KeyTab:       glimpse.KeyTab,
	glfw.KeyDelete:    glimpse.KeyDelete,
	glfw.KeyBackspace: glimpse.KeyBackspace,
	glfw.KeyEnter:     glimpse.KeyEnter,
	glfw.KeySpace:     glimpse.KeySpace,

	glfw.KeyRightShift:   glimpse.KeyRightShift,
	glfw.KeyLeftShift:    glimpse.KeyLeftShift,
	glfw.KeyRightControl: glimpse.KeyRightCtrl,
	glfw.KeyLeftControl:  glimpse.KeyLeftCtrl,
	glfw.KeyRightSuper:   glimpse.KeyRightMeta,
	glfw.KeyLeftSuper:    glimpse.KeyLeftMeta,
	glfw.KeyRightAlt:     glimpse.KeyRightAlt,
	glfw.KeyLeftAlt:      glimpse.KeyLeftAlt,
}

var glfwToMouseButton = map[glfw.MouseButton]glimpse.MouseButton{
	glfw.MouseButtonLeft:   glimpse.MouseButtonLeft,
	glfw.MouseButtonMiddle: glimpse.MouseButtonMiddle,
	glfw.MouseButtonRight:  glimpse.MouseButtonRight,
}

// lookupKey maps a glfw key to its glimpse.Key. All keys without a mapping,
// including glfw.KeyUnknown, map to glimpse.KeyUnmapped.
func lookupKey(glfwKey glfw.Key) (glimpse.Key, bool) {
	key, ok := glfwToKey[glfwKey]
	if !ok {
		return glimpse.KeyUnmapped, false
	}

	return key, true
}

func mouseButtonOf(btn glfw.MouseButton) glimpse.MouseButton {
	// unknown buttons map to the zero value MouseButtonUnmapped
	return glfwToMouseButton[btn]
}
