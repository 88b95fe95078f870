package glimpse

//go:generate go tool stringer -type=Key -trimprefix=Key
//go:generate go tool stringer -type=MouseButton -trimprefix=MouseButton

// Key identifies a keyboard key independent of the platform backend.
//
// Native key codes without a counterpart in this enumeration are reported
// as KeyUnmapped. All of them share that one value, so holding two unmapped
// keys and releasing one of them releases KeyUnmapped as a whole.
type Key int

const (
	KeyUnmapped Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyOne
	KeyTwo
	KeyThree
	KeyFour
	KeyFive
	KeySix
	KeySeven
	KeyEight
	KeyNine
	KeyZero
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyDelete
	KeyRightShift
	KeyLeftShift
	KeyRightCtrl
	KeyLeftCtrl
	KeyRightMeta
	KeyLeftMeta
	KeyRightAlt
	KeyLeftAlt
	KeyBackspace
	KeyEnter
	KeySpace
)

// MouseButton identifies a pointer button. Like Key, buttons the backend
// does not know about collapse into MouseButtonUnmapped.
type MouseButton int

const (
	MouseButtonUnmapped MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)
