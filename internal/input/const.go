package input

// Pointer button codes (linux BTN_*).
const (
	BtnLeft    uint32 = 0x110
	BtnRight   uint32 = 0x111
	BtnMiddle  uint32 = 0x112
	BtnSide    uint32 = 0x113
	BtnExtra   uint32 = 0x114
	BtnForward uint32 = 0x115
	BtnBack    uint32 = 0x116
	BtnTask    uint32 = 0x117
)

// Keycodes (linux KEY_*).
const (
	KeyEscape     uint32 = 1
	Key1          uint32 = 2
	Key2          uint32 = 3
	Key3          uint32 = 4
	Key4          uint32 = 5
	Key5          uint32 = 6
	Key6          uint32 = 7
	Key7          uint32 = 8
	Key8          uint32 = 9
	Key9          uint32 = 10
	Key0          uint32 = 11
	KeyMinus      uint32 = 12
	KeyEqual      uint32 = 13
	KeyBackspace  uint32 = 14
	KeyTab        uint32 = 15
	KeyQ          uint32 = 16
	KeyW          uint32 = 17
	KeyE          uint32 = 18
	KeyR          uint32 = 19
	KeyT          uint32 = 20
	KeyY          uint32 = 21
	KeyU          uint32 = 22
	KeyI          uint32 = 23
	KeyO          uint32 = 24
	KeyP          uint32 = 25
	KeyReturn     uint32 = 28
	KeyLeftCtrl   uint32 = 29
	KeyA          uint32 = 30
	KeyS          uint32 = 31
	KeyD          uint32 = 32
	KeyF          uint32 = 33
	KeyG          uint32 = 34
	KeyH          uint32 = 35
	KeyJ          uint32 = 36
	KeyK          uint32 = 37
	KeyL          uint32 = 38
	KeyLeftShift  uint32 = 42
	KeyZ          uint32 = 44
	KeyX          uint32 = 45
	KeyC          uint32 = 46
	KeyV          uint32 = 47
	KeyB          uint32 = 48
	KeyN          uint32 = 49
	KeyM          uint32 = 50
	KeyRightShift uint32 = 54
	KeyLeftAlt    uint32 = 56
	KeySpace      uint32 = 57
	KeyF1         uint32 = 59
	KeyF2         uint32 = 60
	KeyF3         uint32 = 61
	KeyF4         uint32 = 62
	KeyF5         uint32 = 63
	KeyF6         uint32 = 64
	KeyF7         uint32 = 65
	KeyF8         uint32 = 66
	KeyF9         uint32 = 67
	KeyF10        uint32 = 68
	KeyF11        uint32 = 87
	KeyF12        uint32 = 88
	KeyRightCtrl  uint32 = 97
	KeyRightAlt   uint32 = 100
	KeyUp         uint32 = 103
	KeyLeft       uint32 = 105
	KeyRight      uint32 = 106
	KeyDown       uint32 = 108
	KeyLeftLogo   uint32 = 125
	KeyRightLogo  uint32 = 126
)
