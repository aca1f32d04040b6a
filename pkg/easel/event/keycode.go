package event

import "fmt"

// KeyCode is a virtual key code in the fixed 0-255 Windows code space.
// Mouse buttons are aliased into the key space like the native source does.
// Every byte value is a valid KeyCode, so FromRaw and Raw round-trip for
// all 256 values including codes with no assigned name.
type KeyCode byte

const (
	KeyLButton  KeyCode = 0x01
	KeyRButton  KeyCode = 0x02
	KeyCancel   KeyCode = 0x03
	KeyMButton  KeyCode = 0x04
	KeyXButton1 KeyCode = 0x05
	KeyXButton2 KeyCode = 0x06

	KeyBack    KeyCode = 0x08
	KeyTab     KeyCode = 0x09
	KeyClear   KeyCode = 0x0C
	KeyReturn  KeyCode = 0x0D
	KeyShift   KeyCode = 0x10
	KeyControl KeyCode = 0x11
	KeyMenu    KeyCode = 0x12
	KeyPause   KeyCode = 0x13
	KeyCapital KeyCode = 0x14

	KeyKana       KeyCode = 0x15
	KeyJunja      KeyCode = 0x17
	KeyFinal      KeyCode = 0x18
	KeyHanja      KeyCode = 0x19
	KeyEscape     KeyCode = 0x1B
	KeyConvert    KeyCode = 0x1C
	KeyNonConvert KeyCode = 0x1D
	KeyAccept     KeyCode = 0x1E
	KeyModeChange KeyCode = 0x1F

	KeySpace    KeyCode = 0x20
	KeyPrior    KeyCode = 0x21
	KeyNext     KeyCode = 0x22
	KeyEnd      KeyCode = 0x23
	KeyHome     KeyCode = 0x24
	KeyLeft     KeyCode = 0x25
	KeyUp       KeyCode = 0x26
	KeyRight    KeyCode = 0x27
	KeyDown     KeyCode = 0x28
	KeySelect   KeyCode = 0x29
	KeyPrint    KeyCode = 0x2A
	KeyExecute  KeyCode = 0x2B
	KeySnapshot KeyCode = 0x2C
	KeyInsert   KeyCode = 0x2D
	KeyDelete   KeyCode = 0x2E
	KeyHelp     KeyCode = 0x2F

	Key0 KeyCode = 0x30
	Key1 KeyCode = 0x31
	Key2 KeyCode = 0x32
	Key3 KeyCode = 0x33
	Key4 KeyCode = 0x34
	Key5 KeyCode = 0x35
	Key6 KeyCode = 0x36
	Key7 KeyCode = 0x37
	Key8 KeyCode = 0x38
	Key9 KeyCode = 0x39

	KeyA KeyCode = 0x41
	KeyB KeyCode = 0x42
	KeyC KeyCode = 0x43
	KeyD KeyCode = 0x44
	KeyE KeyCode = 0x45
	KeyF KeyCode = 0x46
	KeyG KeyCode = 0x47
	KeyH KeyCode = 0x48
	KeyI KeyCode = 0x49
	KeyJ KeyCode = 0x4A
	KeyK KeyCode = 0x4B
	KeyL KeyCode = 0x4C
	KeyM KeyCode = 0x4D
	KeyN KeyCode = 0x4E
	KeyO KeyCode = 0x4F
	KeyP KeyCode = 0x50
	KeyQ KeyCode = 0x51
	KeyR KeyCode = 0x52
	KeyS KeyCode = 0x53
	KeyT KeyCode = 0x54
	KeyU KeyCode = 0x55
	KeyV KeyCode = 0x56
	KeyW KeyCode = 0x57
	KeyX KeyCode = 0x58
	KeyY KeyCode = 0x59
	KeyZ KeyCode = 0x5A

	KeyLWin  KeyCode = 0x5B
	KeyRWin  KeyCode = 0x5C
	KeyApps  KeyCode = 0x5D
	KeySleep KeyCode = 0x5F

	KeyNumpad0   KeyCode = 0x60
	KeyNumpad1   KeyCode = 0x61
	KeyNumpad2   KeyCode = 0x62
	KeyNumpad3   KeyCode = 0x63
	KeyNumpad4   KeyCode = 0x64
	KeyNumpad5   KeyCode = 0x65
	KeyNumpad6   KeyCode = 0x66
	KeyNumpad7   KeyCode = 0x67
	KeyNumpad8   KeyCode = 0x68
	KeyNumpad9   KeyCode = 0x69
	KeyMultiply  KeyCode = 0x6A
	KeyAdd       KeyCode = 0x6B
	KeySeparator KeyCode = 0x6C
	KeySubtract  KeyCode = 0x6D
	KeyDecimal   KeyCode = 0x6E
	KeyDivide    KeyCode = 0x6F

	KeyF1  KeyCode = 0x70
	KeyF2  KeyCode = 0x71
	KeyF3  KeyCode = 0x72
	KeyF4  KeyCode = 0x73
	KeyF5  KeyCode = 0x74
	KeyF6  KeyCode = 0x75
	KeyF7  KeyCode = 0x76
	KeyF8  KeyCode = 0x77
	KeyF9  KeyCode = 0x78
	KeyF10 KeyCode = 0x79
	KeyF11 KeyCode = 0x7A
	KeyF12 KeyCode = 0x7B
	KeyF13 KeyCode = 0x7C
	KeyF14 KeyCode = 0x7D
	KeyF15 KeyCode = 0x7E
	KeyF16 KeyCode = 0x7F
	KeyF17 KeyCode = 0x80
	KeyF18 KeyCode = 0x81
	KeyF19 KeyCode = 0x82
	KeyF20 KeyCode = 0x83
	KeyF21 KeyCode = 0x84
	KeyF22 KeyCode = 0x85
	KeyF23 KeyCode = 0x86
	KeyF24 KeyCode = 0x87

	KeyNumLock KeyCode = 0x90
	KeyScroll  KeyCode = 0x91

	KeyLShift   KeyCode = 0xA0
	KeyRShift   KeyCode = 0xA1
	KeyLControl KeyCode = 0xA2
	KeyRControl KeyCode = 0xA3
	KeyLMenu    KeyCode = 0xA4
	KeyRMenu    KeyCode = 0xA5

	KeyBrowserBack      KeyCode = 0xA6
	KeyBrowserForward   KeyCode = 0xA7
	KeyBrowserRefresh   KeyCode = 0xA8
	KeyBrowserStop      KeyCode = 0xA9
	KeyBrowserSearch    KeyCode = 0xAA
	KeyBrowserFavorites KeyCode = 0xAB
	KeyBrowserHome      KeyCode = 0xAC

	KeyVolumeMute        KeyCode = 0xAD
	KeyVolumeDown        KeyCode = 0xAE
	KeyVolumeUp          KeyCode = 0xAF
	KeyMediaNextTrack    KeyCode = 0xB0
	KeyMediaPrevTrack    KeyCode = 0xB1
	KeyMediaStop         KeyCode = 0xB2
	KeyMediaPlayPause    KeyCode = 0xB3
	KeyLaunchMail        KeyCode = 0xB4
	KeyLaunchMediaSelect KeyCode = 0xB5
	KeyLaunchApp1        KeyCode = 0xB6
	KeyLaunchApp2        KeyCode = 0xB7

	KeyOem1      KeyCode = 0xBA
	KeyOemPlus   KeyCode = 0xBB
	KeyOemComma  KeyCode = 0xBC
	KeyOemMinus  KeyCode = 0xBD
	KeyOemPeriod KeyCode = 0xBE
	KeyOem2      KeyCode = 0xBF
	KeyOem3      KeyCode = 0xC0

	KeyGamepadA                       KeyCode = 0xC3
	KeyGamepadB                       KeyCode = 0xC4
	KeyGamepadX                       KeyCode = 0xC5
	KeyGamepadY                       KeyCode = 0xC6
	KeyGamepadRightShoulder           KeyCode = 0xC7
	KeyGamepadLeftShoulder            KeyCode = 0xC8
	KeyGamepadLeftTrigger             KeyCode = 0xC9
	KeyGamepadRightTrigger            KeyCode = 0xCA
	KeyGamepadDpadUp                  KeyCode = 0xCB
	KeyGamepadDpadDown                KeyCode = 0xCC
	KeyGamepadDpadLeft                KeyCode = 0xCD
	KeyGamepadDpadRight               KeyCode = 0xCE
	KeyGamepadMenu                    KeyCode = 0xCF
	KeyGamepadView                    KeyCode = 0xD0
	KeyGamepadLeftThumbstickButton    KeyCode = 0xD1
	KeyGamepadRightThumbstickButton   KeyCode = 0xD2
	KeyGamepadLeftThumbstickUp        KeyCode = 0xD3
	KeyGamepadLeftThumbstickDown      KeyCode = 0xD4
	KeyGamepadLeftThumbstickRight     KeyCode = 0xD5
	KeyGamepadLeftThumbstickLeft      KeyCode = 0xD6
	KeyGamepadRightThumbstickUp       KeyCode = 0xD7
	KeyGamepadRightThumbstickDown     KeyCode = 0xD8
	KeyGamepadRightThumbstickRight    KeyCode = 0xD9
	KeyGamepadRightThumbstickLeft     KeyCode = 0xDA

	KeyOem4       KeyCode = 0xDB
	KeyOem5       KeyCode = 0xDC
	KeyOem6       KeyCode = 0xDD
	KeyOem7       KeyCode = 0xDE
	KeyOem8       KeyCode = 0xDF
	KeyOem102     KeyCode = 0xE2
	KeyProcessKey KeyCode = 0xE5
	KeyPacket     KeyCode = 0xE7

	KeyAttn     KeyCode = 0xF6
	KeyCrSel    KeyCode = 0xF7
	KeyExSel    KeyCode = 0xF8
	KeyErEof    KeyCode = 0xF9
	KeyPlay     KeyCode = 0xFA
	KeyZoom     KeyCode = 0xFB
	KeyPA1      KeyCode = 0xFD
	KeyOemClear KeyCode = 0xFE
)

// FromRaw converts a raw byte from the native source into a KeyCode.
func FromRaw(b byte) KeyCode {
	return KeyCode(b)
}

// Raw returns the native byte value of the key code.
func (k KeyCode) Raw() byte {
	return byte(k)
}

var keyNames = map[KeyCode]string{
	KeyLButton:  "LButton",
	KeyRButton:  "RButton",
	KeyCancel:   "Cancel",
	KeyMButton:  "MButton",
	KeyXButton1: "XButton1",
	KeyXButton2: "XButton2",

	KeyBack:    "Back",
	KeyTab:     "Tab",
	KeyClear:   "Clear",
	KeyReturn:  "Return",
	KeyShift:   "Shift",
	KeyControl: "Control",
	KeyMenu:    "Menu",
	KeyPause:   "Pause",
	KeyCapital: "Capital",

	KeyKana:       "Kana",
	KeyJunja:      "Junja",
	KeyFinal:      "Final",
	KeyHanja:      "Hanja",
	KeyEscape:     "Escape",
	KeyConvert:    "Convert",
	KeyNonConvert: "NonConvert",
	KeyAccept:     "Accept",
	KeyModeChange: "ModeChange",

	KeySpace:    "Space",
	KeyPrior:    "Prior",
	KeyNext:     "Next",
	KeyEnd:      "End",
	KeyHome:     "Home",
	KeyLeft:     "Left",
	KeyUp:       "Up",
	KeyRight:    "Right",
	KeyDown:     "Down",
	KeySelect:   "Select",
	KeyPrint:    "Print",
	KeyExecute:  "Execute",
	KeySnapshot: "Snapshot",
	KeyInsert:   "Insert",
	KeyDelete:   "Delete",
	KeyHelp:     "Help",

	KeyLWin:  "LWin",
	KeyRWin:  "RWin",
	KeyApps:  "Apps",
	KeySleep: "Sleep",

	KeyMultiply:  "Multiply",
	KeyAdd:       "Add",
	KeySeparator: "Separator",
	KeySubtract:  "Subtract",
	KeyDecimal:   "Decimal",
	KeyDivide:    "Divide",

	KeyNumLock: "NumLock",
	KeyScroll:  "Scroll",

	KeyLShift:   "LShift",
	KeyRShift:   "RShift",
	KeyLControl: "LControl",
	KeyRControl: "RControl",
	KeyLMenu:    "LMenu",
	KeyRMenu:    "RMenu",

	KeyBrowserBack:      "BrowserBack",
	KeyBrowserForward:   "BrowserForward",
	KeyBrowserRefresh:   "BrowserRefresh",
	KeyBrowserStop:      "BrowserStop",
	KeyBrowserSearch:    "BrowserSearch",
	KeyBrowserFavorites: "BrowserFavorites",
	KeyBrowserHome:      "BrowserHome",

	KeyVolumeMute:        "VolumeMute",
	KeyVolumeDown:        "VolumeDown",
	KeyVolumeUp:          "VolumeUp",
	KeyMediaNextTrack:    "MediaNextTrack",
	KeyMediaPrevTrack:    "MediaPrevTrack",
	KeyMediaStop:         "MediaStop",
	KeyMediaPlayPause:    "MediaPlayPause",
	KeyLaunchMail:        "LaunchMail",
	KeyLaunchMediaSelect: "LaunchMediaSelect",
	KeyLaunchApp1:        "LaunchApp1",
	KeyLaunchApp2:        "LaunchApp2",

	KeyOem1:      "Oem1",
	KeyOemPlus:   "OemPlus",
	KeyOemComma:  "OemComma",
	KeyOemMinus:  "OemMinus",
	KeyOemPeriod: "OemPeriod",
	KeyOem2:      "Oem2",
	KeyOem3:      "Oem3",

	KeyGamepadA:                     "GamepadA",
	KeyGamepadB:                     "GamepadB",
	KeyGamepadX:                     "GamepadX",
	KeyGamepadY:                     "GamepadY",
	KeyGamepadRightShoulder:         "GamepadRightShoulder",
	KeyGamepadLeftShoulder:          "GamepadLeftShoulder",
	KeyGamepadLeftTrigger:           "GamepadLeftTrigger",
	KeyGamepadRightTrigger:          "GamepadRightTrigger",
	KeyGamepadDpadUp:                "GamepadDpadUp",
	KeyGamepadDpadDown:              "GamepadDpadDown",
	KeyGamepadDpadLeft:              "GamepadDpadLeft",
	KeyGamepadDpadRight:             "GamepadDpadRight",
	KeyGamepadMenu:                  "GamepadMenu",
	KeyGamepadView:                  "GamepadView",
	KeyGamepadLeftThumbstickButton:  "GamepadLeftThumbstickButton",
	KeyGamepadRightThumbstickButton: "GamepadRightThumbstickButton",
	KeyGamepadLeftThumbstickUp:      "GamepadLeftThumbstickUp",
	KeyGamepadLeftThumbstickDown:    "GamepadLeftThumbstickDown",
	KeyGamepadLeftThumbstickRight:   "GamepadLeftThumbstickRight",
	KeyGamepadLeftThumbstickLeft:    "GamepadLeftThumbstickLeft",
	KeyGamepadRightThumbstickUp:     "GamepadRightThumbstickUp",
	KeyGamepadRightThumbstickDown:   "GamepadRightThumbstickDown",
	KeyGamepadRightThumbstickRight:  "GamepadRightThumbstickRight",
	KeyGamepadRightThumbstickLeft:   "GamepadRightThumbstickLeft",

	KeyOem4:       "Oem4",
	KeyOem5:       "Oem5",
	KeyOem6:       "Oem6",
	KeyOem7:       "Oem7",
	KeyOem8:       "Oem8",
	KeyOem102:     "Oem102",
	KeyProcessKey: "ProcessKey",
	KeyPacket:     "Packet",

	KeyAttn:     "Attn",
	KeyCrSel:    "CrSel",
	KeyExSel:    "ExSel",
	KeyErEof:    "ErEof",
	KeyPlay:     "Play",
	KeyZoom:     "Zoom",
	KeyPA1:      "PA1",
	KeyOemClear: "OemClear",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= Key0 && k <= Key9 || k >= KeyA && k <= KeyZ {
		return string(rune(k))
	}
	if k >= KeyNumpad0 && k <= KeyNumpad9 {
		return fmt.Sprintf("Numpad%d", k-KeyNumpad0)
	}
	if k >= KeyF1 && k <= KeyF24 {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	return fmt.Sprintf("KeyCode(0x%02X)", byte(k))
}
