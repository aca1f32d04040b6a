package event

import "testing"

func TestKeyCodeRoundTrip(t *testing.T) {
	for b := 0; b <= 255; b++ {
		k := FromRaw(byte(b))
		if got := k.Raw(); got != byte(b) {
			t.Fatalf("round trip broke at %#02x: got %#02x", b, got)
		}
	}
}

func TestKeyCodeNames(t *testing.T) {
	cases := []struct {
		key  KeyCode
		want string
	}{
		{KeyEscape, "Escape"},
		{KeyLButton, "LButton"},
		{KeySpace, "Space"},
		{KeyA, "A"},
		{Key7, "7"},
		{KeyNumpad3, "Numpad3"},
		{KeyF12, "F12"},
		{KeyOemClear, "OemClear"},
		{KeyCode(0x07), "KeyCode(0x07)"},
		{KeyCode(0xFF), "KeyCode(0xFF)"},
	}
	for _, c := range cases {
		if got := c.key.String(); got != c.want {
			t.Fatalf("String(%#02x) = %q, want %q", byte(c.key), got, c.want)
		}
	}
}
