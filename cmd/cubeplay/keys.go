package main

// Key is a decoded keypress: a printable byte or one of the special keys below.
type Key int

const (
	KeyEsc Key = 256 + iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
)

// DecodeKeys splits raw terminal input into keys. CSI and SS3 arrow sequences
// ("\x1b[A", "\x1bOA") become arrow keys, a lone ESC becomes KeyEsc, and any
// other escape sequence is dropped.
func DecodeKeys(data []byte) []Key {
	var keys []Key
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != 27 {
			keys = append(keys, Key(b))
			continue
		}
		if i+1 >= len(data) || (data[i+1] != '[' && data[i+1] != 'O') {
			keys = append(keys, KeyEsc)
			continue
		}
		// Skip parameters up to the final byte.
		j := i + 2
		for j < len(data) && (data[j] < 0x40 || data[j] > 0x7e) {
			j++
		}
		if j >= len(data) {
			break
		}
		switch data[j] {
		case 'A':
			keys = append(keys, KeyUp)
		case 'B':
			keys = append(keys, KeyDown)
		case 'C':
			keys = append(keys, KeyRight)
		case 'D':
			keys = append(keys, KeyLeft)
		}
		i = j
	}
	return keys
}
