package lineditor

import (
	"errors"
	"os"
	"time"
)

type key int

const (
	keyNone key = iota
	keyEnter
	keyBackspace
	keyLeft
	keyRight
	keyUp
	keyDown
	keyHome
	keyEnd
	keyTab
	keyCtrlC
	keyCtrlD
	keyCtrlR
)

// readKey reads one logical keypress from the raw-mode stream: either a
// printable rune (special == keyNone) or a recognized control/escape
// sequence. Mirrors the byte classification of a termios-raw read loop:
// backspace/delete, Enter, Ctrl-prefixed bytes, and ESC-led arrow/Home/End
// sequences.
func (e *Editor) readKey() (rune, key, error) {
	b, err := e.reader.ReadByte()
	if err != nil {
		return 0, keyNone, err
	}

	switch b {
	case bs, del:
		return 0, keyBackspace, nil
	case lf, cr:
		return 0, keyEnter, nil
	case tab:
		return 0, keyTab, nil
	case ctrlA:
		return 0, keyHome, nil
	case ctrlE:
		return 0, keyEnd, nil
	case ctrlC:
		return 0, keyCtrlC, nil
	case ctrlD:
		return 0, keyCtrlD, nil
	case ctrlR:
		return 0, keyCtrlR, nil
	case esc:
		return e.readEscapeSequence()
	}

	if b < 0x20 {
		// Unhandled control byte: ignore.
		return e.readKey()
	}

	return e.readRune(b)
}

// readKeyTimeout behaves like readKey but gives up after d instead of
// blocking forever: used to poll the terminal for Ctrl-C while a child
// command is SubprocessRunning. ok is false on timeout, not an error.
func (e *Editor) readKeyTimeout(d time.Duration) (r rune, k key, ok bool, err error) {
	_ = e.in.SetReadDeadline(time.Now().Add(d))
	defer e.in.SetReadDeadline(time.Time{})

	r, k, err = e.readKey()
	if err != nil {
		if os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded) {
			return 0, keyNone, false, nil
		}
		return 0, keyNone, false, err
	}
	return r, k, true, nil
}

func (e *Editor) readEscapeSequence() (rune, key, error) {
	b1, err := e.reader.ReadByte()
	if err != nil {
		return 0, keyNone, err
	}
	if b1 != '[' {
		return 0, keyNone, nil
	}
	b2, err := e.reader.ReadByte()
	if err != nil {
		return 0, keyNone, err
	}
	switch b2 {
	case 'A':
		return 0, keyUp, nil
	case 'B':
		return 0, keyDown, nil
	case 'C':
		return 0, keyRight, nil
	case 'D':
		return 0, keyLeft, nil
	case 'H':
		return 0, keyHome, nil
	case 'F':
		return 0, keyEnd, nil
	default:
		return 0, keyNone, nil
	}
}

// readRune decodes a (possibly multi-byte) UTF-8 rune starting at first,
// reading continuation bytes as needed.
func (e *Editor) readRune(first byte) (rune, key, error) {
	n := utf8SeqLen(first)
	buf := make([]byte, 0, n)
	buf = append(buf, first)
	for len(buf) < n {
		b, err := e.reader.ReadByte()
		if err != nil {
			return 0, keyNone, err
		}
		buf = append(buf, b)
	}
	r := decodeRune(buf)
	return r, keyNone, nil
}

func utf8SeqLen(b byte) int {
	switch {
	case b&0x80 == 0:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

func decodeRune(buf []byte) rune {
	r := []rune(string(buf))
	if len(r) == 0 {
		return 0
	}
	return r[0]
}
