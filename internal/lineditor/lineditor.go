// Package lineditor implements a single-threaded, raw-mode line editor for
// pyc's interactive mode: character-by-character insertion with live
// transliteration preview, cursor movement, history navigation, and
// Ctrl-R reverse search.
package lineditor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/chrisvisintin/pyc-go/internal/history"
	"github.com/chrisvisintin/pyc-go/internal/ioprocessor"
)

// ErrTtyAcquireFailed is returned by Open when stdin is not a terminal or
// raw mode could not be entered.
var ErrTtyAcquireFailed = errors.New("lineditor: could not acquire raw tty")

// Result is what Editor.ReadLine returns.
type Result struct {
	// Line is the submitted line, in the user's configured alphabet.
	Line string
	// EOF is true when Ctrl-D was pressed on an empty line.
	EOF bool
	// Interrupted is true when Ctrl-C cleared the line (the caller
	// should re-prompt rather than submit anything).
	Interrupted bool
}

// Editor owns raw-mode terminal state and the composing buffer.
type Editor struct {
	in     *os.File
	out    io.Writer
	oldState *term.State
	proc   *ioprocessor.Processor
	hist   *history.Buffer
	reader *bufio.Reader
}

// Open acquires raw mode over stdin. Callers must call Close on every exit
// path to restore cooked mode.
func Open(in *os.File, out io.Writer, proc *ioprocessor.Processor, hist *history.Buffer) (*Editor, error) {
	if !isatty.IsTerminal(in.Fd()) {
		return nil, ErrTtyAcquireFailed
	}
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTtyAcquireFailed, err)
	}
	return &Editor{
		in:       in,
		out:      out,
		oldState: state,
		proc:     proc,
		hist:     hist,
		reader:   bufio.NewReader(in),
	}, nil
}

// Close restores the terminal's original mode. It is safe to call more
// than once.
func (e *Editor) Close() error {
	if e.oldState == nil {
		return nil
	}
	err := term.Restore(int(e.in.Fd()), e.oldState)
	e.oldState = nil
	return err
}

const (
	ctrlA = 1
	ctrlC = 3
	ctrlD = 4
	ctrlE = 5
	ctrlG = 7
	ctrlR = 18
	bs    = 8
	tab   = 9
	lf    = 10
	cr    = 13
	esc   = 27
	del   = 127
)

// ReadLine reads and edits one line, echoing a live-transliterated
// preview as characters are inserted, until Enter, Ctrl-C, or Ctrl-D.
func (e *Editor) ReadLine(prompt string) (Result, error) {
	buf := []rune{}
	cursor := 0
	historyIdx := -1

	e.write(prompt)

	for {
		r, special, err := e.readKey()
		if err != nil {
			return Result{}, err
		}

		switch {
		case special == keyEnter:
			e.write("\r\n")
			line := string(buf)
			return Result{Line: e.expandHistoryRecall(line)}, nil

		case special == keyCtrlC:
			e.write("\r\n")
			return Result{Interrupted: true}, nil

		case special == keyCtrlD:
			if len(buf) == 0 {
				e.write("\r\n")
				return Result{EOF: true}, nil
			}

		case special == keyBackspace:
			if cursor > 0 {
				buf = append(buf[:cursor-1], buf[cursor:]...)
				cursor--
				e.redraw(prompt, buf, cursor)
			}

		case special == keyLeft:
			if cursor > 0 {
				cursor--
				e.redraw(prompt, buf, cursor)
			}

		case special == keyRight:
			if cursor < len(buf) {
				cursor++
				e.redraw(prompt, buf, cursor)
			}

		case special == keyHome:
			cursor = 0
			e.redraw(prompt, buf, cursor)

		case special == keyEnd:
			cursor = len(buf)
			e.redraw(prompt, buf, cursor)

		case special == keyUp:
			if e.hist != nil {
				if entry, ok := e.hist.At(historyIdx + 1); ok {
					historyIdx++
					buf = []rune(entry)
					cursor = len(buf)
					e.redraw(prompt, buf, cursor)
				}
			}

		case special == keyDown:
			if historyIdx > 0 {
				historyIdx--
				if entry, ok := e.hist.At(historyIdx); ok {
					buf = []rune(entry)
					cursor = len(buf)
					e.redraw(prompt, buf, cursor)
				}
			} else if historyIdx == 0 {
				historyIdx = -1
				buf = nil
				cursor = 0
				e.redraw(prompt, buf, cursor)
			}

		case special == keyTab:
			buf = insertAt(buf, cursor, '\t')
			cursor++
			e.redraw(prompt, buf, cursor)

		case special == keyCtrlR:
			result, ok, err := e.reverseSearch()
			if err != nil {
				return Result{}, err
			}
			if ok {
				buf = []rune(result)
				cursor = len(buf)
			}
			e.redraw(prompt, buf, cursor)

		case special == keyNone:
			buf = insertAt(buf, cursor, r)
			cursor++
			e.redraw(prompt, buf, cursor)
		}
	}
}

// KeyEvent is one decoded keypress handed back by PollKey, independent of
// the package's internal key enum, for callers that only need to tell
// Ctrl-C and Enter apart from ordinary input.
type KeyEvent struct {
	Rune      rune
	CtrlC     bool
	Enter     bool
	Backspace bool
}

// PollKey waits up to timeout for one keypress without blocking past it.
// ok is false on timeout. The runtime uses this to keep servicing Ctrl-C
// on the terminal while a submitted command is SubprocessRunning, per the
// single-threaded cooperative loop the rest of the runtime follows.
func (e *Editor) PollKey(timeout time.Duration) (ev KeyEvent, ok bool, err error) {
	r, k, ok, err := e.readKeyTimeout(timeout)
	if err != nil || !ok {
		return KeyEvent{}, ok, err
	}
	return KeyEvent{
		Rune:      r,
		CtrlC:     k == keyCtrlC,
		Enter:     k == keyEnter,
		Backspace: k == keyBackspace,
	}, true, nil
}

// expandHistoryRecall substitutes a leading "!{n}" with history entry n,
// per spec's history-recall-by-index behavior.
func (e *Editor) expandHistoryRecall(line string) string {
	if e.hist == nil || !strings.HasPrefix(line, "!{") {
		return line
	}
	end := strings.IndexByte(line, '}')
	if end < 0 {
		return line
	}
	n, err := strconv.Atoi(line[2:end])
	if err != nil {
		return line
	}
	if entry, ok := e.hist.At(n); ok {
		return entry + line[end+1:]
	}
	return line
}

// redraw rewrites the current line with a live transliteration preview of
// the composed buffer, placing the cursor at its rune offset.
func (e *Editor) redraw(prompt string, buf []rune, cursor int) {
	preview := e.proc.ExpressionToLatin(string(buf))
	e.write("\r\x1b[K")
	e.write(prompt)
	e.write(preview)
	// cursor indexes into buf, not the transliterated preview; reposition
	// by backing up from the preview's end.
	if back := len([]rune(preview)) - cursor; back > 0 {
		e.write(fmt.Sprintf("\x1b[%dD", back))
	}
}

func (e *Editor) write(s string) {
	io.WriteString(e.out, s)
}

func insertAt(buf []rune, pos int, r rune) []rune {
	out := make([]rune, 0, len(buf)+1)
	out = append(out, buf[:pos]...)
	out = append(out, r)
	out = append(out, buf[pos:]...)
	return out
}
