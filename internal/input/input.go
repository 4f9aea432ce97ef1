// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/skyshooter/internal/game"
)

// keyHoldDuration is how long a direction counts as held after its last byte.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	// Held directions.
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Presses seen since the previous frame.
	Fire  int
	Enter bool
	Pause bool
	Menu  bool
	Quit  bool

	Pressed []byte // Raw bytes read this frame
	Closed  bool   // The reader hit EOF or failed
}

// Controls maps the input to what a game frame consumes.
func (in Input) Controls() game.Controls {
	return game.Controls{
		Left:    in.Left,
		Right:   in.Right,
		Up:      in.Up,
		Down:    in.Down,
		Shots:   in.Fire,
		Confirm: in.Enter,
		Pause:   in.Pause,
		Menu:    in.Menu,
	}
}

// keyState tracks the last time each direction was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time

	// pending holds an escape sequence cut off at the end of a read. It is
	// completed by the next read, or taken as a bare Esc if nothing follows.
	pending []byte
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets held directions, so a key held across a screen change
// does not leak into the next screen.
func (s *Stream) ResetKeyInput() {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	now := s.now()
	in := parse(&s.state, buf, now)
	in.Closed = s.closed
	return in
}

// parse updates the hold timestamps from buf and returns the frame's input.
// Bytes of an escape sequence split across reads are carried in state.
func parse(state *keyState, buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	stale := len(buf) == 0 // nothing new arrived since the last read
	if len(state.pending) > 0 {
		buf = append(state.pending, buf...)
		state.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			rest := len(buf) - i - 1
			introducer := rest >= 1 && (buf[i+1] == '[' || buf[i+1] == 'O')

			switch {
			case introducer && rest >= 2:
				// CSI (ESC [) or SS3 (ESC O) sequence: arrows in normal and
				// application cursor mode.
				applyArrow(state, buf[i+2], now)
				i += 2
			case (rest == 0 || introducer) && !stale:
				state.pending = append(state.pending[:0], buf[i:]...)
				i = len(buf)
			default:
				in.Menu = true
				if introducer {
					i++
				}
			}
			continue
		}

		switch b {
		case 'a', 'A', 'j', 'J':
			state.left = now
		case 'd', 'D', 'l', 'L':
			state.right = now
		case 'w', 'W', 'i', 'I':
			state.up = now
		case 's', 'S', 'k', 'K':
			state.down = now
		case ' ':
			in.Fire++
		case '\r', '\n':
			in.Enter = true
		case 'p', 'P':
			in.Pause = true
		case 'm', 'M':
			in.Menu = true
		case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
			in.Quit = true
		}
	}

	in.Left = now.Sub(state.left) < keyHoldDuration
	in.Right = now.Sub(state.right) < keyHoldDuration
	in.Up = now.Sub(state.up) < keyHoldDuration
	in.Down = now.Sub(state.down) < keyHoldDuration
	return in
}

func applyArrow(state *keyState, code byte, now time.Time) {
	switch code {
	case 'A':
		state.up = now
	case 'B':
		state.down = now
	case 'C':
		state.right = now
	case 'D':
		state.left = now
	}
}
