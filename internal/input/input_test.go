package input

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParse_Keys(t *testing.T) {
	now := time.Unix(1000, 0)
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"wasd", "wa", Input{Up: true, Left: true}},
		{"ijkl", "kl", Input{Down: true, Right: true}},
		{"arrows", "\x1b[A\x1b[D", Input{Up: true, Left: true}},
		{"application arrows", "\x1bOB\x1bOC", Input{Down: true, Right: true}},
		{"fire counts presses", "   ", Input{Fire: 3}},
		{"enter", "\r", Input{Enter: true}},
		{"pause", "p", Input{Pause: true}},
		{"menu", "m", Input{Menu: true}},
		{"escape then key", "\x1bm", Input{Menu: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"unknown", "z9", Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state keyState
			got := parse(&state, []byte(tt.in), now)
			got.Pressed = nil
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_SplitArrow(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
	}{
		{"after escape", []string{"\x1b", "[A"}},
		{"after introducer", []string{"\x1b[", "A"}},
		{"application mode", []string{"\x1bO", "A"}},
		{"byte by byte", []string{"\x1b", "[", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state keyState
			now := time.Unix(1000, 0)

			var last Input
			for i, chunk := range tt.chunks {
				last = parse(&state, []byte(chunk), now)
				if last.Menu || last.Left {
					t.Fatalf("read %d: %+v, want no menu and no left", i, last)
				}
				now = now.Add(16 * time.Millisecond)
			}
			if !last.Up {
				t.Errorf("Up = false after the sequence completed, want true")
			}
			if len(state.pending) != 0 {
				t.Errorf("pending = %q, want empty", state.pending)
			}
		})
	}
}

func TestParse_BareEscape(t *testing.T) {
	var state keyState
	now := time.Unix(1000, 0)

	if in := parse(&state, []byte("\x1b"), now); in.Menu {
		t.Fatal("escape at the end of a read should wait for the next read")
	}
	if in := parse(&state, nil, now.Add(16*time.Millisecond)); !in.Menu {
		t.Error("escape with nothing following should open the menu")
	}
	if in := parse(&state, nil, now.Add(32*time.Millisecond)); in.Menu {
		t.Error("escape must be reported once")
	}

	// A cut-off introducer with nothing following is still a bare escape.
	parse(&state, []byte("\x1b["), now)
	if in := parse(&state, nil, now.Add(16*time.Millisecond)); !in.Menu || in.Left {
		t.Errorf("stale ESC [ = %+v, want menu only", in)
	}
}

func TestParse_HoldWindow(t *testing.T) {
	var state keyState
	start := time.Unix(1000, 0)

	parse(&state, []byte("d"), start)

	if in := parse(&state, nil, start.Add(keyHoldDuration/2)); !in.Right {
		t.Error("direction should still be held inside the window")
	}
	if in := parse(&state, nil, start.Add(keyHoldDuration)); in.Right {
		t.Error("direction should be released after the window")
	}
}

func TestParse_DiscreteKeysDoNotRepeat(t *testing.T) {
	var state keyState
	now := time.Unix(1000, 0)

	parse(&state, []byte(" p"), now)
	in := parse(&state, nil, now.Add(time.Millisecond))
	if in.Fire != 0 || in.Pause {
		t.Errorf("presses leaked into the next frame: %+v", in)
	}
}

func TestControls(t *testing.T) {
	in := Input{Left: true, Down: true, Fire: 2, Enter: true, Pause: true, Menu: true}
	c := in.Controls()
	if !c.Left || c.Right || c.Up || !c.Down || c.Shots != 2 || !c.Confirm || !c.Pause || !c.Menu {
		t.Errorf("Controls() = %+v", c)
	}
}

func TestStream_ReadsUntilClosed(t *testing.T) {
	s := StartStream(strings.NewReader("  q"))

	var fire int
	var quit bool
	deadline := time.Now().Add(2 * time.Second)
	for {
		in := ReadInput(s)
		fire += in.Fire
		quit = quit || in.Quit
		if in.Closed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("stream never reported closed")
		}
		time.Sleep(time.Millisecond)
	}

	if fire != 2 || !quit {
		t.Errorf("fire, quit = %d, %v, want 2, true", fire, quit)
	}

	// Reading a closed stream must not block or spin.
	if in := ReadInput(s); !in.Closed || len(in.Pressed) != 0 {
		t.Errorf("ReadInput after close = %+v", in)
	}
}

func TestStream_SplitArrow(t *testing.T) {
	s := &Stream{ch: make(chan byte, 4), now: time.Now}

	s.ch <- 0x1b
	if in := ReadInput(s); in.Menu {
		t.Fatal("split escape read as menu")
	}
	s.ch <- '['
	s.ch <- 'A'
	in := ReadInput(s)
	if !in.Up || in.Left || in.Menu {
		t.Errorf("ReadInput = %+v, want up only", in)
	}
}

func TestStream_ResetKeyInput(t *testing.T) {
	s := &Stream{ch: make(chan byte, 4), now: time.Now}
	s.ch <- 'a'

	if in := ReadInput(s); !in.Left {
		t.Fatal("left should be held")
	}
	s.ResetKeyInput()
	if in := ReadInput(s); in.Left {
		t.Error("ResetKeyInput should release held keys")
	}
}
