package client

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionPanLeft
	ActionPanRight
	ActionPanForward
	ActionPanBack
	ActionDash
	ActionJoin
	ActionToggleEditor
	ActionToggleMode
	ActionClick
	ActionQuit
)

const keyCtrlC = 3

func keyToAction(key byte) Action {
	switch key {
	case 'a':
		return ActionMoveLeft
	case 'd':
		return ActionMoveRight
	case 'w':
		return ActionMoveForward
	case 's':
		return ActionMoveBack
	case 'A':
		return ActionPanLeft
	case 'D':
		return ActionPanRight
	case 'W':
		return ActionPanForward
	case 'S':
		return ActionPanBack
	case ' ':
		return ActionDash
	case 'j':
		return ActionJoin
	case 'm':
		return ActionToggleEditor
	case 'b':
		return ActionToggleMode
	case 'e':
		return ActionClick
	case 'q', keyCtrlC:
		return ActionQuit
	}
	return ActionNone
}

// held reports whether an action is a direction that stays active for the
// hold window instead of firing once.
func (a Action) held() bool {
	return a >= ActionMoveLeft && a <= ActionPanBack
}

type KeyboardFrame struct {
	Movement     mgl32.Vec2
	Pan          mgl32.Vec2
	Dash         bool
	Join         bool
	ToggleEditor bool
	ToggleMode   bool
	Click        bool
	Quit         bool
}

// keyState turns a stream of key presses into per-frame input. Terminals
// only deliver key repeats, never releases, so a direction counts as held
// until hold has passed since its last press.
type keyState struct {
	hold    time.Duration
	pressed map[Action]time.Time
	edges   KeyboardFrame
}

func newKeyState(hold time.Duration) *keyState {
	return &keyState{hold: hold, pressed: make(map[Action]time.Time)}
}

func (s *keyState) press(key byte, at time.Time) {
	action := keyToAction(key)
	switch {
	case action == ActionNone:
		return
	case action.held():
		s.pressed[action] = at
	case action == ActionDash:
		s.edges.Dash = true
	case action == ActionJoin:
		s.edges.Join = true
	case action == ActionToggleEditor:
		s.edges.ToggleEditor = !s.edges.ToggleEditor
	case action == ActionToggleMode:
		s.edges.ToggleMode = !s.edges.ToggleMode
	case action == ActionClick:
		s.edges.Click = true
	case action == ActionQuit:
		s.edges.Quit = true
	}
}

func (s *keyState) isHeld(action Action, at time.Time) bool {
	last, ok := s.pressed[action]
	return ok && at.Sub(last) <= s.hold
}

func (s *keyState) axis(negative, positive Action, at time.Time) float32 {
	var value float32
	if s.isHeld(negative, at) {
		value -= 1
	}
	if s.isHeld(positive, at) {
		value += 1
	}
	return value
}

// frame returns the input for the frame ending at and clears one-shot actions.
func (s *keyState) frame(at time.Time) KeyboardFrame {
	frame := s.edges
	s.edges = KeyboardFrame{}
	frame.Movement = mgl32.Vec2{
		s.axis(ActionMoveLeft, ActionMoveRight, at),
		s.axis(ActionMoveForward, ActionMoveBack, at),
	}
	frame.Pan = mgl32.Vec2{
		s.axis(ActionPanLeft, ActionPanRight, at),
		s.axis(ActionPanForward, ActionPanBack, at),
	}
	return frame
}

// Keyboard reads single key presses from a terminal in raw mode.
type Keyboard struct {
	fd       int
	oldState *term.State
	keys     chan byte
	state    *keyState
	now      func() time.Time
	closeOne sync.Once
}

func NewKeyboard(in *os.File, hold time.Duration) (*Keyboard, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("keyboard input needs an interactive terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "switching terminal to raw mode")
	}
	k := &Keyboard{
		fd:       fd,
		oldState: oldState,
		keys:     make(chan byte, 64),
		state:    newKeyState(hold),
		now:      time.Now,
	}
	go k.read(in)
	util.LogInputInfo("[Keyboard] Raw terminal input enabled")
	return k, nil
}

func (k *Keyboard) read(in io.Reader) {
	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		for i := 0; i < n; i++ {
			k.keys <- buf[i]
		}
		if err != nil {
			if err != io.EOF {
				util.LogInputError("[Keyboard] Read failed: " + err.Error())
			}
			close(k.keys)
			return
		}
	}
}

// Poll drains pending key presses. A closed input counts as a quit request.
func (k *Keyboard) Poll() KeyboardFrame {
	now := k.now()
	closed := false
	for draining := true; draining; {
		select {
		case key, ok := <-k.keys:
			if !ok {
				closed = true
				draining = false
				break
			}
			k.state.press(key, now)
		default:
			draining = false
		}
	}
	frame := k.state.frame(now)
	frame.Quit = frame.Quit || closed
	return frame
}

func (k *Keyboard) Close() error {
	var err error
	k.closeOne.Do(func() {
		err = term.Restore(k.fd, k.oldState)
	})
	return errors.Wrap(err, "restoring terminal")
}
