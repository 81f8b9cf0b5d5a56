// Package ssh adapts gliderlabs SSH sessions into tcell screens so each
// connection can host its own game.
package ssh

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client sends no TERM.
const DefaultTerm = "xterm-256color"

// allowedTerms are the TERM values a client may select. TERM picks a
// terminfo entry, so it must not be an arbitrary string.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// Allowed reports whether term is on the whitelist.
func Allowed(term string) bool { return allowedTerms[term] }

// TermFromEnv returns the TERM entry of environ, DefaultTerm when absent.
func TermFromEnv(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			return v
		}
	}
	return DefaultTerm
}

// termMu serialises screen creation: tcell reads TERM from the process
// environment.
var termMu sync.Mutex

// NewScreen builds an initialised tcell screen on top of a session with a
// PTY. The caller owns the screen and must Fini it.
func NewScreen(s gossh.Session, term string) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, fmt.Errorf("ssh: session has no pty")
	}
	if !Allowed(term) {
		return nil, fmt.Errorf("ssh: terminal %q not supported", term)
	}
	tty := NewSessionTty(s, pty, winCh)

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("ssh: terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("ssh: screen init: %w", err)
	}
	return screen, nil
}

// SessionTty implements tcell.Tty backed by a gliderlabs/ssh session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window
	watch   sync.Once

	mu     sync.Mutex
	window gossh.Window
	cb     func() // resize callback registered by tcell
}

var _ tcell.Tty = (*SessionTty)(nil)

// NewSessionTty wraps a session. pty holds the initial window size; winCh
// delivers later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close is a no-op; the handler closes the session when it returns.
func (t *SessionTty) Close() error { return nil }

func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the resize callback; nil unregisters it. The
// window-change channel is drained by a single goroutine for the lifetime
// of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() { go t.watchResize() })
}

func (t *SessionTty) watchResize() {
	for win := range t.winCh {
		t.resize(win)
	}
}

func (t *SessionTty) resize(win gossh.Window) {
	t.mu.Lock()
	t.window = win
	cb := t.cb
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}
