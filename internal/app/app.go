// Package app wires the jump engine, configuration, and terminal renderer
// into the jumpline demo editor: a single editable line with jump motions on
// Ctrl keys.
package app

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dshills/jumpline/internal/config"
	"github.com/dshills/jumpline/internal/config/loader"
	"github.com/dshills/jumpline/internal/config/watcher"
	"github.com/dshills/jumpline/internal/input/key"
	"github.com/dshills/jumpline/internal/jump"
	"github.com/dshills/jumpline/internal/renderer/backend"
)

// statusHint is the idle status line.
const statusHint = "C-w word  C-e end  C-f char  C-g motion  C-q quit"

// Options configures a new Application.
type Options struct {
	// ConfigPath is the configuration file. Empty means defaults only and
	// no live reload.
	ConfigPath string

	// Text is the initial content of the edit line.
	Text string

	// Logger receives application logs. Nil disables logging.
	Logger *Logger

	// Motion is an optional scripted finder bound to Ctrl+G.
	Motion jump.Finder

	// Terminal overrides the default terminal, used by tests to run over a
	// simulation screen.
	Terminal *backend.Terminal
}

// Application is the jumpline demo editor. It owns the edit line and the
// terminal; each jump motion builds a fresh engine from the current
// configuration, so config reloads take effect on the next invocation.
type Application struct {
	log        *Logger
	term       *backend.Terminal
	editor     *lineEditor
	motion     jump.Finder
	configPath string

	// cfg is swapped by the watcher goroutine; the main loop applies style
	// changes when it notices a new pointer.
	cfg     atomic.Pointer[config.Config]
	applied *config.Config

	status string
}

// New creates an application, loading the configuration file if one is named.
func New(opts Options) (*Application, error) {
	log := opts.Logger
	if log == nil {
		log = NullLogger
	}

	cfg, err := loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	term := opts.Terminal
	if term == nil {
		term, err = backend.New()
		if err != nil {
			return nil, fmt.Errorf("creating terminal: %w", err)
		}
	}

	a := &Application{
		log:        log,
		term:       term,
		editor:     newLineEditor(opts.Text),
		motion:     opts.Motion,
		configPath: opts.ConfigPath,
	}
	a.cfg.Store(cfg)
	return a, nil
}

// Run initializes the terminal and drives the main loop until the user quits
// or the terminal fails.
func (a *Application) Run() error {
	if err := a.term.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer a.term.Fini()

	if a.configPath != "" {
		w, err := watcher.New(a.configPath, a.reloadConfig)
		if err != nil {
			// Live reload is a convenience; the session runs without it.
			a.log.Warn("config watch unavailable: %v", err)
		} else {
			defer w.Close()
			a.log.Debug("watching config %s", w.Path())
		}
	}

	return a.loop()
}

// loop draws the edit line and dispatches keystrokes until quit.
func (a *Application) loop() error {
	for {
		a.applyConfig()
		a.term.DrawLine(a.editor.String(), a.editor.Cursor(), a.statusLine())

		ev, err := a.term.ReadKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		if err := a.dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// dispatch handles one top-level keystroke.
func (a *Application) dispatch(ev key.Event) error {
	if ev.Modifiers.HasCtrl() && ev.IsRune() {
		switch ev.Rune {
		case 'q', 'c':
			return ErrQuit
		case 'w':
			a.runJump(jump.ModeWordStart)
		case 'e':
			a.runJump(jump.ModeWordEnd)
		case 'f':
			a.runJump(jump.ModeSearch)
		case 'g':
			a.runMotion()
		case 'l':
			a.term.Redraw()
		}
		return nil
	}

	switch ev.Key {
	case key.KeyRune:
		if ev.IsChar() {
			a.editor.Insert(ev.Rune)
			a.status = ""
		}
	case key.KeyBackspace:
		a.editor.Backspace()
	case key.KeyDelete:
		a.editor.Delete()
	case key.KeyLeft:
		a.editor.Left()
	case key.KeyRight:
		a.editor.Right()
	case key.KeyHome:
		a.editor.Home()
	case key.KeyEnd:
		a.editor.End()
	case key.KeyEscape, key.KeyEnter:
		a.status = ""
	}
	return nil
}

// runJump executes one built-in jump motion over a snapshot of the line.
func (a *Application) runJump(mode jump.Mode) {
	res := a.newEngine().Jump(mode, a.editor.String())
	a.finish(res)
}

// runMotion executes the scripted motion, if one is loaded.
func (a *Application) runMotion() {
	if a.motion == nil {
		a.status = "no motion script loaded"
		return
	}
	res := a.newEngine().JumpWith(a.motion, a.editor.String())
	a.finish(res)
}

// finish moves the cursor for a resolved jump; a failed jump leaves the
// cursor where it was.
func (a *Application) finish(res jump.Result) {
	if res.Resolved {
		a.editor.MoveToPos(res.Pos)
		a.status = ""
		return
	}
	a.status = "jump cancelled"
}

// newEngine builds an engine from the current configuration. Engines are
// cheap; building one per invocation keeps reloaded config live.
func (a *Application) newEngine() *jump.Engine {
	cfg := a.cfg.Load()
	return jump.New(jump.Config{
		Alphabet:     cfg.AlphabetRunes(),
		Case:         cfg.Case(),
		SearchPrompt: cfg.SearchPrompt,
		JumpPrompt:   cfg.JumpPrompt,
	}, a.term, a.term, jump.WithLogger(a.log.WithComponent("jump")))
}

// reloadConfig is the watcher handler. It runs on the watcher goroutine, so
// it only swaps the config pointer; the main loop applies the change.
func (a *Application) reloadConfig(path string) {
	cfg, err := loader.Load(path)
	if err != nil {
		a.log.Warn("config reload failed, keeping previous: %v", err)
		return
	}
	a.cfg.Store(cfg)
	a.log.Info("config reloaded from %s", path)
}

// applyConfig installs renderer styles when the config pointer has changed
// since the last draw. Runs on the main loop only.
func (a *Application) applyConfig() {
	cfg := a.cfg.Load()
	if cfg == a.applied {
		return
	}
	styles, err := backend.StylesFromConfig(cfg.Styles)
	if err != nil {
		a.log.Warn("invalid styles in config, keeping previous: %v", err)
	} else {
		a.term.SetStyles(styles)
	}
	a.applied = cfg
}

// statusLine returns the current status message or the idle hint.
func (a *Application) statusLine() string {
	if a.status != "" {
		return a.status
	}
	return statusHint
}
