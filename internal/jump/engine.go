package jump

import (
	"github.com/google/uuid"

	"github.com/dshills/jumpline/internal/jump/finder"
	"github.com/dshills/jumpline/internal/jump/keymap"
	"github.com/dshills/jumpline/internal/jump/label"
)

// Config is the engine-facing view of the caller's configuration. It is
// queried once per invocation; the engine holds no state across invocations.
type Config struct {
	// Alphabet is the ordered set of distinct key characters. Order matters:
	// characters at the start become single keys, characters at the end are
	// reserved as two-key prefixes when needed.
	Alphabet []rune

	// Case controls search-character matching.
	Case finder.CaseMode

	// SearchPrompt is shown while waiting for the search character.
	SearchPrompt string

	// JumpPrompt is shown while waiting for jump keystrokes.
	JumpPrompt string
}

// DefaultAlphabet is the 26 lowercase letters.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Alphabet:     []rune(DefaultAlphabet),
		Case:         finder.CaseDefault,
		SearchPrompt: "jump to char: ",
		JumpPrompt:   "jump: ",
	}
}

// Engine composes position discovery, key assignment, keymap construction,
// and the interactive session. All collaborators are injectable.
type Engine struct {
	cfg      Config
	input    InputSource
	renderer Renderer
	assigner Assigner
	log      Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithAssigner replaces the default prefix-free key assigner.
func WithAssigner(a Assigner) Option {
	return func(e *Engine) {
		if a != nil {
			e.assigner = a
		}
	}
}

// New creates an engine over the given input source and renderer.
func New(cfg Config, input InputSource, renderer Renderer, opts ...Option) *Engine {
	if len(cfg.Alphabet) == 0 {
		cfg.Alphabet = []rune(DefaultAlphabet)
	}
	e := &Engine{
		cfg:      cfg,
		input:    input,
		renderer: renderer,
		assigner: AssignerFunc(label.Assign),
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Jump runs one complete jump invocation for the given motion mode over an
// immutable buffer snapshot. It returns the resolved 1-based position or the
// failed result; it never mutates the buffer and reads no keystrokes when
// there is nothing to jump to.
func (e *Engine) Jump(mode Mode, buffer string) Result {
	if mode == ModeSearch {
		f, ok := e.searchFinder(buffer)
		if !ok {
			return Result{}
		}
		return e.JumpWith(f, buffer)
	}
	return e.JumpWith(wordFinder(mode), buffer)
}

// JumpWith runs one jump invocation using a caller-supplied finder, such as
// a scripted motion. The finder's positions ride the same key assignment and
// narrowing machinery as the built-in modes.
func (e *Engine) JumpWith(f Finder, buffer string) Result {
	id := uuid.NewString()

	positions, err := f.Find(buffer)
	if err != nil {
		e.log.Debug("jump %s: position discovery failed: %v", id, err)
		return Result{}
	}
	if len(positions) == 0 {
		e.log.Debug("jump %s: %v", id, ErrNoCandidates)
		return Result{}
	}

	keys, err := e.assigner.Assign(len(positions), e.cfg.Alphabet)
	if err != nil {
		// Capacity errors are a configuration sizing issue; they fail the
		// invocation but never crash it.
		e.log.Debug("jump %s: key assignment failed: %v", id, err)
		return Result{}
	}

	km := keymap.Build(positions, keys)
	session := NewSession(buffer, km, e.input, e.renderer, e.cfg.JumpPrompt)
	session.log = e.log
	session.id = id
	return session.Run()
}

// searchFinder prompts for the search character and returns a finder over
// its occurrences. ok is false when input was cancelled or not exactly one
// printable character.
func (e *Engine) searchFinder(buffer string) (Finder, bool) {
	e.renderer.Show(buffer, nil, e.cfg.SearchPrompt)

	ev, err := e.input.ReadKey()
	if err != nil || ev.IsCancel() {
		e.log.Debug("search prompt cancelled: %v", err)
		return nil, false
	}
	if !ev.IsChar() {
		e.log.Debug("search prompt rejected input %v: %v", ev, finder.ErrInvalidSearchChar)
		return nil, false
	}

	ch := ev.Rune
	caseMode := e.cfg.Case
	return FinderFunc(func(buf string) ([]int, error) {
		return finder.Occurrences(ch, caseMode, buf)
	}), true
}
