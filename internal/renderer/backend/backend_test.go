package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/jumpline/internal/config"
	"github.com/dshills/jumpline/internal/input/key"
	"github.com/dshills/jumpline/internal/jump/overlay"
	"github.com/dshills/jumpline/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim init: %v", err)
	}
	sim.SetSize(40, 5)
	term := NewWithScreen(sim)
	t.Cleanup(term.Fini)
	return term, sim
}

func rowText(sim tcell.SimulationScreen, row, width int) string {
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		mainc, _, _, _ := sim.GetContent(x, row)
		runes = append(runes, mainc)
	}
	return string(runes)
}

func TestShowDrawsTextAndPrompt(t *testing.T) {
	term, sim := newSimTerminal(t)

	spans := []overlay.Span{
		{Start: 0, End: 1, Tag: overlay.TagPrimary},
		{Start: 1, End: 7, Tag: overlay.TagDim},
	}
	term.Show("aoo bar", spans, "jump: ")

	if got := rowText(sim, 0, 7); got != "aoo bar" {
		t.Errorf("row 0 = %q, want %q", got, "aoo bar")
	}
	if got := rowText(sim, 4, 6); got != "jump: " {
		t.Errorf("prompt row = %q, want %q", got, "jump: ")
	}
}

func TestShowWithoutSpansUsesDefaultStyle(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.Show("hello", nil, "")

	if got := rowText(sim, 0, 5); got != "hello" {
		t.Errorf("row 0 = %q, want %q", got, "hello")
	}
}

func TestDrawLineShowsCursor(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.DrawLine("abc", 2, "ready")

	if got := rowText(sim, 0, 3); got != "abc" {
		t.Errorf("row 0 = %q, want %q", got, "abc")
	}
	x, y, visible := sim.GetCursor()
	if !visible || x != 2 || y != 0 {
		t.Errorf("cursor = (%d,%d,%v), want (2,0,true)", x, y, visible)
	}
}

func TestReadKeyRune(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	ev, err := term.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if !ev.IsRune() || ev.Rune != 'a' {
		t.Errorf("ReadKey = %+v, want rune a", ev)
	}
}

func TestReadKeyEscape(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ev, err := term.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ev.Key != key.KeyEscape {
		t.Errorf("ReadKey = %+v, want escape", ev)
	}
	if !ev.IsCancel() {
		t.Error("escape should cancel")
	}
}

func TestReadKeyCtrlLetter(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)

	ev, err := term.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if !ev.Modifiers.HasCtrl() || ev.Rune != 'w' {
		t.Errorf("ReadKey = %+v, want C-w", ev)
	}
}

func TestStylesFromConfig(t *testing.T) {
	styles, err := StylesFromConfig(config.Default().Styles)
	if err != nil {
		t.Fatalf("StylesFromConfig: %v", err)
	}
	if styles.Primary.Foreground.IsDefault() {
		t.Error("primary foreground should be configured")
	}
	if !styles.Secondary.Attributes.Has(core.AttrBold) {
		t.Error("secondary style should be bold")
	}
}

func TestStylesFromConfigRejectsBadColor(t *testing.T) {
	bad := config.Styles{Primary: "notacolor", Secondary: "#fff", Tertiary: "#fff", Dim: "#fff"}
	if _, err := StylesFromConfig(bad); err == nil {
		t.Error("StylesFromConfig accepted invalid hex color")
	}
}
