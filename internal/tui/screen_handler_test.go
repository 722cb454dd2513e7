package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
)

func newSimulated(t *testing.T, w, h int) (*ScreenHandler, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	handler, err := newScreenHandler(screen)
	if err != nil {
		t.Fatalf("could not set up screen: %s", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(handler.Fini)
	return handler, screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawText(t *testing.T) {
	handler, screen := newSimulated(t, 20, 5)
	style := styling.StyleFromColors(colorful.Color{R: 1, G: 1, B: 1}, colorful.Color{})

	if _, _, w, h := handler.Dimensions(); w != 20 || h != 5 {
		t.Fatalf("unexpected dimensions %dx%d", w, h)
	}

	handler.DrawText(1, 1, 3, 2, style, "Roma!!!")
	handler.Show()

	expected := map[[2]int]rune{
		{1, 1}: 'R', {2, 1}: 'o', {3, 1}: 'm',
		{1, 2}: 'a', {2, 2}: '!', {3, 2}: '!',
	}
	for pos, r := range expected {
		if got := runeAt(screen, pos[0], pos[1]); got != r {
			t.Errorf("at %v: expected '%c', got '%c'", pos, r, got)
		}
	}
	if got := runeAt(screen, 1, 3); got == '!' {
		t.Error("text overflowed its box")
	}
}

func TestDrawBoxAndCursor(t *testing.T) {
	handler, screen := newSimulated(t, 10, 3)
	style := styling.StyleFromColors(colorful.Color{}, colorful.Color{R: 1})

	handler.DrawText(0, 0, 10, 1, style, "xxxxxxxxxx")
	handler.DrawBox(2, 0, 3, 1, style)
	handler.Show()
	if got := runeAt(screen, 3, 0); got != ' ' {
		t.Errorf("expected box to overwrite text, got '%c'", got)
	}
	if got := runeAt(screen, 5, 0); got != 'x' {
		t.Errorf("expected text right of the box, got '%c'", got)
	}

	handler.ShowCursor(ui.CursorLocation{X: 4, Y: 1})
	handler.Show()
	if x, y, visible := screen.GetCursor(); !visible || x != 4 || y != 1 {
		t.Errorf("expected visible cursor at 4,1, got %d,%d (%t)", x, y, visible)
	}
	handler.HideCursor()
	handler.Show()
	if _, _, visible := screen.GetCursor(); visible {
		t.Error("expected hidden cursor")
	}
}
