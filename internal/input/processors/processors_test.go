package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/annales/internal/control/action"
	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/input/processors"
)

func TestModalInputProcessor(t *testing.T) {

	t.Run("CapturesInput", func(t *testing.T) {
		dummy := dummySIP{captures: false}
		m := processors.NewModalInputProcessor(&dummy)
		if m.CapturesInput() {
			t.Error("claims to capture input, initially")
		}
		dummy.captures = true
		if !m.CapturesInput() {
			t.Error("fails to capture input, despite its base processor doing so")
		}
		m.ApplyModalOverlay(&dummySIP{captures: false})
		if m.CapturesInput() {
			t.Error("claims to capture input, despite its overlay not capturing")
		}
	})

	t.Run("{Apply,Pop}ModalOverlay(s)", func(t *testing.T) {
		x := input.Key{Key: tcell.KeyRune, Ch: 'x'}
		y := input.Key{Key: tcell.KeyRune, Ch: 'y'}
		z := input.Key{Key: tcell.KeyRune, Ch: 'z'}
		a := dummySIP{inputs: map[input.Key]bool{x: true}}
		b := dummySIP{inputs: map[input.Key]bool{y: true}}
		c := dummySIP{inputs: map[input.Key]bool{z: true}}
		m := processors.NewModalInputProcessor(&a)

		check := func(msg string, expected [3]bool) {
			actual := [3]bool{m.ProcessInput(x), m.ProcessInput(y), m.ProcessInput(z)}
			if actual != expected {
				t.Error(msg, "check failed:", expected, "!=", actual)
			}
		}

		check("base", [3]bool{true, false, false})
		if m.HasOverlay() {
			t.Error("claims to have an overlay initially")
		}

		bIndex := m.ApplyModalOverlay(&b)
		if bIndex != 0 {
			t.Errorf("got overlay index %d instead of 0", bIndex)
		}
		check("b over a", [3]bool{false, true, false})

		cIndex := m.ApplyModalOverlay(&c)
		if cIndex != 1 {
			t.Errorf("got overlay index %d instead of 1", cIndex)
		}
		check("c over b over a", [3]bool{false, false, true})

		if err := m.PopModalOverlay(); err != nil {
			t.Error("unexpected error popping:", err.Error())
		}
		check("b over a after pop", [3]bool{false, true, false})

		m.ApplyModalOverlay(&c)
		m.PopModalOverlays(bIndex)
		check("a after popping down to b", [3]bool{true, false, false})

		if err := m.PopModalOverlay(); err == nil {
			t.Error("expected error popping from empty overlay stack")
		}
	})
}

func TestTextInputProcessor(t *testing.T) {
	esc := input.Key{Key: tcell.KeyESC}
	cr := input.Key{Key: tcell.KeyEnter}
	x := input.Key{Key: tcell.KeyRune, Ch: 'x'}

	t.Run("ProcessInput", func(t *testing.T) {
		var typed []rune
		escCalled, crCalled := false, false
		p, err := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{
				"<esc>": action.NewSimple(func() string { return "abort" }, func() { escCalled = true }),
				"<cr>":  action.NewSimple(func() string { return "confirm" }, func() { crCalled = true }),
			},
			func(r rune) { typed = append(typed, r) },
		)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}

		if !p.ProcessInput(x) || string(typed) != "x" {
			t.Error("rune not passed to callback")
		}
		if !p.ProcessInput(esc) || !escCalled {
			t.Error("action for <esc> not done")
		}
		if !p.ProcessInput(cr) || !crCalled {
			t.Error("action for <cr> not done")
		}
		if p.ProcessInput(input.Key{Key: tcell.KeyCtrlY}) {
			t.Error("claims to apply <c-y> with no such mapping")
		}
	})

	t.Run("CapturesInput", func(t *testing.T) {
		p, _ := processors.NewTextInputProcessor(map[input.Keyspec]action.Action{}, func(rune) {})
		if !p.CapturesInput() {
			t.Error("text input processor does not unconditionally capture input")
		}
	})

	t.Run("GetHelp", func(t *testing.T) {
		p, _ := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{
				"<esc>": action.NewSimple(func() string { return "abort" }, func() {}),
			},
			func(rune) {},
		)
		help := p.GetHelp()
		if len(help) != 1 || help["<esc>"] != "abort" {
			t.Error("help looks unexpected:", help)
		}
	})

	t.Run("multi-key spec errors", func(t *testing.T) {
		_, err := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{"gg": action.NewSimple(func() string { return "" }, func() {})},
			func(rune) {},
		)
		if err == nil {
			t.Error("expected error for multi-key spec")
		}
	})
}

// dummy simple input processor for testing
type dummySIP struct {
	captures bool
	inputs   map[input.Key]bool
	help     map[string]string
}

func (d *dummySIP) CapturesInput() bool           { return d.captures }
func (d *dummySIP) ProcessInput(k input.Key) bool { return d.inputs[k] }
func (d *dummySIP) GetHelp() map[string]string    { return d.help }
