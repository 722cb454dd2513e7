package action_test

import (
	"sort"
	"testing"

	"github.com/ja-he/annales/internal/control/action"
)

func TestSimpleInterface(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		becomesTrue := false
		s := action.NewSimple(func() string { return "sets flag to true" }, func() { becomesTrue = true })
		s.Do()
		if !becomesTrue {
			t.Error("action was not executed properly (flag unchanged)")
		}
	})

	t.Run("Explain", func(t *testing.T) {
		e := "does nothing"
		s := action.NewSimple(func() string { return e }, func() {})
		if s.Explain() != "does nothing" {
			t.Error("initial explanation wrong:", s.Explain())
		}
		e = "does nothing, very well"
		if s.Explain() != "does nothing, very well" {
			t.Error("changed explanation wrong:", s.Explain())
		}
	})

}

func TestRegistryNames(t *testing.T) {
	r := action.Registry{
		"zoom-in":  action.NewSimple(func() string { return "zoom in" }, func() {}),
		"zoom-out": action.NewSimple(func() string { return "zoom out" }, func() {}),
	}
	names := r.Names()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "zoom-in" || names[1] != "zoom-out" {
		t.Error("unexpected names:", names)
	}
}
