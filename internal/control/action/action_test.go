package action_test

import (
	"testing"

	"github.com/ja-he/flycreate/internal/control/action"
)

func TestSimpleInterface(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		calls := 0
		s := action.NewSimple(action.Explanation("counts"), func() { calls++ })
		s.Do()
		s.Do()
		if calls != 2 {
			t.Error("action was not executed properly, calls:", calls)
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

	t.Run("Explanation", func(t *testing.T) {
		var a action.Action = action.NewSimple(action.Explanation("insert 'x'"), func() {})
		if a.Explain() != "insert 'x'" {
			t.Error("fixed explanation wrong:", a.Explain())
		}
	})

}
