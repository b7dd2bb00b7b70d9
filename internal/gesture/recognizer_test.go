package gesture

import (
	"testing"
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
	"git.lost.host/meutraa/letterfall/internal/testdata"
)

var homeRow = game.KeyRow{30, 31, 32, 33, 34, 35, 36, 37, 38}

func down(key string, ms int64) game.KeyEvent {
	return testdata.Step{Key: key, At: ms}.Event()
}

func combo(s string) game.Combo {
	return testdata.Script{Combo: s}.Target()
}

func TestScripts(t *testing.T) {
	scripts, err := testdata.GetScripts()
	if nil != err {
		t.Fatal("unable to load scripts", err)
	}
	for _, script := range scripts {
		r := New(homeRow, game.DefaultTiming)
		r.Reset(script.Target())
		for i, step := range script.Steps {
			ev := step.Event()
			got := "-"
			if step.Up {
				r.KeyUp(ev)
			} else {
				got = r.KeyDown(ev).String()
			}
			if got != script.Results[i] {
				t.Log("script  ", script.Name)
				t.Log("step    ", i, step)
				t.Log("result  ", got)
				t.Log("expected", script.Results[i])
				t.Fail()
				break
			}
		}
	}
}

func TestMatchedIsPrefix(t *testing.T) {
	scripts, err := testdata.GetScripts()
	if nil != err {
		t.Fatal("unable to load scripts", err)
	}
	for _, script := range scripts {
		target := script.Target()
		r := New(homeRow, game.DefaultTiming)
		r.Reset(target)
		for _, step := range script.Steps {
			if step.Up {
				r.KeyUp(step.Event())
				continue
			}
			res := r.KeyDown(step.Event())
			matched := r.Progress().Matched
			if len(matched) > target.Len() || (res != Completed && len(matched) == target.Len() && target.Swipe()) {
				t.Errorf("%s: matched %v is not a strict prefix of %v", script.Name, matched, target)
			}
			for i, s := range matched {
				if s != target.At(i) {
					t.Errorf("%s: matched %v diverges from %v", script.Name, matched, target)
				}
			}
		}
	}
}

func TestRepeatBurstIsInert(t *testing.T) {
	r := New(homeRow, game.DefaultTiming)
	r.Reset(combo("DFG"))
	r.KeyDown(down("D", 0))
	r.KeyDown(down("F", 100))
	before := r.Progress()

	for ms := int64(105); ms < 400; ms += 5 {
		if res := r.KeyDown(down("F", ms)); res != Repeat {
			t.Fatalf("F at %vms: got %v, expected repeat", ms, res)
		}
	}
	after := r.Progress()
	if len(after.Matched) != len(before.Matched) || after.LastTime != before.LastTime || after.Start != before.Start {
		t.Log("before", before)
		t.Log("after ", after)
		t.Fail()
	}
	if res := r.KeyDown(down("G", 420)); res != Reset {
		// 320ms after F, too slow
		t.Errorf("got %v, expected reset", res)
	}
}

func TestShiftedKeyIsSamePhysicalKey(t *testing.T) {
	r := New(homeRow, game.DefaultTiming)
	r.Reset(combo("DFG"))
	r.KeyDown(down("D", 0))
	if res := r.KeyDown(down("d", 30)); res != Repeat {
		t.Errorf("got %v, expected repeat", res)
	}
}

func TestSwipeLimit(t *testing.T) {
	r := New(homeRow, game.DefaultTiming)
	r.Reset(combo("ASDFG"))
	expected := []Result{Started, Advanced, Advanced, Advanced, Reset}
	for i, key := range []string{"A", "S", "D", "F", "G"} {
		res := r.KeyDown(down(key, int64(i)*240))
		if res != expected[i] {
			t.Fatalf("%v at %vms: got %v, expected %v", key, i*240, res, expected[i])
		}
	}
}

func TestRecoverWithinBudget(t *testing.T) {
	r := New(homeRow, game.DefaultTiming)
	r.Reset(combo("DFG"))
	steps := []struct {
		key string
		at  int64
		res Result
	}{
		{"D", 0, Started},
		{"H", 100, Reset},
		{"D", 200, Started},
		{"F", 300, Advanced},
		{"G", 400, Completed},
	}
	for _, s := range steps {
		if res := r.KeyDown(down(s.key, s.at)); res != s.res {
			t.Fatalf("%v at %vms: got %v, expected %v", s.key, s.at, res, s.res)
		}
	}
	if r.Gap() != 100*time.Millisecond {
		t.Errorf("gap %v, expected 100ms", r.Gap())
	}
}

func TestResetForgetsHeldKeys(t *testing.T) {
	r := New(homeRow, game.DefaultTiming)
	r.Reset(combo("DFG"))
	r.KeyDown(down("A", 0))
	r.Reset(combo("A"))
	if r.Held("A") {
		t.Error("A still held after reset")
	}
	if len(r.Progress().Matched) != 0 {
		t.Error("progress survived reset")
	}
}

func TestNoCombo(t *testing.T) {
	r := New(homeRow, game.DefaultTiming)
	if res := r.KeyDown(down("A", 0)); res != Ignored {
		t.Errorf("got %v, expected ignored", res)
	}
	if r.Held("A") {
		t.Error("ignored key was recorded as held")
	}
}
