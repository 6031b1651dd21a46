package slide

import "testing"

func TestListenerRegistryDispatchOrder(t *testing.T) {
	var r listenerRegistry
	var got []int
	for i := range 3 {
		r.add(func(float64) { got = append(got, i) })
	}
	r.dispatch(0.5)
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", got)
	}
}

func TestListenerRemoveDuringDispatch(t *testing.T) {
	var r listenerRegistry
	calls := map[string]int{}
	var hb ListenerHandle
	r.add(func(float64) {
		calls["a"]++
		hb.Remove()
	})
	hb = r.add(func(float64) { calls["b"]++ })

	r.dispatch(0.1)
	if calls["a"] != 1 || calls["b"] != 1 {
		t.Fatalf("first dispatch calls = %v, want both once", calls)
	}
	r.dispatch(0.2)
	if calls["a"] != 2 || calls["b"] != 1 {
		t.Errorf("second dispatch calls = %v, want b removed", calls)
	}
}

func TestListenerAddDuringDispatch(t *testing.T) {
	var r listenerRegistry
	late := 0
	added := false
	r.add(func(float64) {
		if !added {
			added = true
			r.add(func(float64) { late++ })
		}
	})
	r.dispatch(0.1)
	if late != 0 {
		t.Errorf("listener added mid-dispatch ran %d times in that dispatch", late)
	}
	r.dispatch(0.2)
	if late != 1 {
		t.Errorf("late listener ran %d times, want 1", late)
	}
}

func TestListenerNestedDispatch(t *testing.T) {
	var r listenerRegistry
	var got []float64
	r.add(func(p float64) {
		got = append(got, p)
		if p == 1 {
			r.dispatch(2)
		}
	})
	r.add(func(p float64) { got = append(got, -p) })

	r.dispatch(1)
	want := []float64{1, 2, -2, -1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestListenerRemoveUnknownHandle(t *testing.T) {
	var r listenerRegistry
	h := r.add(func(float64) {})
	h.Remove()
	h.Remove()
	if len(r.entries) != 0 {
		t.Errorf("entries = %d, want 0", len(r.entries))
	}
}

func TestRemoveProgressListenerForeignHandle(t *testing.T) {
	a, _, _, _ := newTestLayout(t, visible)
	b, _, _, _ := newTestLayout(t, visible)
	calls := 0
	a.AddProgressListener(func(float64) { calls++ })
	foreign := b.AddProgressListener(func(float64) {})

	a.RemoveProgressListener(foreign)
	dragBy(a, -20)
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1", calls)
	}
}
