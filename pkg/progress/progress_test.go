package progress

import "testing"

func TestReporterDeliversEvents(t *testing.T) {
	var got []Event
	rep := NewReporter(func(e Event) { got = append(got, e) })

	rep.Report(1, StateStarting, "Starting conversion")
	rep.Error("boom")

	if len(got) != 2 {
		t.Fatalf("observer saw %d events, want 2", len(got))
	}
	if got[0] != (Event{Percent: 1, State: StateStarting, Message: "Starting conversion"}) {
		t.Errorf("first event = %+v", got[0])
	}
	if got[1].Percent != 0 || got[1].State != StateError {
		t.Errorf("error event = %+v, want percent 0 state error", got[1])
	}
}

func TestReporterNilObserver(t *testing.T) {
	// Both a nil reporter and a nil callback must be no-ops.
	var nilRep *Reporter
	nilRep.Report(50, StateProcessing, "")
	NewReporter(nil).Report(50, StateProcessing, "")
}

func TestReporterSwallowsObserverPanic(t *testing.T) {
	calls := 0
	rep := NewReporter(func(e Event) {
		calls++
		panic("observer misbehaves")
	})

	rep.Report(1, StateStarting, "")
	rep.Report(5, StateLoaded, "")

	if calls != 2 {
		t.Fatalf("observer called %d times, want 2 (panics must not disable the reporter)", calls)
	}
}

func TestMeterCadence250(t *testing.T) {
	// 250 faces: ceil(250/100) = 3, so updates fire at 3, 6, 9, ... and
	// unconditionally at 250.
	m := NewMeter(250, 12, 90)

	var due []int
	for n := 1; n <= 250; n++ {
		if m.Due(n) {
			due = append(due, n)
		}
	}
	if due[0] != 3 || due[1] != 6 || due[2] != 9 {
		t.Fatalf("first due items = %v, want 3, 6, 9", due[:3])
	}
	if due[len(due)-1] != 250 {
		t.Fatalf("last due item = %d, want 250", due[len(due)-1])
	}

	if got := m.Percent(125); got != 12+int(float64(125)/250*78) {
		t.Errorf("Percent(125) = %d", got)
	}
	if got := m.Percent(250); got != 90 {
		t.Errorf("Percent(250) = %d, want 90", got)
	}
}

func TestMeterSmallTotal(t *testing.T) {
	// Fewer than 100 items: every item is due, final percent is still
	// exactly the span's upper bound.
	m := NewMeter(4, 12, 90)
	for n := 1; n <= 4; n++ {
		if !m.Due(n) {
			t.Errorf("Due(%d) = false, want true for total < 100", n)
		}
	}
	if got := m.Percent(4); got != 90 {
		t.Errorf("Percent(4) = %d, want 90", got)
	}
}

func TestMeterPercentMonotonic(t *testing.T) {
	m := NewMeter(137, 12, 90)
	prev := 0
	for n := 1; n <= 137; n++ {
		p := m.Percent(n)
		if p < prev {
			t.Fatalf("Percent(%d) = %d decreased from %d", n, p, prev)
		}
		prev = p
	}
	if prev != 90 {
		t.Fatalf("final percent = %d, want 90", prev)
	}
}
