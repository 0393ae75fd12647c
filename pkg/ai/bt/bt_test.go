package bt

import "testing"

type counter struct {
	calls []string
}

func step(name string, st Status) Node[*counter] {
	return Do(func(c *counter) Status {
		c.calls = append(c.calls, name)
		return st
	})
}

func TestSelector(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node[*counter]
		want  Status
		calls int
	}{
		{"first success", []Node[*counter]{step("a", StatusSuccess), step("b", StatusSuccess)}, StatusSuccess, 1},
		{"fallthrough", []Node[*counter]{step("a", StatusFailure), step("b", StatusSuccess)}, StatusSuccess, 2},
		{"running stops", []Node[*counter]{step("a", StatusRunning), step("b", StatusSuccess)}, StatusRunning, 1},
		{"all fail", []Node[*counter]{step("a", StatusFailure), step("b", StatusFailure)}, StatusFailure, 2},
	}
	for _, tc := range tests {
		c := &counter{}
		if got := Sel(tc.nodes...).Tick(c); got != tc.want || len(c.calls) != tc.calls {
			t.Errorf("%s: got %v after %d calls", tc.name, got, len(c.calls))
		}
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node[*counter]
		want  Status
		calls int
	}{
		{"all success", []Node[*counter]{step("a", StatusSuccess), step("b", StatusSuccess)}, StatusSuccess, 2},
		{"failure stops", []Node[*counter]{step("a", StatusFailure), step("b", StatusSuccess)}, StatusFailure, 1},
		{"running stops", []Node[*counter]{step("a", StatusSuccess), step("b", StatusRunning), step("c", StatusSuccess)}, StatusRunning, 2},
	}
	for _, tc := range tests {
		c := &counter{}
		if got := Seq(tc.nodes...).Tick(c); got != tc.want || len(c.calls) != tc.calls {
			t.Errorf("%s: got %v after %d calls", tc.name, got, len(c.calls))
		}
	}
}

func TestConditionAndInverter(t *testing.T) {
	yes := If(func(*counter) bool { return true })
	no := If(func(*counter) bool { return false })
	c := &counter{}
	if yes.Tick(c) != StatusSuccess || no.Tick(c) != StatusFailure {
		t.Errorf("condition results wrong")
	}
	if (&Condition[*counter]{}).Tick(c) != StatusFailure {
		t.Errorf("nil check should fail")
	}
	if (&Inverter[*counter]{Child: yes}).Tick(c) != StatusFailure {
		t.Errorf("inverter should flip success")
	}
	if (&Inverter[*counter]{Child: step("r", StatusRunning)}).Tick(c) != StatusRunning {
		t.Errorf("inverter should keep running")
	}
}
