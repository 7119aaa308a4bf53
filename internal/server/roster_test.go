package server

import (
	"reflect"
	"testing"
)

// TestRosterJoinLeaveScenario verifies the roster after join x, join y,
// leave x yields exactly [y].
func TestRosterJoinLeaveScenario(t *testing.T) {
	r := NewRoster()

	r.Add("x")
	r.Add("y")
	r.Remove("x")

	if got := r.Names(); !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("Names() = %v, want [y]", got)
	}
}

// TestRosterInsertionOrder verifies Names returns usernames in join order.
func TestRosterInsertionOrder(t *testing.T) {
	r := NewRoster()

	for _, name := range []string{"carol", "alice", "bob"} {
		r.Add(name)
	}

	want := []string{"carol", "alice", "bob"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

// TestRosterDuplicateAdd verifies duplicate joins keep a single entry.
func TestRosterDuplicateAdd(t *testing.T) {
	r := NewRoster()

	r.Add("x")
	r.Add("x")

	if got := r.Names(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("Names() = %v, want [x]", got)
	}
}

// TestRosterRemoveAbsent verifies removing an unknown name is a no-op.
func TestRosterRemoveAbsent(t *testing.T) {
	r := NewRoster()

	r.Add("x")
	r.Remove("y")

	if got := r.Names(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("Names() = %v, want [x]", got)
	}
}

// TestRosterNamesSnapshot verifies the returned slice is a copy.
func TestRosterNamesSnapshot(t *testing.T) {
	r := NewRoster()
	r.Add("x")

	snapshot := r.Names()
	snapshot[0] = "mutated"

	if !r.Contains("x") {
		t.Error("mutating a Names() snapshot changed the roster")
	}
}
