package atomstore

import "testing"

func TestNextIDOnEmptyStore(t *testing.T) {
	s := New()
	if got := s.NextID(); got != 1 {
		t.Errorf("NextID() on empty store = %d, want 1", got)
	}
}

func TestNextIDIsMaxPlusOne(t *testing.T) {
	s := New()
	s.Insert(&Atom{ID: 3})
	s.Insert(&Atom{ID: 7})
	s.Insert(&Atom{ID: 2})

	if got := s.NextID(); got != 8 {
		t.Errorf("NextID() = %d, want 8", got)
	}
}

func TestAllIsSortedByID(t *testing.T) {
	s := New()
	s.Insert(&Atom{ID: 5})
	s.Insert(&Atom{ID: 1})
	s.Insert(&Atom{ID: 3})

	all := s.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID > all[i].ID {
			t.Fatalf("All() not sorted: %v", all)
		}
	}
}

func TestAddConnectionIsQueryable(t *testing.T) {
	a := &Atom{ID: 1}
	a.AddConnection(2)
	if !a.IsConnectedTo(2) {
		t.Error("expected atom 1 to be connected to atom 2 after AddConnection")
	}
	if a.IsConnectedTo(3) {
		t.Error("atom 1 should not be connected to atom 3")
	}
}

// TestBondSymmetry exercises property 1 of the specification: the caller
// (here, the test itself, standing in for the bond builder) must add the
// connection on both endpoints, and the store must report it consistently
// from either side.
func TestBondSymmetry(t *testing.T) {
	s := New()
	a1 := &Atom{ID: 1}
	a2 := &Atom{ID: 2}
	a1.AddConnection(2)
	a2.AddConnection(1)
	s.Insert(a1)
	s.Insert(a2)

	if !s.Lookup(1).IsConnectedTo(2) || !s.Lookup(2).IsConnectedTo(1) {
		t.Error("connection is not symmetric")
	}
}

func TestMarkSelectionTargetWinsOverSurrounding(t *testing.T) {
	s := New()
	s.Insert(&Atom{ID: 1})
	s.MarkSelection([]int{1}, []int{1})

	if got := s.Lookup(1).SelectionState; got != Target {
		t.Errorf("SelectionState = %v, want Target when id is in both lists", got)
	}
}

func TestMarkSelectionDefaultsToIgnored(t *testing.T) {
	s := New()
	s.Insert(&Atom{ID: 1})
	s.Insert(&Atom{ID: 2})
	s.MarkSelection([]int{1}, nil)

	if got := s.Lookup(2).SelectionState; got != Ignored {
		t.Errorf("SelectionState = %v, want Ignored for unmentioned atom", got)
	}
}
