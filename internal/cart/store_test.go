package cart_test

import (
	"math"
	"testing"

	"MiniShop/internal/cart"
	"MiniShop/internal/catalog"
)

func TestAdd_Accumulates(t *testing.T) {
	s := cart.NewStore()

	s.Add("sess", 1, 2)
	s.Add("sess", 1, 3)

	lines := s.Lines("sess")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].ProductID != 1 || lines[0].Quantity != 5 {
		t.Fatalf("unexpected line: %+v", lines[0])
	}
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	s := cart.NewStore()

	s.Add("sess", 3, 1)
	s.Add("sess", 1, 1)
	s.Add("sess", 2, 1)
	s.Add("sess", 1, 1)

	lines := s.Lines("sess")
	want := []int{3, 1, 2}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, pid := range want {
		if lines[i].ProductID != pid {
			t.Fatalf("position %d has product %d, want %d", i, lines[i].ProductID, pid)
		}
	}
}

func TestRemove_Idempotent(t *testing.T) {
	s := cart.NewStore()
	s.Add("sess", 1, 1)

	s.Remove("sess", 1)
	if got := s.Lines("sess"); len(got) != 0 {
		t.Fatalf("expected empty cart after remove, got %v", got)
	}

	// A second remove of the same product is still fine.
	s.Remove("sess", 1)
	if got := s.Lines("sess"); len(got) != 0 {
		t.Fatalf("expected empty cart after repeated remove, got %v", got)
	}
}

func TestSetQuantity(t *testing.T) {
	s := cart.NewStore()
	s.Add("sess", 1, 2)

	s.SetQuantity("sess", 1, 7)
	if lines := s.Lines("sess"); lines[0].Quantity != 7 {
		t.Fatalf("quantity = %d, want 7", lines[0].Quantity)
	}

	// Unknown product is a no-op.
	s.SetQuantity("sess", 42, 3)
	if lines := s.Lines("sess"); len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
}

func TestSetQuantity_ZeroRemoves(t *testing.T) {
	s := cart.NewStore()

	for _, qty := range []int{0, -1} {
		s.Add("sess", 1, 2)
		s.SetQuantity("sess", 1, qty)
		if got := s.Lines("sess"); len(got) != 0 {
			t.Fatalf("SetQuantity(%d) left lines: %v", qty, got)
		}
	}
}

func TestClear(t *testing.T) {
	s := cart.NewStore()
	s.Add("sess", 1, 2)
	s.Add("sess", 2, 1)

	s.Clear("sess")
	if got := s.Lines("sess"); len(got) != 0 {
		t.Fatalf("expected empty cart after clear, got %v", got)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := cart.NewStore()

	s.Add("a", 1, 1)
	s.Add("b", 2, 5)

	if lines := s.Lines("a"); len(lines) != 1 || lines[0].ProductID != 1 {
		t.Fatalf("session a sees %v", lines)
	}
	if lines := s.Lines("b"); len(lines) != 1 || lines[0].ProductID != 2 {
		t.Fatalf("session b sees %v", lines)
	}

	s.Clear("a")
	if lines := s.Lines("b"); len(lines) != 1 {
		t.Fatalf("clearing a emptied b: %v", lines)
	}
}

func TestBuildView_TotalInvariant(t *testing.T) {
	cat := catalog.Default()
	s := cart.NewStore()

	s.Add("sess", 1, 2)
	s.Add("sess", 3, 1)
	s.SetQuantity("sess", 1, 1)
	s.Add("sess", 2, 4)
	s.Remove("sess", 3)

	v := cart.BuildView(s.Lines("sess"), cat)

	want := 0.0
	for _, it := range v.Items {
		want += it.Price * float64(it.Quantity)
	}
	if v.Total != want {
		t.Fatalf("total = %v, want %v", v.Total, want)
	}
	// The accumulated total rounds per addition, so compare with a
	// tolerance rather than against one constant-folded expression.
	if diff := math.Abs(v.Total - (4999.99 + 4*3499.99)); diff > 1e-9 {
		t.Fatalf("total = %v, want about %v", v.Total, 4999.99+4*3499.99)
	}
	if v.Count != 5 {
		t.Fatalf("count = %d, want 5", v.Count)
	}
}

func TestBuildView_SkipsVanishedProducts(t *testing.T) {
	cat := catalog.New([]catalog.Product{
		{ID: 1, Name: "Widget", Price: 10.0},
	})

	lines := []cart.Line{
		{ProductID: 1, Quantity: 2},
		{ProductID: 99, Quantity: 3}, // no longer in the catalog
	}

	v := cart.BuildView(lines, cat)

	if len(v.Items) != 1 {
		t.Fatalf("expected 1 resolvable item, got %d", len(v.Items))
	}
	if v.Total != 20.0 {
		t.Fatalf("total = %v, want 20", v.Total)
	}
	// The stored quantity still counts even though the product vanished.
	if v.Count != 5 {
		t.Fatalf("count = %d, want 5", v.Count)
	}
}

func TestBuildView_EmptyCart(t *testing.T) {
	v := cart.BuildView(nil, catalog.Default())

	if v.Items == nil {
		t.Fatalf("items must be an empty slice, not nil")
	}
	if len(v.Items) != 0 || v.Total != 0 || v.Count != 0 {
		t.Fatalf("unexpected empty view: %+v", v)
	}
}
