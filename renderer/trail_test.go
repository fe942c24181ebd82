package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTrailKeepsNewest(t *testing.T) {
	tr := NewTrail(3)
	if tr.Len() != 0 || len(tr.Points()) != 0 {
		t.Fatal("new trail should be empty")
	}
	for i := 1; i <= 5; i++ {
		tr.Push(mgl32.Vec2{float32(i), 0})
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	got := tr.Points()
	for i, want := range []float32{3, 4, 5} {
		if got[i].X() != want {
			t.Errorf("Points()[%d].X = %v, want %v", i, got[i].X(), want)
		}
	}

	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", tr.Len())
	}
}

func TestTrailPartiallyFilled(t *testing.T) {
	tr := NewTrail(4)
	tr.Push(mgl32.Vec2{1, 1})
	tr.Push(mgl32.Vec2{2, 2})
	got := tr.Points()
	if len(got) != 2 || got[0].X() != 1 || got[1].X() != 2 {
		t.Errorf("Points() = %v, want [(1,1) (2,2)]", got)
	}
}
