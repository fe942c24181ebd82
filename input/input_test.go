package input

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVector(t *testing.T) {
	tests := []struct {
		name                  string
		left, right, up, down float32
		want                  mgl32.Vec2
	}{
		{"none", 0, 0, 0, 0, mgl32.Vec2{0, 0}},
		{"right", 0, 1, 0, 0, mgl32.Vec2{1, 0}},
		{"left", 1, 0, 0, 0, mgl32.Vec2{-1, 0}},
		{"up is negative y", 0, 0, 1, 0, mgl32.Vec2{0, -1}},
		{"opposites cancel", 1, 1, 0, 0, mgl32.Vec2{0, 0}},
		{"partial analog", 0, 0.5, 0, 0, mgl32.Vec2{0.5, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Vector(tc.left, tc.right, tc.up, tc.down)
			if got != tc.want {
				t.Errorf("Vector() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVectorDiagonalIsUnitLength(t *testing.T) {
	v := Vector(0, 1, 0, 1)
	if math.Abs(float64(v.Len())-1) > 1e-5 {
		t.Errorf("diagonal length = %f, want 1", v.Len())
	}
	if v.X() <= 0 || v.Y() <= 0 {
		t.Errorf("diagonal = %v, want both components positive", v)
	}
}

func TestEdge(t *testing.T) {
	var e Edge
	seq := []struct {
		down, want bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, s := range seq {
		if got := e.Update(s.down); got != s.want {
			t.Errorf("step %d: Update(%v) = %v, want %v", i, s.down, got, s.want)
		}
	}
}

func TestScriptHoldsRowsUntilNextKeyframe(t *testing.T) {
	s := NewScript([]ScriptRow{
		{Frame: 3, Left: 1},
		{Frame: 0, Right: 1},
	})

	for frame := 0; frame < 3; frame++ {
		if got := s.Sample().Direction; got != (mgl32.Vec2{1, 0}) {
			t.Fatalf("frame %d: direction = %v, want (1, 0)", frame, got)
		}
	}
	if got := s.Sample().Direction; got != (mgl32.Vec2{-1, 0}) {
		t.Errorf("frame 3: direction = %v, want (-1, 0)", got)
	}
	if !s.Done() {
		t.Error("expected script to be done after last keyframe")
	}
	if s.Frame() != 4 {
		t.Errorf("Frame() = %d, want 4", s.Frame())
	}
}

func TestScriptJumpIsEdgeTriggered(t *testing.T) {
	s := NewScript([]ScriptRow{
		{Frame: 1, Jump: true},
		{Frame: 4, Jump: false},
		{Frame: 5, Jump: true},
	})

	var presses []int
	for frame := 0; frame < 8; frame++ {
		if s.Sample().JumpPressed {
			presses = append(presses, frame)
		}
	}
	if len(presses) != 2 || presses[0] != 1 || presses[1] != 5 {
		t.Errorf("jump presses at frames %v, want [1 5]", presses)
	}
}

func TestReadScript(t *testing.T) {
	csv := "frame,left,right,up,down,jump\n0,0,1,0,0,false\n2,0,1,0,0,true\n"
	s, err := ReadScript(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadScript: %v", err)
	}

	first := s.Sample()
	if first.Direction != (mgl32.Vec2{1, 0}) || first.JumpPressed {
		t.Errorf("frame 0 = %+v, want right without jump", first)
	}
	s.Sample()
	if !s.Sample().JumpPressed {
		t.Error("expected jump press at frame 2")
	}
}
