package trial

import (
	"testing"

	"github.com/pthm-cable/platformer/config"
)

func TestFlatTrack(t *testing.T) {
	rows := FlatTrack(10)
	if len(rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(rows))
	}
	if rows[6] != "..P......." {
		t.Errorf("spawn row = %q", rows[6])
	}
	if rows[7] != "##########" {
		t.Errorf("floor row = %q", rows[7])
	}
}

func TestRunRecordsEveryTick(t *testing.T) {
	res, err := Run(config.Defaults(), FlatTrack(40), RunAndJump(30), 90)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Samples) != 90 {
		t.Fatalf("got %d samples, want 90", len(res.Samples))
	}
	for i, s := range res.Samples {
		if s.Tick != int64(i+1) {
			t.Fatalf("sample %d has tick %d", i, s.Tick)
		}
	}

	ws := res.Stats()
	if ws.Jumps != 1 {
		t.Errorf("jumps = %d, want 1", ws.Jumps)
	}
	if ws.MinY >= float64(res.Spawn.Y()) {
		t.Errorf("min y %v never rose above spawn %v", ws.MinY, res.Spawn.Y())
	}
	if last := res.Samples[len(res.Samples)-1]; last.X <= res.Spawn.X() {
		t.Errorf("holding right ended at x=%v, spawn x=%v", last.X, res.Spawn.X())
	}
}

func TestRunRejectsBadLevel(t *testing.T) {
	if _, err := Run(config.Defaults(), []string{"####"}, nil, 10); err == nil {
		t.Error("level without spawn should fail")
	}
}
