package input

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

// ScriptRow is one keyframe of a recorded input script.
// A row holds until the next row's frame.
type ScriptRow struct {
	Frame int     `csv:"frame"`
	Left  float32 `csv:"left"`
	Right float32 `csv:"right"`
	Up    float32 `csv:"up"`
	Down  float32 `csv:"down"`
	Jump  bool    `csv:"jump"`
}

// Script replays keyframed input, one frame per Sample call.
type Script struct {
	rows  []ScriptRow
	next  int // index of the next row to activate
	cur   ScriptRow
	frame int
	jump  Edge
}

// NewScript creates a script from keyframes. Rows are sorted by frame.
func NewScript(rows []ScriptRow) *Script {
	sorted := make([]ScriptRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })
	return &Script{rows: sorted}
}

// ReadScript parses a CSV script with header frame,left,right,up,down,jump.
func ReadScript(r io.Reader) (*Script, error) {
	var rows []ScriptRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing input script: %w", err)
	}
	return NewScript(rows), nil
}

// LoadScript reads a CSV script from disk.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input script: %w", err)
	}
	defer f.Close()
	return ReadScript(f)
}

// Sample advances one frame and returns the input active for it.
func (s *Script) Sample() State {
	for s.next < len(s.rows) && s.rows[s.next].Frame <= s.frame {
		s.cur = s.rows[s.next]
		s.next++
	}
	s.frame++

	return State{
		Direction:   Vector(s.cur.Left, s.cur.Right, s.cur.Up, s.cur.Down),
		JumpPressed: s.jump.Update(s.cur.Jump),
	}
}

// Frame returns the number of frames sampled so far.
func (s *Script) Frame() int {
	return s.frame
}

// Done reports whether every keyframe has been activated.
func (s *Script) Done() bool {
	return s.next >= len(s.rows)
}
