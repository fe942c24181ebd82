package systems

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TerrainCell is the content of one level tile.
type TerrainCell uint8

const (
	TerrainEmpty TerrainCell = iota
	TerrainSolid
)

// Level tile characters.
const (
	tileEmpty = '.'
	tileSolid = '#'
	tileSpawn = 'P'
)

// Occluder is a solid rectangle in world space, used for drawing.
type Occluder struct {
	X, Y, Width, Height float32
}

// Level is a static tile grid the player collides with.
// The left, right and bottom edges of the grid block movement; the top is open.
type Level struct {
	grid       [][]TerrainCell
	cellSize   float32
	gridWidth  int
	gridHeight int
	spawn      mgl32.Vec2

	occluderCache []Occluder
}

// ParseLevel builds a level from text rows. Shorter rows are padded with empty tiles.
func ParseLevel(rows []string, cellSize float32) (*Level, error) {
	if len(rows) == 0 {
		return nil, errors.New("level has no rows")
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %v", cellSize)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	l := &Level{
		grid:       make([][]TerrainCell, len(rows)),
		cellSize:   cellSize,
		gridWidth:  width,
		gridHeight: len(rows),
	}

	spawnFound := false
	for y, row := range rows {
		l.grid[y] = make([]TerrainCell, width)
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case tileSolid:
				l.grid[y][x] = TerrainSolid
			case tileSpawn:
				if spawnFound {
					return nil, fmt.Errorf("row %d col %d: second spawn tile", y, x)
				}
				spawnFound = true
				// Bottom-centre of the tile, matching body anchoring.
				l.spawn = mgl32.Vec2{(float32(x) + 0.5) * cellSize, float32(y+1) * cellSize}
			case tileEmpty, ' ':
			default:
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, row[x])
			}
		}
	}
	if !spawnFound {
		return nil, errors.New("level has no spawn tile")
	}

	l.buildOccluderCache()
	return l, nil
}

func (l *Level) buildOccluderCache() {
	l.occluderCache = l.occluderCache[:0]
	for y := 0; y < l.gridHeight; y++ {
		for x := 0; x < l.gridWidth; x++ {
			if l.grid[y][x] == TerrainEmpty {
				continue
			}
			l.occluderCache = append(l.occluderCache, Occluder{
				X:      float32(x) * l.cellSize,
				Y:      float32(y) * l.cellSize,
				Width:  l.cellSize,
				Height: l.cellSize,
			})
		}
	}
}

// GetOccluders returns one rectangle per solid tile.
func (l *Level) GetOccluders() []Occluder {
	return l.occluderCache
}

// Solid reports whether tile (x, y) blocks movement.
func (l *Level) Solid(x, y int) bool {
	if x < 0 || x >= l.gridWidth || y >= l.gridHeight {
		return true
	}
	if y < 0 {
		return false
	}
	return l.grid[y][x] != TerrainEmpty
}

// IsSolid reports whether the world position is inside a blocking tile.
func (l *Level) IsSolid(x, y float32) bool {
	return l.Solid(l.cellIndex(x), l.cellIndex(y))
}

// Spawn returns the spawn point (bottom-centre of the spawn tile).
func (l *Level) Spawn() mgl32.Vec2 {
	return l.spawn
}

// Bounds returns the level size in world units.
func (l *Level) Bounds() (width, height float32) {
	return float32(l.gridWidth) * l.cellSize, float32(l.gridHeight) * l.cellSize
}

// CellSize returns the tile edge length.
func (l *Level) CellSize() float32 {
	return l.cellSize
}

func (l *Level) cellIndex(v float32) int {
	return int(math32.Floor(v / l.cellSize))
}

// lastCell is the index of the last tile that overlaps a span ending at v.
// A span ending exactly on a tile boundary does not reach the next tile.
func (l *Level) lastCell(v float32) int {
	return int(math32.Ceil(v/l.cellSize)) - 1
}

// anySolidInColumn reports a blocking tile in column x between rows y0 and y1 inclusive.
func (l *Level) anySolidInColumn(x, y0, y1 int) bool {
	for y := y0; y <= y1; y++ {
		if l.Solid(x, y) {
			return true
		}
	}
	return false
}

// anySolidInRow reports a blocking tile in row y between columns x0 and x1 inclusive.
func (l *Level) anySolidInRow(y, x0, x1 int) bool {
	for x := x0; x <= x1; x++ {
		if l.Solid(x, y) {
			return true
		}
	}
	return false
}
