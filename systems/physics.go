// Package systems contains the level, collision and ECS-backed adapters the
// character controller moves through.
package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/platformer/components"
)

// floorReach is how far below the feet we look for ground after a move.
const floorReach = 0.5

// skin shrinks the cross-axis span of a sweep so a box snapped flush against
// a tile edge does not count that tile as overlapping.
const skin = 1e-3

// KinematicBody is a collision-resolved body stored in an ECS world.
// It moves by its own velocity and slides along tile edges.
type KinematicBody struct {
	entity ecs.Entity
	level  *Level

	posMap      *ecs.Map[components.Position]
	velMap      *ecs.Map[components.Velocity]
	colliderMap *ecs.Map[components.Collider]
	contactMap  *ecs.Map[components.Contact]
}

// NewKinematicBody binds a body to an entity that has Position, Velocity,
// Collider and Contact components.
func NewKinematicBody(w *ecs.World, e ecs.Entity, level *Level) *KinematicBody {
	return &KinematicBody{
		entity:      e,
		level:       level,
		posMap:      ecs.NewMap[components.Position](w),
		velMap:      ecs.NewMap[components.Velocity](w),
		colliderMap: ecs.NewMap[components.Collider](w),
		contactMap:  ecs.NewMap[components.Contact](w),
	}
}

// Entity returns the backing entity.
func (b *KinematicBody) Entity() ecs.Entity {
	return b.entity
}

// Position returns the bottom-centre of the collider.
func (b *KinematicBody) Position() mgl32.Vec2 {
	p := b.posMap.Get(b.entity)
	return mgl32.Vec2{p.X, p.Y}
}

// Velocity returns the current velocity.
func (b *KinematicBody) Velocity() mgl32.Vec2 {
	v := b.velMap.Get(b.entity)
	return mgl32.Vec2{v.X, v.Y}
}

// SetVelocity replaces the velocity.
func (b *KinematicBody) SetVelocity(v mgl32.Vec2) {
	vel := b.velMap.Get(b.entity)
	vel.X, vel.Y = v.X(), v.Y()
}

// IsOnFloor reports whether the last move ended standing on a solid tile.
func (b *KinematicBody) IsOnFloor() bool {
	return b.contactMap.Get(b.entity).OnFloor
}

// Contact returns the collision flags from the last move.
func (b *KinematicBody) Contact() components.Contact {
	return *b.contactMap.Get(b.entity)
}

// Teleport moves the body without collision and clears its motion.
func (b *KinematicBody) Teleport(p mgl32.Vec2) {
	pos := b.posMap.Get(b.entity)
	pos.X, pos.Y = p.X(), p.Y()
	*b.velMap.Get(b.entity) = components.Velocity{}
	*b.contactMap.Get(b.entity) = components.Contact{}
}

// MoveAndSlide moves along X then Y by velocity*dt. A blocked axis stops at
// the tile edge and has its velocity zeroed; the other axis keeps moving.
func (b *KinematicBody) MoveAndSlide(dt float32) {
	pos := b.posMap.Get(b.entity)
	vel := b.velMap.Get(b.entity)
	col := b.colliderMap.Get(b.entity)
	contact := b.contactMap.Get(b.entity)
	*contact = components.Contact{}

	box := aabb{x: pos.X, y: pos.Y, halfW: col.Width / 2, h: col.Height}

	x, hitX := b.level.sweepX(box, vel.X*dt)
	box.x = x
	if hitX {
		vel.X = 0
		contact.OnWall = true
	}

	y, hitY := b.level.sweepY(box, vel.Y*dt)
	box.y = y
	if hitY {
		if vel.Y > 0 {
			contact.OnFloor = true
		} else {
			contact.OnCeiling = true
		}
		vel.Y = 0
	}

	if !contact.OnFloor && vel.Y >= 0 {
		if top, ok := b.level.standingOn(box); ok {
			box.y = top
			vel.Y = 0
			contact.OnFloor = true
		}
	}

	pos.X, pos.Y = box.x, box.y
}

// aabb is a box anchored at its bottom-centre.
type aabb struct {
	x, y     float32
	halfW, h float32
}

func (a aabb) left() float32   { return a.x - a.halfW }
func (a aabb) right() float32  { return a.x + a.halfW }
func (a aabb) top() float32    { return a.y - a.h }
func (a aabb) bottom() float32 { return a.y }

// sweepX moves the box horizontally by dx and returns the resolved x.
// Every column crossed is checked, so fast moves cannot tunnel.
func (l *Level) sweepX(a aabb, dx float32) (float32, bool) {
	if dx == 0 {
		return a.x, false
	}
	y0 := l.cellIndex(a.top() + skin)
	y1 := l.lastCell(a.bottom() - skin)

	if dx > 0 {
		from := l.cellIndex(a.right())
		to := l.lastCell(a.right() + dx)
		for x := from; x <= to; x++ {
			if l.anySolidInColumn(x, y0, y1) {
				return float32(x)*l.cellSize - a.halfW, true
			}
		}
		return a.x + dx, false
	}

	from := l.lastCell(a.left())
	to := l.cellIndex(a.left() + dx)
	for x := from; x >= to; x-- {
		if l.anySolidInColumn(x, y0, y1) {
			return float32(x+1)*l.cellSize + a.halfW, true
		}
	}
	return a.x + dx, false
}

// sweepY moves the box vertically by dy and returns the resolved y.
func (l *Level) sweepY(a aabb, dy float32) (float32, bool) {
	if dy == 0 {
		return a.y, false
	}
	x0 := l.cellIndex(a.left() + skin)
	x1 := l.lastCell(a.right() - skin)

	if dy > 0 {
		from := l.cellIndex(a.bottom())
		to := l.lastCell(a.bottom() + dy)
		for y := from; y <= to; y++ {
			if l.anySolidInRow(y, x0, x1) {
				return float32(y) * l.cellSize, true
			}
		}
		return a.y + dy, false
	}

	from := l.lastCell(a.top())
	to := l.cellIndex(a.top() + dy)
	for y := from; y >= to; y-- {
		if l.anySolidInRow(y, x0, x1) {
			return float32(y+1)*l.cellSize + a.h, true
		}
	}
	return a.y + dy, false
}

// standingOn reports a solid tile directly under the box's feet and the y of
// its top edge.
func (l *Level) standingOn(a aabb) (float32, bool) {
	row := l.cellIndex(a.bottom() + floorReach)
	top := float32(row) * l.cellSize
	if top < a.bottom()-floorReach {
		// Feet are inside this row rather than resting on it.
		return 0, false
	}
	if !l.anySolidInRow(row, l.cellIndex(a.left()+skin), l.lastCell(a.right()-skin)) {
		return 0, false
	}
	return top, true
}
