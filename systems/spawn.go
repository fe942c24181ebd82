package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/platformer/components"
)

// PlayerColor is the default sprite tint.
const PlayerColor uint32 = 0xE8B04AFF

// SpawnPlayer creates the player entity at the level spawn and returns its
// body and sprite adapters.
func SpawnPlayer(w *ecs.World, level *Level, width, height float32) (*KinematicBody, *SpriteProxy) {
	spawn := level.Spawn()

	mapper := ecs.NewMap5[
		components.Position,
		components.Velocity,
		components.Collider,
		components.Contact,
		components.Sprite,
	](w)

	pos := components.Position{X: spawn.X(), Y: spawn.Y()}
	vel := components.Velocity{}
	col := components.Collider{Width: width, Height: height}
	contact := components.Contact{}
	sprite := components.Sprite{X: spawn.X(), Y: spawn.Y(), Color: PlayerColor}

	e := mapper.NewEntity(&pos, &vel, &col, &contact, &sprite)
	return NewKinematicBody(w, e, level), NewSpriteProxy(w, e)
}
