package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/platformer/components"
)

// SpriteProxy exposes an entity's Sprite component as the controller's visual.
type SpriteProxy struct {
	entity    ecs.Entity
	spriteMap *ecs.Map[components.Sprite]
}

// NewSpriteProxy binds to an entity with a Sprite component.
func NewSpriteProxy(w *ecs.World, e ecs.Entity) *SpriteProxy {
	return &SpriteProxy{
		entity:    e,
		spriteMap: ecs.NewMap[components.Sprite](w),
	}
}

func (s *SpriteProxy) Position() mgl32.Vec2 {
	sp := s.spriteMap.Get(s.entity)
	return mgl32.Vec2{sp.X, sp.Y}
}

func (s *SpriteProxy) SetPosition(p mgl32.Vec2) {
	sp := s.spriteMap.Get(s.entity)
	sp.X, sp.Y = p.X(), p.Y()
}

func (s *SpriteProxy) FlipH() bool {
	return s.spriteMap.Get(s.entity).FlipH
}

func (s *SpriteProxy) SetFlipH(flip bool) {
	s.spriteMap.Get(s.entity).FlipH = flip
}
