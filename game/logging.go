package game

import "log/slog"

// logState logs the player's current state with a message.
func (g *Game) logState(msg string) {
	pos := g.body.Position()
	vel := g.body.Velocity()
	slog.Info(msg,
		"tick", g.tick,
		"paused", g.paused,
		"x", pos.X(),
		"y", pos.Y(),
		"vx", vel.X(),
		"vy", vel.Y(),
		"on_floor", g.body.IsOnFloor(),
		"jump_latched", g.ctrl.JumpLatched(),
	)
}
