package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func (s *Session) updatePlayer(in Input) {
	p := &s.player
	par := s.params

	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}

	dir := 0
	switch {
	case in.Left && !in.Right:
		dir = -1
	case in.Right && !in.Left:
		dir = 1
	}
	if dir != 0 {
		p.Facing = dir
	}

	// Variable jump height: extra lift while held, until the budget runs
	// out or the ascent ends.
	if !in.Jump || p.VY >= 0 {
		p.Hold = 0
	}
	if p.Hold > 0 {
		p.VY -= par.JumpHoldForce
		p.Hold--
	}

	Integrate(&p.Body, par, dir, in.Run)
	p.descending = p.VY > 0
	p.prevBottom = p.Bottom()

	c := MoveAndCollide(s.grid, &p.Body)
	s.clampToLevel(p)
	if c.Bumped {
		s.hitBlock(c.BumpX, c.BumpY)
	}

	s.updateJump(in)

	if in.Fire {
		s.throwFireball()
	}
}

// updateJump runs after collision so it sees this step's ground contact.
func (s *Session) updateJump(in Input) {
	p := &s.player
	par := s.params

	if p.Ground {
		p.Coyote = par.CoyoteSteps
	}

	wants := in.JumpPressed || p.Buffer > 0
	if wants && (p.Ground || p.Coyote > 0) {
		p.VY = par.JumpVelocity
		p.Ground = false
		p.Coyote = 0
		p.Buffer = 0
		p.Hold = par.JumpHoldSteps
		s.emit(EventJump, p.CenterX(), p.Bottom())
		return
	}

	if !p.Ground && p.Coyote > 0 {
		p.Coyote--
	}
	if in.JumpPressed {
		p.Buffer = par.BufferSteps
	} else if p.Buffer > 0 {
		p.Buffer--
	}
}

// clampToLevel keeps the player between the level's side edges.
func (s *Session) clampToLevel(p *Player) {
	maxX := s.grid.PixelWidth() - p.W
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	} else if p.X > maxX {
		p.X = maxX
		p.VX = 0
	}
}

func (s *Session) hitBlock(tx, ty int) {
	strong := s.player.Power >= PowerSuper
	res := s.grid.HitFromBelow(tx, ty, strong)
	x := (float64(tx) + 0.5) * TileSize
	y := float64(ty) * TileSize

	switch res.Outcome {
	case HitNone:
		return
	case HitBumped:
		s.emit(EventBlockBump, x, y)
	case HitBroken:
		s.carry.Score += s.params.BreakScore
		s.emit(EventBlockBreak, x, y)
	case HitSpent:
		s.emit(EventBlockBump, x, y)
		s.release(tx, ty, res.Content)
	}
}

// release turns a spent block's content into a coin or an item above it.
func (s *Session) release(tx, ty int, c Content) {
	var kind PickupKind
	switch c {
	case ContentNone:
		return
	case ContentCoin:
		s.collectCoin(float64(tx)*TileSize, float64(ty)*TileSize)
		pop := Pickup{Kind: PickupCoin, Popping: true, Life: CoinPopSteps}
		pop.W, pop.H = PickupCoin.Size()
		pop.X = float64(tx)*TileSize + (TileSize-pop.W)/2
		pop.Y = float64(ty)*TileSize - pop.H
		pop.VY = -5
		s.spawned = append(s.spawned, pop)
		return
	case ContentPowerUp:
		kind = PickupMushroom
		if s.player.Power >= PowerSuper {
			kind = PickupFlower
		}
	case ContentMushroom:
		kind = PickupMushroom
	case ContentFlower:
		kind = PickupFlower
	}

	item := Pickup{Kind: kind, Dir: 1, Static: kind == PickupFlower}
	item.W, item.H = kind.Size()
	item.X = float64(tx)*TileSize + (TileSize-item.W)/2
	item.Y = float64(ty)*TileSize - item.H
	s.spawned = append(s.spawned, item)
	s.emit(EventItemSpawn, item.CenterX(), item.Y)
}

func (s *Session) throwFireball() {
	p := &s.player
	if p.Power != PowerFire || p.FireCooldown > 0 || len(s.fireballs) >= s.params.MaxFireballs {
		return
	}
	f := Fireball{}
	f.W, f.H = FireballSize, FireballSize
	f.Y = p.Y + p.H/2 - f.H/2
	if p.Facing < 0 {
		f.X = p.X - f.W
	} else {
		f.X = p.X + p.W
	}
	f.VX = float64(p.Facing) * s.params.FireballSpeed
	s.fireballs = append(s.fireballs, f)
	p.FireCooldown = s.params.FireballCooldown
	s.emit(EventFireball, f.CenterX(), f.Y)
}

func (s *Session) updateEnemies() {
	par := s.params
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Stomped {
			e.StompTimer--
			if e.StompTimer <= 0 {
				e.removed = true
			}
			continue
		}
		if !e.Active {
			if par.ActivateRange > 0 && math.Abs(e.X-s.player.X) > par.ActivateRange {
				continue
			}
			e.Active = true
		}

		e.VX = float64(e.Dir) * par.EnemySpeed
		ApplyGravity(&e.Body, par)
		c := MoveAndCollide(s.grid, &e.Body)
		switch {
		case c.HitLeft:
			e.Dir = 1
			e.VX = par.EnemySpeed
		case c.HitRight:
			e.Dir = -1
			e.VX = -par.EnemySpeed
		}

		if s.outOfLevel(&e.Body) {
			e.removed = true
		}
	}
}

func (s *Session) updatePickups() {
	par := s.params
	for i := range s.pickups {
		pk := &s.pickups[i]
		switch {
		case pk.Static:
			continue
		case pk.Popping:
			pk.VY += par.Gravity
			pk.Y += pk.VY
			pk.Life--
			if pk.Life <= 0 {
				pk.removed = true
			}
			continue
		}

		pk.VX = float64(pk.Dir) * par.ItemSpeed
		ApplyGravity(&pk.Body, par)
		c := MoveAndCollide(s.grid, &pk.Body)
		switch {
		case c.HitLeft:
			pk.Dir = 1
		case c.HitRight:
			pk.Dir = -1
		}
		if s.outOfLevel(&pk.Body) {
			pk.removed = true
		}
	}
}

func (s *Session) updateFireballs() {
	par := s.params
	for i := range s.fireballs {
		f := &s.fireballs[i]
		vx := f.VX
		ApplyGravity(&f.Body, par)
		c := MoveAndCollide(s.grid, &f.Body)
		if c.HitLeft || c.HitRight || s.outOfLevel(&f.Body) {
			f.removed = true
			continue
		}
		f.VX = vx
		if c.Landed {
			f.Bounces++
			f.VY = par.FireballBounce
			if f.Bounces > MaxFireballBounces {
				f.removed = true
				continue
			}
		}

		box := f.Box()
		for j := range s.enemies {
			e := &s.enemies[j]
			if e.removed || e.Stomped || !box.Overlaps(e.Box()) {
				continue
			}
			e.removed = true
			f.removed = true
			s.carry.Score += par.KillScore
			s.emit(EventEnemyDefeated, e.CenterX(), e.Y)
			break
		}
	}
}

// resolveEnemyContacts classifies every overlap of the step before applying
// any of them, so a stomp on one enemy wins over touching another.
func (s *Session) resolveEnemyContacts() {
	if s.status != StatusPlaying {
		return
	}
	p := &s.player
	box := p.Box()
	stomped, hurt := false, false

	for i := range s.enemies {
		e := &s.enemies[i]
		if e.removed || e.Stomped || !box.Overlaps(e.Box()) {
			continue
		}
		if s.isStomp(e) {
			e.Stomped = true
			e.StompTimer = s.params.StompSteps
			e.VX, e.VY = 0, 0
			s.carry.Score += s.params.StompScore
			s.emit(EventStomp, e.CenterX(), e.Y)
			stomped = true
			continue
		}
		hurt = true
	}

	if stomped {
		p.VY = s.params.StompBounce
		p.Hold = 0
		return
	}
	if hurt && p.Invincible == 0 {
		s.hurtPlayer()
	}
}

// isStomp reports whether the player is coming down on top of the enemy:
// descending, with its bottom edge no deeper than StompTolerance below the
// enemy's top before or after this step's move.
func (s *Session) isStomp(e *Enemy) bool {
	p := &s.player
	if !p.descending {
		return false
	}
	return min(p.prevBottom, p.Bottom())-e.Y <= s.params.StompTolerance
}

func (s *Session) hurtPlayer() {
	p := &s.player
	if p.Power == PowerSmall {
		s.die()
		return
	}
	p.setPower(p.Power - 1)
	p.Invincible = s.params.InvincibleSteps
	s.emit(EventPowerDown, p.CenterX(), p.Y)
}

func (s *Session) collectPickups() {
	if s.status != StatusPlaying {
		return
	}
	p := &s.player
	box := p.Box()
	for i := range s.pickups {
		pk := &s.pickups[i]
		if pk.removed || pk.Popping || !box.Overlaps(pk.Box()) {
			continue
		}
		pk.removed = true

		switch pk.Kind {
		case PickupCoin:
			s.collectCoin(pk.X, pk.Y)
		case PickupMushroom:
			s.carry.Score += s.params.PowerUpScore
			if p.Power == PowerSmall {
				p.setPower(PowerSuper)
				s.emit(EventPowerUp, p.CenterX(), p.Y)
			}
		case PickupFlower:
			s.carry.Score += s.params.PowerUpScore
			if p.Power < PowerFire {
				p.setPower(PowerFire)
				s.emit(EventPowerUp, p.CenterX(), p.Y)
			}
		}
	}
}

func (s *Session) collectCoin(x, y float64) {
	s.carry.Coins++
	s.carry.Score += s.params.CoinScore
	s.emit(EventCoin, x, y)

	if per := s.params.CoinsPerLife; per > 0 && s.carry.Coins >= per {
		s.carry.Coins -= per
		s.carry.Lives++
		s.emit(EventOneUp, x, y)
	}
}

// checkHazards kills the player on lethal tiles or below the level,
// regardless of invincibility.
func (s *Session) checkHazards() {
	if s.status != StatusPlaying {
		return
	}
	p := &s.player
	if p.Y >= s.grid.PixelHeight() {
		s.die()
		return
	}
	if s.touches(&p.Body, s.grid.IsLethal) {
		s.die()
	}
}

// checkGoal ends the level once the player has overlapped the goal for
// GoalDwellSteps consecutive steps.
func (s *Session) checkGoal() {
	if s.status != StatusPlaying {
		return
	}
	if !s.touches(&s.player.Body, s.grid.IsGoal) {
		s.goalDwell = 0
		return
	}
	s.goalDwell++
	if s.goalDwell < s.params.GoalDwellSteps {
		return
	}

	s.status = StatusCleared
	if s.timeLeft > 0 {
		s.carry.Score += s.TimeLeft() * s.params.TimeBonus
	}
	s.emit(EventLevelComplete, s.player.CenterX(), s.player.Y)
}

func (s *Session) tickClock() {
	if s.status != StatusPlaying || s.timeLeft < 0 {
		return
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.die()
	}
}

func (s *Session) die() {
	s.status = StatusDied
	s.carry.Lives--
	s.emit(EventDeath, s.player.CenterX(), s.player.Y)
}

// touches reports whether any cell under the body satisfies pred.
func (s *Session) touches(b *Body, pred func(tx, ty int) bool) bool {
	box := b.Box()
	left, right := core.CellSpan(box.X, box.Right(), TileSize)
	top, bottom := core.CellSpan(box.Y, box.Bottom(), TileSize)
	for ty := top; ty <= bottom; ty++ {
		for tx := left; tx <= right; tx++ {
			if pred(tx, ty) {
				return true
			}
		}
	}
	return false
}

func (s *Session) outOfLevel(b *Body) bool {
	return b.Y >= s.grid.PixelHeight() || b.X+b.W <= 0 || b.X >= s.grid.PixelWidth()
}
