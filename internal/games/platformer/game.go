// Package platformer adapts the platformer simulation to the terminal
// platform: campaign and endless modes, lives carried between stages and
// rendering into a core.Screen.
package platformer

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game IDs.
const (
	CampaignID = "platformer"
	EndlessID  = "platformer_endless"
)

// bannerSteps is how long the stage banner shows before play resumes.
const bannerSteps = 90

// Mode selects how stages follow each other.
type Mode int

const (
	ModeCampaign Mode = iota
	ModeEndless
)

// StageClear describes one cleared stage, as handed to the clear recorder.
type StageClear struct {
	GameID   string
	LevelID  string
	World    int
	Stage    int
	Score    int
	Coins    int
	TimeLeft int
	Steps    int
}

// Package-level defaults set from the CLI, copied into every new Game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name. Unknown names
// fall back to the config file's settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger new games report transitions and events to.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(CampaignID, "Platformer", func() registry.Game { return New() })
	registry.Register(EndlessID, "Platformer (Endless)", func() registry.Game { return NewEndless() })
}

// Game implements registry.Game on top of a sim.Session.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	params  sim.Params
	diff    *config.DifficultyManager
	log     *log.Logger
	record  func(StageClear)
	rng     *rand.Rand

	custom *sim.Level // Single level replacing the campaign
	world  int
	stage  int
	firstW int
	firstS int

	session *sim.Session
	cleared int // Stages cleared this run
	banner  int // Steps left on the stage banner
	over    bool
	victory bool
	paused  bool
}

// New creates a campaign game using the package-level defaults.
func New() *Game {
	g := &Game{
		mode:   ModeCampaign,
		firstW: 1,
		firstS: 1,
		log:    logger,
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	return g
}

// NewEndless creates an endless game: random stages that get harder as
// more of them are cleared.
func NewEndless() *Game {
	g := New()
	g.mode = ModeEndless
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return CampaignID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Platformer (Endless)"
	}
	return "Platformer"
}

// SetRecorder sets the callback invoked for every cleared stage.
func (g *Game) SetRecorder(fn func(StageClear)) {
	g.record = fn
}

// StartAt overrides the campaign start stage for this game only.
func (g *Game) StartAt(world, stage int) {
	g.firstW = core.Clamp(world, 1, sim.MaxWorld)
	g.firstS = core.Clamp(stage, 1, sim.MaxStage)
}

// UseLevel makes this game play a single level. It takes effect on the
// next Reset.
func (g *Game) UseLevel(l *sim.Level) {
	g.custom = l
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.params = ParamsFromConfig(cfg)
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.world, g.stage = g.firstW, g.firstS
	if g.mode == ModeEndless {
		g.world, g.stage = 1, 1
	}
	g.cleared = 0
	g.over = false
	g.victory = false
	g.paused = false
	g.closeSession()

	g.begin(sim.Carry{Lives: cfg.Player.Lives})
	g.log.Info("run started", "game", g.ID(), "level", g.session.Level().ID, "lives", cfg.Player.Lives)
}

// ParamsFromConfig converts the YAML configuration into simulation tuning.
func ParamsFromConfig(c config.PlatformerConfig) sim.Params {
	return sim.Params{
		Gravity:        c.Physics.Gravity,
		MaxFall:        c.Physics.MaxFall,
		JumpVelocity:   c.Physics.JumpVelocity,
		JumpHoldForce:  c.Physics.JumpHoldForce,
		JumpHoldSteps:  c.Physics.JumpHoldSteps,
		WalkAccel:      c.Physics.WalkAccel,
		RunAccel:       c.Physics.RunAccel,
		MaxWalk:        c.Physics.MaxWalk,
		MaxRun:         c.Physics.MaxRun,
		GroundFriction: c.Physics.GroundFriction,
		AirFriction:    c.Physics.AirFriction,
		DeadZone:       c.Physics.DeadZone,

		CoyoteSteps:     c.Player.CoyoteSteps,
		BufferSteps:     c.Player.BufferSteps,
		InvincibleSteps: c.Player.InvincibleSteps,
		StompTolerance:  c.Player.StompTolerance,
		StompBounce:     c.Player.StompBounce,
		StompSteps:      c.Rules.StompSteps,

		EnemySpeed:    c.Rules.EnemySpeed,
		ItemSpeed:     c.Rules.ItemSpeed,
		ActivateRange: c.Rules.ActivateRange,

		GoalDwellSteps: c.Rules.GoalDwellSteps,
		TimeLimit:      c.Rules.TimeLimit,
		StepsPerSecond: c.Rules.StepsPerSecond,

		CoinScore:    c.Rules.CoinScore,
		StompScore:   c.Rules.StompScore,
		PowerUpScore: c.Rules.PowerUpScore,
		KillScore:    c.Rules.KillScore,
		BreakScore:   c.Rules.BreakScore,
		TimeBonus:    c.Rules.TimeBonus,
		CoinsPerLife: c.Rules.CoinsPerLife,

		FireballSpeed:    c.Rules.FireballSpeed,
		FireballBounce:   c.Rules.FireballBounce,
		FireballCooldown: c.Rules.FireballCooldown,
		MaxFireballs:     c.Rules.MaxFireballs,

		CameraLead: c.Camera.Lead,
	}
}

// begin starts a session on the current stage with the given progress.
func (g *Game) begin(carry sim.Carry) {
	g.session = sim.Start(g.currentLevel(), g.stageParams(), carry)
	g.banner = bannerSteps
}

func (g *Game) currentLevel() *sim.Level {
	if g.custom != nil {
		return g.custom
	}
	gen := g.cfg.Generation
	opts := sim.GenOptions{
		GapChance:    gen.GapChance,
		EnemyDensity: gen.EnemyDensity,
		CoinDensity:  gen.CoinDensity,
	}
	if g.mode == ModeEndless {
		opts.Seed = g.rng.Int63()
		opts.GapChance = g.diff.GapChance(gen.GapChance, g.cleared)
		opts.EnemyDensity = g.diff.EnemyDensity(gen.EnemyDensity, g.cleared)
	}
	return sim.Generate(g.world, g.stage, opts)
}

func (g *Game) stageParams() sim.Params {
	p := g.params
	if g.mode == ModeEndless {
		p.EnemySpeed = g.diff.Speed(p.EnemySpeed, g.cleared)
	}
	return p
}

func (g *Game) closeSession() {
	if g.session != nil && !g.session.Closed() {
		g.session.Close()
	}
	g.session = nil
}

// ReplaceLevel swaps the single level being played and restarts it with
// the progress the current attempt started from. Used for hot reload.
func (g *Game) ReplaceLevel(l *sim.Level) {
	g.custom = l
	if g.session == nil || g.over {
		return
	}
	carry := sim.Carry{Lives: g.cfg.Player.Lives}
	if g.session.Status() == sim.StatusPlaying {
		carry = g.session.StartCarry()
	}
	g.closeSession()
	g.begin(carry)
	g.log.Info("level reloaded", "level", l.ID)
}

// Step advances the game by one fixed step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}

	if in.WasPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.banner > 0 {
		g.banner--
		return core.StepResult{State: g.State()}
	}

	rep := g.session.Advance(sim.Input{
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Run:         in.Has(core.ActionRun),
		Jump:        in.Has(core.ActionJump),
		JumpPressed: in.WasPressed(core.ActionJump),
		Fire:        in.WasPressed(core.ActionFire),
	})
	for _, ev := range rep.Events {
		g.log.Debug("sim event", "event", ev.Kind, "step", rep.Step, "x", ev.X, "y", ev.Y)
	}

	switch rep.Status {
	case sim.StatusDied:
		g.onDeath()
	case sim.StatusCleared:
		g.onClear()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) onDeath() {
	carry := g.session.Carry()
	if carry.Lives <= 0 {
		g.over = true
		g.log.Info("game over", "game", g.ID(), "score", carry.Score, "stage", g.stageLabel())
		return
	}
	g.log.Info("player died", "stage", g.stageLabel(), "lives", carry.Lives)
	g.session = g.session.Reset()
	g.banner = bannerSteps
}

func (g *Game) onClear() {
	s := g.session
	carry := s.Carry()
	sc := StageClear{
		GameID:   g.ID(),
		LevelID:  g.stageLabel(),
		World:    g.world,
		Stage:    g.stage,
		Score:    carry.Score,
		Coins:    carry.Coins,
		TimeLeft: s.TimeLeft(),
		Steps:    s.Steps(),
	}
	if g.custom != nil {
		sc.LevelID = g.custom.ID
		sc.World, sc.Stage = 0, 0
	}
	g.cleared++
	g.log.Info("stage cleared", "stage", sc.LevelID, "score", carry.Score, "steps", sc.Steps)
	if g.record != nil {
		g.record(sc)
	}

	if g.custom != nil {
		g.finish(carry)
		return
	}
	w, st, ok := sim.Next(g.world, g.stage)
	if !ok {
		if g.mode == ModeCampaign {
			g.finish(carry)
			return
		}
		w, st = 1, 1
	}
	g.world, g.stage = w, st
	g.closeSession()
	g.begin(carry)
}

// finish ends the run with a victory, leaving the final session open for
// rendering.
func (g *Game) finish(carry sim.Carry) {
	g.over = true
	g.victory = true
	g.log.Info("run complete", "game", g.ID(), "score", carry.Score)
}

func (g *Game) stageLabel() string {
	if g.custom != nil {
		return g.custom.ID
	}
	return sim.StageName(g.world, g.stage)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.over,
		Victory:  g.victory,
		Paused:   g.paused,
	}
	if g.session != nil {
		c := g.session.Carry()
		st.Score = c.Score
		st.Lives = c.Lives
	}
	return st
}

// Stage returns the world and stage being played.
func (g *Game) Stage() (world, stage int) {
	return g.world, g.stage
}

// Session exposes the running session for inspection. It is nil before
// the first Reset.
func (g *Game) Session() *sim.Session {
	return g.session
}

// StepsPerSecond returns the simulation rate. It does not depend on how
// often the front end renders.
func (g *Game) StepsPerSecond() int {
	return g.params.StepsPerSecond
}

// HoldSteps returns the configured key latch length for terminal input.
func (g *Game) HoldSteps() int {
	return g.cfg.Input.HoldSteps
}
