// Package tetris implements the falling-block puzzle game: playfield,
// piece movement, collision, and the spawn/fall/lock/clear state machine.
// The package is pure logic; rendering goes through core.Screen and all
// timing is expressed in simulation ticks.
package tetris

import (
	"math/rand"

	"github.com/ttrys/ttrys/internal/config"
	"github.com/ttrys/ttrys/internal/core"
	"github.com/ttrys/ttrys/internal/registry"
)

// Phase is the state machine's current stage.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking // piece landed, lock-delay window running
	PhaseLineClearing
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseLineClearing:
		return "line_clearing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Mode represents the game mode.
type Mode string

const (
	// ModeMarathon is the standard game: gravity speeds up with level.
	ModeMarathon Mode = "marathon"
	// ModeZen keeps gravity at the level-0 interval forever.
	ModeZen Mode = "zen"
)

// Package-level config selection, set by the CLI before game creation.
var (
	configPath string
	presetName string
)

// SetConfigPath sets the config file path for subsequently reset games.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the difficulty preset for subsequently reset games.
func SetPreset(name string) {
	presetName = name
}

// Game is a single play session. It owns the grid, the active piece, the
// bag spawner, and all score/level state; nothing is process-global, so
// independent sessions can run side by side.
type Game struct {
	mode        Mode
	cfg         config.TetrisConfig
	cfgOverride *config.TetrisConfig
	rng         *rand.Rand
	tick        uint64
	tickRate    int

	grid      *Grid
	bag       *Bag
	active    Piece
	hasActive bool

	phase      Phase
	savedPhase Phase // phase to restore on unpause

	fallTicks   int // ticks since the last gravity step
	lockTicks   int // ticks spent in the current lock-delay window
	lockResets  int // lock-delay resets used by the current piece
	clearTicks  int // ticks spent flashing full rows
	pendingRows []int

	score int
	lines int
	level int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a standard marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewZen creates a zen game with fixed gravity.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a marathon game that uses the given configuration
// instead of loading one. Used by tests and embedders.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{mode: ModeMarathon, cfgOverride: &cfg}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "tetris_zen"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Tetris (Zen)"
	}
	return "Tetris"
}

// Reset initializes/restarts the game session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfgOverride != nil {
		g.cfg = *g.cfgOverride
	} else {
		loaded, err := config.LoadTetris(configPath)
		if err != nil {
			loaded = config.DefaultTetrisConfig()
		}
		if presetName != "" {
			config.ApplyPreset(&loaded, config.Preset(presetName))
		}
		g.cfg = loaded
	}
	if g.mode == ModeZen {
		g.cfg.Gravity.Fixed = true
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = 0
	g.pendingRows = nil
	g.savedPhase = PhaseFalling

	g.grid = NewGrid(g.cfg.Well.Width, g.cfg.Well.Height)
	g.bag = NewBag(g.rng)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < g.requiredWidth() || g.screenH < g.requiredHeight()

	g.spawn()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restart after game over
	if input.Has(core.ActionRestart) && g.phase == PhaseGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.togglePause()
	}

	if g.phase == PhasePaused || g.phase == PhaseGameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Player commands apply whenever a piece is in play, in Falling and
	// in the lock-delay window alike.
	if g.phase == PhaseFalling || g.phase == PhaseLocking {
		g.handleCommands(input)
	}

	switch g.phase {
	case PhaseSpawning:
		g.spawn()
	case PhaseFalling:
		g.stepFalling()
	case PhaseLocking:
		g.stepLocking()
	case PhaseLineClearing:
		g.stepClearing()
	}

	return core.StepResult{State: g.State()}
}

// handleCommands applies the player's move/rotate/drop commands.
func (g *Game) handleCommands(input core.InputFrame) {
	if input.Has(core.ActionHardDrop) {
		g.hardDrop()
		return
	}
	if input.Has(core.ActionMoveLeft) {
		g.tryShift(-1)
	}
	if input.Has(core.ActionMoveRight) {
		g.tryShift(1)
	}
	if input.Has(core.ActionRotateCW) {
		g.tryTurn(true)
	}
	if input.Has(core.ActionRotateCCW) {
		g.tryTurn(false)
	}
	if input.Has(core.ActionSoftDrop) {
		g.softDrop()
	}
}

// tryShift moves the active piece one column. An invalid move is a
// silent no-op; a successful one in the lock-delay window resets it.
func (g *Game) tryShift(dx int) {
	moved, ok := TryMove(g.grid, g.active, dx, 0)
	if !ok {
		return
	}
	g.active = moved
	g.resetLockDelay()
}

// tryTurn rotates the active piece. Blocked rotations are rejected with
// the piece unchanged (no wall kicks).
func (g *Game) tryTurn(clockwise bool) {
	rotated, ok := TryRotate(g.grid, g.active, clockwise)
	if !ok {
		return
	}
	g.active = rotated
	g.resetLockDelay()
}

// resetLockDelay restarts the lock-delay window after a successful move
// or rotation while locking, returning the piece to falling semantics.
// Resets are capped per piece to prevent indefinite stalling.
func (g *Game) resetLockDelay() {
	if g.phase != PhaseLocking {
		return
	}
	if cap := g.cfg.Lock.ResetCap; cap > 0 && g.lockResets >= cap {
		return // out of resets; the lock timer keeps running
	}
	g.lockResets++
	g.lockTicks = 0
	g.fallTicks = 0
	g.phase = PhaseFalling
}

// softDrop advances gravity by one row on demand.
func (g *Game) softDrop() {
	if g.phase != PhaseFalling {
		return
	}
	moved, ok := TryMove(g.grid, g.active, 0, 1)
	if !ok {
		g.enterLocking()
		return
	}
	g.active = moved
	g.fallTicks = 0
}

// hardDrop slams the piece to its drop target and locks immediately,
// skipping the lock-delay window.
func (g *Game) hardDrop() {
	g.active = HardDropTarget(g.grid, g.active)
	g.lockPiece()
}

// stepFalling runs the gravity clock.
func (g *Game) stepFalling() {
	g.fallTicks++
	if g.fallTicks < g.gravityTicks() {
		return
	}
	g.fallTicks = 0

	moved, ok := TryMove(g.grid, g.active, 0, 1)
	if !ok {
		g.enterLocking()
		return
	}
	g.active = moved
}

// enterLocking starts the lock-delay window for a landed piece.
func (g *Game) enterLocking() {
	g.phase = PhaseLocking
	g.lockTicks = 0
}

// stepLocking counts down the lock delay.
func (g *Game) stepLocking() {
	g.lockTicks++
	if g.lockTicks >= g.lockDelayTicks() {
		g.lockPiece()
	}
}

// lockPiece commits the active piece to the grid and moves on to line
// clearing or the next spawn.
func (g *Game) lockPiece() {
	g.grid.LockPiece(g.active)
	g.hasActive = false

	rows := g.grid.FullRows()
	if len(rows) == 0 {
		g.phase = PhaseSpawning
		return
	}

	g.grid.MarkPending(rows)
	g.pendingRows = rows
	g.clearTicks = 0
	g.phase = PhaseLineClearing
	if g.clearDelayTicks() == 0 {
		g.finishClear()
	}
}

// stepClearing holds the full rows in their flash state briefly before
// removing them.
func (g *Game) stepClearing() {
	g.clearTicks++
	if g.clearTicks >= g.clearDelayTicks() {
		g.finishClear()
	}
}

// finishClear removes the full rows, updates score and level, and hands
// control back to the spawner.
func (g *Game) finishClear() {
	cleared := g.grid.ClearFullRows()
	g.lines += cleared
	g.score += g.rewardFor(g.pendingRows)
	g.level = g.score / g.cfg.Scoring.LevelStep
	g.pendingRows = nil
	g.phase = PhaseSpawning
}

// rewardFor scores a clear: consecutive cleared rows form streaks, and
// each streak of n rows awards the nth streak reward. Two separated
// single rows score as two singles, not a double.
func (g *Game) rewardFor(rows []int) int {
	rewards := g.cfg.Scoring.StreakRewards
	reward := func(streak int) int {
		idx := core.Clamp(streak, 1, len(rewards)) - 1
		return rewards[idx]
	}

	total := 0
	streak := 0
	for i, r := range rows {
		if i > 0 && r == rows[i-1]+1 {
			streak++
			continue
		}
		if streak > 0 {
			total += reward(streak)
		}
		streak = 1
	}
	if streak > 0 {
		total += reward(streak)
	}
	return total
}

// spawn creates the next piece at the top-center spawn position. A
// blocked spawn is the sole game-over condition.
func (g *Game) spawn() {
	shape := g.bag.Next()
	piece := NewPiece(shape, (g.grid.Width()-4)/2, 0)

	g.fallTicks = 0
	g.lockTicks = 0
	g.lockResets = 0

	if !CanPlace(g.grid, piece) {
		g.phase = PhaseGameOver
		g.hasActive = false
		return
	}

	g.active = piece
	g.hasActive = true
	g.phase = PhaseFalling
}

// togglePause pauses from any active phase and resumes to the saved one.
func (g *Game) togglePause() {
	switch g.phase {
	case PhasePaused:
		g.phase = g.savedPhase
	case PhaseGameOver:
		// terminal; only restart leaves it
	default:
		g.savedPhase = g.phase
		g.phase = PhasePaused
	}
}

// gravityTicks returns the current fall interval in ticks.
func (g *Game) gravityTicks() int {
	return g.cfg.Gravity.IntervalTicks(g.level, g.tickRate)
}

// lockDelayTicks returns the lock-delay window length in ticks.
func (g *Game) lockDelayTicks() int {
	return config.MsToTicks(g.cfg.Lock.DelayMs, g.tickRate)
}

// clearDelayTicks returns the line-clear flash length in ticks.
func (g *Game) clearDelayTicks() int {
	return config.MsToTicks(g.cfg.Clear.FlashMs, g.tickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Grid exposes the playfield for rendering and inspection.
func (g *Game) Grid() *Grid {
	return g.grid
}

// ActivePiece returns the falling piece, if one is in play.
func (g *Game) ActivePiece() (Piece, bool) {
	return g.active, g.hasActive
}

// NextShape returns the upcoming shape for the preview.
func (g *Game) NextShape() Shape {
	return g.bag.Peek()
}

// CurrentPhase returns the state machine's current phase.
func (g *Game) CurrentPhase() Phase {
	return g.phase
}

// Lines returns the total number of cleared rows this session.
func (g *Game) Lines() int {
	return g.lines
}
