package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/squaredcircle/booker/booker/database/repositories"
	"github.com/squaredcircle/booker/booker/engine"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/squaredcircle/booker/booker/logger"
	"github.com/squaredcircle/booker/booker/mailbox"
	"github.com/squaredcircle/booker/booker/match"
	"github.com/squaredcircle/booker/booker/schedule"
)

var (
	// ErrNoGame means no game has been started or loaded yet.
	ErrNoGame = errors.New("session: no active game")
	// ErrPaused blocks time advancement while the clock is paused. The
	// scheduler itself never checks pause; the session is the gating
	// caller.
	ErrPaused = errors.New("session: time progression is paused")
	// ErrTurnInFlight enforces one match action at a time.
	ErrTurnInFlight = errors.New("session: an action is already resolving")
	// ErrNoMatch means no match simulation is running.
	ErrNoMatch = errors.New("session: no match in progress")
	// ErrUnknownAction rejects action ids missing from the catalog.
	ErrUnknownAction = errors.New("session: unknown match action")
	// ErrUnknownWrestler rejects roster ids that do not resolve.
	ErrUnknownWrestler = errors.New("session: unknown wrestler")
)

// Config tunes the session timers.
type Config struct {
	EmailInterval time.Duration
	EmailChance   float64
	AutosaveEvery time.Duration
	AutosaveSlot  int
}

// DefaultConfig mirrors the reference pacing: a 30s inbox tick with a
// 30% delivery chance and a five-minute autosave into slot 1.
func DefaultConfig() Config {
	return Config{
		EmailInterval: 30 * time.Second,
		EmailChance:   0.3,
		AutosaveEvery: 5 * time.Minute,
		AutosaveSlot:  1,
	}
}

// Session owns the single mutable game snapshot. Every operation swaps
// the snapshot wholesale, so readers never see a half-applied state, and
// the session is the only writer.
type Session struct {
	mu sync.Mutex

	cfg   Config
	rng   *rand.Rand
	eng   *engine.Engine
	sched *schedule.Scheduler
	mail  *mailbox.Generator
	saves repositories.SaveRepository

	state   *game.GameState
	sim     *match.Simulator
	simCfg  match.Config
	busy    bool
	stopped chan struct{}
}

// New wires a session from its collaborators.
func New(cfg Config, rng *rand.Rand, saves repositories.SaveRepository) *Session {
	return &Session{
		cfg:     cfg,
		rng:     rng,
		eng:     engine.New(rng),
		sched:   schedule.NewScheduler(rng),
		mail:    mailbox.NewGenerator(rng),
		saves:   saves,
		simCfg:  match.DefaultConfig(),
		stopped: make(chan struct{}),
	}
}

// NewGame starts a fresh game from the catalogs and seeds the starter
// objectives.
func (s *Session) NewGame(setup game.Setup) game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := game.NewGameState(setup)
	if setup.Mode == game.ModeBooker {
		state.Objectives = s.eng.StarterObjectives()
	}
	s.state = &state
	s.sim = nil

	slog.Info("New game started",
		slog.String("type", "sys"),
		slog.String("player", setup.PlayerName),
		slog.String("mode", string(setup.Mode)))
	return state.Clone()
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	return s.state.Clone(), nil
}

// Advance moves the clock forward, honoring pause and the scheduler's
// critical-event gate.
func (s *Session) Advance(days int) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	if s.state.Time.Paused {
		return game.GameState{}, ErrPaused
	}
	if days < 1 {
		return game.GameState{}, fmt.Errorf("session: cannot advance %d days", days)
	}

	next := s.sched.Advance(*s.state, days)
	s.state = &next
	return next.Clone(), nil
}

// TogglePause flips the clock toggle and returns the new snapshot.
func (s *Session) TogglePause() (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	next := s.state.Clone()
	next.Time.Paused = !next.Time.Paused
	s.state = &next
	return next.Clone(), nil
}

// StartMatch spins up a simulator between the player wrestler and an
// opponent. Missing combatant data is the fatal precondition the match
// engine refuses.
func (s *Session) StartMatch(playerID, opponentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return ErrNoGame
	}

	player, ok := s.state.Wrestlers[playerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWrestler, playerID)
	}
	opponent, ok := s.state.Wrestlers[opponentID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWrestler, opponentID)
	}

	sim, err := match.NewSimulator(s.simCfg, s.rng, player, opponent)
	if err != nil {
		return err
	}
	s.sim = sim
	s.busy = false
	return nil
}

// ExecuteAction resolves one player action. Turn ownership is session
// level: a second action submitted while one is resolving is rejected,
// never queued.
func (s *Session) ExecuteAction(actionID string) (match.Turn, error) {
	s.mu.Lock()
	if s.sim == nil {
		s.mu.Unlock()
		return match.Turn{}, ErrNoMatch
	}
	if s.busy {
		s.mu.Unlock()
		return match.Turn{}, ErrTurnInFlight
	}
	action, ok := match.ActionByID(actionID)
	if !ok {
		s.mu.Unlock()
		return match.Turn{}, fmt.Errorf("%w: %s", ErrUnknownAction, actionID)
	}
	s.busy = true
	sim := s.sim
	s.mu.Unlock()

	turn, err := sim.ExecuteAction(action)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		return match.Turn{}, err
	}

	if turn.Finished {
		s.finishMatch(sim)
	}
	return turn, nil
}

// finishMatch folds the result into career stats and popularity, then
// drops the simulator. Caller holds the lock.
func (s *Session) finishMatch(sim *match.Simulator) {
	next := s.state.Clone()

	sim.ApplyCareer(next.BeAPro)

	won := sim.Winner() == sim.Player().ID
	if w, ok := next.Wrestlers[sim.Player().ID]; ok {
		w.Popularity += s.eng.PopularityChange(won)
		if s.eng.InjuryRoll() {
			w.Injured = true
			w.InjuryDays = 7 + s.rng.Intn(21)
		}
		w.Normalize()
		next.Wrestlers[w.ID] = w
	}

	s.state = &next
	s.sim = nil

	slog.Info("Match finished",
		slog.String("type", "sys"),
		slog.String("winner", sim.Winner()))
}

// Simulator exposes the running match for rendering, nil when idle.
func (s *Session) Simulator() *match.Simulator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim
}

// OpenEmail flips the read receipt exactly once.
func (s *Session) OpenEmail(emailID string) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	next, err := mailbox.MarkRead(*s.state, emailID)
	if err != nil {
		return game.GameState{}, err
	}
	s.state = &next
	return next.Clone(), nil
}

// HandleChoice applies the tagged effect of an email response.
func (s *Session) HandleChoice(emailID string, choice int) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	next, err := mailbox.ApplyChoice(*s.state, emailID, choice)
	if err != nil {
		return game.GameState{}, err
	}
	s.state = &next
	return next.Clone(), nil
}

// DeliverEmail appends a generated email to the inbox. Exposed for the
// timer and for tests.
func (s *Session) DeliverEmail() (game.Email, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.Email{}, ErrNoGame
	}
	email := s.mail.Generate(time.Now())
	next := s.state.Clone()
	next.Inbox = append(next.Inbox, email)
	s.state = &next
	return email, nil
}

// ReleaseWrestler drops a wrestler from the roster; the only way a
// wrestler ever leaves the aggregate.
func (s *Session) ReleaseWrestler(wrestlerID string) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	if _, ok := s.state.Wrestlers[wrestlerID]; !ok {
		return game.GameState{}, fmt.Errorf("%w: %s", ErrUnknownWrestler, wrestlerID)
	}

	next := s.state.Clone()
	delete(next.Wrestlers, wrestlerID)
	for id, c := range next.Companies {
		roster := c.Roster[:0]
		for _, rid := range c.Roster {
			if rid != wrestlerID {
				roster = append(roster, rid)
			}
		}
		c.Roster = roster
		next.Companies[id] = c
	}
	s.state = &next
	return next.Clone(), nil
}

// Train bumps a wrestler's core attributes at the cost of fatigue, all
// clamped.
func (s *Session) Train(wrestlerID string) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	w, ok := s.state.Wrestlers[wrestlerID]
	if !ok {
		return game.GameState{}, fmt.Errorf("%w: %s", ErrUnknownWrestler, wrestlerID)
	}

	next := s.state.Clone()
	w = next.Wrestlers[wrestlerID]
	w.Wrestling += 1
	w.Stamina += 1
	w.Fatigue += 10
	w.Normalize()
	next.Wrestlers[wrestlerID] = w
	s.state = &next
	return next.Clone(), nil
}

// BookMatch registers a new unbooked-until-now match on the card.
func (s *Session) BookMatch(m game.Match) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.GameState{}, ErrNoGame
	}
	if len(m.Participants) < 2 {
		return game.GameState{}, errors.New("session: a match needs at least two participants")
	}
	for _, id := range m.Participants {
		if _, ok := s.state.Wrestlers[id]; !ok {
			return game.GameState{}, fmt.Errorf("%w: %s", ErrUnknownWrestler, id)
		}
	}

	next := s.state.Clone()
	m.Booked = true
	next.Matches[m.ID] = m
	s.state = &next
	return next.Clone(), nil
}

// Storyline writes a narrative hook for two wrestlers.
func (s *Session) Storyline(first, second string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Storyline(first, second)
}

// Save bundles the current state into the slot.
func (s *Session) Save(ctx context.Context, slot int) error {
	s.mu.Lock()
	if s.state == nil {
		s.mu.Unlock()
		return ErrNoGame
	}
	bundle := s.state.Bundle(time.Now())
	s.mu.Unlock()

	return s.saves.Save(ctx, slot, &bundle)
}

// Load replaces the session state with a stored save.
func (s *Session) Load(ctx context.Context, slot int) (game.GameState, error) {
	save, err := s.saves.Load(ctx, slot)
	if err != nil {
		return game.GameState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := save.State.Clone()
	s.state = &state
	s.sim = nil
	return state.Clone(), nil
}

// Run drives the fire-and-forget timers: probabilistic inbox delivery
// and autosave. Both stop when the context ends or Close is called.
func (s *Session) Run(ctx context.Context) {
	emailTicker := time.NewTicker(s.cfg.EmailInterval)
	autosaveTicker := time.NewTicker(s.cfg.AutosaveEvery)
	defer emailTicker.Stop()
	defer autosaveTicker.Stop()

	for {
		select {
		case <-emailTicker.C:
			s.mu.Lock()
			roll := s.rng.Float64()
			s.mu.Unlock()
			if roll >= s.cfg.EmailChance {
				continue
			}
			if email, err := s.DeliverEmail(); err == nil {
				logger.LogSystem("Inbox email delivered", slog.String("from", email.From))
			}
		case <-autosaveTicker.C:
			saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.Save(saveCtx, s.cfg.AutosaveSlot); err != nil && !errors.Is(err, ErrNoGame) {
				logger.LogError("Autosave failed", err, slog.Int("slot", s.cfg.AutosaveSlot))
			}
			cancel()
		case <-ctx.Done():
			return
		case <-s.stopped:
			return
		}
	}
}

// Close stops the timer loop.
func (s *Session) Close() {
	select {
	case <-s.stopped:
	default:
		close(s.stopped)
	}
}
