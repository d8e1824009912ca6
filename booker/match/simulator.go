package match

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/squaredcircle/booker/booker/game"
)

// Phase tracks where the turn machine is. The cycle is
// idle → player-turn → resolution → opponent-turn → resolution → … until
// a health bar reaches zero.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhasePlayerTurn   Phase = "player-turn"
	PhaseResolution   Phase = "resolution"
	PhaseOpponentTurn Phase = "opponent-turn"
	PhaseFinished     Phase = "finished"
)

// Config carries the tunable simulator bounds.
type Config struct {
	StartingHealth   int
	StartingMomentum int
	FailurePenalty   int
	DamageSpread     int
	LogBound         int
}

// DefaultConfig mirrors the reference balancing numbers.
func DefaultConfig() Config {
	return Config{
		StartingHealth:   100,
		StartingMomentum: 50,
		FailurePenalty:   10,
		DamageSpread:     5,
		LogBound:         5,
	}
}

var (
	// ErrNoCombatant is the fatal precondition: the simulator must never
	// be built without both sides resolved.
	ErrNoCombatant = errors.New("match: combatant data missing")
	// ErrMatchOver rejects actions submitted after a winner is decided.
	ErrMatchOver = errors.New("match: already finished")
)

// Outcome describes one resolved attempt.
type Outcome struct {
	Attacker   string
	Action     game.MatchAction
	Blocked    bool
	Success    bool
	Damage     int
	Commentary string
}

// Turn is a full player turn: the player's resolution plus the automatic
// opponent answer (absent when the player's action was gate-blocked or
// the match ended).
type Turn struct {
	Player   Outcome
	Opponent *Outcome
	Finished bool
	Winner   string
}

// Simulator runs one match between a player-controlled wrestler and an
// AI-controlled opponent. All randomness comes from the injected source.
type Simulator struct {
	cfg     Config
	rng     *rand.Rand
	actions []game.MatchAction

	player   game.Wrestler
	opponent game.Wrestler

	playerHealth     int
	opponentHealth   int
	playerMomentum   int
	opponentMomentum int

	phase  Phase
	winner string
	log    []string
}

// NewSimulator validates both combatants and prepares a match in the
// idle phase.
func NewSimulator(cfg Config, rng *rand.Rand, player, opponent game.Wrestler) (*Simulator, error) {
	if player.ID == "" || opponent.ID == "" {
		return nil, ErrNoCombatant
	}
	return &Simulator{
		cfg:              cfg,
		rng:              rng,
		actions:          DefaultActions,
		player:           player,
		opponent:         opponent,
		playerHealth:     cfg.StartingHealth,
		opponentHealth:   cfg.StartingHealth,
		playerMomentum:   cfg.StartingMomentum,
		opponentMomentum: cfg.StartingMomentum,
		phase:            PhaseIdle,
	}, nil
}

// ExecuteAction resolves the player's chosen action and, unless the
// action was gate-blocked or ended the match, the opponent's automatic
// answer. Precondition violations come back as blocked outcomes, never
// as panics.
func (s *Simulator) ExecuteAction(action game.MatchAction) (Turn, error) {
	if s.phase == PhaseFinished {
		return Turn{}, ErrMatchOver
	}
	s.phase = PhasePlayerTurn

	if action.Gated() && s.playerMomentum < action.Requirements.Momentum {
		commentary := fmt.Sprintf("Not enough momentum for %s!", action.Name)
		s.appendLog(commentary)
		return Turn{
			Player: Outcome{Attacker: s.player.ID, Action: action, Blocked: true, Commentary: commentary},
		}, nil
	}

	s.phase = PhaseResolution
	player := s.resolvePlayer(action)
	turn := Turn{Player: player}
	if s.phase == PhaseFinished {
		turn.Finished = true
		turn.Winner = s.winner
		return turn, nil
	}

	s.phase = PhaseOpponentTurn
	opponent := s.resolveOpponent()
	turn.Opponent = &opponent
	if s.phase == PhaseFinished {
		turn.Finished = true
		turn.Winner = s.winner
		return turn, nil
	}

	s.phase = PhasePlayerTurn
	return turn, nil
}

func (s *Simulator) resolvePlayer(action game.MatchAction) Outcome {
	out := Outcome{Attacker: s.player.ID, Action: action}

	roll := s.rng.Float64() * 100
	if roll < successChance(s.player, action, s.playerMomentum) {
		damage := action.Damage + s.rng.Intn(s.cfg.DamageSpread)
		s.opponentHealth = maxInt(0, s.opponentHealth-damage)
		s.playerMomentum = game.Clamp(s.playerMomentum + action.Momentum)

		out.Success = true
		out.Damage = damage
		out.Commentary = fmt.Sprintf("%s successfully executes %s for %d damage!", s.player.Name, action.Name, damage)
		s.appendLog(out.Commentary)

		if s.opponentHealth == 0 {
			s.finish(s.player.ID, s.player.Name)
		}
		return out
	}

	s.playerMomentum = game.Clamp(s.playerMomentum - s.cfg.FailurePenalty)
	out.Commentary = fmt.Sprintf("%s attempts %s but it's countered!", s.player.Name, action.Name)
	s.appendLog(out.Commentary)
	return out
}

func (s *Simulator) resolveOpponent() Outcome {
	available := availableActions(s.actions, s.opponentMomentum)
	action := available[s.rng.Intn(len(available))]
	out := Outcome{Attacker: s.opponent.ID, Action: action}

	s.phase = PhaseResolution
	roll := s.rng.Float64() * 100
	if roll < opponentChance(s.opponent) {
		damage := action.Damage + s.rng.Intn(s.cfg.DamageSpread)
		s.playerHealth = maxInt(0, s.playerHealth-damage)
		s.opponentMomentum = game.Clamp(s.opponentMomentum + action.Momentum)

		out.Success = true
		out.Damage = damage
		out.Commentary = fmt.Sprintf("%s hits %s for %d damage!", s.opponent.Name, action.Name, damage)
		s.appendLog(out.Commentary)

		if s.playerHealth == 0 {
			s.finish(s.opponent.ID, s.opponent.Name)
		}
		return out
	}

	s.opponentMomentum = game.Clamp(s.opponentMomentum - s.cfg.FailurePenalty)
	out.Commentary = fmt.Sprintf("%s attempts %s but misses!", s.opponent.Name, action.Name)
	s.appendLog(out.Commentary)
	return out
}

func (s *Simulator) finish(winnerID, winnerName string) {
	s.winner = winnerID
	s.phase = PhaseFinished
	s.appendLog(fmt.Sprintf("%s wins the match!", winnerName))
}

func (s *Simulator) appendLog(line string) {
	s.log = append(s.log, line)
	if bound := s.cfg.LogBound; bound > 0 && len(s.log) > bound {
		s.log = s.log[len(s.log)-bound:]
	}
}

// Commentary returns the bounded most-recent commentary lines.
func (s *Simulator) Commentary() []string {
	return append([]string(nil), s.log...)
}

// Phase reports the current turn-machine phase.
func (s *Simulator) Phase() Phase { return s.phase }

// Winner is empty until the match finishes.
func (s *Simulator) Winner() string { return s.winner }

// Health reports both health bars, player first.
func (s *Simulator) Health() (int, int) { return s.playerHealth, s.opponentHealth }

// Momentum reports both momentum bars, player first.
func (s *Simulator) Momentum() (int, int) { return s.playerMomentum, s.opponentMomentum }

// Player and Opponent expose the combatants for rendering.
func (s *Simulator) Player() game.Wrestler   { return s.player }
func (s *Simulator) Opponent() game.Wrestler { return s.opponent }

// ApplyCareer folds the finished match into the career counters: a win
// is worth +20 career momentum, a loss costs 10, both clamped.
func (s *Simulator) ApplyCareer(stats *game.BeAProStats) {
	if stats == nil || s.phase != PhaseFinished {
		return
	}
	if s.winner == s.player.ID {
		stats.Wins++
		stats.CurrentMomentum = game.Clamp(stats.CurrentMomentum + 20)
	} else {
		stats.Losses++
		stats.CurrentMomentum = game.Clamp(stats.CurrentMomentum - 10)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
