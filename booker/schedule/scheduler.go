package schedule

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/squaredcircle/booker/booker/game"
)

const (
	day = 24 * time.Hour

	fatigueRecoveryPerDay = 5
	agingChancePerDay     = 0.01
)

// Scheduler advances game time: it gates on critical events, expands
// recurring shows, decays wrestler condition and moves the clock. It
// never inspects the pause toggle; callers gate on that.
type Scheduler struct {
	rng *rand.Rand
}

// NewScheduler builds a scheduler around the injected random source.
func NewScheduler(rng *rand.Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// ClampDays applies the critical-event auto-stop: if the nearest future
// event that requires attention falls inside the requested span and more
// than one day was requested, the advance stops one day short of it
// (never less than one day).
func (s *Scheduler) ClampDays(state game.GameState, days int) int {
	if days <= 1 {
		return days
	}
	nearest, ok := nearestCritical(state)
	if !ok {
		return days
	}
	until := daysUntil(state.CurrentDate, nearest.Date)
	if until > days {
		return days
	}
	clamped := until - 1
	if clamped < 1 {
		clamped = 1
	}
	return clamped
}

// Advance produces the next snapshot after the given number of days. The
// requested span may be shortened by the critical-event gate; the
// returned state's date always moves by exactly the effective span.
func (s *Scheduler) Advance(state game.GameState, days int) game.GameState {
	effective := s.ClampDays(state, days)
	if effective != days {
		slog.Debug("Time advance clamped before critical event",
			slog.String("type", "sys"),
			slog.Int("requested_days", days),
			slog.Int("effective_days", effective))
	}

	next := state.Clone()

	var created []game.CalendarEvent
	for i := 1; i <= effective; i++ {
		date := next.CurrentDate.Add(time.Duration(i) * day)
		created = append(created, s.expandShows(next, date)...)
	}

	for id, w := range next.Wrestlers {
		s.decay(&w, effective)
		next.Wrestlers[id] = w
	}

	next.CurrentDate = next.CurrentDate.Add(time.Duration(effective) * day)
	next.Calendar = append(next.Calendar, created...)
	return next
}

// expandShows synthesizes show events for every company rule firing on
// the date. Only the player's own shows demand attention.
func (s *Scheduler) expandShows(state game.GameState, date time.Time) []game.CalendarEvent {
	ids := make([]string, 0, len(state.Companies))
	for id := range state.Companies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var events []game.CalendarEvent
	for _, id := range ids {
		company := state.Companies[id]
		for _, rule := range RulesFor(company) {
			if !rule.Matches(date) {
				continue
			}
			events = append(events, game.CalendarEvent{
				ID:                fmt.Sprintf("show-%s-%s-%s", company.ID, rule.ShowID, date.Format("2006-01-02")),
				Type:              game.EventShow,
				Title:             fmt.Sprintf("%s - %s", rule.Name, company.Name),
				Description:       showDescription(rule),
				Date:              date,
				Priority:          rule.Priority,
				RequiresAttention: company.ID == state.PlayerCompany,
				CompanyID:         company.ID,
			})
		}
	}
	return events
}

func showDescription(rule Rule) string {
	if rule.Cadence == CadenceMonthly {
		return fmt.Sprintf("Monthly event at %s", rule.Venue)
	}
	return fmt.Sprintf("Weekly show at %s", rule.Venue)
}

// decay applies injury healing, fatigue recovery and the coarse aging
// walk for the elapsed span. Aging is a per-call probability, not a
// birthday model; long advances and repeated short ones are only
// approximately equivalent.
func (s *Scheduler) decay(w *game.Wrestler, days int) {
	if w.Injured && w.InjuryDays > 0 {
		w.InjuryDays -= days
		if w.InjuryDays <= 0 {
			w.InjuryDays = 0
			w.Injured = false
		}
	}

	w.Fatigue -= days * fatigueRecoveryPerDay

	if s.rng.Float64() < agingChancePerDay*float64(days) {
		w.Age++
	}

	w.Normalize()
}

func nearestCritical(state game.GameState) (game.CalendarEvent, bool) {
	var nearest game.CalendarEvent
	found := false
	for _, ev := range state.Calendar {
		if !ev.RequiresAttention || !ev.Date.After(state.CurrentDate) {
			continue
		}
		if !found || ev.Date.Before(nearest.Date) {
			nearest = ev
			found = true
		}
	}
	return nearest, found
}

// daysUntil counts whole days from now to the event, rounding partial
// days up so an event later today still counts as one day away.
func daysUntil(now, event time.Time) int {
	d := event.Sub(now)
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}
