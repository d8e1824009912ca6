package schedule

import (
	"time"

	"github.com/squaredcircle/booker/booker/game"
)

// Cadence is how often a recurring show fires.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// Rule is a data-driven recurrence: weekly rules match a day of the week,
// monthly rules a day of the month.
type Rule struct {
	Cadence    Cadence
	DayOfWeek  time.Weekday
	DayOfMonth int

	ShowID   string
	Name     string
	Venue    string
	PPV      bool
	TVDeal   bool
	Company  string
	Priority game.Priority
}

// Matches reports whether the rule fires on the given date.
func (r Rule) Matches(date time.Time) bool {
	switch r.Cadence {
	case CadenceWeekly:
		return date.Weekday() == r.DayOfWeek
	case CadenceMonthly:
		return date.Day() == r.DayOfMonth
	default:
		return false
	}
}

// RulesFor flattens a company's weekly and monthly show definitions into
// recurrence rules.
func RulesFor(c game.Company) []Rule {
	rules := make([]Rule, 0, len(c.WeeklyShows)+len(c.MonthlyShows))
	for _, s := range c.WeeklyShows {
		rules = append(rules, Rule{
			Cadence:   CadenceWeekly,
			DayOfWeek: s.DayOfWeek,
			ShowID:    s.ID,
			Name:      s.Name,
			Venue:     s.Venue,
			TVDeal:    s.TVDeal,
			Company:   c.ID,
			Priority:  game.PriorityHigh,
		})
	}
	for _, s := range c.MonthlyShows {
		rules = append(rules, Rule{
			Cadence:    CadenceMonthly,
			DayOfMonth: s.DayOfMonth,
			ShowID:     s.ID,
			Name:       s.Name,
			Venue:      s.Venue,
			PPV:        s.PPV,
			Company:    c.ID,
			Priority:   game.PriorityHigh,
		})
	}
	return rules
}
