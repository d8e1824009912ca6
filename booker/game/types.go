package game

import (
	"time"
)

// Alignment is a wrestler's crowd alignment.
type Alignment string

const (
	AlignmentFace    Alignment = "face"
	AlignmentHeel    Alignment = "heel"
	AlignmentNeutral Alignment = "neutral"
)

// PushLevel is the coarse booking tier of a wrestler.
type PushLevel string

const (
	PushJobber       PushLevel = "jobber"
	PushMidcard      PushLevel = "midcard"
	PushUpperMidcard PushLevel = "upper-midcard"
	PushMainEvent    PushLevel = "main-event"
	PushLegend       PushLevel = "legend"
)

// Mode selects between running a promotion and playing a single career.
type Mode string

const (
	ModeBooker   Mode = "booker"
	ModeWrestler Mode = "wrestler"
)

// Priority ranks calendar events.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// EventType tags calendar events.
type EventType string

const (
	EventShow     EventType = "show"
	EventMatch    EventType = "match"
	EventContract EventType = "contract"
	EventInjury   EventType = "injury"
	EventStory    EventType = "story"
)

// Clamp keeps a rating-style value inside [0,100]. Every attribute,
// fatigue, momentum, popularity and rating mutation goes through this.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Contract is the salary/duration pair attached to a wrestler.
type Contract struct {
	Salary   int64 `json:"salary"`
	Duration int   `json:"duration"`
}

// Wrestler is a roster member. Attribute fields are 0-100.
type Wrestler struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`

	Overall       int `json:"ovr"`
	Charisma      int `json:"charisma"`
	Wrestling     int `json:"wrestling"`
	Entertainment int `json:"entertainment"`
	Mic           int `json:"mic"`
	Look          int `json:"look"`
	Strength      int `json:"strength"`
	Speed         int `json:"speed"`
	Stamina       int `json:"stamina"`

	Moveset    []string `json:"moveset"`
	Finishers  []string `json:"finishers"`
	Signatures []string `json:"signatures"`

	Contract Contract `json:"contract"`

	Injured    bool           `json:"injured"`
	InjuryDays int            `json:"injury_days,omitempty"`
	Heat       map[string]int `json:"heat"`

	PushLevel  PushLevel `json:"push_level"`
	Age        int       `json:"age"`
	Experience int       `json:"experience"`
	Popularity int       `json:"popularity"`
	Alignment  Alignment `json:"alignment"`
	Gimmick    string    `json:"gimmick"`
	Hometown   string    `json:"hometown"`
	Height     string    `json:"height"`
	Weight     string    `json:"weight"`
	Debut      string    `json:"debut"`

	Momentum int `json:"momentum"`
	Fatigue  int `json:"fatigue"`
}

// Normalize clamps every 0-100 field after a mutation.
func (w *Wrestler) Normalize() {
	w.Overall = Clamp(w.Overall)
	w.Charisma = Clamp(w.Charisma)
	w.Wrestling = Clamp(w.Wrestling)
	w.Entertainment = Clamp(w.Entertainment)
	w.Mic = Clamp(w.Mic)
	w.Look = Clamp(w.Look)
	w.Strength = Clamp(w.Strength)
	w.Speed = Clamp(w.Speed)
	w.Stamina = Clamp(w.Stamina)
	w.Popularity = Clamp(w.Popularity)
	w.Momentum = Clamp(w.Momentum)
	w.Fatigue = Clamp(w.Fatigue)
	if w.InjuryDays < 0 {
		w.InjuryDays = 0
	}
}

// WeeklyShow is a recurring weekly TV taping owned by a company.
type WeeklyShow struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	DayOfWeek time.Weekday `json:"day_of_week"`
	Venue     string       `json:"venue"`
	Duration  int          `json:"duration"`
	TVDeal    bool         `json:"tv_deal"`
}

// MonthlyShow is a recurring monthly special (usually a PPV).
type MonthlyShow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DayOfMonth int    `json:"day_of_month"`
	Venue      string `json:"venue"`
	Duration   int    `json:"duration"`
	PPV        bool   `json:"ppv"`
}

// TitleReign is one entry in a championship's lineage.
type TitleReign struct {
	Wrestler string    `json:"wrestler"`
	Date     time.Time `json:"date"`
	Days     int       `json:"days"`
}

// Championship is a title belt owned by a company.
type Championship struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Prestige int          `json:"prestige"`
	Holder   string       `json:"holder,omitempty"`
	History  []TitleReign `json:"history"`
}

// TVDeal is a company's television contract.
type TVDeal struct {
	Network  string `json:"network"`
	Value    int64  `json:"value"`
	Duration int    `json:"duration"`
}

// Company is a wrestling promotion.
type Company struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	Money            int64          `json:"money"`
	Popularity       int            `json:"popularity"`
	TVDeal           *TVDeal        `json:"tv_deal,omitempty"`
	Roster           []string       `json:"roster"`
	Championships    []Championship `json:"championships"`
	Venues           []string       `json:"venues"`
	Rivals           []string       `json:"rivals"`
	Era              string         `json:"era"`
	Founded          string         `json:"founded"`
	TrainingFacility bool           `json:"training_facility"`
	WeeklyShows      []WeeklyShow   `json:"weekly_shows"`
	MonthlyShows     []MonthlyShow  `json:"monthly_shows"`
}

// MatchEvent is one logged beat of a simulated match.
type MatchEvent struct {
	Type        string `json:"type"`
	Wrestler    string `json:"wrestler"`
	Move        string `json:"move,omitempty"`
	Damage      int    `json:"damage,omitempty"`
	Momentum    int    `json:"momentum,omitempty"`
	Description string `json:"description"`
}

// MatchResult exists only on completed matches. A match carrying a result
// is implicitly booked.
type MatchResult struct {
	Winner     string       `json:"winner"`
	Rating     int          `json:"rating"`
	Attendance int          `json:"attendance"`
	Revenue    int64        `json:"revenue"`
	Events     []MatchEvent `json:"events,omitempty"`
}

// Match is a booked or completed bout between two or more wrestlers.
type Match struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	Participants []string     `json:"participants"`
	Championship string       `json:"championship,omitempty"`
	Venue        string       `json:"venue"`
	Date         time.Time    `json:"date"`
	Booked       bool         `json:"booked"`
	Result       *MatchResult `json:"result,omitempty"`
	Stipulation  string       `json:"stipulation,omitempty"`
	Story        string       `json:"story,omitempty"`
}

// Completed reports whether the match already has a result.
func (m Match) Completed() bool { return m.Result != nil }

// Segment is a non-match show beat.
type Segment struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Participants []string `json:"participants"`
	Description  string   `json:"description"`
}

// Show is a full card of matches and segments.
type Show struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Venue      string    `json:"venue"`
	Matches    []Match   `json:"matches"`
	Segments   []Segment `json:"segments"`
	Attendance int       `json:"attendance"`
	Revenue    int64     `json:"revenue"`
	Rating     int       `json:"rating"`
	Booked     bool      `json:"booked"`
}

// CalendarEvent is immutable once created; it is consumed by being passed
// when its date falls at or before the current date, never mutated.
type CalendarEvent struct {
	ID                string    `json:"id"`
	Type              EventType `json:"type"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Date              time.Time `json:"date"`
	Priority          Priority  `json:"priority"`
	RequiresAttention bool      `json:"requires_attention"`
	CompanyID         string    `json:"company_id,omitempty"`
}

// EffectKind tags an email-choice effect. Effects are plain data so the
// inbox survives serialization; the engine interprets them.
type EffectKind string

const (
	EffectAdjustMoney      EffectKind = "adjust-money"
	EffectAdjustReputation EffectKind = "adjust-reputation"
)

// Effect is a tagged side effect carried by an email choice.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Amount int64      `json:"amount"`
}

// EmailChoice is one player response to an email.
type EmailChoice struct {
	Text   string `json:"text"`
	Effect Effect `json:"effect"`
}

// Email is a narrative inbox item.
type Email struct {
	ID      string        `json:"id"`
	From    string        `json:"from"`
	Subject string        `json:"subject"`
	Content string        `json:"content"`
	Date    time.Time     `json:"date"`
	Read    bool          `json:"read"`
	Choices []EmailChoice `json:"choices,omitempty"`
}

// Objective is a long-running player goal.
type Objective struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int64  `json:"reward"`
	Completed   bool   `json:"completed"`
	Type        string `json:"type"`
}

// ActionRequirements gates a match action. A zero momentum requirement
// means the action is always available.
type ActionRequirements struct {
	Momentum int    `json:"momentum,omitempty"`
	Health   int    `json:"health,omitempty"`
	Position string `json:"position,omitempty"`
}

// ActionType categorizes match actions.
type ActionType string

const (
	ActionStrike     ActionType = "strike"
	ActionGrapple    ActionType = "grapple"
	ActionAerial     ActionType = "aerial"
	ActionSubmission ActionType = "submission"
	ActionSignature  ActionType = "signature"
	ActionFinisher   ActionType = "finisher"
)

// MatchAction is a static catalog entry, never per-game state.
type MatchAction struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Type         ActionType         `json:"type"`
	Damage       int                `json:"damage"`
	Momentum     int                `json:"momentum"`
	Stamina      int                `json:"stamina"`
	Difficulty   int                `json:"difficulty"`
	Description  string             `json:"description"`
	Requirements ActionRequirements `json:"requirements,omitempty"`
}

// Gated reports whether the action carries a momentum requirement.
func (a MatchAction) Gated() bool { return a.Requirements.Momentum > 0 }

// BeAProStats are the career counters for wrestler mode. Mutated only by
// match resolution.
type BeAProStats struct {
	Wins            int      `json:"wins"`
	Losses          int      `json:"losses"`
	Draws           int      `json:"draws"`
	Championships   []string `json:"championships"`
	CurrentHealth   int      `json:"current_health"`
	CurrentMomentum int      `json:"current_momentum"`
	NextMatch       string   `json:"next_match,omitempty"`
	Storylines      []string `json:"storylines"`
}

// TimeProgression holds the pause/speed/auto-stop toggles. The scheduler
// itself never checks Paused; gating is the caller's job.
type TimeProgression struct {
	Paused   bool `json:"paused"`
	Speed    int  `json:"speed"`
	AutoStop bool `json:"auto_stop"`
}

// GameState is the root aggregate. Engine operations take a snapshot and
// return a new one; nothing mutates a shared instance in place.
type GameState struct {
	CurrentDate    time.Time           `json:"current_date"`
	PlayerName     string              `json:"player_name"`
	PlayerCompany  string              `json:"player_company,omitempty"`
	PlayerWrestler string              `json:"player_wrestler,omitempty"`
	Money          int64               `json:"money"`
	Reputation     int                 `json:"reputation"`
	Companies      map[string]Company  `json:"companies"`
	Wrestlers      map[string]Wrestler `json:"wrestlers"`
	Matches        map[string]Match    `json:"matches"`
	Shows          map[string]Show     `json:"shows"`
	Achievements   []string            `json:"achievements"`
	Mode           Mode                `json:"mode"`
	Inbox          []Email             `json:"inbox"`
	Objectives     []Objective         `json:"objectives"`
	Calendar       []CalendarEvent     `json:"calendar"`
	Time           TimeProgression     `json:"time_progression"`
	BeAPro         *BeAProStats        `json:"be_a_pro_stats,omitempty"`
}

// SaveGame is the persisted bundle layout for a slot.
type SaveGame struct {
	Name          string             `json:"name"`
	Date          time.Time          `json:"date"`
	State         GameState          `json:"game_state"`
	PlayerName    string             `json:"player_name"`
	PlayerCompany string             `json:"player_company,omitempty"`
	Money         int64              `json:"money"`
	Companies     map[string]Company `json:"companies"`
}
