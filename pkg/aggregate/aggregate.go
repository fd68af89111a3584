package aggregate

import (
	"cmp"
	"slices"

	"github.com/nikogura/skill-dashboard/pkg/events"
)

const (
	// DefaultTopEvents is how many events the event ranking keeps.
	DefaultTopEvents = 3
	// DefaultTopSkills is how many skills each skill ranking keeps.
	DefaultTopSkills = 5
)

// Limits controls ranking truncation. Non-positive values fall back to the defaults.
type Limits struct {
	Events int `json:"top_events,omitempty"`
	Skills int `json:"top_skills,omitempty"`
}

// DefaultLimits returns the standard top-3 events / top-5 skills limits.
func DefaultLimits() (limits Limits) {
	limits = Limits{Events: DefaultTopEvents, Skills: DefaultTopSkills}
	return limits
}

func (l Limits) withDefaults() (limits Limits) {
	limits = l
	if limits.Events <= 0 {
		limits.Events = DefaultTopEvents
	}
	if limits.Skills <= 0 {
		limits.Skills = DefaultTopSkills
	}
	return limits
}

// EventScore pairs an event with its total improvement.
type EventScore struct {
	Event            events.Event `json:"event"`
	TotalImprovement int          `json:"total_improvement"`
}

// Result is everything derived from one pass over a dataset.
type Result struct {
	Soft          Accumulator  `json:"soft_skills"`
	Hard          Accumulator  `json:"hard_skills"`
	TopSoftSkills Ranking      `json:"top_soft_skills"`
	TopHardSkills Ranking      `json:"top_hard_skills"`
	TopEvents     []EventScore `json:"top_events"`
}

// Aggregate folds events into skill accumulators and rankings using the default limits.
func Aggregate(evs []events.Event) (result Result) {
	result = AggregateWithLimits(evs, DefaultLimits())
	return result
}

// AggregateWithLimits folds events into skill accumulators and rankings.
// Each tagged skill is credited the event's score for it, or
// events.DefaultIncrement when the event has no score for that skill.
// The soft and hard categories are accumulated independently.
func AggregateWithLimits(evs []events.Event, limits Limits) (result Result) {
	limits = limits.withDefaults()

	scored := make([]EventScore, 0, len(evs))
	for _, ev := range evs {
		for _, skill := range ev.SoftSkills {
			result.Soft.add(skill, ev.ScoreFor(skill))
		}
		for _, skill := range ev.HardSkills {
			result.Hard.add(skill, ev.ScoreFor(skill))
		}

		scored = append(scored, EventScore{Event: ev, TotalImprovement: ev.TotalImprovement()})
	}

	slices.SortStableFunc(scored, func(a, b EventScore) int {
		return cmp.Compare(b.TotalImprovement, a.TotalImprovement)
	})
	if len(scored) > limits.Events {
		scored = scored[:limits.Events]
	}

	result.TopEvents = scored
	result.TopSoftSkills = result.Soft.Top(limits.Skills)
	result.TopHardSkills = result.Hard.Top(limits.Skills)

	return result
}

// Clone returns a copy of the result whose rankings and events share no
// slices or maps with r. Accumulators are read-only and are shared.
func (r Result) Clone() (clone Result) {
	clone = r
	clone.TopSoftSkills = slices.Clone(r.TopSoftSkills)
	clone.TopHardSkills = slices.Clone(r.TopHardSkills)
	if r.TopEvents != nil {
		clone.TopEvents = make([]EventScore, len(r.TopEvents))
		for i, top := range r.TopEvents {
			clone.TopEvents[i] = EventScore{Event: top.Event.Clone(), TotalImprovement: top.TotalImprovement}
		}
	}
	return clone
}
