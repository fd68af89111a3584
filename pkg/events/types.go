package events

import (
	"maps"
	"slices"
)

// Dataset is the complete set of attended events.
type Dataset struct {
	Events []Event `json:"events" yaml:"events"`

	// decodeWarnings lists fields dropped while decoding individual records.
	decodeWarnings []string
}

// Event represents a single attended activity and the skills it exercised.
type Event struct {
	Name        string         `json:"event_name" yaml:"event_name"`
	Description string         `json:"event_description" yaml:"event_description"`
	SoftSkills  []string       `json:"softskills,omitempty" yaml:"softskills,omitempty"`
	HardSkills  []string       `json:"hardskills,omitempty" yaml:"hardskills,omitempty"`
	Scores      map[string]int `json:"skill_improvement_scores,omitempty" yaml:"skill_improvement_scores,omitempty"`
}

// DefaultIncrement is credited to a tagged skill that has no score entry.
const DefaultIncrement = 1

// Len returns the number of events in the dataset.
func (d Dataset) Len() (count int) {
	count = len(d.Events)
	return count
}

// TotalImprovement sums the event's skill improvement scores.
func (e Event) TotalImprovement() (total int) {
	for _, score := range e.Scores {
		total += max(score, 0)
	}
	return total
}

// ScoreFor returns the score credited to skill by this event. Tagged skills
// without an explicit score are credited DefaultIncrement. Negative scores
// count as zero.
func (e Event) ScoreFor(skill string) (score int) {
	score, ok := e.Scores[skill]
	if !ok {
		score = DefaultIncrement
	}
	score = max(score, 0)
	return score
}

// Clone returns a deep copy of the event.
func (e Event) Clone() (clone Event) {
	clone = e
	clone.SoftSkills = slices.Clone(e.SoftSkills)
	clone.HardSkills = slices.Clone(e.HardSkills)
	clone.Scores = maps.Clone(e.Scores)
	return clone
}

// Clone returns a deep copy of the dataset that shares no slices or maps with d.
func (d Dataset) Clone() (clone Dataset) {
	clone.decodeWarnings = slices.Clone(d.decodeWarnings)
	if d.Events == nil {
		return clone
	}
	clone.Events = make([]Event, len(d.Events))
	for i, ev := range d.Events {
		clone.Events[i] = ev.Clone()
	}
	return clone
}
