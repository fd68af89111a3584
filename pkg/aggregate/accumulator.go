package aggregate

import (
	"cmp"
	"encoding/json"
	"slices"
)

// SkillScore pairs a skill with its accumulated score.
type SkillScore struct {
	Skill string `json:"skill"`
	Score int    `json:"score"`
}

// Ranking is a score-descending, truncated view over an accumulator.
type Ranking []SkillScore

// Labels returns the skill names in ranking order.
func (r Ranking) Labels() (labels []string) {
	labels = make([]string, len(r))
	for i, entry := range r {
		labels[i] = entry.Skill
	}
	return labels
}

// Scores returns the scores in ranking order.
func (r Ranking) Scores() (scores []int) {
	scores = make([]int, len(r))
	for i, entry := range r {
		scores[i] = entry.Score
	}
	return scores
}

// Accumulator holds running per-skill totals for one skill category. Skills
// iterate in the order they were first seen, so rankings are reproducible.
// The zero value is an empty, read-only accumulator.
type Accumulator struct {
	order  []string
	scores map[string]int
}

// FromEntries builds an accumulator from entries, summing repeated skills.
func FromEntries(entries ...SkillScore) (acc Accumulator) {
	for _, entry := range entries {
		acc.add(entry.Skill, entry.Score)
	}
	return acc
}

func (a *Accumulator) add(skill string, score int) {
	if a.scores == nil {
		a.scores = make(map[string]int)
	}
	if _, seen := a.scores[skill]; !seen {
		a.order = append(a.order, skill)
	}
	a.scores[skill] += score
}

// Get returns the score for skill and whether it has been seen.
func (a Accumulator) Get(skill string) (score int, ok bool) {
	score, ok = a.scores[skill]
	return score, ok
}

// Len returns the number of distinct skills.
func (a Accumulator) Len() (count int) {
	count = len(a.order)
	return count
}

// Skills returns the skill names in first-seen order.
func (a Accumulator) Skills() (skills []string) {
	skills = slices.Clone(a.order)
	return skills
}

// Entries returns every skill and score in first-seen order.
func (a Accumulator) Entries() (entries []SkillScore) {
	entries = make([]SkillScore, 0, len(a.order))
	for _, skill := range a.order {
		entries = append(entries, SkillScore{Skill: skill, Score: a.scores[skill]})
	}
	return entries
}

// Any reports whether any skill's score satisfies pred. It is false for an
// empty accumulator.
func (a Accumulator) Any(pred func(score int) bool) (found bool) {
	for _, skill := range a.order {
		if pred(a.scores[skill]) {
			found = true
			return found
		}
	}
	return found
}

// Max returns the highest-scoring skill. The first seen wins a tie.
func (a Accumulator) Max() (best SkillScore, ok bool) {
	for _, skill := range a.order {
		score := a.scores[skill]
		if !ok || score > best.Score {
			best = SkillScore{Skill: skill, Score: score}
			ok = true
		}
	}
	return best, ok
}

// Top returns up to n skills sorted by score descending. Ties keep first-seen order.
func (a Accumulator) Top(n int) (ranking Ranking) {
	entries := a.Entries()
	slices.SortStableFunc(entries, func(x, y SkillScore) int {
		return cmp.Compare(y.Score, x.Score)
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	ranking = Ranking(entries)
	return ranking
}

// MarshalJSON encodes the accumulator as an ordered list of entries.
func (a Accumulator) MarshalJSON() (data []byte, err error) {
	data, err = json.Marshal(a.Entries())
	return data, err
}
