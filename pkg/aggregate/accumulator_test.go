package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccumulatorZeroValue(t *testing.T) {
	var acc Accumulator

	if _, ok := acc.Get("anything"); ok {
		t.Error("Expected zero accumulator to have no skills")
	}

	if acc.Any(func(int) bool { return true }) {
		t.Error("Expected Any to be false on an empty accumulator")
	}

	if _, ok := acc.Max(); ok {
		t.Error("Expected Max to report no entry")
	}

	if len(acc.Top(5)) != 0 || len(acc.Skills()) != 0 {
		t.Error("Expected no ranking and no skills")
	}
}

func TestFromEntries(t *testing.T) {
	acc := FromEntries(
		SkillScore{Skill: "Go", Score: 3},
		SkillScore{Skill: "SQL", Score: 3},
		SkillScore{Skill: "Go", Score: 2},
	)

	if diff := cmp.Diff([]string{"Go", "SQL"}, acc.Skills()); diff != "" {
		t.Errorf("Unexpected skills (-want +got):\n%s", diff)
	}

	score, _ := acc.Get("Go")
	if score != 5 {
		t.Errorf("Expected Go=5, got %d", score)
	}

	best, ok := acc.Max()
	if !ok || best != (SkillScore{Skill: "Go", Score: 5}) {
		t.Errorf("Expected Go:5 as max, got %+v", best)
	}
}

func TestAccumulatorMaxTieKeepsFirstSeen(t *testing.T) {
	acc := FromEntries(SkillScore{Skill: "x", Score: 4}, SkillScore{Skill: "y", Score: 4})

	best, _ := acc.Max()
	if best.Skill != "x" {
		t.Errorf("Expected first-seen x to win the tie, got %s", best.Skill)
	}
}

func TestAccumulatorTopDoesNotMutate(t *testing.T) {
	acc := FromEntries(SkillScore{Skill: "low", Score: 1}, SkillScore{Skill: "high", Score: 9})

	_ = acc.Top(1)
	if diff := cmp.Diff([]string{"low", "high"}, acc.Skills()); diff != "" {
		t.Errorf("Top reordered the accumulator (-want +got):\n%s", diff)
	}
}

func TestAccumulatorMarshalJSON(t *testing.T) {
	acc := FromEntries(SkillScore{Skill: "b", Score: 2}, SkillScore{Skill: "a", Score: 1})

	data, err := json.Marshal(acc)
	if err != nil {
		t.Fatalf("Failed to marshal accumulator: %v", err)
	}

	want := `[{"skill":"b","score":2},{"skill":"a","score":1}]`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, string(data))
	}
}
