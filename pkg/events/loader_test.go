package events

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a test dataset file.
	tmpDir := t.TempDir()
	datasetPath := filepath.Join(tmpDir, "events.json")

	testData := Dataset{
		Events: []Event{
			{
				Name:        "Test Workshop",
				Description: "A workshop",
				SoftSkills:  []string{"Teamwork"},
				HardSkills:  []string{"Go"},
				Scores:      map[string]int{"Teamwork": 2, "Go": 4},
			},
		},
	}

	data, err := json.MarshalIndent(testData, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test data: %v", err)
	}

	err = os.WriteFile(datasetPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	// Test loading.
	loaded, err := Load(datasetPath)
	if err != nil {
		t.Fatalf("Failed to load dataset: %v", err)
	}

	if loaded.Len() != 1 {
		t.Fatalf("Expected 1 event, got %d", loaded.Len())
	}

	if loaded.Events[0].Name != "Test Workshop" {
		t.Errorf("Expected event name 'Test Workshop', got '%s'", loaded.Events[0].Name)
	}

	if loaded.Events[0].TotalImprovement() != 6 {
		t.Errorf("Expected total improvement 6, got %d", loaded.Events[0].TotalImprovement())
	}
}

func TestLoadYAMLMatchesJSON(t *testing.T) {
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "events.json")
	jsonDoc := `{"events":[{"event_name":"Lab","softskills":["Focus"],"hardskills":["SQL"],"skill_improvement_scores":{"SQL":3}}]}`
	err := os.WriteFile(jsonPath, []byte(jsonDoc), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	yamlPath := filepath.Join(tmpDir, "events.yml")
	yamlDoc := `events:
  - event_name: Lab
    softskills: [Focus]
    hardskills: [SQL]
    skill_improvement_scores:
      SQL: 3
`
	err = os.WriteFile(yamlPath, []byte(yamlDoc), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	fromJSON, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Failed to load JSON dataset: %v", err)
	}

	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Failed to load YAML dataset: %v", err)
	}

	if fromJSON.Events[0].Name != fromYAML.Events[0].Name {
		t.Errorf("Names differ: %q vs %q", fromJSON.Events[0].Name, fromYAML.Events[0].Name)
	}

	if fromJSON.Events[0].ScoreFor("SQL") != fromYAML.Events[0].ScoreFor("SQL") {
		t.Error("SQL scores differ between JSON and YAML")
	}

	if fromYAML.Events[0].ScoreFor("Focus") != DefaultIncrement {
		t.Errorf("Expected default increment for unscored tag, got %d", fromYAML.Events[0].ScoreFor("Focus"))
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/events.json")
	if err == nil {
		t.Error("Expected error loading nonexistent file, got nil")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("/tmp/events.csv")
	if err == nil {
		t.Error("Expected error for unsupported extension, got nil")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	datasetPath := filepath.Join(tmpDir, "invalid.json")

	err := os.WriteFile(datasetPath, []byte("not valid json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = Load(datasetPath)
	if err == nil {
		t.Error("Expected error loading invalid JSON, got nil")
	}
}

func TestParseEmptyDataset(t *testing.T) {
	data, err := Parse([]byte(`{"events":[]}`), FormatJSON)
	if err != nil {
		t.Fatalf("Expected empty dataset to parse, got %v", err)
	}

	if data.Len() != 0 {
		t.Errorf("Expected 0 events, got %d", data.Len())
	}
}

func TestNormalize(t *testing.T) {
	data := Dataset{
		Events: []Event{
			{
				Name:       "  ",
				SoftSkills: []string{" Empathy ", "Empathy", ""},
				HardSkills: []string{"Go"},
				Scores:     map[string]int{"Go": -4, " Empathy": 2, "": 9},
			},
		},
	}

	data.Normalize()
	ev := data.Events[0]

	if ev.Name != "event #1" {
		t.Errorf("Expected positional name, got %q", ev.Name)
	}

	if len(ev.SoftSkills) != 1 || ev.SoftSkills[0] != "Empathy" {
		t.Errorf("Expected deduplicated soft skills [Empathy], got %v", ev.SoftSkills)
	}

	if ev.Scores["Go"] != 0 {
		t.Errorf("Expected negative score clamped to 0, got %d", ev.Scores["Go"])
	}

	if ev.Scores["Empathy"] != 2 {
		t.Errorf("Expected trimmed score key Empathy=2, got %d", ev.Scores["Empathy"])
	}

	if _, ok := ev.Scores[""]; ok {
		t.Error("Expected empty score key to be dropped")
	}
}

func TestNormalizeUnicode(t *testing.T) {
	// "Café" written with a combining accent and as a precomposed rune.
	decomposed := "Cafe\u0301"
	composed := "Caf\u00e9"

	data := Dataset{
		Events: []Event{
			{SoftSkills: []string{decomposed, composed}},
		},
	}
	data.Normalize()

	if len(data.Events[0].SoftSkills) != 1 {
		t.Errorf("Expected equivalent spellings to collapse, got %v", data.Events[0].SoftSkills)
	}
}

func TestScoreFor(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		skill string
		want  int
	}{
		{
			name:  "explicit score",
			event: Event{HardSkills: []string{"Python"}, Scores: map[string]int{"Python": 12}},
			skill: "Python",
			want:  12,
		},
		{
			name:  "missing score defaults to one",
			event: Event{SoftSkills: []string{"Empathy"}},
			skill: "Empathy",
			want:  1,
		},
		{
			name:  "explicit zero is kept",
			event: Event{SoftSkills: []string{"Empathy"}, Scores: map[string]int{"Empathy": 0}},
			skill: "Empathy",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.ScoreFor(tt.skill)
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTotalImprovementNilScores(t *testing.T) {
	ev := Event{Name: "No scores"}
	if ev.TotalImprovement() != 0 {
		t.Errorf("Expected 0, got %d", ev.TotalImprovement())
	}
}

func TestValidate(t *testing.T) {
	data := Dataset{
		Events: []Event{
			{Name: "tagged", SoftSkills: []string{"Empathy"}, Scores: map[string]int{"Empathy": 1}},
			{Name: "untagged"},
			{Name: "stray score", HardSkills: []string{"Go"}, Scores: map[string]int{"Rust": 2}},
		},
	}

	warnings := data.Validate()
	if len(warnings) != 2 {
		t.Errorf("Expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestDefault(t *testing.T) {
	data := Default()
	if data.Len() == 0 {
		t.Fatal("Expected bundled dataset to contain events")
	}

	for i, ev := range data.Events {
		if ev.Name == "" {
			t.Errorf("Bundled event %d has no name", i)
		}
	}
}

func TestDatasetClone(t *testing.T) {
	original := Dataset{Events: []Event{
		{Name: "Lab", SoftSkills: []string{"Grit"}, HardSkills: []string{"Go"}, Scores: map[string]int{"Go": 3}},
	}}

	clone := original.Clone()
	clone.Events[0].Name = "changed"
	clone.Events[0].SoftSkills[0] = "changed"
	clone.Events[0].HardSkills[0] = "changed"
	clone.Events[0].Scores["Go"] = 99

	ev := original.Events[0]
	if ev.Name != "Lab" || ev.SoftSkills[0] != "Grit" || ev.HardSkills[0] != "Go" || ev.Scores["Go"] != 3 {
		t.Errorf("Clone shares state with the original: %+v", ev)
	}

	if empty := (Dataset{}).Clone(); empty.Events != nil {
		t.Errorf("Expected nil events from cloning an empty dataset, got %v", empty.Events)
	}
}
