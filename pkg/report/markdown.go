package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/nikogura/skill-dashboard/pkg/aggregate"
	"github.com/nikogura/skill-dashboard/pkg/dashboard"
	"github.com/nikogura/skill-dashboard/pkg/events"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format identifies a report encoding.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// LockedBadge replaces the badge of an achievement that has not been earned.
const LockedBadge = "🔒"

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (format Format, err error) {
	switch strings.ToLower(name) {
	case "md", "markdown":
		format = FormatMarkdown
	case "json":
		format = FormatJSON
	default:
		err = errors.Errorf("invalid format '%s': must be 'md' or 'json'", name)
	}
	return format, err
}

// Render encodes the view in the requested format.
func Render(view *dashboard.View, format Format) (content []byte, err error) {
	switch format {
	case FormatMarkdown:
		content = []byte(Markdown(view))
	case FormatJSON:
		content, err = JSON(view)
	default:
		err = errors.Errorf("unknown report format: %q", format)
	}
	return content, err
}

func categoryTitle(category string) (title string) {
	title = cases.Title(language.English).String(category + " skills")
	return title
}

// Markdown renders the full dashboard as a markdown document.
func Markdown(view *dashboard.View) (md string) {
	var b strings.Builder
	result := view.Result()

	b.WriteString("# Student Skill Dashboard\n\n")

	writeRanking(&b, "soft", result.TopSoftSkills)
	writeRanking(&b, "hard", result.TopHardSkills)

	b.WriteString("## Top Events\n\n")
	if len(result.TopEvents) == 0 {
		b.WriteString("No events attended yet.\n\n")
	}
	for _, top := range result.TopEvents {
		fmt.Fprintf(&b, "### %s\n\n", top.Event.Name)
		if top.Event.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", top.Event.Description)
		}
		fmt.Fprintf(&b, "**Skills Improved** (total +%d):\n\n", top.TotalImprovement)
		writeScores(&b, top.Event)
	}

	b.WriteString("## Achievements\n\n")
	for _, status := range view.Achievements() {
		badge := LockedBadge
		if status.Earned {
			badge = status.Badge
		}
		fmt.Fprintf(&b, "- %s **%s**: %s\n", badge, status.Title, status.Description)
		if !status.Earned {
			fmt.Fprintf(&b, "  - _How to unlock: %s_\n", status.ConditionDescription)
		}
	}
	b.WriteString("\n")

	b.WriteString("## All Attended Events\n\n")
	for _, ev := range view.Dataset().Events {
		fmt.Fprintf(&b, "### %s\n\n", ev.Name)
		if ev.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", ev.Description)
		}
		if len(ev.SoftSkills) > 0 {
			fmt.Fprintf(&b, "Soft skills: %s\n\n", strings.Join(ev.SoftSkills, ", "))
		}
		if len(ev.HardSkills) > 0 {
			fmt.Fprintf(&b, "Hard skills: %s\n\n", strings.Join(ev.HardSkills, ", "))
		}
		b.WriteString("**Skill Improvements:**\n\n")
		writeScores(&b, ev)
	}

	md = b.String()
	return md
}

func writeRanking(b *strings.Builder, category string, ranking aggregate.Ranking) {
	fmt.Fprintf(b, "## Top %s\n\n", categoryTitle(category))
	if len(ranking) == 0 {
		fmt.Fprintf(b, "No %s skill data available.\n\n", category)
		return
	}
	b.WriteString("| Skill | Score |\n|---|---|\n")
	for _, entry := range ranking {
		fmt.Fprintf(b, "| %s | %d |\n", entry.Skill, entry.Score)
	}
	b.WriteString("\n")
}

// writeScores lists an event's scores sorted by skill name so output is stable.
func writeScores(b *strings.Builder, ev events.Event) {
	skills := make([]string, 0, len(ev.Scores))
	for skill := range ev.Scores {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	if len(skills) == 0 {
		b.WriteString("- none recorded\n\n")
		return
	}
	for _, skill := range skills {
		fmt.Fprintf(b, "- %s: +%d\n", skill, ev.Scores[skill])
	}
	b.WriteString("\n")
}

type jsonReport struct {
	EventCount   int               `json:"event_count"`
	EarnedCount  int               `json:"earned_count"`
	Aggregate    aggregate.Result  `json:"aggregate"`
	Achievements []jsonAchievement `json:"achievements"`
}

type jsonAchievement struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Badge                string `json:"badge"`
	Earned               bool   `json:"earned"`
	ConditionDescription string `json:"condition_description,omitempty"`
}

// JSON renders the view as an indented JSON document.
func JSON(view *dashboard.View) (data []byte, err error) {
	statuses := view.Achievements()

	doc := jsonReport{
		EventCount:   view.Dataset().Len(),
		Aggregate:    view.Result(),
		Achievements: make([]jsonAchievement, 0, len(statuses)),
	}

	for _, status := range statuses {
		entry := jsonAchievement{
			ID:          status.ID,
			Title:       status.Title,
			Description: status.Description,
			Badge:       status.Badge,
			Earned:      status.Earned,
		}
		if status.Earned {
			doc.EarnedCount++
		} else {
			entry.ConditionDescription = status.ConditionDescription
		}
		doc.Achievements = append(doc.Achievements, entry)
	}

	data, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal report")
		return data, err
	}

	return data, err
}
