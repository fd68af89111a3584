package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/skill-dashboard/pkg/aggregate"
	"github.com/nikogura/skill-dashboard/pkg/dashboard"
)

const barWidth = 20

//nolint:gochecknoglobals // Terminal palette
var (
	softColor   = lipgloss.Color("#4bc0c0")
	hardColor   = lipgloss.Color("#9966ff")
	mutedColor  = lipgloss.Color("#6b7280")
	earnedColor = lipgloss.Color("#8BC34A")

	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	earnedStyle = lipgloss.NewStyle().Foreground(earnedColor).Bold(true)
)

// Terminal renders the view for a terminal. Score bars stand in for charts.
func Terminal(view *dashboard.View) (out string) {
	result := view.Result()

	skills := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(rankingPanel("soft", result.TopSoftSkills, softColor)),
		" ",
		panelStyle.Render(rankingPanel("hard", result.TopHardSkills, hardColor)),
	)

	sections := []string{
		titleStyle.Render("Student Skill Dashboard"),
		skills,
		panelStyle.Render(topEventsPanel(result.TopEvents)),
		panelStyle.Render(achievementsPanel(view)),
	}

	out = lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
	return out
}

func rankingPanel(category string, ranking aggregate.Ranking, color lipgloss.Color) (panel string) {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render("Top "+categoryTitle(category)) + "\n")

	if len(ranking) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("No %s skill data available.", category)))
		panel = b.String()
		return panel
	}

	top := ranking[0].Score
	bar := lipgloss.NewStyle().Foreground(color)
	for _, entry := range ranking {
		fmt.Fprintf(&b, "%-18s %s %d\n", entry.Skill, bar.Render(scoreBar(entry.Score, top)), entry.Score)
	}

	panel = strings.TrimRight(b.String(), "\n")
	return panel
}

// scoreBar scales score against the ranking's best score.
func scoreBar(score, best int) (bar string) {
	if best <= 0 || score <= 0 {
		return bar
	}
	width := score * barWidth / best
	if width == 0 {
		width = 1
	}
	bar = strings.Repeat("█", width)
	return bar
}

func topEventsPanel(top []aggregate.EventScore) (panel string) {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Top Events") + "\n")

	if len(top) == 0 {
		b.WriteString(mutedStyle.Render("No events attended yet."))
		panel = b.String()
		return panel
	}

	for i, entry := range top {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, entry.Event.Name, mutedStyle.Render(fmt.Sprintf("(+%d)", entry.TotalImprovement)))
	}

	panel = strings.TrimRight(b.String(), "\n")
	return panel
}

func achievementsPanel(view *dashboard.View) (panel string) {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Achievements") + "\n")

	for _, status := range view.Achievements() {
		if status.Earned {
			fmt.Fprintf(&b, "%s %s\n", status.Badge, earnedStyle.Render(status.Title))
			continue
		}
		fmt.Fprintf(&b, "%s %s %s\n", LockedBadge, status.Title,
			mutedStyle.Render("How to unlock: "+status.ConditionDescription))
	}

	panel = strings.TrimRight(b.String(), "\n")
	return panel
}
