package achievements

import (
	"github.com/nikogura/skill-dashboard/pkg/aggregate"
	"github.com/nikogura/skill-dashboard/pkg/events"
)

const (
	// RisingStarThreshold is the single-skill score that earns the rising star badges.
	RisingStarThreshold = 10
	// MasterThreshold is the single-skill score that earns the master badges.
	MasterThreshold = 15
	// EnthusiastEventCount must be exceeded to earn Event Enthusiast.
	EnthusiastEventCount = 5
)

// Catalog IDs.
const (
	RisingStarSoft   = "rising_star_soft"
	TechGuruHard     = "tech_guru_hard"
	EventEnthusiast  = "event_enthusiast"
	SoftSkillMaster  = "soft_skill_master"
	HardSkillMaster  = "hard_skill_master"
	HundredHours     = "100_hours_spent"
	FiftySocials     = "50_socials_attended"
	FiveTeamLeads    = "5_team_leads"
	TenAcademicEvent = "10_academic_events"
)

// SoftSkillAtLeast is earned when any soft skill reaches threshold.
func SoftSkillAtLeast(threshold int) (cond Condition) {
	cond = func(soft, _ aggregate.Accumulator, _ events.Dataset) bool {
		return soft.Any(func(score int) bool { return score >= threshold })
	}
	return cond
}

// HardSkillAtLeast is earned when any hard skill reaches threshold.
func HardSkillAtLeast(threshold int) (cond Condition) {
	cond = func(_, hard aggregate.Accumulator, _ events.Dataset) bool {
		return hard.Any(func(score int) bool { return score >= threshold })
	}
	return cond
}

// MoreEventsThan is earned when the dataset holds more than count events.
func MoreEventsThan(count int) (cond Condition) {
	cond = func(_, _ aggregate.Accumulator, data events.Dataset) bool {
		return data.Len() > count
	}
	return cond
}

// Never is never earned. The hours, socials, team-lead and academic badges use
// it because events carry no data for them.
func Never(_, _ aggregate.Accumulator, _ events.Dataset) bool {
	return false
}

// DefaultDefinitions returns the standard catalog entries in display order.
func DefaultDefinitions() (defs []Definition) {
	defs = []Definition{
		{
			ID:                   RisingStarSoft,
			Title:                "Rising Star (Soft Skills)",
			Description:          "You've excelled significantly in at least one soft skill.",
			Badge:                "⭐",
			Condition:            SoftSkillAtLeast(RisingStarThreshold),
			ConditionDescription: "Achieve a score of ≥10 in at least one soft skill.",
		},
		{
			ID:                   TechGuruHard,
			Title:                "Tech Guru (Hard Skills)",
			Description:          "You've become highly proficient in at least one hard skill.",
			Badge:                "💻",
			Condition:            HardSkillAtLeast(RisingStarThreshold),
			ConditionDescription: "Achieve a score of ≥10 in at least one hard skill.",
		},
		{
			ID:                   EventEnthusiast,
			Title:                "Event Enthusiast",
			Description:          "You've actively participated in many learning events.",
			Badge:                "🏆",
			Condition:            MoreEventsThan(EnthusiastEventCount),
			ConditionDescription: "Attend more than 5 events.",
		},
		{
			ID:                   SoftSkillMaster,
			Title:                "Soft Skill Master",
			Description:          "Become proficient (score ≥15) in at least one soft skill.",
			Badge:                "🌱",
			Condition:            SoftSkillAtLeast(MasterThreshold),
			ConditionDescription: "Achieve a score of ≥15 in at least one soft skill.",
		},
		{
			ID:                   HardSkillMaster,
			Title:                "Hard Skill Master",
			Description:          "Become proficient (score ≥15) in at least one hard skill.",
			Badge:                "🔧",
			Condition:            HardSkillAtLeast(MasterThreshold),
			ConditionDescription: "Achieve a score of ≥15 in at least one hard skill.",
		},
		{
			ID:                   HundredHours,
			Title:                "Marathon Learner",
			Description:          "Spent 100+ hours in events.",
			Badge:                "⏰",
			Condition:            Never,
			ConditionDescription: "Accumulate more than 100 hours spent in events.",
		},
		{
			ID:                   FiftySocials,
			Title:                "Social Butterfly",
			Description:          "Attended 50+ socials in events.",
			Badge:                "🎉",
			Condition:            Never,
			ConditionDescription: "Attend over 50 social events.",
		},
		{
			ID:                   FiveTeamLeads,
			Title:                "Team Leader",
			Description:          "Led a team in 5+ events.",
			Badge:                "👑",
			Condition:            Never,
			ConditionDescription: "Lead a team in more than 5 events.",
		},
		{
			ID:                   TenAcademicEvent,
			Title:                "Academic Achiever",
			Description:          "Completed 10+ academic development events.",
			Badge:                "🎓",
			Condition:            Never,
			ConditionDescription: "Complete at least 10 academic development events.",
		},
	}
	return defs
}

// DefaultCatalog returns the standard nine-entry catalog.
func DefaultCatalog() (catalog *Catalog) {
	catalog = MustCatalog(DefaultDefinitions()...)
	return catalog
}
