package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Wanderquest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest      = "🗺️"
	IconSparkle    = "✨"
	IconPlus       = "➕"
	IconDone       = "✅"
	IconTrophy     = "🏆"
	IconBolt       = "⚡"
	IconInfo       = "ℹ️"
	IconWarn       = "⚠️"
	IconError      = "🧨"
	IconVault      = "📦"
	IconHabit      = "🃏"
	IconScroll     = "📜"
	IconGold       = "🪙"
	IconCampfire   = "🔥"
	IconShop       = "🛒"
	IconDice       = "🎲"
	IconCompanion  = "🤖"
	IconMedication = "💊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TierText colors a quest tier the way the board does everywhere.
func TierText(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "boss":
		return Bad.Render("boss")
	case "survival":
		return Warn.Render("survival")
	case "side":
		return H2.Render("side")
	default:
		return Muted.Render(tier)
	}
}

// DayStatusText colors the self-reported energy level.
func DayStatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "green":
		return Good.Render("green")
	case "yellow":
		return Warn.Render("yellow")
	case "red":
		return Bad.Render("red")
	default:
		return Muted.Render(status)
	}
}

func TierIcon(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "boss":
		return "👑"
	case "survival":
		return "🛡"
	default:
		return IconQuest
	}
}
