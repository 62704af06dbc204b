package chat

import (
	"fmt"
	"sort"
	"strings"

	"wanderquest/internal/engine"
)

var comfortLines = []string{
	"Hey. I see you. What you're feeling right now is real, and it's valid. You don't have to be productive every moment. Sometimes just existing is the quest.",
	"The fact that you opened this at all means something. Even on the worst days, part of you is still trying. That part deserves credit.",
	"Rest is not failure. It's maintenance. Even legendary heroes have to visit the inn.",
	"I know everything feels heavy right now. This will pass. Try one tiny thing: drink water, move slightly, or just close your eyes for a moment.",
}

// offlineReply answers without the API, using simple keyword routing
// over the live snapshot.
func (c *Companion) offlineReply(text string, snap *engine.Snapshot) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "status") || strings.Contains(lower, "how am i"):
		return offlineStatus(snap)
	case strings.Contains(lower, "what should i do") || strings.Contains(lower, "suggest") || strings.Contains(lower, "now what"):
		return offlineSuggest(snap)
	case strings.Contains(lower, "review") || strings.Contains(lower, "recap"):
		return offlineReview(snap)
	case strings.Contains(lower, "comfort") || strings.Contains(lower, "sad") ||
		strings.Contains(lower, "tired") || strings.Contains(lower, "overwhelm") ||
		strings.Contains(lower, "can't"):
		return comfortLines[c.pick(len(comfortLines))]
	case strings.Contains(lower, "vault") || strings.Contains(lower, "pick"):
		return c.offlineVault(snap)
	default:
		return "Here's what I can do offline:\n" +
			"- \"check my status\" — HP/MP and day status\n" +
			"- \"what should I do\" — a quest suggestion\n" +
			"- \"daily review\" — recap the day\n" +
			"- \"I need comfort\" — a kind word\n" +
			"- \"pick from vault\" — a random stored item\n\n" +
			"Set an API key in settings for full conversations."
	}
}

func offlineStatus(snap *engine.Snapshot) string {
	hp, mp := hpMP(snap.Dashboard.Stats)
	verdict := "You're at moderate levels. Pace yourself."
	if hp < 40 {
		verdict = "Your HP is low. Consider eating, resting, or a light activity."
	} else if hp > 70 {
		verdict = "Looking good! You have energy to tackle some quests."
	}
	return fmt.Sprintf("Status check\nHP %d/100, MP %d/100\nDay status: %s\nStreak: %d days\n\n%s",
		hp, mp, snap.Dashboard.DayStatus, snap.Dashboard.DayStreak, verdict)
}

func offlineSuggest(snap *engine.Snapshot) string {
	var open []engine.Quest
	for _, q := range snap.Quests {
		if !q.Done {
			open = append(open, q)
		}
	}

	if snap.Dashboard.DayStatus == engine.DayRed {
		for _, q := range open {
			if q.Tier == engine.TierSurvival {
				return fmt.Sprintf("You're in low-power mode. Focus only on survival quests.\nTry this: %s\n\nExisting is enough on low days. Be gentle.", q.Name)
			}
		}
		return "You're in low-power mode and no survival quests are lined up. Maybe draw a transition card?\n\nExisting is enough on low days. Be gentle."
	}

	if len(open) == 0 {
		return "No active quests! You could pull something from the vault, play a habit card, write a journal entry — or just rest. That's valid too."
	}

	tierOrder := map[engine.Tier]int{engine.TierBoss: 0, engine.TierSurvival: 1, engine.TierSide: 2}
	sort.SliceStable(open, func(i, j int) bool {
		return tierOrder[open[i].Tier] < tierOrder[open[j].Tier]
	})
	reply := fmt.Sprintf("Top pick: %s (%s)", open[0].Name, open[0].Tier)
	if len(open) > 1 {
		rest := open[1:]
		if len(rest) > 2 {
			rest = rest[:2]
		}
		names := make([]string, len(rest))
		for i, q := range rest {
			names[i] = q.Name
		}
		reply += "\nAlso pending: " + strings.Join(names, ", ")
	}
	return reply + "\n\nPick whichever feels most doable right now. Not the \"should\" — the \"can\"."
}

func offlineReview(snap *engine.Snapshot) string {
	var done, played []string
	for _, q := range snap.Quests {
		if q.Done && q.DoneDate == snap.Today {
			done = append(done, q.Name)
		}
	}
	for _, h := range snap.Habits {
		if h.PlayedOn(snap.Today) {
			played = append(played, h.Name)
		}
	}

	closing := "Haven't started yet? That's okay. The day isn't over."
	if len(done) > 0 {
		closing = "You did things today. That counts. Well done, adventurer."
	}
	return fmt.Sprintf("Daily review\nQuests completed: %d %s\nHabits played: %d %s\nXP: %d/%d, Gold: %d, Streak: %d days\n\n%s",
		len(done), orNone(strings.Join(done, ", ")),
		len(played), orNone(strings.Join(played, ", ")),
		snap.Character.XP, snap.Character.XPToNext, snap.Character.Gold,
		snap.Dashboard.DayStreak, closing)
}

func (c *Companion) offlineVault(snap *engine.Snapshot) string {
	if len(snap.Vault) == 0 {
		return "Your vault is empty! Maybe stash some \"someday\" items first."
	}
	item := snap.Vault[c.pick(len(snap.Vault))]
	reply := fmt.Sprintf("*rummages through the vault*\n\nHow about: %s?", item.Name)
	if item.Notes != "" {
		reply += "\nNotes: " + item.Notes
	}
	return reply + "\n\nPull it to the quest board if it feels right."
}
