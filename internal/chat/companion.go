package chat

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"wanderquest/internal/engine"
)

// historyWindow caps how many prior turns are sent upstream.
const historyWindow = 10

// SnapshotSource is the slice of the engine the companion reads. It
// never writes game state.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*engine.Snapshot, error)
	GetSettings(ctx context.Context) (engine.Settings, error)
}

// Companion holds one conversation. Ask routes to the API when a key is
// configured and to the offline responder otherwise; an API failure
// degrades to offline instead of surfacing an error.
type Companion struct {
	src      SnapshotSource
	client   *Client
	log      *zap.Logger
	pick     func(n int) int
	messages []Message
}

func NewCompanion(src SnapshotSource, client *Client, logger *zap.Logger, pick func(n int) int) *Companion {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Companion{src: src, client: client, log: logger, pick: pick}
}

// Reply is one companion answer, flagged when it came from offline mode.
type Reply struct {
	Text    string
	Offline bool
}

func (c *Companion) Ask(ctx context.Context, text string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty message")
	}

	snap, err := c.src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := c.src.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	c.messages = append(c.messages, Message{Role: "user", Content: text})

	if settings.APIKey != "" {
		reply, err := c.callAPI(ctx, settings, snap)
		if err == nil {
			c.messages = append(c.messages, Message{Role: "assistant", Content: reply})
			return &Reply{Text: reply}, nil
		}
		c.log.Warn("companion api failed, falling back to offline mode", zap.Error(err))
	}

	reply := c.offlineReply(text, snap)
	c.messages = append(c.messages, Message{Role: "assistant", Content: reply})
	return &Reply{Text: reply, Offline: true}, nil
}

func (c *Companion) callAPI(ctx context.Context, st engine.Settings, snap *engine.Snapshot) (string, error) {
	history := c.messages
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	msgs := append([]Message{{Role: "system", Content: systemPrompt(snap)}}, history...)
	return c.client.Complete(ctx, st, msgs)
}

// QuickPrompt expands a shortcut name into its full message; unknown
// names pass through unchanged.
func QuickPrompt(name string) string {
	switch name {
	case "status":
		return "Check my status — how am I doing?"
	case "suggest":
		return "What should I do right now?"
	case "review":
		return "Generate my daily review"
	case "comfort":
		return "I'm not doing well. I need some comfort."
	case "vault":
		return "Pick something from my vault for me"
	default:
		return name
	}
}

// hpMP derives the two headline meters from the six dashboard stats.
func hpMP(st engine.Stats) (int, int) {
	hp := int(math.Round(float64(st.Stamina+st.Diet+st.Sleep) / 3))
	mp := int(math.Round(float64(st.Spirit+st.Focus+st.Mood) / 3))
	return hp, mp
}

func systemPrompt(snap *engine.Snapshot) string {
	hp, mp := hpMP(snap.Dashboard.Stats)

	var open []string
	for _, q := range snap.Quests {
		if !q.Done {
			open = append(open, fmt.Sprintf("[%s] %s", q.Tier, q.Name))
		}
	}
	playedToday := 0
	for _, h := range snap.Habits {
		if h.PlayedOn(snap.Today) {
			playedToday++
		}
	}

	var b strings.Builder
	b.WriteString("You are the campfire companion in a life-management RPG. ")
	b.WriteString("You speak as a supportive party member on the user's adventure. ")
	b.WriteString("Be warm but concise, use RPG metaphors naturally, never patronize. ")
	b.WriteString("If the user seems stuck or overwhelmed, gently suggest a guided routine or a transition card.\n\n")
	b.WriteString("Current state:\n")
	fmt.Fprintf(&b, "- Character: %s the %s, Level %d\n", snap.Settings.Name, snap.Settings.CharClass, snap.Character.Level)
	fmt.Fprintf(&b, "- HP (physical): %d/100, MP (mental): %d/100\n", hp, mp)
	fmt.Fprintf(&b, "- Day status: %s (green=energized, yellow=moderate, red=low)\n", snap.Dashboard.DayStatus)
	fmt.Fprintf(&b, "- Gold: %d, XP: %d/%d\n", snap.Character.Gold, snap.Character.XP, snap.Character.XPToNext)
	fmt.Fprintf(&b, "- Open quests: %s\n", orNone(strings.Join(open, ", ")))
	fmt.Fprintf(&b, "- Habits played today: %d\n", playedToday)
	fmt.Fprintf(&b, "- Day streak: %d\n", snap.Dashboard.DayStreak)
	fmt.Fprintf(&b, "- Vault items: %d stored\n", len(snap.Vault))
	b.WriteString("\nRespond in short paragraphs.")
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
