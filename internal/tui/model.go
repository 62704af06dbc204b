package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wanderquest/internal/engine"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snap *engine.Snapshot

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap *engine.Snapshot
	err  error
}

type toggledMsg struct {
	id  string
	res *engine.QuestResult
	err error
}

type playedMsg struct {
	id  string
	res *engine.HabitResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx)
		return loadedMsg{snap: snap, err: err}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleQuest(m.ctx, id)
		return toggledMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) playCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.PlayHabit(m.ctx, id)
		return playedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Completed {
			m.lastLog = fmt.Sprintf("Completed %q: +%d XP +%d gold (level %d → %d)",
				msg.res.Quest.Name, msg.res.XPAwarded, msg.res.GoldAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		} else {
			m.lastLog = fmt.Sprintf("Reopened %q.", msg.res.Quest.Name)
		}
		return m, m.loadCmd()
	case playedMsg:
		if msg.err != nil {
			m.lastLog = "Play failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Undone {
			m.lastLog = fmt.Sprintf("Undid %q (combo %d).", msg.res.Habit.Name, msg.res.Combo)
		} else {
			m.lastLog = fmt.Sprintf("Played %q: +%d XP (%dx combo)", msg.res.Habit.Name, msg.res.XPAwarded, msg.res.Combo)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.boardLines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			switch {
			case line.header:
				m.lastLog = "Select a quest or a habit card."
				return m, nil
			case line.habit:
				m.lastLog = fmt.Sprintf("Playing %q…", line.title)
				return m, m.playCmd(line.id)
			default:
				m.lastLog = fmt.Sprintf("Toggling %q…", line.title)
				return m, m.toggleCmd(line.id)
			}
		}
	}
	return m, nil
}

type boardLine struct {
	id     string
	title  string
	tier   engine.Tier
	done   bool
	habit  bool
	played bool
	header bool
}

// boardLines flattens the quest board: quests grouped by tier (boss,
// survival, side), then the habit deck.
func (m boardModel) boardLines() []boardLine {
	if m.snap == nil {
		return nil
	}

	quests := append([]engine.Quest(nil), m.snap.Quests...)
	tierOrder := map[engine.Tier]int{engine.TierBoss: 0, engine.TierSurvival: 1, engine.TierSide: 2}
	sort.SliceStable(quests, func(i, j int) bool {
		return tierOrder[quests[i].Tier] < tierOrder[quests[j].Tier]
	})

	var out []boardLine
	var prevTier engine.Tier
	for _, q := range quests {
		if q.Tier != prevTier {
			out = append(out, boardLine{title: strings.ToUpper(string(q.Tier)) + " QUESTS", header: true})
			prevTier = q.Tier
		}
		out = append(out, boardLine{id: q.ID, title: q.Name, tier: q.Tier, done: q.Done})
	}

	if len(m.snap.Habits) > 0 {
		out = append(out, boardLine{title: "HABIT DECK", header: true})
		for _, h := range m.snap.Habits {
			out = append(out, boardLine{
				id:     h.ID,
				title:  h.Name,
				tier:   h.Tier,
				habit:  true,
				played: h.PlayedOn(m.snap.Today),
			})
		}
	}

	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.snap == nil {
		return "Wanderquest — loading…"
	}
	c := m.snap.Character
	bar := progressBar(c.XP, c.XPToNext, 30)
	return fmt.Sprintf("Wanderquest | %s the %s | Level %d | XP %d/%d %s | Gold %d",
		m.snap.Settings.Name, m.snap.Settings.CharClass, c.Level, c.XP, c.XPToNext, bar, c.Gold)
}

func (m boardModel) renderSidebar() string {
	if m.snap == nil {
		return "Stats\n\nLoading…"
	}
	st := m.snap.Dashboard.Stats
	lines := []string{"Condition"}
	lines = append(lines, renderStat("Stamina", st.Stamina))
	lines = append(lines, renderStat("Sleep", st.Sleep))
	lines = append(lines, renderStat("Diet", st.Diet))
	lines = append(lines, renderStat("Spirit", st.Spirit))
	lines = append(lines, renderStat("Focus", st.Focus))
	lines = append(lines, renderStat("Mood", st.Mood))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Day: %s", m.snap.Dashboard.DayStatus))
	lines = append(lines, fmt.Sprintf("Streak: %d days", m.snap.Dashboard.DayStreak))
	lines = append(lines, fmt.Sprintf("Combo: %dx", m.snap.Combo))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete/play")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}

	lines := m.boardLines()
	if len(lines) == 0 {
		return "Quest Board\n\n(empty — add quests with `wq quest add`)"
	}

	var out []string
	out = append(out, "Quest Board")
	for i, bl := range lines {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		if bl.header {
			out = append(out, "")
			out = append(out, cursor+bl.title)
			continue
		}
		mark := "[ ]"
		if bl.habit {
			mark = "( )"
			if bl.played {
				mark = "(x)"
			}
		} else if bl.done {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s", cursor, mark, bl.title))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func renderStat(label string, value int) string {
	return fmt.Sprintf("- %-7s %s", label, progressBar(value, 100, 14))
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
