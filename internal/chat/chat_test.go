package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wanderquest/internal/engine"
)

type fakeSource struct {
	snap     engine.Snapshot
	settings engine.Settings
}

func (f *fakeSource) Snapshot(context.Context) (*engine.Snapshot, error) {
	s := f.snap
	return &s, nil
}

func (f *fakeSource) GetSettings(context.Context) (engine.Settings, error) {
	return f.settings, nil
}

func testSource() *fakeSource {
	return &fakeSource{
		snap: engine.Snapshot{
			Settings:  engine.Settings{Name: "Wanderer", CharClass: "ranger"},
			Character: engine.Character{Level: 2, XP: 40, XPToNext: 130, Gold: 80},
			Dashboard: engine.Dashboard{
				DayStatus: engine.DayGreen,
				Stats:     engine.Stats{Stamina: 80, Diet: 80, Sleep: 80, Spirit: 50, Focus: 50, Mood: 50},
				DayStreak: 4,
			},
			Today: "2026-08-10",
		},
	}
}

func newOfflineCompanion(src *fakeSource) *Companion {
	return NewCompanion(src, NewClient(time.Second), nil, func(n int) int { return 0 })
}

func TestAskOfflineStatus(t *testing.T) {
	c := newOfflineCompanion(testSource())

	reply, err := c.Ask(context.Background(), "check my status please")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !reply.Offline {
		t.Fatalf("expected offline reply without an api key")
	}
	if !strings.Contains(reply.Text, "HP 80/100") {
		t.Fatalf("status reply missing HP: %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "MP 50/100") {
		t.Fatalf("status reply missing MP: %q", reply.Text)
	}
}

func TestAskOfflineSuggestRedDayPicksSurvival(t *testing.T) {
	src := testSource()
	src.snap.Dashboard.DayStatus = engine.DayRed
	src.snap.Quests = []engine.Quest{
		{Name: "Slay the dragon", Tier: engine.TierBoss},
		{Name: "Eat something", Tier: engine.TierSurvival},
	}
	c := newOfflineCompanion(src)

	reply, err := c.Ask(context.Background(), "what should i do?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(reply.Text, "Eat something") {
		t.Fatalf("red day should suggest the survival quest: %q", reply.Text)
	}
	if strings.Contains(reply.Text, "Slay the dragon") {
		t.Fatalf("red day suggested a boss quest: %q", reply.Text)
	}
}

func TestAskOfflineSuggestOrdersByTier(t *testing.T) {
	src := testSource()
	src.snap.Quests = []engine.Quest{
		{Name: "Tidy desk", Tier: engine.TierSide},
		{Name: "Slay the dragon", Tier: engine.TierBoss},
		{Name: "Done already", Tier: engine.TierBoss, Done: true},
	}
	c := newOfflineCompanion(src)

	reply, err := c.Ask(context.Background(), "suggest something")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(reply.Text, "Top pick: Slay the dragon") {
		t.Fatalf("boss quest should be the top pick: %q", reply.Text)
	}
	if strings.Contains(reply.Text, "Done already") {
		t.Fatalf("completed quest suggested: %q", reply.Text)
	}
}

func TestAskOfflineVaultEmpty(t *testing.T) {
	c := newOfflineCompanion(testSource())
	reply, err := c.Ask(context.Background(), "pick from my vault")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(reply.Text, "vault is empty") {
		t.Fatalf("empty vault not reported: %q", reply.Text)
	}
}

func TestAskUsesAPIWhenKeySet(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Onward, wanderer!"}},
			},
		})
	}))
	defer srv.Close()

	src := testSource()
	src.settings = engine.Settings{APIKey: "sk-test", APIURL: srv.URL, Model: "gpt-4o-mini"}
	c := newOfflineCompanion(src)

	reply, err := c.Ask(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply.Offline {
		t.Fatalf("api reply flagged offline")
	}
	if reply.Text != "Onward, wanderer!" {
		t.Fatalf("reply=%q", reply.Text)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("auth header=%q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Fatalf("model=%q", gotReq.Model)
	}
	if len(gotReq.Messages) < 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("messages=%+v, want system prompt first", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[0].Content, "Wanderer the ranger, Level 2") {
		t.Fatalf("system prompt missing character line: %q", gotReq.Messages[0].Content)
	}
}

func TestAskFallsBackOfflineOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	src := testSource()
	src.settings = engine.Settings{APIKey: "sk-bad", APIURL: srv.URL, Model: "gpt-4o-mini"}
	c := newOfflineCompanion(src)

	reply, err := c.Ask(context.Background(), "check my status")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !reply.Offline {
		t.Fatalf("api failure did not degrade to offline mode")
	}
	if !strings.Contains(reply.Text, "HP 80/100") {
		t.Fatalf("offline fallback reply=%q", reply.Text)
	}
}

func TestHistoryWindowTrimsToTen(t *testing.T) {
	var gotReq completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	src := testSource()
	src.settings = engine.Settings{APIKey: "sk-test", APIURL: srv.URL, Model: "m"}
	c := newOfflineCompanion(src)

	for i := 0; i < 9; i++ {
		if _, err := c.Ask(context.Background(), "again"); err != nil {
			t.Fatalf("Ask %d: %v", i, err)
		}
	}
	// 1 system + at most 10 history turns.
	if len(gotReq.Messages) != 11 {
		t.Fatalf("sent %d messages, want 11", len(gotReq.Messages))
	}
}

func TestQuickPrompt(t *testing.T) {
	if got := QuickPrompt("comfort"); !strings.Contains(got, "comfort") {
		t.Fatalf("QuickPrompt(comfort)=%q", got)
	}
	if got := QuickPrompt("free text"); got != "free text" {
		t.Fatalf("unknown prompt rewritten: %q", got)
	}
}
