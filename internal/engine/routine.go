package engine

import (
	"context"
	"fmt"
	"time"
)

// RoutineStep is one direct command in a guided sequence.
type RoutineStep struct {
	Text string
	Sub  string
}

type RoutineKind string

const (
	RoutineGeneral   RoutineKind = "general"
	RoutineMorning   RoutineKind = "morning"
	RoutineParalysis RoutineKind = "paralysis"
	RoutineNight     RoutineKind = "night"
)

func (k RoutineKind) IsValid() bool {
	switch k {
	case RoutineGeneral, RoutineMorning, RoutineParalysis, RoutineNight:
		return true
	default:
		return false
	}
}

// RoutineFor picks a sequence by explicit kind, or by time of day when kind
// is empty: mornings get the wake-up script, late nights the wind-down one.
func RoutineFor(kind RoutineKind, now time.Time) (RoutineKind, []RoutineStep) {
	if !kind.IsValid() {
		switch h := now.Hour(); {
		case h < 10:
			kind = RoutineMorning
		case h > 22:
			kind = RoutineNight
		default:
			kind = RoutineGeneral
		}
	}
	return kind, routineSequences[kind]
}

var routineSequences = map[RoutineKind][]RoutineStep{
	RoutineGeneral: {
		{Text: "Stop thinking.", Sub: "Right now."},
		{Text: "Stand up.", Sub: "Move your body."},
		{Text: "Walk to the kitchen.", Sub: "One step at a time."},
		{Text: "Drink a glass of water.", Sub: "Full glass. Drink it all."},
		{Text: "Splash cold water on your face.", Sub: "Wake up."},
		{Text: "Come back.", Sub: "Sit down."},
		{Text: "Pick ONE thing from your quest board.", Sub: "The easiest one."},
		{Text: "Set a 10-minute timer.", Sub: "Just 10 minutes. Start."},
		{Text: "Do it now.", Sub: "Reply when done."},
	},
	RoutineMorning: {
		{Text: "Open your eyes.", Sub: "You're awake now."},
		{Text: "Don't touch your phone.", Sub: "Not yet."},
		{Text: "Sit up.", Sub: "Swing your legs over the bed."},
		{Text: "Stand.", Sub: "Both feet on the floor."},
		{Text: "Go to bathroom.", Sub: "Wash your face."},
		{Text: "Brush teeth.", Sub: "2 minutes."},
		{Text: "Drink water.", Sub: "A full glass."},
		{Text: "Get dressed.", Sub: "Anything. Just not pajamas."},
		{Text: "You're ready.", Sub: "Check your quest board."},
	},
	RoutineParalysis: {
		{Text: "STOP.", Sub: "Close everything."},
		{Text: "Put the phone down.", Sub: "Screen off. Away from you."},
		{Text: "Close your eyes.", Sub: "5 deep breaths."},
		{Text: "Breathe in... 4 counts.", Sub: "1... 2... 3... 4..."},
		{Text: "Hold... 4 counts.", Sub: "1... 2... 3... 4..."},
		{Text: "Out... 6 counts.", Sub: "1... 2... 3... 4... 5... 6..."},
		{Text: "Again. 3 more times.", Sub: "Just breathe."},
		{Text: "Open your eyes.", Sub: "Look around the room."},
		{Text: "Name 5 things you can see.", Sub: "Say them out loud."},
		{Text: "Good.", Sub: "Now pick the smallest possible action."},
		{Text: "Do it.", Sub: "Nothing else matters right now."},
	},
	RoutineNight: {
		{Text: "Stop what you're doing.", Sub: "It can wait until tomorrow."},
		{Text: "Save your work.", Sub: "Close all tabs."},
		{Text: "Turn off bright lights.", Sub: "Dim everything."},
		{Text: "Go brush your teeth.", Sub: "Now."},
		{Text: "Wash your face.", Sub: "Warm water."},
		{Text: "Change into sleep clothes.", Sub: "Comfortable ones."},
		{Text: "Get into bed.", Sub: "Phone on charger, away from bed."},
		{Text: "Close your eyes.", Sub: "Tomorrow is a new day. Rest."},
	},
}

type RoutineResult struct {
	Kind        RoutineKind
	Finished    bool
	XPAwarded   int
	GoldAwarded int
	Unlocked    []AchievementDef
	Events      []Event
}

// FinishRoutine grants the completion reward for a guided sequence.
// finished=false is the bail-out path: a small XP nudge for trying.
func (s *Service) FinishRoutine(ctx context.Context, kind RoutineKind, finished bool) (*RoutineResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid routine: %q", kind)
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	reward := s.bal.RoutineComplete
	var events []Event
	if finished {
		events = append(events, logEvent(fmt.Sprintf("Completed %s routine (+%dXP, +%dG)", kind, reward.XP, reward.Gold)))
	} else {
		reward = s.bal.RoutineBail
		events = append(events, logEvent(fmt.Sprintf("Stepped out of the %s routine early (+%dXP for trying)", kind, reward.XP)))
	}

	events = append(GrantXP(&snap.Character, reward.XP, s.bal.XPGrowthFactor), events...)
	GrantGold(&snap.Character, reward.Gold)

	unlocked, events, err := s.finish(ctx, snap, events)
	if err != nil {
		return nil, err
	}
	return &RoutineResult{
		Kind:        kind,
		Finished:    finished,
		XPAwarded:   reward.XP,
		GoldAwarded: reward.Gold,
		Unlocked:    unlocked,
		Events:      events,
	}, nil
}

// DrawTransition picks a random transition card from the pool.
func (s *Service) DrawTransition(ctx context.Context, pick func(n int) int) (*TransitionCard, error) {
	cards, err := s.ListTransitionCards(ctx)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("no transition cards in the pool")
	}
	card := cards[pick(len(cards))]
	return &card, nil
}

// CompleteTransition grants the small fixed reward for doing a drawn card.
func (s *Service) CompleteTransition(ctx context.Context, name string) (*RoutineResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	reward := s.bal.Transition
	events := GrantXP(&snap.Character, reward.XP, s.bal.XPGrowthFactor)
	GrantGold(&snap.Character, reward.Gold)
	events = append(events, logEvent(fmt.Sprintf("Completed transition: %q (+%dXP)", name, reward.XP)))

	unlocked, events, err := s.finish(ctx, snap, events)
	if err != nil {
		return nil, err
	}
	return &RoutineResult{
		Finished:    true,
		XPAwarded:   reward.XP,
		GoldAwarded: reward.Gold,
		Unlocked:    unlocked,
		Events:      events,
	}, nil
}
