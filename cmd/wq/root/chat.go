package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wanderquest/internal/chat"
	"wanderquest/internal/ui"
)

func newChatCmd() *cobra.Command {
	var quick string

	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Talk to the campfire companion",
		Long:  "One-shot: `wq chat how am I doing`. Without arguments it opens an\ninteractive session. Works offline; set an API key in settings for full\nconversations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			companion := chat.NewCompanion(svc, chat.NewClient(30*time.Second), logger, rand.Intn)

			if quick != "" {
				return askOnce(cmd, ctx, companion, chat.QuickPrompt(quick))
			}
			if len(args) > 0 {
				return askOnce(cmd, ctx, companion, strings.Join(args, " "))
			}
			return chatLoop(cmd, ctx, companion)
		},
	}
	cmd.Flags().StringVarP(&quick, "quick", "q", "", "Quick prompt (status|suggest|review|comfort|vault)")
	return cmd
}

func askOnce(cmd *cobra.Command, ctx context.Context, companion *chat.Companion, text string) error {
	reply, err := companion.Ask(ctx, text)
	if err != nil {
		return err
	}
	printReply(cmd, reply)
	return nil
}

func chatLoop(cmd *cobra.Command, ctx context.Context, companion *chat.Companion) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconCompanion, "Campfire Companion"))
	fmt.Fprintln(out, ui.Muted.Render("Type a message, or 'quit' to leave."))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" || text == "exit" {
			break
		}
		reply, err := companion.Ask(ctx, text)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			fmt.Fprintln(out, ui.Bad.Render(err.Error()))
			continue
		}
		printReply(cmd, reply)
	}
	return scanner.Err()
}

func printReply(cmd *cobra.Command, reply *chat.Reply) {
	out := cmd.OutOrStdout()
	if reply.Offline {
		fmt.Fprintln(out, ui.Muted.Render("(offline mode)"))
	}
	fmt.Fprintln(out, reply.Text)
}
