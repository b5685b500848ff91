package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"astro-observer/internal/client/assistant"
	"astro-observer/internal/client/guard"

	"github.com/spf13/cobra"
)

func newChatCmd(a *app) *cobra.Command {
	var moduleContext string
	var sessionId string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the TianXun AI assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			opts := []assistant.Option{}
			if sessionId != "" {
				opts = append(opts, assistant.WithSessionId(sessionId))
			}
			conv := assistant.NewConversation(a.api, moduleContext, opts...)

			infoText.Println("TianXun AI ready. Empty line or /quit to leave.")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("you> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" || line == "/quit" {
					break
				}

				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				turn, err := conv.Send(ctx, line)
				cancel()
				if errors.Is(err, assistant.ErrBusy) {
					continue
				}
				if err != nil {
					return err
				}
				if turn != nil {
					fmt.Printf("ai>  %s\n", turn.Content)
				}
			}
			return scanner.Err()
		},
	}

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List your past chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			ids, err := a.api.ChatSessions(ctx)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}

	history := &cobra.Command{
		Use:   "history <session-id>",
		Short: "Show the transcript of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			items, err := a.api.ChatHistory(ctx, args[0])
			if err != nil {
				return err
			}
			for _, item := range items {
				prefix := "you>"
				if item.Role == "assistant" {
					prefix = "ai> "
				}
				fmt.Printf("%s %s\n", prefix, item.Content)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&moduleContext, "context", "", "feature context: galaxy, constellation, positioning, space_engine")
	cmd.Flags().StringVar(&sessionId, "session", "", "continue an existing session")
	cmd.AddCommand(sessions, history)
	return cmd
}
