package main

import (
	"fmt"
	"strings"

	"tigerrentals-client/internal/view"

	"github.com/spf13/cobra"
)

func newMessagesCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Chat with renters and owners",
	}
	cmd.AddCommand(newMessagesListCmd(get), newMessagesSendCmd(get))
	return cmd
}

func newMessagesListCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [RENTAL_ID]",
		Short: "List conversations, or the messages of one rental",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if len(args) == 0 {
				convs, err := a.messages.Conversations(cmd.Context())
				if err != nil {
					return a.loadFailed("conversations", err)
				}
				view.Conversations(a.out, convs)
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msgs, err := a.messages.List(cmd.Context(), id)
			if err != nil {
				return a.loadFailed("messages", err)
			}
			sess, err := a.auth.Current()
			if err != nil {
				return a.loadFailed("messages", err)
			}
			view.Messages(a.out, msgs, sess.UserID())
			return nil
		},
	}
}

func newMessagesSendCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send RENTAL_ID MESSAGE...",
		Short: "Send a message about a rental",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.messages.Send(cmd.Context(), id, strings.Join(args[1:], " ")); err != nil {
				return a.alert(err, "Failed to send message")
			}
			fmt.Fprintln(a.out, "Sent.")
			return nil
		},
	}
}
