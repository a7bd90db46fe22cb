package view

import (
	"fmt"
	"io"
	"strconv"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/service"
)

func Conversations(w io.Writer, convs []service.Conversation) {
	if len(convs) == 0 {
		fmt.Fprintln(w, "No conversations yet. Start renting or lending items to chat with other students.")
		return
	}
	tw := newTable(w)
	row(tw, "RENTAL", "WITH", "ITEM", "ROLE", "STATUS")
	for _, c := range convs {
		row(tw,
			strconv.FormatInt(c.Rental.ID, 10),
			name(c.Counterparty),
			truncate(c.Rental.ItemTitle(), 32),
			string(c.Role),
			string(c.Rental.Status),
		)
	}
	tw.Flush()
}

// Messages prints a thread oldest first; myID marks which lines are mine
func Messages(w io.Writer, msgs []domain.Message, myID int64) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages yet. Say hello!")
		return
	}
	for _, m := range msgs {
		who := name(m.Sender)
		if m.SenderID == myID {
			who = "You"
		}
		fmt.Fprintf(w, "[%s %s] %s: %s\n", date(m.CreatedAt), clock(m.CreatedAt), who, m.Content)
	}
}
