// Package notify sends the startup desktop notification for today's items.
package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"

	"github.com/idilsaglam/todolist/internal/model"
)

const title = "Todo List"

// Sender is the notification backend; beeep.Notify in production.
type Sender func(title, message string, icon any) error

// Message summarizes today's items. ok is false when nothing is due.
func Message(items []*model.Item, today model.Date) (msg string, ok bool) {
	due := model.View(items, model.FilterToday, today)
	switch len(due) {
	case 0:
		return "", false
	case 1:
		return "Due today: " + due[0].Description, true
	}
	names := make([]string, 0, len(due))
	for _, it := range due {
		names = append(names, it.Description)
	}
	return fmt.Sprintf("%d items due today: %s", len(due), strings.Join(names, ", ")), true
}

// DueToday notifies about today's items through send, or beeep when send is nil.
// Nothing is sent when no item is due.
func DueToday(items []*model.Item, today model.Date, send Sender) error {
	msg, ok := Message(items, today)
	if !ok {
		return nil
	}
	if send == nil {
		send = beeep.Notify
	}
	if err := send(title, msg, ""); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}
