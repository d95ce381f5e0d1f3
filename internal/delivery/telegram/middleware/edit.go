package middleware

import (
	"errors"

	"gopkg.in/telebot.v3"
)

// EditOrSend edits the message behind a callback, or sends a new one when
// there is nothing to edit. An edit that would not change the message is
// not an error.
func EditOrSend(c telebot.Context, text string, opts ...any) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	err := c.Edit(text, opts...)
	if err == nil || errors.Is(err, telebot.ErrSameMessageContent) {
		return nil
	}
	return c.Send(text, opts...)
}
