package service

import "context"

// InlineButton is one tappable button inside an inline keyboard.
type InlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
}

// InlineKeyboard is a grid of inline buttons attached to a message.
type InlineKeyboard [][]InlineButton

// Messenger sends and edits chat messages on the bot channel.
type Messenger interface {
	// SendMessage sends a text message to the chat, optionally with an
	// inline keyboard. Returns the sent message ID.
	SendMessage(ctx context.Context, chatID int64, text string, keyboard InlineKeyboard) (int64, error)

	// SendPhoto sends photo bytes under the given file name with an
	// optional caption.
	SendPhoto(ctx context.Context, chatID int64, fileName string, photo []byte, caption string) error

	// EditMessageText replaces the text (and keyboard) of a sent message.
	EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, keyboard InlineKeyboard) error

	// AnswerCallbackQuery acknowledges a pressed inline button.
	AnswerCallbackQuery(ctx context.Context, callbackQueryID string, text string) error

	// DownloadFile fetches a file uploaded to the chat by its file ID and
	// returns the raw bytes.
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}
