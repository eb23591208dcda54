package ui

import (
	"context"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/deskpin/deskpin/internal/chat"
	"github.com/deskpin/deskpin/internal/model"
)

// ChatWindow is the pop-out assistant window: a transcript, an input row and
// a clear-history action. Only one instance is open at a time; Show focuses
// the existing window instead of opening a second one.
type ChatWindow struct {
	app          fyne.App
	responder    chat.Responder
	history      *chat.History
	localization *Localization

	window     fyne.Window
	transcript *fyne.Container
	scroller   *container.Scroll
	input      *widget.Entry
	sendBtn    *widget.Button
	clearBtn   *widget.Button
	spinner    *widget.ProgressBarInfinite

	conversation *model.Conversation
	sending      bool
}

// NewChatWindow creates the assistant window controller. The window itself is
// created lazily on the first Show.
func NewChatWindow(app fyne.App, responder chat.Responder, history *chat.History, localization *Localization) *ChatWindow {
	return &ChatWindow{
		app:          app,
		responder:    responder,
		history:      history,
		localization: localization,
		conversation: model.NewConversation(),
	}
}

// SetResponder swaps the responder after the API key or model changes
func (c *ChatWindow) SetResponder(responder chat.Responder) {
	c.responder = responder
}

// Show opens the chat window, creating it on first use and restoring the
// persisted transcript tail
func (c *ChatWindow) Show() {
	if c.window != nil {
		c.window.Show()
		c.window.RequestFocus()
		return
	}

	c.window = c.app.NewWindow(c.localization.GetText(KeyChatTitle))
	c.window.Resize(fyne.NewSize(ChatWindowWidth, ChatWindowHeight))
	c.window.SetOnClosed(func() {
		c.window = nil
	})

	c.createUI()
	c.window.SetContent(c.buildLayout())
	c.loadHistory()
	c.window.Show()

	if c.responder == nil {
		c.appendLine(c.localization.GetText(KeyChatMissingKey), false)
	}
}

func (c *ChatWindow) createUI() {
	c.transcript = container.NewVBox()
	c.scroller = container.NewVScroll(c.transcript)

	c.input = widget.NewEntry()
	c.input.SetPlaceHolder(c.localization.GetText(KeyChatPlaceholder))
	c.input.OnSubmitted = func(string) { c.onSend() }

	c.sendBtn = widget.NewButton(IconSend, c.onSend)
	c.sendBtn.Importance = widget.HighImportance

	c.clearBtn = widget.NewButton(c.localization.GetText(KeyChatClear), c.onClear)
	c.clearBtn.Importance = widget.LowImportance

	c.spinner = widget.NewProgressBarInfinite()
	c.spinner.Hide()
}

func (c *ChatWindow) buildLayout() fyne.CanvasObject {
	inputRow := container.NewBorder(nil, nil, nil, c.sendBtn, c.input)
	return container.NewBorder(
		nil,
		container.NewVBox(c.spinner, inputRow, c.clearBtn),
		nil, nil,
		c.scroller,
	)
}

// loadHistory restores the persisted window of recent messages into the
// transcript view
func (c *ChatWindow) loadHistory() {
	if c.history == nil {
		return
	}
	messages, err := c.history.Recent(chat.HistoryWindow)
	if err != nil {
		log.Printf("Failed to load chat history: %v", err)
		return
	}
	for _, msg := range messages {
		c.conversation.Append(msg)
		c.appendLine(msg.Content, msg.Role == model.ChatRoleUser)
	}
}

// appendLine adds one transcript bubble and scrolls to the bottom
func (c *ChatWindow) appendLine(content string, fromUser bool) {
	label := widget.NewLabel(content)
	label.Wrapping = fyne.TextWrapWord
	if fromUser {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Alignment = fyne.TextAlignTrailing
	}
	c.transcript.Add(label)
	c.transcript.Refresh()
	c.scroller.ScrollToBottom()
}

// onSend submits the input to the assistant and appends both sides of the
// exchange to the transcript and the persisted history
func (c *ChatWindow) onSend() {
	if c.sending {
		return
	}
	if c.responder == nil {
		c.appendLine(c.localization.GetText(KeyChatMissingKey), false)
		return
	}

	message := strings.TrimSpace(c.input.Text)
	if message == "" {
		return
	}
	c.input.SetText("")

	history := append([]model.ChatMessage(nil), c.conversation.Messages...)
	c.recordMessage(model.ChatRoleUser, message)
	c.appendLine(message, true)

	c.sending = true
	c.sendBtn.Disable()
	c.spinner.Show()

	go func() {
		reply, err := c.responder.Send(context.Background(), history, message)

		fyne.Do(func() {
			c.sending = false
			c.sendBtn.Enable()
			c.spinner.Hide()

			if err != nil {
				log.Printf("Chat request failed: %v", err)
				c.appendLine(c.localization.GetText(KeyChatFailed)+": "+err.Error(), false)
				return
			}

			c.recordMessage(model.ChatRoleAssistant, reply)
			c.appendLine(reply, false)
		})
	}()
}

// recordMessage appends to the in-memory conversation and the badger history
func (c *ChatWindow) recordMessage(role model.ChatRole, content string) {
	if c.history != nil {
		msg, err := c.history.Append(role, content)
		if err == nil {
			c.conversation.Append(msg)
			return
		}
		log.Printf("Failed to persist chat message: %v", err)
	}
	c.conversation.Append(model.ChatMessage{Role: role, Content: content})
}

// onClear wipes both the persisted history and the visible transcript
func (c *ChatWindow) onClear() {
	if c.history != nil {
		if err := c.history.Clear(); err != nil {
			log.Printf("Failed to clear chat history: %v", err)
			return
		}
	}
	c.conversation = model.NewConversation()
	c.transcript.RemoveAll()
	c.transcript.Refresh()
}
