package ui

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/deskpin/deskpin/internal/liststore"
	"github.com/deskpin/deskpin/internal/model"
)

// ListPanel renders one item list (clips, links or tasks): an add row on top,
// the reorderable rows below, and a clear-all action at the bottom. Every
// render rebuilds the row widgets and rewires their drag callbacks, since the
// previous widgets are discarded wholesale.
type ListPanel struct {
	app          fyne.App
	window       fyne.Window
	kind         model.ItemKind
	store        *liststore.Store
	handler      *ReorderHandler
	localization *Localization

	// UI components
	entry       *widget.Entry
	nameEntry   *widget.Entry
	addBtn      *widget.Button
	clearBtn    *widget.Button
	noticeLabel *widget.Label
	rowsBox     *fyne.Container
	content     fyne.CanvasObject

	rows        []*ItemRow
	draggingRow *ItemRow

	// Pending duplicate highlight applied on the next render
	highlightID string

	// noticeGen invalidates stale auto-hide goroutines
	noticeMu  sync.Mutex
	noticeGen int
}

// NewListPanel creates a panel bound to one list store
func NewListPanel(app fyne.App, window fyne.Window, store *liststore.Store, localization *Localization) *ListPanel {
	p := &ListPanel{
		app:          app,
		window:       window,
		kind:         store.Kind(),
		store:        store,
		localization: localization,
	}

	p.handler = NewReorderHandler(func(from, to int) {
		p.store.Reorder(from, to)
	})
	p.handler.SetMarkCallbacks(p.markRow, p.clearMarkers)

	p.createUI()

	store.SetOnChange(func(items []model.Item) {
		fyne.Do(func() { p.render(items) })
	})
	store.SetOnError(func(err error) {
		p.showNotice(p.localization.GetText(KeyActionErr) + ": " + err.Error())
	})

	return p
}

// Content returns the panel's root canvas object
func (p *ListPanel) Content() fyne.CanvasObject {
	return p.content
}

// AddText inserts a text draft into the list, used by the clipboard watcher
// to feed captures into the clips panel
func (p *ListPanel) AddText(text string) {
	go p.submit(model.Draft{Text: text})
}

// createUI creates the panel layout
func (p *ListPanel) createUI() {
	p.entry = widget.NewEntry()
	p.addBtn = widget.NewButton(p.localization.GetText(KeyAdd), p.onAdd)
	p.addBtn.Importance = widget.HighImportance

	var inputArea fyne.CanvasObject
	switch p.kind {
	case model.KindLink:
		p.entry.SetPlaceHolder(p.localization.GetText(KeyLinkURL))
		p.nameEntry = widget.NewEntry()
		p.nameEntry.SetPlaceHolder(p.localization.GetText(KeyLinkName))
		inputArea = container.NewVBox(
			p.nameEntry,
			container.NewBorder(nil, nil, nil, p.addBtn, p.entry),
		)
	case model.KindTask:
		p.entry.SetPlaceHolder(p.localization.GetText(KeyTaskPlaceholder))
		inputArea = container.NewBorder(nil, nil, nil, p.addBtn, p.entry)
	default:
		p.entry.SetPlaceHolder(p.localization.GetText(KeyClipPlaceholder))
		inputArea = container.NewBorder(nil, nil, nil, p.addBtn, p.entry)
	}
	p.entry.OnSubmitted = func(string) { p.onAdd() }

	p.noticeLabel = widget.NewLabel("")
	p.noticeLabel.Truncation = fyne.TextTruncateEllipsis
	p.noticeLabel.Hide()

	p.rowsBox = container.NewVBox()

	p.clearBtn = widget.NewButton(p.localization.GetText(KeyClearAll), p.onClearAll)
	p.clearBtn.Importance = widget.LowImportance

	p.content = container.NewBorder(
		container.NewVBox(inputArea, p.noticeLabel), // top
		p.clearBtn,                    // bottom
		nil, nil,                      // left, right
		container.NewVScroll(p.rowsBox), // center
	)
}

// render rebuilds every row widget from the snapshot. The old rows are
// dropped, so drag callbacks are re-attached to the new ones here.
func (p *ListPanel) render(items []model.Item) {
	p.rows = make([]*ItemRow, 0, len(items))
	p.rowsBox.RemoveAll()

	for i, item := range items {
		row := NewItemRow(p.kind, item, i, p.localization)
		row.SetActionCallbacks(p.onPrimary, p.onToggle, p.onDelete)
		row.SetDragCallbacks(p.onDragStart, p.onDragMove, p.onDragEnd)
		p.rows = append(p.rows, row)
		p.rowsBox.Add(row)
	}
	p.rowsBox.Refresh()

	if p.highlightID != "" {
		id := p.highlightID
		p.highlightID = ""
		for _, row := range p.rows {
			if row.Item().ID == id {
				row.Highlight()
				break
			}
		}
	}
}

// Drag plumbing

func (p *ListPanel) onDragStart(row *ItemRow) {
	p.draggingRow = row
	p.handler.Begin(row.Index())
	row.SetDragging(true)
}

// onDragMove resolves the candidate row under the pointer and hands its
// geometry to the reorder handler. The pointer Y is in rowsBox coordinates.
func (p *ListPanel) onDragMove(row *ItemRow, pointerY float32) {
	candidate := p.rowAt(pointerY)
	if candidate == nil {
		return
	}
	p.handler.Hover(pointerY, candidate.Position().Y, candidate.Size().Height, candidate.Index())
}

func (p *ListPanel) onDragEnd() {
	p.handler.DropAtMarker()
	if p.draggingRow != nil {
		p.draggingRow.SetDragging(false)
		p.draggingRow = nil
	}
	p.handler.End()
}

// rowAt returns the row containing the Y coordinate, clamped to the first or
// last row when the pointer leaves the list
func (p *ListPanel) rowAt(y float32) *ItemRow {
	if len(p.rows) == 0 {
		return nil
	}
	for _, row := range p.rows {
		top := row.Position().Y
		if y >= top && y < top+row.Size().Height {
			return row
		}
	}
	if y < p.rows[0].Position().Y {
		return p.rows[0]
	}
	return p.rows[len(p.rows)-1]
}

func (p *ListPanel) markRow(index int, position DropPosition) {
	if index >= 0 && index < len(p.rows) {
		p.rows[index].SetMarker(position)
	}
}

func (p *ListPanel) clearMarkers() {
	for _, row := range p.rows {
		row.ClearMarker()
	}
}

// Actions

// onAdd validates the input and submits a draft to the store
func (p *ListPanel) onAdd() {
	text := strings.TrimSpace(p.entry.Text)
	if text == "" {
		return
	}

	var draft model.Draft
	if p.kind == model.KindLink {
		if err := model.ValidateLinkURL(text); err != nil {
			p.showNotice(p.localization.GetText(KeyInvalidURL) + ": " + err.Error())
			return
		}
		draft = model.Draft{Name: strings.TrimSpace(p.nameEntry.Text), URL: text}
		p.nameEntry.SetText("")
	} else {
		draft = model.Draft{Text: text}
	}
	p.entry.SetText("")

	go p.submit(draft)
}

// submit runs the add round-trip off the UI goroutine. Duplicates show a
// notice and flash the existing row instead of inserting.
func (p *ListPanel) submit(draft model.Draft) {
	outcome, err := p.store.Add(context.Background(), draft)
	if err != nil {
		// The store's error callback already showed the notice
		log.Printf("Add to %s list failed: %v", p.kind, err)
		return
	}

	if outcome.Duplicate {
		fyne.Do(func() {
			p.highlightID = ""
			for _, row := range p.rows {
				if row.Item().ID == outcome.Item.ID {
					row.Highlight()
					return
				}
			}
		})
		p.showNotice(p.localization.GetText(KeyDuplicate))
	}
}

// onPrimary copies clip/task text back to the system clipboard, or opens the
// link in the browser
func (p *ListPanel) onPrimary(item model.Item) {
	if p.kind == model.KindLink {
		target, err := model.LinkTarget(item.URL)
		if err != nil {
			p.showNotice(p.localization.GetText(KeyOpenLinkError) + ": " + err.Error())
			return
		}
		if err := p.app.OpenURL(target); err != nil {
			log.Printf("Failed to open link %s: %v", item.URL, err)
			p.showNotice(p.localization.GetText(KeyOpenLinkError) + ": " + err.Error())
		}
		return
	}

	p.app.Clipboard().SetContent(item.Text)
	p.showNotice(p.localization.GetText(KeyCopied))
}

// onToggle flips a task's completed flag through the mirror
func (p *ListPanel) onToggle(item model.Item, completed bool) {
	go func() {
		patch := model.ItemPatch{Completed: &completed}
		if err := p.store.Update(context.Background(), item.ID, patch); err != nil {
			log.Printf("Toggle task %s failed: %v", item.ID, err)
		}
	}()
}

func (p *ListPanel) onDelete(item model.Item) {
	go func() {
		if err := p.store.Delete(context.Background(), item.ID); err != nil {
			log.Printf("Delete from %s list failed: %v", p.kind, err)
		}
	}()
}

// onClearAll asks for confirmation before emptying the list
func (p *ListPanel) onClearAll() {
	dialog.ShowConfirm(
		p.localization.GetText(KeyClearAll),
		p.localization.GetText(KeyClearAsk),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			go func() {
				if err := p.store.ClearAll(context.Background()); err != nil {
					log.Printf("Clear %s list failed: %v", p.kind, err)
				}
			}()
		},
		p.window,
	)
}

// RefreshTexts re-applies localized labels after a language change
func (p *ListPanel) RefreshTexts() {
	p.addBtn.SetText(p.localization.GetText(KeyAdd))
	p.clearBtn.SetText(p.localization.GetText(KeyClearAll))
	switch p.kind {
	case model.KindLink:
		p.entry.SetPlaceHolder(p.localization.GetText(KeyLinkURL))
		p.nameEntry.SetPlaceHolder(p.localization.GetText(KeyLinkName))
	case model.KindTask:
		p.entry.SetPlaceHolder(p.localization.GetText(KeyTaskPlaceholder))
	default:
		p.entry.SetPlaceHolder(p.localization.GetText(KeyClipPlaceholder))
	}
	p.render(p.store.Items())
}

// showNotice displays a transient message above the list. Safe to call from
// any goroutine.
func (p *ListPanel) showNotice(message string) {
	p.noticeMu.Lock()
	p.noticeGen++
	gen := p.noticeGen
	p.noticeMu.Unlock()

	fyne.Do(func() {
		p.noticeLabel.SetText(message)
		p.noticeLabel.Show()
	})

	go func() {
		time.Sleep(NoticeAutoHide)
		p.noticeMu.Lock()
		stale := gen != p.noticeGen
		p.noticeMu.Unlock()
		if stale {
			return
		}
		fyne.Do(func() {
			p.noticeLabel.Hide()
		})
	}()
}
