package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/deskpin/deskpin/internal/model"
)

// ItemRow is a compact, draggable row for one list item. Drag events are
// forwarded to the owning panel, which runs the reorder handler; the row only
// renders its drag and insertion-marker state.
type ItemRow struct {
	widget.BaseWidget

	item  model.Item
	index int
	kind  model.ItemKind

	localization *Localization

	// UI components
	label      *widget.Label
	check      *widget.Check
	primaryBtn *widget.Button
	deleteBtn  *widget.Button

	background   *canvas.Rectangle
	topMarker    *canvas.Rectangle
	bottomMarker *canvas.Rectangle

	// Action callbacks
	onPrimary func(item model.Item)
	onToggle  func(item model.Item, completed bool)
	onDelete  func(item model.Item)

	// Drag plumbing, provided by the panel
	onDragStart func(row *ItemRow)
	onDragMove  func(row *ItemRow, pointerY float32)
	onDragEnd   func()

	dragActive bool
}

// Compile-time check: rows must receive drag events
var _ fyne.Draggable = (*ItemRow)(nil)

// NewItemRow creates a row for the given item
func NewItemRow(kind model.ItemKind, item model.Item, index int, localization *Localization) *ItemRow {
	row := &ItemRow{
		item:         item,
		index:        index,
		kind:         kind,
		localization: localization,
	}
	row.ExtendBaseWidget(row)
	row.createUI()
	row.updateFromItem()
	return row
}

// Item returns the row's item
func (row *ItemRow) Item() model.Item {
	return row.item
}

// Index returns the row's position in the rendered list
func (row *ItemRow) Index() int {
	return row.index
}

// SetActionCallbacks sets the row action callbacks. onToggle is only used for
// task rows; onPrimary is the copy/open action depending on kind.
func (row *ItemRow) SetActionCallbacks(
	onPrimary func(item model.Item),
	onToggle func(item model.Item, completed bool),
	onDelete func(item model.Item),
) {
	row.onPrimary = onPrimary
	row.onToggle = onToggle
	row.onDelete = onDelete
}

// SetDragCallbacks wires the row into the panel's reorder handling
func (row *ItemRow) SetDragCallbacks(
	onDragStart func(row *ItemRow),
	onDragMove func(row *ItemRow, pointerY float32),
	onDragEnd func(),
) {
	row.onDragStart = onDragStart
	row.onDragMove = onDragMove
	row.onDragEnd = onDragEnd
}

// Dragged forwards pointer positions to the panel in list coordinates
func (row *ItemRow) Dragged(event *fyne.DragEvent) {
	if !row.dragActive {
		row.dragActive = true
		if row.onDragStart != nil {
			row.onDragStart(row)
		}
	}
	if row.onDragMove != nil {
		pointerY := row.Position().Y + event.Position.Y
		row.onDragMove(row, pointerY)
	}
}

// DragEnd terminates the drag; the panel resolves the drop and clears markers
func (row *ItemRow) DragEnd() {
	row.dragActive = false
	if row.onDragEnd != nil {
		row.onDragEnd()
	}
}

// SetDragging renders or clears the row's dragged style
func (row *ItemRow) SetDragging(dragging bool) {
	if dragging {
		row.background.FillColor = dragFillColor()
	} else {
		row.background.FillColor = color.Transparent
	}
	row.background.Refresh()
}

// SetMarker shows the insertion marker on one side of the row
func (row *ItemRow) SetMarker(position DropPosition) {
	row.ClearMarker()
	if position == DropBefore {
		row.topMarker.Show()
	} else {
		row.bottomMarker.Show()
	}
	row.Refresh()
}

// ClearMarker hides both insertion markers
func (row *ItemRow) ClearMarker() {
	row.topMarker.Hide()
	row.bottomMarker.Hide()
	row.Refresh()
}

// Highlight flashes the row background, used to point at an existing item
// after a duplicate insert attempt
func (row *ItemRow) Highlight() {
	row.background.FillColor = highlightFillColor()
	row.background.Refresh()

	go func() {
		time.Sleep(HighlightDuration)
		fyne.Do(func() {
			row.background.FillColor = color.Transparent
			row.background.Refresh()
		})
	}()
}

// createUI creates the UI components
func (row *ItemRow) createUI() {
	row.label = widget.NewLabel("")
	row.label.Truncation = fyne.TextTruncateEllipsis
	row.label.Alignment = fyne.TextAlignLeading

	if row.kind == model.KindTask {
		row.check = widget.NewCheck("", func(checked bool) {
			if row.onToggle != nil {
				row.onToggle(row.item, checked)
			}
		})
	}

	primaryIcon := IconCopy
	if row.kind == model.KindLink {
		primaryIcon = IconLink
	}
	row.primaryBtn = widget.NewButton(primaryIcon, func() {
		if row.onPrimary != nil {
			row.onPrimary(row.item)
		}
	})
	row.primaryBtn.Importance = widget.LowImportance

	row.deleteBtn = widget.NewButton(IconClose, func() {
		if row.onDelete != nil {
			row.onDelete(row.item)
		}
	})
	row.deleteBtn.Importance = widget.LowImportance

	row.background = canvas.NewRectangle(color.Transparent)
	row.topMarker = canvas.NewRectangle(markerColor())
	row.topMarker.SetMinSize(fyne.NewSize(0, MarkerThickness))
	row.topMarker.Hide()
	row.bottomMarker = canvas.NewRectangle(markerColor())
	row.bottomMarker.SetMinSize(fyne.NewSize(0, MarkerThickness))
	row.bottomMarker.Hide()
}

// updateFromItem updates UI components based on the item
func (row *ItemRow) updateFromItem() {
	row.label.SetText(row.item.DisplayLabel())

	if row.kind == model.KindTask && row.check != nil {
		// Avoid firing the toggle callback while syncing state
		onToggle := row.onToggle
		row.onToggle = nil
		row.check.SetChecked(row.item.Completed)
		row.onToggle = onToggle

		if row.item.Completed {
			row.label.TextStyle = fyne.TextStyle{Italic: true}
		} else {
			row.label.TextStyle = fyne.TextStyle{}
		}
		row.label.Refresh()
	}
}

// CreateRenderer creates the widget renderer
func (row *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(row.primaryBtn, row.deleteBtn)

	var content *fyne.Container
	if row.check != nil {
		content = container.NewBorder(nil, nil, row.check, actions, row.label)
	} else {
		content = container.NewBorder(nil, nil, nil, actions, row.label)
	}

	layout := container.NewVBox(
		row.topMarker,
		container.NewStack(row.background, content),
		row.bottomMarker,
	)
	return widget.NewSimpleRenderer(layout)
}

// MinSize keeps rows wide enough for the narrow widget window
func (row *ItemRow) MinSize() fyne.Size {
	min := row.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

func markerColor() color.Color {
	return theme.Color(theme.ColorNamePrimary)
}

func dragFillColor() color.Color {
	return color.NRGBA{R: 128, G: 128, B: 128, A: 48}
}

func highlightFillColor() color.Color {
	return color.NRGBA{R: 255, G: 193, B: 7, A: 64}
}
