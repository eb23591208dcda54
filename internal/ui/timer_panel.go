package ui

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/deskpin/deskpin/internal/timer"
)

// TimerPanel hosts the countdown: a minutes field, the large remaining-time
// readout and the start/pause/resume/reset controls
type TimerPanel struct {
	app          fyne.App
	countdown    *timer.Countdown
	localization *Localization

	minutesEntry *widget.Entry
	display      *widget.Label
	statusLabel  *widget.Label
	startBtn     *widget.Button
	pauseBtn     *widget.Button
	resetBtn     *widget.Button
	content      fyne.CanvasObject
}

// NewTimerPanel creates the countdown panel
func NewTimerPanel(app fyne.App, localization *Localization) *TimerPanel {
	p := &TimerPanel{
		app:          app,
		countdown:    timer.NewCountdown(),
		localization: localization,
	}
	p.createUI()

	p.countdown.SetCallbacks(
		func(remaining time.Duration) {
			fyne.Do(func() {
				p.display.SetText(timer.FormatRemaining(remaining))
			})
		},
		p.onDone,
	)

	return p
}

// Content returns the panel's root canvas object
func (p *TimerPanel) Content() fyne.CanvasObject {
	return p.content
}

func (p *TimerPanel) createUI() {
	p.minutesEntry = widget.NewEntry()
	p.minutesEntry.SetPlaceHolder(p.localization.GetText(KeyTimerMinutes))
	p.minutesEntry.SetText("5")

	p.display = widget.NewLabelWithStyle("00:00", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Alignment = fyne.TextAlignCenter
	p.statusLabel.Hide()

	p.startBtn = widget.NewButton(p.localization.GetText(KeyTimerStart), p.onStart)
	p.startBtn.Importance = widget.HighImportance
	p.pauseBtn = widget.NewButton(p.localization.GetText(KeyTimerPause), p.onPauseResume)
	p.pauseBtn.Disable()
	p.resetBtn = widget.NewButton(p.localization.GetText(KeyTimerReset), p.onReset)
	p.resetBtn.Importance = widget.LowImportance

	p.content = container.NewVBox(
		container.NewBorder(nil, nil, nil, p.startBtn, p.minutesEntry),
		p.display,
		container.NewGridWithColumns(2, p.pauseBtn, p.resetBtn),
		p.statusLabel,
	)
}

// onStart parses the minutes field and arms the countdown. Rejects anything
// that is not a positive whole number of minutes.
func (p *TimerPanel) onStart() {
	text := strings.TrimSpace(p.minutesEntry.Text)
	minutes, err := strconv.Atoi(text)
	if err != nil || minutes <= 0 {
		p.showStatus(p.localization.GetText(KeyTimerInvalid))
		return
	}

	duration := time.Duration(minutes) * time.Minute
	if err := p.countdown.SetDuration(duration); err != nil {
		p.showStatus(p.localization.GetText(KeyTimerInvalid))
		return
	}
	if err := p.countdown.Start(); err != nil {
		return
	}

	p.statusLabel.Hide()
	p.display.SetText(timer.FormatRemaining(duration))
	p.startBtn.Disable()
	p.minutesEntry.Disable()
	p.pauseBtn.SetText(p.localization.GetText(KeyTimerPause))
	p.pauseBtn.Enable()
}

// onPauseResume toggles between the running and paused states
func (p *TimerPanel) onPauseResume() {
	switch p.countdown.State() {
	case timer.StateRunning:
		if err := p.countdown.Pause(); err == nil {
			p.pauseBtn.SetText(p.localization.GetText(KeyTimerResume))
		}
	case timer.StatePaused:
		if err := p.countdown.Resume(); err == nil {
			p.pauseBtn.SetText(p.localization.GetText(KeyTimerPause))
		}
	}
}

func (p *TimerPanel) onReset() {
	p.countdown.Reset()
	p.display.SetText("00:00")
	p.statusLabel.Hide()
	p.startBtn.Enable()
	p.minutesEntry.Enable()
	p.pauseBtn.SetText(p.localization.GetText(KeyTimerPause))
	p.pauseBtn.Disable()
}

// onDone fires once when the countdown reaches zero: system notification plus
// an in-panel message
func (p *TimerPanel) onDone() {
	message := p.localization.GetText(KeyTimerDone)
	p.app.SendNotification(fyne.NewNotification(p.localization.GetText(KeyAppTitle), message))

	fyne.Do(func() {
		p.display.SetText("00:00")
		p.showStatus(message)
		p.startBtn.Enable()
		p.minutesEntry.Enable()
		p.pauseBtn.SetText(p.localization.GetText(KeyTimerPause))
		p.pauseBtn.Disable()
	})
}

func (p *TimerPanel) showStatus(message string) {
	p.statusLabel.SetText(message)
	p.statusLabel.Show()
}

// RefreshTexts re-applies localized labels after a language change
func (p *TimerPanel) RefreshTexts() {
	p.minutesEntry.SetPlaceHolder(p.localization.GetText(KeyTimerMinutes))
	p.startBtn.SetText(p.localization.GetText(KeyTimerStart))
	p.resetBtn.SetText(p.localization.GetText(KeyTimerReset))
	if p.countdown.State() == timer.StatePaused {
		p.pauseBtn.SetText(p.localization.GetText(KeyTimerResume))
	} else {
		p.pauseBtn.SetText(p.localization.GetText(KeyTimerPause))
	}
}
