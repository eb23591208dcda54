package ui

import (
	"context"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/deskpin/deskpin/internal/grammar"
)

// GrammarPanel sends free text to the grammar checker and shows the corrected
// version with a copy button. The round-trip runs off the UI goroutine.
type GrammarPanel struct {
	app          fyne.App
	checker      grammar.Checker
	localization *Localization

	input       *widget.Entry
	checkBtn    *widget.Button
	spinner     *widget.ProgressBarInfinite
	result      *widget.Entry
	copyBtn     *widget.Button
	statusLabel *widget.Label
	content     fyne.CanvasObject

	checking bool
}

// NewGrammarPanel creates the grammar panel
func NewGrammarPanel(app fyne.App, checker grammar.Checker, localization *Localization) *GrammarPanel {
	p := &GrammarPanel{
		app:          app,
		checker:      checker,
		localization: localization,
	}
	p.createUI()
	return p
}

// Content returns the panel's root canvas object
func (p *GrammarPanel) Content() fyne.CanvasObject {
	return p.content
}

// SetChecker swaps the checker, used when settings change the endpoint or key
func (p *GrammarPanel) SetChecker(checker grammar.Checker) {
	p.checker = checker
}

func (p *GrammarPanel) createUI() {
	p.input = widget.NewMultiLineEntry()
	p.input.SetPlaceHolder(p.localization.GetText(KeyCheckText))
	p.input.Wrapping = fyne.TextWrapWord
	p.input.SetMinRowsVisible(4)

	p.checkBtn = widget.NewButton(p.localization.GetText(KeyCheckButton), p.onCheck)
	p.checkBtn.Importance = widget.HighImportance

	p.spinner = widget.NewProgressBarInfinite()
	p.spinner.Hide()

	p.result = widget.NewMultiLineEntry()
	p.result.Wrapping = fyne.TextWrapWord
	p.result.SetMinRowsVisible(4)
	p.result.Disable()

	p.copyBtn = widget.NewButton(p.localization.GetText(KeyCopy), p.onCopy)
	p.copyBtn.Disable()

	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Truncation = fyne.TextTruncateEllipsis
	p.statusLabel.Hide()

	p.content = container.NewVBox(
		p.input,
		container.NewBorder(nil, nil, nil, p.checkBtn, p.spinner),
		p.statusLabel,
		p.result,
		p.copyBtn,
	)
}

// onCheck validates the input and runs the check in the background
func (p *GrammarPanel) onCheck() {
	if p.checking {
		return
	}

	text := strings.TrimSpace(p.input.Text)
	if text == "" {
		p.showStatus(p.localization.GetText(KeyCheckEmpty))
		return
	}

	p.checking = true
	p.checkBtn.Disable()
	p.spinner.Show()
	p.statusLabel.Hide()

	go func() {
		corrected, err := p.checker.Check(context.Background(), text)

		fyne.Do(func() {
			p.checking = false
			p.checkBtn.Enable()
			p.spinner.Hide()

			if err != nil {
				log.Printf("Grammar check failed: %v", err)
				p.showStatus(p.localization.GetText(KeyCheckFailed) + ": " + err.Error())
				return
			}

			p.result.Enable()
			p.result.SetText(corrected)
			p.result.Disable()
			p.copyBtn.Enable()
		})
	}()
}

func (p *GrammarPanel) onCopy() {
	if p.result.Text == "" {
		return
	}
	p.app.Clipboard().SetContent(p.result.Text)
	p.showStatus(p.localization.GetText(KeyCopied))
}

func (p *GrammarPanel) showStatus(message string) {
	p.statusLabel.SetText(message)
	p.statusLabel.Show()
}

// RefreshTexts re-applies localized labels after a language change
func (p *GrammarPanel) RefreshTexts() {
	p.input.SetPlaceHolder(p.localization.GetText(KeyCheckText))
	p.checkBtn.SetText(p.localization.GetText(KeyCheckButton))
	p.copyBtn.SetText(p.localization.GetText(KeyCopy))
}
