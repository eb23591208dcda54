package ui

import (
	"context"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/deskpin/deskpin/internal/config"
	"github.com/deskpin/deskpin/internal/imagegen"
	"github.com/deskpin/deskpin/internal/platform"
)

// ImagesPanel turns a text prompt into a generated image, previews it, and
// saves it into the configured images directory
type ImagesPanel struct {
	app          fyne.App
	generator    imagegen.Generator
	settings     *config.Settings
	localization *Localization

	promptEntry *widget.Entry
	generateBtn *widget.Button
	spinner     *widget.ProgressBarInfinite
	preview     *canvas.Image
	saveBtn     *widget.Button
	revealBtn   *widget.Button
	statusLabel *widget.Label
	content     fyne.CanvasObject

	generating bool
	current    imagegen.GeneratedImage
	savedPath  string
}

// NewImagesPanel creates the image generation panel. The generator may be nil
// when no API key is configured yet.
func NewImagesPanel(app fyne.App, generator imagegen.Generator, settings *config.Settings, localization *Localization) *ImagesPanel {
	p := &ImagesPanel{
		app:          app,
		generator:    generator,
		settings:     settings,
		localization: localization,
	}
	p.createUI()
	return p
}

// Content returns the panel's root canvas object
func (p *ImagesPanel) Content() fyne.CanvasObject {
	return p.content
}

// SetGenerator swaps the generator after the API key or model changes
func (p *ImagesPanel) SetGenerator(generator imagegen.Generator) {
	p.generator = generator
}

func (p *ImagesPanel) createUI() {
	p.promptEntry = widget.NewMultiLineEntry()
	p.promptEntry.SetPlaceHolder(p.localization.GetText(KeyImagePrompt))
	p.promptEntry.Wrapping = fyne.TextWrapWord
	p.promptEntry.SetMinRowsVisible(3)

	p.generateBtn = widget.NewButton(p.localization.GetText(KeyImageGenerate), p.onGenerate)
	p.generateBtn.Importance = widget.HighImportance

	p.spinner = widget.NewProgressBarInfinite()
	p.spinner.Hide()

	p.preview = &canvas.Image{FillMode: canvas.ImageFillContain}
	p.preview.SetMinSize(fyne.NewSize(ImagePreviewMin, ImagePreviewMin))
	p.preview.Hide()

	p.saveBtn = widget.NewButton(p.localization.GetText(KeyImageSave), p.onSave)
	p.saveBtn.Disable()
	p.revealBtn = widget.NewButton(p.localization.GetText(KeyImageReveal), p.onReveal)
	p.revealBtn.Disable()

	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Truncation = fyne.TextTruncateEllipsis
	p.statusLabel.Hide()

	p.content = container.NewBorder(
		container.NewVBox(
			p.promptEntry,
			container.NewBorder(nil, nil, nil, p.generateBtn, p.spinner),
			p.statusLabel,
		),
		container.NewGridWithColumns(2, p.saveBtn, p.revealBtn),
		nil, nil,
		p.preview,
	)
}

// onGenerate runs the generation round-trip in the background
func (p *ImagesPanel) onGenerate() {
	if p.generating {
		return
	}
	if p.generator == nil {
		p.showStatus(p.localization.GetText(KeyChatMissingKey))
		return
	}

	prompt := strings.TrimSpace(p.promptEntry.Text)
	if prompt == "" {
		return
	}

	p.generating = true
	p.generateBtn.Disable()
	p.spinner.Show()
	p.statusLabel.Hide()

	go func() {
		image, err := p.generator.Generate(context.Background(), prompt)

		fyne.Do(func() {
			p.generating = false
			p.generateBtn.Enable()
			p.spinner.Hide()

			if err != nil {
				log.Printf("Image generation failed: %v", err)
				p.showStatus(p.localization.GetText(KeyImageFailed) + ": " + err.Error())
				return
			}

			p.current = image
			p.savedPath = ""
			p.preview.Resource = fyne.NewStaticResource("generated"+image.FileExtension(), image.Data)
			p.preview.Show()
			p.preview.Refresh()
			p.saveBtn.Enable()
			p.revealBtn.Disable()
		})
	}()
}

// onSave writes the current image into the configured directory
func (p *ImagesPanel) onSave() {
	if len(p.current.Data) == 0 {
		return
	}

	dir := p.settings.GetImagesDirectory()
	path, err := platform.SaveImageFile(dir, p.current.Data, p.current.FileExtension())
	if err != nil {
		log.Printf("Failed to save image to %s: %v", dir, err)
		p.showStatus(p.localization.GetText(KeyImageFailed) + ": " + err.Error())
		return
	}

	p.savedPath = path
	p.revealBtn.Enable()
	p.showStatus(p.localization.GetText(KeyImageSaved) + ": " + path)
}

// onReveal opens the saved image in the system file manager
func (p *ImagesPanel) onReveal() {
	if p.savedPath == "" {
		return
	}
	if err := platform.OpenFileInManager(p.savedPath); err != nil {
		log.Printf("Failed to reveal %s: %v", p.savedPath, err)
		p.showStatus(p.localization.GetText(KeyImageFailed) + ": " + err.Error())
	}
}

func (p *ImagesPanel) showStatus(message string) {
	p.statusLabel.SetText(message)
	p.statusLabel.Show()
}

// RefreshTexts re-applies localized labels after a language change
func (p *ImagesPanel) RefreshTexts() {
	p.promptEntry.SetPlaceHolder(p.localization.GetText(KeyImagePrompt))
	p.generateBtn.SetText(p.localization.GetText(KeyImageGenerate))
	p.saveBtn.SetText(p.localization.GetText(KeyImageSave))
	p.revealBtn.SetText(p.localization.GetText(KeyImageReveal))
}
