package dialogs

import (
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/rs/zerolog"

	"github.com/ispapp/styledit/internal/capture"
)

// ImageExporter saves a picture of a widget's visible area
type ImageExporter struct {
	parent fyne.Window
	format string
	logger zerolog.Logger

	grab      func() (image.Image, error)
	pickPath  func(fileName string, done func(fyne.URIWriteCloser, error))
	remove    func(fyne.URI) error
	showError func(error)
	notify    func(title, message string)
}

// NewImageExporter creates an exporter for the part of content that shows
// through viewport. content may be nil to capture the whole viewport.
func NewImageExporter(parent fyne.Window, viewport fyne.CanvasObject, content capture.Bounded) *ImageExporter {
	e := &ImageExporter{
		parent: parent,
		format: "png",
		logger: zerolog.Nop(),
	}
	e.grab = func() (image.Image, error) {
		return capture.Visible(parent.Canvas(), content, viewport)
	}
	e.pickPath = e.showSaveDialog
	e.remove = storage.Delete
	e.showError = func(err error) {
		dialog.ShowError(err, parent)
	}
	e.notify = func(title, message string) {
		dialog.ShowInformation(title, message, parent)
	}
	return e
}

// SetLogger configures the logger for export results
func (e *ImageExporter) SetLogger(l zerolog.Logger) {
	e.logger = l
}

// SetDefaultFormat sets the extension suggested in the save dialog
func (e *ImageExporter) SetDefaultFormat(ext string) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if _, err := capture.FormatFor("x." + ext); err == nil {
		e.format = ext
	}
}

// ExportVisibleAreaAsImage captures the target, then asks where to save it.
// Cancelling the save dialog discards the capture.
func (e *ImageExporter) ExportVisibleAreaAsImage() {
	img, err := e.grab()
	if err != nil {
		e.fail(err)
		return
	}

	e.pickPath("styledit."+e.format, func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			e.fail(err)
			return
		}
		if writer == nil {
			e.logger.Debug().Msg("export cancelled")
			return
		}

		name := writer.URI().Name()
		if err := capture.Save(writer, name, img); err != nil {
			// the save dialog already created the file
			if rmErr := e.remove(writer.URI()); rmErr != nil {
				e.logger.Warn().Err(rmErr).Str("file", writer.URI().String()).Msg("could not remove partial image")
			}
			e.fail(err)
			return
		}

		b := img.Bounds()
		e.logger.Info().Str("file", writer.URI().String()).Int("width", b.Dx()).Int("height", b.Dy()).Msg("image exported")
		e.notify("Export Successful", fmt.Sprintf("Saved %dx%d image to %s", b.Dx(), b.Dy(), name))
	})
}

func (e *ImageExporter) fail(err error) {
	e.logger.Error().Err(err).Msg("image export failed")
	e.showError(fmt.Errorf("failed to export image: %w", err))
}

func (e *ImageExporter) showSaveDialog(fileName string, done func(fyne.URIWriteCloser, error)) {
	fileDialog := dialog.NewFileSave(done, e.parent)
	fileDialog.SetFileName(fileName)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(capture.Extensions))
	fileDialog.Show()
}
