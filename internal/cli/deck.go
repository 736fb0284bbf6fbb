package cli

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vibelux/toolkit/pkg/brand"
	"github.com/vibelux/toolkit/pkg/canvas"
	"github.com/vibelux/toolkit/pkg/deck"
	"github.com/vibelux/toolkit/pkg/errors"
)

var deckFormats = map[string]bool{"png": true, "jpg": true}

// deckCommand creates the pitch-deck generator command.
func (c *CLI) deckCommand() *cobra.Command {
	var (
		outDir      string
		slideFilter string
		themeName   string
		format      string
		sheet       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Render the pitch deck slides as images",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			if !deckFormats[format] {
				return invalidFormatError(format, deckFormats)
			}
			theme, ok := brand.ByName(themeName)
			if !ok {
				return errors.New(errors.ErrCodeInvalidTheme, "unknown theme: %s (dark or light)", themeName)
			}

			slides, err := selectSlides(slideFilter, interactive)
			if err != nil {
				return err
			}
			if len(slides) == 0 {
				printInfo("No slides selected")
				return nil
			}

			p := newProgress(logger)
			var images []image.Image
			for _, s := range slides {
				if err := ctx.Err(); err != nil {
					return err
				}
				logger.Debugf("Rendering slide %s", s.Name)

				img, err := deck.Render(s, theme)
				if err != nil {
					return err
				}
				images = append(images, img)

				data, err := encodeImage(img, format)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, fmt.Sprintf("slide_%s.%s", s.Name, format))
				if err := writeArtifact(path, data); err != nil {
					return err
				}
			}

			if sheet {
				logger.Debug("Building contact sheet")
				montage := deck.ContactSheet(images, 2)
				data, err := encodeImage(montage, format)
				if err != nil {
					return err
				}
				if err := writeArtifact(filepath.Join(outDir, "deck_combined."+format), data); err != nil {
					return err
				}
			}

			p.done(fmt.Sprintf("Rendered %d slides", len(slides)))
			printSuccess("Deck written to %s", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "deck", "output directory")
	cmd.Flags().StringVar(&slideFilter, "slides", "", "slides to render (comma-separated names, default all)")
	cmd.Flags().StringVar(&themeName, "theme", "dark", "color theme: dark or light")
	cmd.Flags().StringVarP(&format, "format", "f", "png", "image format: png or jpg")
	cmd.Flags().BoolVar(&sheet, "sheet", false, "also write a combined contact sheet")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick slides interactively")

	return cmd
}

// selectSlides resolves the slide set from the filter flag or the
// interactive picker.
func selectSlides(filter string, interactive bool) ([]deck.Slide, error) {
	if interactive {
		return pickSlides()
	}
	if filter == "" {
		return deck.Slides(), nil
	}

	var slides []deck.Slide
	for _, name := range splitList(filter) {
		s, ok := deck.ByName(name)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidSlide, "unknown slide: %s", name)
		}
		slides = append(slides, s)
	}
	return slides, nil
}

// pickSlides runs the bubbletea slide picker.
func pickSlides() ([]deck.Slide, error) {
	model := NewSlideListModel(deck.Slides())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "slide picker")
	}
	m, ok := final.(SlideListModel)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "unexpected picker model type")
	}
	return m.Chosen(), nil
}

// encodeImage serializes an image in the requested deck format.
func encodeImage(img image.Image, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "png":
		return canvas.EncodePNG(img)
	case "jpg", "jpeg":
		return canvas.EncodeJPEG(img)
	default:
		return nil, invalidFormatError(format, deckFormats)
	}
}
