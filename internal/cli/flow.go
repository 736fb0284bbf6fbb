package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibelux/toolkit/pkg/brand"
	"github.com/vibelux/toolkit/pkg/errors"
	"github.com/vibelux/toolkit/pkg/flow"
)

var flowFormats = map[string]bool{"png": true, "jpg": true}

// flowCommand creates the flow-diagram command.
func (c *CLI) flowCommand() *cobra.Command {
	var (
		output     string
		themeName  string
		formatsStr string
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:       "flow <energy|revenue>",
		Short:     "Render the energy or revenue-sharing flow diagram",
		ValidArgs: []string{"energy", "revenue"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			formats := parseFormats(formatsStr, "png")
			if err := validateFormats(formats, flowFormats); err != nil {
				return err
			}
			theme, ok := brand.ByName(themeName)
			if !ok {
				return errors.New(errors.ErrCodeInvalidTheme, "unknown theme: %s (dark or light)", themeName)
			}

			var d *flow.Diagram
			switch args[0] {
			case "energy":
				d = flow.Energy()
			case "revenue":
				d = flow.Revenue()
			}

			logger.Debugf("Rendering %s flow diagram", args[0])
			p := newProgress(logger)

			img, err := flow.Render(d, flow.Options{Width: width, Height: height, Theme: theme})
			if err != nil {
				return err
			}

			base := basePath(output, args[0]+"_flow", flowFormats)
			for _, f := range formats {
				data, err := encodeImage(img, f)
				if err != nil {
					return err
				}
				if err := writeArtifact(fmt.Sprintf("%s.%s", base, f), data); err != nil {
					return err
				}
			}

			p.done(fmt.Sprintf("Rendered %s flow diagram", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path or base path (default <name>_flow.<format>)")
	cmd.Flags().StringVar(&themeName, "theme", "dark", "color theme: dark or light")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), jpg (comma-separated)")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels (default 1400)")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels (default 1000)")

	return cmd
}
