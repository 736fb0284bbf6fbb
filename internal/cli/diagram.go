package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibelux/toolkit/pkg/diagram"
)

var diagramFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// diagramCommand creates the system architecture diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Render the system architecture diagram via Graphviz",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			formats := parseFormats(formatsStr, "svg")
			if err := validateFormats(formats, diagramFormats); err != nil {
				return err
			}

			model := diagram.System()
			dot := diagram.ToDOT(model)
			logger.Debugf("Model: %d components, %d links", len(model.Components), len(model.Links))

			base := basePath(output, "system_architecture", diagramFormats)

			for _, f := range formats {
				var (
					data []byte
					err  error
				)
				switch f {
				case "dot":
					data = []byte(dot)
				case "svg":
					data, err = renderWithSpinner(ctx, "Laying out diagram", func() ([]byte, error) {
						return diagram.RenderSVG(ctx, dot)
					})
				case "png":
					data, err = renderWithSpinner(ctx, "Rendering PNG", func() ([]byte, error) {
						return diagram.RenderPNG(ctx, dot, scale)
					})
				}
				if err != nil {
					return err
				}
				if err := writeArtifact(fmt.Sprintf("%s.%s", base, f), data); err != nil {
					return err
				}
			}

			printSuccess("Architecture diagram generated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path or base path (default system_architecture.<format>)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "PNG scale factor")

	return cmd
}
