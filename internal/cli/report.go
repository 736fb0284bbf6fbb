package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibelux/toolkit/pkg/report"
)

var reportFormats = map[string]bool{"html": true, "pdf": true}

// reportCommand creates the architecture report command.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the system architecture report (HTML/PDF)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			formats := parseFormats(formatsStr, "html")
			if err := validateFormats(formats, reportFormats); err != nil {
				return err
			}

			doc := report.Architecture()
			logger.Debugf("Document %s: %d sections", doc.ID, len(doc.Sections))
			printKeyValue("Document", doc.ID.String())

			base := basePath(output, "vibelux_architecture", reportFormats)
			p := newProgress(logger)

			for _, f := range formats {
				var (
					data []byte
					err  error
				)
				switch f {
				case "html":
					data, err = report.RenderHTML(doc)
				case "pdf":
					data, err = renderWithSpinner(ctx, "Converting report pages", func() ([]byte, error) {
						return report.RenderPDF(doc)
					})
				}
				if err != nil {
					return err
				}
				if err := writeArtifact(fmt.Sprintf("%s.%s", base, f), data); err != nil {
					return err
				}
			}

			p.done("Report generated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path or base path (default vibelux_architecture.<format>)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), pdf (comma-separated)")

	return cmd
}
