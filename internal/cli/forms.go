package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vibelux/toolkit/pkg/errors"
	"github.com/vibelux/toolkit/pkg/forms"
)

// formsCommand groups the Formidable export tools.
func (c *CLI) formsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forms",
		Short: "Extract and analyze Formidable form exports",
	}
	cmd.AddCommand(c.formsExtractCommand())
	cmd.AddCommand(c.formsAnalyzeCommand())
	return cmd
}

// formsExtractCommand parses one form out of an XML export into JSON.
func (c *CLI) formsExtractCommand() *cobra.Command {
	var (
		key    string
		output string
	)

	cmd := &cobra.Command{
		Use:   "extract <export.xml>",
		Short: "Extract a form's fields from a Formidable XML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "read export %s", args[0])
			}

			p := newProgress(logger)
			form, err := forms.ExtractForm(data, key)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Extracted %d fields", len(form.Fields)))

			printNewline()
			printKeyValue("Form", form.Name)
			printKeyValue("Key", form.Key)
			printKeyValue("Status", form.Status)
			printKeyValue("Fields", fmt.Sprintf("%d", len(form.Fields)))

			out, err := json.MarshalIndent(form, "", "  ")
			if err != nil {
				return err
			}
			if err := writeArtifact(output, append(out, '\n')); err != nil {
				return err
			}

			printNextStep("Analyze the questionnaire", fmt.Sprintf("%s forms analyze %s", appName, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "form_key of the form to extract (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "fields.json", "output JSON path")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

// formsAnalyzeCommand summarizes an extracted form.
func (c *CLI) formsAnalyzeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze <fields.json>",
		Short: "Produce summary statistics for an extracted form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", args[0])
			}

			var form forms.Form
			if err := json.Unmarshal(data, &form); err != nil {
				return errors.Wrap(errors.ErrCodeParseFailed, err, "decode %s", args[0])
			}

			analysis := forms.Analyze(&form)
			logger.Debugf("Analyzed %d fields", analysis.TotalFields)
			printAnalysis(analysis)

			if output != "" {
				out, err := json.MarshalIndent(analysis, "", "  ")
				if err != nil {
					return err
				}
				if err := writeArtifact(output, append(out, '\n')); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "summary.json", "output JSON path (empty to skip)")

	return cmd
}

// printAnalysis renders the questionnaire summary tables.
func printAnalysis(a *forms.Analysis) {
	printNewline()
	fmt.Println(StyleTitle.Render("Questionnaire Summary") + " " + StyleDim.Render(a.FormKey))
	printKeyValue("Form", a.FormName)
	printKeyValue("Fields", fmt.Sprintf("%d (%d required, %d optional)", a.TotalFields, a.Required, a.Optional))
	if a.LikertFields > 0 {
		printKeyValue("Likert", fmt.Sprintf("%d fields in %d groups", a.LikertFields, len(a.LikertGroups)))
	}
	if len(a.Conditional) > 0 {
		printKeyValue("Conditional", strings.Join(a.Conditional, ", "))
	}
	printNewline()

	typeTable := newTable("Field Type", "Count")
	for _, k := range sortedCountKeys(a.FieldTypes) {
		typeTable.Row(k, fmt.Sprintf("%d", a.FieldTypes[k]))
	}
	fmt.Println(typeTable.Render())

	if len(a.Categories) > 0 {
		catTable := newTable("Category", "Fields")
		cats := make([]string, 0, len(a.Categories))
		for k := range a.Categories {
			cats = append(cats, k)
		}
		sort.Strings(cats)
		for _, k := range cats {
			catTable.Row(k, strings.Join(a.Categories[k], ", "))
		}
		fmt.Println(catTable.Render())
	}
}

// sortedCountKeys orders keys by descending count, ties by name.
func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
