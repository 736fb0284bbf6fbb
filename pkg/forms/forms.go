// Package forms parses Formidable (WordPress form builder) XML exports.
//
// An export bundles every form of a site in one document. ExtractForm
// locates a single form by its form_key, carves out the balanced
// <form>...</form> slice, and decodes it into a Form.
package forms

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/vibelux/toolkit/pkg/errors"
)

// Option is one choice of a select, radio, or checkbox field.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Field is a single form field, ordered by its field_order.
type Field struct {
	ID           int      `json:"id"`
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Type         string   `json:"type"`
	DefaultValue string   `json:"default_value,omitempty"`
	Order        int      `json:"field_order"`
	Required     bool     `json:"required"`
	Options      []Option `json:"options,omitempty"`
	// RawOptions preserves the options payload when it is not valid JSON.
	RawOptions string         `json:"raw_options,omitempty"`
	Config     map[string]any `json:"config,omitempty"`
}

// Form is one extracted Formidable form.
type Form struct {
	ID          int     `json:"id"`
	Key         string  `json:"form_key"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	Status      string  `json:"status,omitempty"`
	Fields      []Field `json:"fields"`
}

// ExtractForm finds the form with the given key in a Formidable export and
// decodes it. The export nests no other <form> elements in practice, but
// the slice boundaries are still found with a balanced tag scan.
func ExtractForm(data []byte, formKey string) (*Form, error) {
	if err := errors.ValidateFormKey(formKey); err != nil {
		return nil, err
	}

	keyAt := findFormKey(data, formKey)
	if keyAt < 0 {
		return nil, errors.New(errors.ErrCodeFormNotFound, "form key %q not found in export", formKey)
	}

	open := lastFormOpen(data, keyAt)
	if open < 0 {
		return nil, errors.New(errors.ErrCodeParseFailed, "form key %q has no enclosing <form> element", formKey)
	}

	end := matchFormClose(data, open)
	if end < 0 {
		return nil, errors.New(errors.ErrCodeParseFailed, "unbalanced <form> tags around key %q", formKey)
	}

	return decodeForm(data[open:end], formKey)
}

// findFormKey returns the byte offset of the form_key element carrying the
// key, or -1. Both CDATA-wrapped and bare values occur in the wild.
func findFormKey(data []byte, key string) int {
	for _, needle := range []string{
		fmt.Sprintf("<form_key><![CDATA[%s]]></form_key>", key),
		fmt.Sprintf("<form_key>%s</form_key>", key),
	} {
		if i := strings.Index(string(data), needle); i >= 0 {
			return i
		}
	}
	return -1
}

// lastFormOpen walks backwards from pos to the nearest <form> opening tag.
func lastFormOpen(data []byte, pos int) int {
	s := string(data[:pos])
	for i := strings.LastIndex(s, "<form"); i >= 0; i = strings.LastIndex(s[:i], "<form") {
		if isFormTag(s, i) {
			return i
		}
	}
	return -1
}

// matchFormClose scans forward from an opening <form> tag, balancing
// nested <form>/</form> pairs, and returns the offset just past the close
// of the matching </form>. Returns -1 when the document ends unbalanced.
func matchFormClose(data []byte, open int) int {
	s := string(data)
	depth := 0
	i := open
	for i < len(s) {
		next := strings.Index(s[i:], "<")
		if next < 0 {
			return -1
		}
		i += next
		switch {
		case strings.HasPrefix(s[i:], "</form>"):
			depth--
			i += len("</form>")
			if depth == 0 {
				return i
			}
		case isFormTag(s, i):
			depth++
			i++
		default:
			i++
		}
	}
	return -1
}

// isFormTag reports whether s[i:] starts a real <form> opening tag rather
// than <form_key> or another element sharing the prefix.
func isFormTag(s string, i int) bool {
	if !strings.HasPrefix(s[i:], "<form") {
		return false
	}
	rest := s[i+len("<form"):]
	return rest != "" && (rest[0] == '>' || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n')
}

// xmlForm mirrors the Formidable export element layout.
type xmlForm struct {
	ID          int        `xml:"id"`
	Key         string     `xml:"form_key"`
	Name        string     `xml:"name"`
	Description string     `xml:"description"`
	CreatedAt   string     `xml:"created_at"`
	Status      string     `xml:"status"`
	Fields      []xmlField `xml:"field"`
}

type xmlField struct {
	ID           int    `xml:"id"`
	Key          string `xml:"field_key"`
	Name         string `xml:"name"`
	Description  string `xml:"description"`
	Type         string `xml:"type"`
	DefaultValue string `xml:"default_value"`
	Order        int    `xml:"field_order"`
	Required     string `xml:"required"`
	Options      string `xml:"options"`
	FieldOptions string `xml:"field_options"`
}

func decodeForm(slice []byte, formKey string) (*Form, error) {
	var xf xmlForm
	if err := xml.Unmarshal(slice, &xf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "decode form %q", formKey)
	}

	f := &Form{
		ID:          xf.ID,
		Key:         xf.Key,
		Name:        xf.Name,
		Description: xf.Description,
		CreatedAt:   xf.CreatedAt,
		Status:      xf.Status,
		Fields:      make([]Field, 0, len(xf.Fields)),
	}

	for _, xfield := range xf.Fields {
		field := Field{
			ID:           xfield.ID,
			Key:          xfield.Key,
			Name:         xfield.Name,
			Description:  xfield.Description,
			Type:         xfield.Type,
			DefaultValue: xfield.DefaultValue,
			Order:        xfield.Order,
			Required:     xfield.Required == "1",
		}
		field.Options, field.RawOptions = parseOptions(xfield.Options)
		field.Config = parseConfig(xfield.FieldOptions)
		f.Fields = append(f.Fields, field)
	}

	sort.SliceStable(f.Fields, func(i, j int) bool {
		return f.Fields[i].Order < f.Fields[j].Order
	})

	return f, nil
}

// parseOptions decodes the options CDATA payload. Formidable stores either
// a JSON array of strings or of {label, value} objects; anything that fails
// to decode is kept verbatim, matching the exporter's own leniency.
func parseOptions(raw string) ([]Option, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil, ""
	}

	var plain []string
	if err := json.Unmarshal([]byte(raw), &plain); err == nil {
		opts := make([]Option, 0, len(plain))
		for _, s := range plain {
			opts = append(opts, Option{Label: s, Value: s})
		}
		return opts, ""
	}

	var rich []struct {
		Label string `json:"label"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal([]byte(raw), &rich); err == nil {
		opts := make([]Option, 0, len(rich))
		for _, o := range rich {
			opts = append(opts, Option{Label: o.Label, Value: o.Value})
		}
		return opts, ""
	}

	return nil, raw
}

// parseConfig decodes the field_options CDATA payload. Invalid JSON yields
// an empty config rather than an error.
func parseConfig(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	return m
}
