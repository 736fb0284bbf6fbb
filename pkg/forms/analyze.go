package forms

import (
	"fmt"
	"sort"
	"strings"
)

// Analysis summarizes a questionnaire's structure.
type Analysis struct {
	FormKey     string         `json:"form_key"`
	FormName    string         `json:"form_name"`
	TotalFields int            `json:"total_fields"`
	FieldTypes  map[string]int `json:"field_types"`
	Required    int            `json:"required"`
	Optional    int            `json:"optional"`
	// Categories maps a topic to the field keys whose name or description
	// matched its keywords. A field can land in several categories.
	Categories map[string][]string `json:"categories"`
	// LikertGroups maps a likert_id to its member field keys. Fields with
	// "strongly agree/disagree" style options but no group id are collected
	// under "ungrouped".
	LikertGroups map[string][]string `json:"likert_groups,omitempty"`
	LikertFields int                 `json:"likert_fields"`
	// Conditional lists field keys whose config hides or shows other fields.
	Conditional []string `json:"conditional,omitempty"`
}

// Category keyword lists, matched case-insensitively against field names
// and descriptions.
var categoryKeywords = map[string][]string{
	"personal_info": {
		"name", "email", "phone", "address", "age", "gender",
		"occupation", "household", "zip", "city",
	},
	"health": {
		"health", "medical", "medication", "allerg", "condition",
		"diagnos", "symptom", "doctor", "weight", "exercise",
	},
	"food_preferences": {
		"food", "eat", "meal", "diet", "cuisine", "snack",
		"vegetable", "fruit", "protein", "flavor", "taste", "cook",
	},
}

// Analyze computes summary statistics for an extracted form.
func Analyze(f *Form) *Analysis {
	a := &Analysis{
		FormKey:      f.Key,
		FormName:     f.Name,
		TotalFields:  len(f.Fields),
		FieldTypes:   make(map[string]int),
		Categories:   make(map[string][]string),
		LikertGroups: make(map[string][]string),
	}

	for _, field := range f.Fields {
		a.FieldTypes[field.Type]++
		if field.Required {
			a.Required++
		} else {
			a.Optional++
		}

		categorize(a, field)

		if isLikert(field) {
			a.LikertFields++
			group := likertID(field)
			a.LikertGroups[group] = append(a.LikertGroups[group], field.Key)
		}

		if hasConditionalLogic(field) {
			a.Conditional = append(a.Conditional, field.Key)
		}
	}

	if len(a.LikertGroups) == 0 {
		a.LikertGroups = nil
	}
	for _, keys := range a.Categories {
		sort.Strings(keys)
	}

	return a
}

func categorize(a *Analysis, field Field) {
	haystack := strings.ToLower(field.Name + " " + field.Description)
	for category, keywords := range categoryKeywords {
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				a.Categories[category] = append(a.Categories[category], field.Key)
				break
			}
		}
	}
}

// isLikert detects agree/disagree scale fields by their option labels.
func isLikert(field Field) bool {
	for _, opt := range field.Options {
		if strings.Contains(strings.ToLower(opt.Label), "strongly") {
			return true
		}
	}
	return false
}

// likertID reads the scale grouping id from the field config.
func likertID(field Field) string {
	if v, ok := field.Config["likert_id"]; ok {
		switch id := v.(type) {
		case string:
			if id != "" {
				return id
			}
		case float64:
			return fmt.Sprintf("%.0f", id)
		}
	}
	return "ungrouped"
}

// hasConditionalLogic reports whether the field config hides or shows other
// fields based on answers.
func hasConditionalLogic(field Field) bool {
	for _, key := range []string{"hide_field", "show_field"} {
		v, ok := field.Config[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return true
			}
		case []any:
			if len(val) > 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}
