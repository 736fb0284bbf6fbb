package forms

import (
	"testing"

	"github.com/vibelux/toolkit/pkg/errors"
)

const sampleExport = `<?xml version="1.0" encoding="UTF-8"?>
<forms>
<form>
	<id>3</id>
	<form_key><![CDATA[contact]]></form_key>
	<name><![CDATA[Contact Us]]></name>
	<description><![CDATA[]]></description>
	<created_at>2024-01-02 10:00:00</created_at>
	<status><![CDATA[published]]></status>
	<field>
		<id>30</id>
		<field_key><![CDATA[message]]></field_key>
		<name><![CDATA[Message]]></name>
		<description><![CDATA[]]></description>
		<type><![CDATA[textarea]]></type>
		<default_value><![CDATA[]]></default_value>
		<field_order>1</field_order>
		<required>1</required>
		<options><![CDATA[]]></options>
		<field_options><![CDATA[{}]]></field_options>
	</field>
</form>
<form>
	<id>7</id>
	<form_key><![CDATA[nutrition-intake]]></form_key>
	<name><![CDATA[Nutrition Intake Questionnaire]]></name>
	<description><![CDATA[Initial client assessment]]></description>
	<created_at>2024-03-15 09:30:00</created_at>
	<status><![CDATA[published]]></status>
	<field>
		<id>101</id>
		<field_key><![CDATA[first_name]]></field_key>
		<name><![CDATA[First Name]]></name>
		<description><![CDATA[]]></description>
		<type><![CDATA[text]]></type>
		<default_value><![CDATA[]]></default_value>
		<field_order>2</field_order>
		<required>1</required>
		<options><![CDATA[]]></options>
		<field_options><![CDATA[{}]]></field_options>
	</field>
	<field>
		<id>102</id>
		<field_key><![CDATA[email]]></field_key>
		<name><![CDATA[Email Address]]></name>
		<description><![CDATA[]]></description>
		<type><![CDATA[email]]></type>
		<default_value><![CDATA[]]></default_value>
		<field_order>1</field_order>
		<required>1</required>
		<options><![CDATA[]]></options>
		<field_options><![CDATA[{}]]></field_options>
	</field>
	<field>
		<id>103</id>
		<field_key><![CDATA[meal_frequency]]></field_key>
		<name><![CDATA[How many meals do you eat per day?]]></name>
		<description><![CDATA[]]></description>
		<type><![CDATA[select]]></type>
		<default_value><![CDATA[]]></default_value>
		<field_order>3</field_order>
		<required>0</required>
		<options><![CDATA[["1-2","3-4","5+"]]]></options>
		<field_options><![CDATA[{"hide_field":["104"]}]]></field_options>
	</field>
	<field>
		<id>104</id>
		<field_key><![CDATA[enjoys_cooking]]></field_key>
		<name><![CDATA[I enjoy cooking at home]]></name>
		<description><![CDATA[]]></description>
		<type><![CDATA[radio]]></type>
		<default_value><![CDATA[]]></default_value>
		<field_order>4</field_order>
		<required>0</required>
		<options><![CDATA[[{"label":"Strongly Disagree","value":"1"},{"label":"Disagree","value":"2"},{"label":"Agree","value":"3"},{"label":"Strongly Agree","value":"4"}]]]></options>
		<field_options><![CDATA[{"likert_id":"attitudes"}]]></field_options>
	</field>
	<field>
		<id>105</id>
		<field_key><![CDATA[allergies]]></field_key>
		<name><![CDATA[Food Allergies]]></name>
		<description><![CDATA[List any medical conditions or allergies]]></description>
		<type><![CDATA[textarea]]></type>
		<default_value><![CDATA[]]></default_value>
		<field_order>5</field_order>
		<required>0</required>
		<options><![CDATA[not-json]]></options>
		<field_options><![CDATA[broken{]]></field_options>
	</field>
</form>
</forms>`

func TestExtractForm(t *testing.T) {
	f, err := ExtractForm([]byte(sampleExport), "nutrition-intake")
	if err != nil {
		t.Fatalf("ExtractForm: %v", err)
	}

	if f.ID != 7 {
		t.Errorf("ID = %d, want 7", f.ID)
	}
	if f.Key != "nutrition-intake" {
		t.Errorf("Key = %q", f.Key)
	}
	if f.Name != "Nutrition Intake Questionnaire" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Status != "published" {
		t.Errorf("Status = %q", f.Status)
	}
	if len(f.Fields) != 5 {
		t.Fatalf("Fields = %d, want 5", len(f.Fields))
	}

	// Sorted by field_order: email (1) before first_name (2).
	if f.Fields[0].Key != "email" || f.Fields[1].Key != "first_name" {
		t.Errorf("order = %q, %q; want email, first_name", f.Fields[0].Key, f.Fields[1].Key)
	}

	if !f.Fields[0].Required {
		t.Error("email should be required (required=1)")
	}
	if f.Fields[2].Required {
		t.Error("meal_frequency should be optional (required=0)")
	}
}

func TestExtractFormDoesNotGrabNeighbor(t *testing.T) {
	f, err := ExtractForm([]byte(sampleExport), "contact")
	if err != nil {
		t.Fatalf("ExtractForm: %v", err)
	}
	if f.ID != 3 || len(f.Fields) != 1 {
		t.Errorf("got form %d with %d fields, want form 3 with 1 field", f.ID, len(f.Fields))
	}
}

func TestExtractFormNotFound(t *testing.T) {
	_, err := ExtractForm([]byte(sampleExport), "missing-key")
	if !errors.Is(err, errors.ErrCodeFormNotFound) {
		t.Errorf("error = %v, want FORM_NOT_FOUND", err)
	}
}

func TestExtractFormInvalidKey(t *testing.T) {
	_, err := ExtractForm([]byte(sampleExport), "<form>")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestExtractFormUnbalanced(t *testing.T) {
	truncated := sampleExport[:len(sampleExport)-len("</form>\n</forms>")]
	_, err := ExtractForm([]byte(truncated), "nutrition-intake")
	if !errors.Is(err, errors.ErrCodeParseFailed) {
		t.Errorf("error = %v, want PARSE_FAILED", err)
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantOpts int
		wantRaw  string
	}{
		{"string array", `["A","B","C"]`, 3, ""},
		{"object array", `[{"label":"Yes","value":"1"}]`, 1, ""},
		{"empty", "", 0, ""},
		{"zero marker", "0", 0, ""},
		{"invalid json kept raw", "not-json", 0, "not-json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, raw := parseOptions(tt.raw)
			if len(opts) != tt.wantOpts {
				t.Errorf("opts = %d, want %d", len(opts), tt.wantOpts)
			}
			if raw != tt.wantRaw {
				t.Errorf("raw = %q, want %q", raw, tt.wantRaw)
			}
		})
	}
}

func TestLenientPayloads(t *testing.T) {
	f, err := ExtractForm([]byte(sampleExport), "nutrition-intake")
	if err != nil {
		t.Fatalf("ExtractForm: %v", err)
	}

	var allergies *Field
	for i := range f.Fields {
		if f.Fields[i].Key == "allergies" {
			allergies = &f.Fields[i]
		}
	}
	if allergies == nil {
		t.Fatal("allergies field missing")
	}
	if allergies.RawOptions != "not-json" {
		t.Errorf("RawOptions = %q, want raw payload preserved", allergies.RawOptions)
	}
	if allergies.Config != nil {
		t.Errorf("Config = %v, want nil for broken JSON", allergies.Config)
	}
}

func TestAnalyze(t *testing.T) {
	f, err := ExtractForm([]byte(sampleExport), "nutrition-intake")
	if err != nil {
		t.Fatalf("ExtractForm: %v", err)
	}

	a := Analyze(f)

	if a.TotalFields != 5 {
		t.Errorf("TotalFields = %d, want 5", a.TotalFields)
	}
	if a.Required != 2 || a.Optional != 3 {
		t.Errorf("required/optional = %d/%d, want 2/3", a.Required, a.Optional)
	}
	if a.FieldTypes["textarea"] != 1 || a.FieldTypes["radio"] != 1 {
		t.Errorf("FieldTypes = %v", a.FieldTypes)
	}

	if got := a.Categories["personal_info"]; len(got) != 2 {
		t.Errorf("personal_info = %v, want first_name and email", got)
	}
	if got := a.Categories["food_preferences"]; len(got) < 2 {
		t.Errorf("food_preferences = %v, want meal_frequency, enjoys_cooking, allergies", got)
	}
	if got := a.Categories["health"]; len(got) != 1 || got[0] != "allergies" {
		t.Errorf("health = %v, want [allergies]", got)
	}

	if a.LikertFields != 1 {
		t.Errorf("LikertFields = %d, want 1", a.LikertFields)
	}
	if got := a.LikertGroups["attitudes"]; len(got) != 1 || got[0] != "enjoys_cooking" {
		t.Errorf("LikertGroups = %v", a.LikertGroups)
	}

	if len(a.Conditional) != 1 || a.Conditional[0] != "meal_frequency" {
		t.Errorf("Conditional = %v, want [meal_frequency]", a.Conditional)
	}
}
