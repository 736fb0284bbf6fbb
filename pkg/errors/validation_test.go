package errors

import "testing"

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "out.png", false},
		{"nested path", "artifacts/deck/slide1.png", false},
		{"absolute path", "/tmp/out.pdf", false},
		{"empty", "", true},
		{"null byte", "out\x00.png", true},
		{"control char", "out\n.png", true},
		{"too long", string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"simple key", "client-intake", false},
		{"with digits", "form2024", false},
		{"with underscore", "intake_v2", false},
		{"empty", "", true},
		{"uppercase", "Intake", true},
		{"leading dash", "-intake", true},
		{"spaces", "client intake", true},
		{"angle brackets", "<form>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		wantErr bool
	}{
		{"typescript", ".ts", false},
		{"tsx", ".tsx", false},
		{"empty", "", true},
		{"no dot", "ts", true},
		{"with slash", "./ts", true},
		{"with space", ". ts", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.ext)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}
