package validate

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Validatable
		want bool
	}{
		{"required string present", Validatable{Value: "x", Required: true}, true},
		{"required string blank", Validatable{Value: "   ", Required: true}, false},
		{"optional string blank", Validatable{Value: ""}, true},
		{"min length met", Validatable{Value: "ab", MinLength: Int(2)}, true},
		{"min length short", Validatable{Value: "a", MinLength: Int(2)}, false},
		{"max length exceeded", Validatable{Value: "abcd", MaxLength: Int(3)}, false},
		{"min length counts runes", Validatable{Value: "éé", MinLength: Int(2), MaxLength: Int(2)}, true},
		{"int within range", Validatable{Value: 3, Min: Int(1), Max: Int(5)}, true},
		{"int at lower bound", Validatable{Value: 1, Min: Int(1)}, true},
		{"int below min", Validatable{Value: 0, Min: Int(1)}, false},
		{"int above max", Validatable{Value: 6, Max: Int(5)}, false},
		{"nil required", Validatable{Value: nil, Required: true}, false},
		{"nil optional", Validatable{Value: nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.in); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectForm_Gather(t *testing.T) {
	tests := []struct {
		name    string
		form    ProjectForm
		want    ProjectInput
		wantErr bool
	}{
		{
			name: "valid",
			form: ProjectForm{Title: "Build API", Description: "backend work", People: "3"},
			want: ProjectInput{Title: "Build API", Description: "backend work", People: 3},
		},
		{
			name: "trims whitespace",
			form: ProjectForm{Title: "  Build API ", Description: " ok ", People: " 5 "},
			want: ProjectInput{Title: "Build API", Description: "ok", People: 5},
		},
		{
			name: "strips markup",
			form: ProjectForm{Title: "<b>Bold</b> plan", Description: "<script>alert(1)</script>real", People: "1"},
			want: ProjectInput{Title: "Bold plan", Description: "real", People: 1},
		},
		{
			name: "keeps ampersands as text",
			form: ProjectForm{Title: "R&D", Description: "a & b", People: "2"},
			want: ProjectInput{Title: "R&D", Description: "a & b", People: 2},
		},
		{name: "blank title", form: ProjectForm{Title: " ", Description: "desc", People: "1"}, wantErr: true},
		{name: "markup-only title", form: ProjectForm{Title: "<i></i>", Description: "desc", People: "1"}, wantErr: true},
		{name: "short description", form: ProjectForm{Title: "t", Description: "d", People: "1"}, wantErr: true},
		{name: "missing people", form: ProjectForm{Title: "t", Description: "desc", People: ""}, wantErr: true},
		{name: "non-numeric people", form: ProjectForm{Title: "t", Description: "desc", People: "two"}, wantErr: true},
		{name: "zero people", form: ProjectForm{Title: "t", Description: "desc", People: "0"}, wantErr: true},
		{name: "too many people", form: ProjectForm{Title: "t", Description: "desc", People: "6"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.form.Gather()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Gather() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
