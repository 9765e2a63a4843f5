// Package validate checks project form input before it reaches the store.
package validate

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	minDescriptionLength = 2
	minPeople            = 1
	maxPeople            = 5
)

// Validatable describes the rules one value must satisfy. Length bounds
// apply to strings, numeric bounds to ints.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *int
	Max       *int
}

func Int(n int) *int { return &n }

func Validate(in Validatable) bool {
	switch v := in.Value.(type) {
	case string:
		if in.Required && strings.TrimSpace(v) == "" {
			return false
		}
		n := utf8.RuneCountInString(v)
		if in.MinLength != nil && n < *in.MinLength {
			return false
		}
		if in.MaxLength != nil && n > *in.MaxLength {
			return false
		}
	case int:
		if in.Min != nil && v < *in.Min {
			return false
		}
		if in.Max != nil && v > *in.Max {
			return false
		}
	case nil:
		return !in.Required
	}
	return true
}

// ProjectForm is the raw form submission.
type ProjectForm struct {
	Title       string
	Description string
	People      string
}

// ProjectInput is a validated, sanitized form ready for the store.
type ProjectInput struct {
	Title       string
	Description string
	People      int
}

// Gather sanitizes and validates the form.
func (f ProjectForm) Gather() (ProjectInput, error) {
	title := Sanitize(f.Title)
	desc := Sanitize(f.Description)

	if !Validate(Validatable{Value: title, Required: true}) {
		return ProjectInput{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !Validate(Validatable{Value: desc, Required: true, MinLength: Int(minDescriptionLength)}) {
		return ProjectInput{}, fmt.Errorf("%w: description needs at least %d characters", ErrInvalidInput, minDescriptionLength)
	}

	raw := strings.TrimSpace(f.People)
	if raw == "" {
		return ProjectInput{}, fmt.Errorf("%w: people is required", ErrInvalidInput)
	}
	people, err := strconv.Atoi(raw)
	if err != nil {
		return ProjectInput{}, fmt.Errorf("%w: people must be a whole number", ErrInvalidInput)
	}
	if !Validate(Validatable{Value: people, Required: true, Min: Int(minPeople), Max: Int(maxPeople)}) {
		return ProjectInput{}, fmt.Errorf("%w: people must be between %d and %d", ErrInvalidInput, minPeople, maxPeople)
	}

	return ProjectInput{Title: title, Description: desc, People: people}, nil
}

var strict = bluemonday.StrictPolicy()

// Sanitize strips all markup and surrounding whitespace and returns plain
// text. Escaping is left to the renderer.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
