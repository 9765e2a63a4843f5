package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid project status")

type Status int

const (
	StatusActive Status = iota
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus converts "active" or "finished" (any case) to a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if s != StatusActive && s != StatusFinished {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Project is a proposed or ongoing unit of work. Only Status changes after
// creation.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      Status `json:"status"`
}

func NewProject(id, title, description string, people int) Project {
	return Project{
		ID:          id,
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
	}
}
