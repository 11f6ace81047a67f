package team

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Team is a club taking part in matches.
type Team struct {
	ID     int64
	Name   string
	League string
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name   *string
	League *string
}

func (t Team) Validate() error {
	name := strings.TrimSpace(t.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 120 {
		return fmt.Errorf("team name must be 2-120 characters")
	}
	if utf8.RuneCountInString(t.League) > 120 {
		return fmt.Errorf("team league must be at most 120 characters")
	}

	return nil
}

func (t Team) Apply(p Patch) Team {
	if p.Name != nil {
		t.Name = strings.TrimSpace(*p.Name)
	}
	if p.League != nil {
		t.League = strings.TrimSpace(*p.League)
	}
	return t
}
