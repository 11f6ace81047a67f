package player

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Player belongs to exactly one team.
type Player struct {
	ID       int64
	Name     string
	Position string
	TeamID   int64
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name     *string
	Position *string
	TeamID   *int64
}

// ListFilter narrows List. Zero TeamID means every team.
type ListFilter struct {
	TeamID int64
}

func (p Player) Validate() error {
	if n := utf8.RuneCountInString(strings.TrimSpace(p.Name)); n < 2 || n > 120 {
		return fmt.Errorf("player name must be 2-120 characters")
	}
	if utf8.RuneCountInString(p.Position) > 60 {
		return fmt.Errorf("player position must be at most 60 characters")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}

	return nil
}

func (p Player) Apply(patch Patch) Player {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Position != nil {
		p.Position = strings.TrimSpace(*patch.Position)
	}
	if patch.TeamID != nil {
		p.TeamID = *patch.TeamID
	}
	return p
}
