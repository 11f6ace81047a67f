// Package shared holds the small vocabulary every repository speaks.
package shared

import "errors"

// ErrConflict is returned by repositories when a write would break a unique
// key or a restricted reference.
var ErrConflict = errors.New("conflict")

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page is a 1-based page window.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p Page) Offset() int {
	n := p.Normalize()
	return (n.Number - 1) * n.Limit
}
