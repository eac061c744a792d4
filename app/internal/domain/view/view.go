package view

import (
	"strings"
	"time"
)

// Kind names the entity collection a view filters.
type Kind string

const (
	KindCompanies Kind = "companies"
	KindProducts  Kind = "products"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindCompanies, KindProducts:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// SavedView is a persisted, shareable filter state. Query is the encoded
// filter state.
type SavedView struct {
	ID        string
	Kind      Kind
	Query     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
