// Package domain provides typed identifiers so document, user, and badge IDs
// cannot be mixed up at compile time.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "contium/pkg/domain-errors"
)

// maxIDLength bounds identifiers accepted at trust boundaries.
const maxIDLength = 64

type (
	DocumentID string
	UserID     string
	BadgeID    string
)

// Generators. Each call yields a fresh random suffix so ids stay unique when
// several registrations land within the same clock tick.

func NewDocumentID() DocumentID { return DocumentID("doc-" + uuid.NewString()) }
func NewBadgeID() BadgeID       { return BadgeID("nft-" + uuid.NewString()) }

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseDocumentID(s string) (DocumentID, error) {
	v, err := parseID(s, "document ID")
	return DocumentID(v), err
}

func ParseUserID(s string) (UserID, error) {
	v, err := parseID(s, "user ID")
	return UserID(v), err
}

func ParseBadgeID(s string) (BadgeID, error) {
	v, err := parseID(s, "badge ID")
	return BadgeID(v), err
}

func (id DocumentID) String() string { return string(id) }
func (id UserID) String() string     { return string(id) }
func (id BadgeID) String() string    { return string(id) }

func (id DocumentID) IsNil() bool { return id == "" }
func (id UserID) IsNil() bool     { return id == "" }
func (id BadgeID) IsNil() bool    { return id == "" }

func parseID(s, label string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	if len(s) > maxIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" is too long")
	}
	for _, r := range s {
		if !isIDRune(r) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
		}
	}
	return s, nil
}

func isIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}
