// Package user holds the demo participants, their roles, and score accrual.
package user

import (
	"strings"
	"time"

	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
)

// Role is one of the four trade participants.
type Role string

const (
	RoleExporter     Role = "exporter"
	RoleImporter     Role = "importer"
	RoleCustomsAgent Role = "customs-agent"
	RoleAuthority    Role = "authority"
)

// Roles lists every role in display order.
var Roles = []Role{RoleExporter, RoleImporter, RoleCustomsAgent, RoleAuthority}

var roleAliases = map[string]Role{
	"exportador":     RoleExporter,
	"importador":     RoleImporter,
	"agente_aduanas": RoleCustomsAgent,
	"autoridad":      RoleAuthority,
	"customs_agent":  RoleCustomsAgent,
}

// ParseRole accepts canonical names and the legacy Spanish identifiers.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	r := Role(s)
	if r.IsValid() {
		return r, nil
	}
	if alias, ok := roleAliases[s]; ok {
		return alias, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+s)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleExporter, RoleImporter, RoleCustomsAgent, RoleAuthority:
		return true
	}
	return false
}

// CanVerify reports whether the role may run verifications and decide status.
func (r Role) CanVerify() bool { return r == RoleAuthority }

// Label is the human-readable role name.
func (r Role) Label() string {
	switch r {
	case RoleExporter:
		return "Exporter"
	case RoleImporter:
		return "Importer"
	case RoleCustomsAgent:
		return "Customs Agent"
	case RoleAuthority:
		return "Customs Authority"
	}
	return string(r)
}

// BadgeType categorizes minted badges.
type BadgeType string

const (
	BadgeCompliance   BadgeType = "compliance"
	BadgeVerification BadgeType = "verification"
	BadgeRegistration BadgeType = "registration"
)

// Badge is a simulated non-fungible credential.
type Badge struct {
	ID          id.BadgeID    `json:"id"`
	Type        BadgeType     `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	TxHash      string        `json:"txHash"`
	MintedAt    time.Time     `json:"mintedAt"`
	DocumentID  id.DocumentID `json:"documentId,omitempty"`
}

// User is a demo participant. Score, TotalDocuments and Badges accrue during
// the process lifetime; identity fields never change.
type User struct {
	ID             id.UserID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	Company        string    `json:"company"`
	Score          int       `json:"score"`
	TotalDocuments int       `json:"totalDocuments"`
	Badges         []Badge   `json:"nftBadges"`
}

// Actor is the identity snapshot recorded on documents and versions.
type Actor struct {
	ID      id.UserID `json:"id"`
	Name    string    `json:"name"`
	Role    Role      `json:"role"`
	Company string    `json:"company"`
}

// Actor returns the identity snapshot of u.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Name: u.Name, Role: u.Role, Company: u.Company}
}

func (u *User) clone() *User {
	c := *u
	c.Badges = append([]Badge(nil), u.Badges...)
	return &c
}
