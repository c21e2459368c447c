// Package models defines trade documents, their version chain, and the
// type-specific payloads.
package models

import (
	"strings"
	"time"

	"contium/internal/ledger"
	"contium/internal/risk"
	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
)

// Type identifies the kind of trade document.
type Type string

const (
	TypeCommercialInvoice  Type = "commercial-invoice"
	TypePackingList        Type = "packing-list"
	TypeCustomsDeclaration Type = "customs-declaration"
)

var typeAliases = map[string]Type{
	"factura_comercial": TypeCommercialInvoice,
	"packing_list":      TypePackingList,
	"dam":               TypeCustomsDeclaration,
}

// ParseType accepts canonical names and the legacy identifiers.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t := Type(s); t.IsValid() {
		return t, nil
	}
	if t, ok := typeAliases[s]; ok {
		return t, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown document type: "+s)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeCommercialInvoice, TypePackingList, TypeCustomsDeclaration:
		return true
	}
	return false
}

// Status is the review state of a document.
type Status string

const (
	StatusRegistered Status = "registered"
	StatusValidated  Status = "validated"
	StatusObserved   Status = "observed"
)

var statusAliases = map[string]Status{
	"registrado": StatusRegistered,
	"validado":   StatusValidated,
	"observado":  StatusObserved,
}

// ParseStatus accepts canonical names and the legacy identifiers.
func ParseStatus(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if st := Status(s); st.IsValid() {
		return st, nil
	}
	if st, ok := statusAliases[s]; ok {
		return st, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown document status: "+s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRegistered, StatusValidated, StatusObserved:
		return true
	}
	return false
}

// IsTerminal reports whether an authority has already decided the document.
func (s Status) IsTerminal() bool {
	return s == StatusValidated || s == StatusObserved
}

// CanRegister reports whether role may register documents of type t.
func CanRegister(role user.Role, t Type) bool {
	switch role {
	case user.RoleExporter:
		return t == TypeCommercialInvoice || t == TypePackingList
	case user.RoleCustomsAgent:
		return t == TypeCustomsDeclaration
	}
	return false
}

// Version is one immutable entry in a document's history.
type Version struct {
	Version   int        `json:"version"`
	Hash      string     `json:"hash"`
	Timestamp time.Time  `json:"timestamp"`
	Actor     user.Actor `json:"actor"`
	Changes   string     `json:"changes"`
	TxHash    string     `json:"txHash,omitempty"`
}

// Document is a registered trade document and its append-only version chain.
type Document struct {
	ID             id.DocumentID       `json:"id"`
	Type           Type                `json:"type"`
	Title          string              `json:"title"`
	Hash           string              `json:"hash"`
	CurrentVersion int                 `json:"currentVersion"`
	Versions       []Version           `json:"versions"`
	RegisteredBy   user.Actor          `json:"registeredBy"`
	Status         Status              `json:"status"`
	RiskIndicator  risk.Level          `json:"riskIndicator"`
	Analysis       *risk.Analysis      `json:"aiAnalysis,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	Data           Data                `json:"data"`
	Blockchain     *ledger.Transaction `json:"blockchain,omitempty"`
	Badge          *user.Badge         `json:"nftBadge,omitempty"`
}

// LatestVersion returns the newest history entry.
func (d *Document) LatestVersion() (Version, bool) {
	if len(d.Versions) == 0 {
		return Version{}, false
	}
	return d.Versions[len(d.Versions)-1], true
}

// AppendVersion adds the next history entry and moves the top-level hash,
// version counter, and update time along with it.
func (d *Document) AppendVersion(hash string, actor user.Actor, changes string, at time.Time, txHash string) Version {
	v := Version{
		Version:   len(d.Versions) + 1,
		Hash:      hash,
		Timestamp: at,
		Actor:     actor,
		Changes:   changes,
		TxHash:    txHash,
	}
	d.Versions = append(d.Versions, v)
	d.CurrentVersion = v.Version
	d.Hash = hash
	d.UpdatedAt = at
	return v
}

// CheckChain verifies the version-chain invariants: the counter matches the
// history length, numbers run 1..n, and the latest hash is the top-level hash.
func (d *Document) CheckChain() error {
	if d.CurrentVersion != len(d.Versions) {
		return dErrors.New(dErrors.CodeInvariantViolation, "current version does not match history length")
	}
	for i, v := range d.Versions {
		if v.Version != i+1 {
			return dErrors.New(dErrors.CodeInvariantViolation, "version numbers are not contiguous from 1")
		}
	}
	if latest, ok := d.LatestVersion(); ok && latest.Hash != d.Hash {
		return dErrors.New(dErrors.CodeInvariantViolation, "latest version hash differs from document hash")
	}
	return nil
}

// HasBadge reports whether a badge was already minted for the document.
func (d *Document) HasBadge() bool { return d.Badge != nil }

// Clone returns a deep copy safe to hand out of the store.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Versions = append([]Version(nil), d.Versions...)
	if d.Analysis != nil {
		a := *d.Analysis
		c.Analysis = &a
	}
	if d.Data != nil {
		c.Data = d.Data.clone()
	}
	if d.Blockchain != nil {
		tx := *d.Blockchain
		c.Blockchain = &tx
	}
	if d.Badge != nil {
		b := *d.Badge
		c.Badge = &b
	}
	return &c
}
