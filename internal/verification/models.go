// Package verification runs the zero-trust checklist against a stored
// document and reports the outcome to the authority.
package verification

import (
	"time"

	"contium/internal/ledger"
	"contium/internal/risk"
	"contium/internal/user"
	id "contium/pkg/domain"
)

// CheckID names one entry of the checklist.
type CheckID string

const (
	CheckHash    CheckID = "hash"
	CheckVersion CheckID = "version"
	CheckActor   CheckID = "actor"
	CheckZKP     CheckID = "zkp"
)

// Check is one independently evaluated checklist item.
type Check struct {
	ID          CheckID   `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Passed      bool      `json:"passed"`
	Timestamp   time.Time `json:"timestamp"`
}

// Result is produced per run and never stored on the document.
type Result struct {
	DocumentID       id.DocumentID       `json:"documentId"`
	HashMatch        bool                `json:"hashMatch"`
	VersionIntegrity bool                `json:"versionIntegrity"`
	AIRiskAssessment risk.Level          `json:"aiRiskAssessment"`
	ZeroTrustChecks  []Check             `json:"zeroTrustChecks"`
	VerifiedAt       time.Time           `json:"verifiedAt"`
	VerifiedBy       user.Actor          `json:"verifiedBy"`
	Blockchain       *ledger.Transaction `json:"blockchain,omitempty"`
}

// Valid is the summary verdict. Actor and credential checks are
// informational and do not affect it.
func (r Result) Valid() bool {
	return r.HashMatch && r.VersionIntegrity
}

// Failed lists the ids of checks that did not pass.
func (r Result) Failed() []CheckID {
	var out []CheckID
	for _, c := range r.ZeroTrustChecks {
		if !c.Passed {
			out = append(out, c.ID)
		}
	}
	return out
}
