package verification

import (
	"time"

	"contium/internal/document/models"
	"contium/internal/user"
)

type checker struct {
	id          CheckID
	name        string
	description string
	passes      func(doc *models.Document) bool
}

// checklist is evaluated in order and never short-circuits.
var checklist = []checker{
	{
		id:          CheckHash,
		name:        "Hash integrity",
		description: "SHA-256 hash matches the original document",
		passes:      hashMatches,
	},
	{
		id:          CheckVersion,
		name:        "Version history",
		description: "Version chain intact with no unauthorized changes",
		passes:      versionChainIntact,
	},
	{
		id:          CheckActor,
		name:        "Actor identity",
		description: "Registrant is authorized for this document type",
		passes: func(doc *models.Document) bool {
			return models.CanRegister(doc.RegisteredBy.Role, doc.Type)
		},
	},
	{
		id:          CheckZKP,
		name:        "ZK-Proof (simulated)",
		description: "Credentials verified without exposing sensitive data",
		passes:      func(*models.Document) bool { return true },
	},
}

// RunChecks evaluates the full checklist against doc. It is pure apart from
// stamping each check with at.
func RunChecks(doc *models.Document, verifier user.Actor, at time.Time) Result {
	checks := make([]Check, 0, len(checklist))
	for _, c := range checklist {
		checks = append(checks, Check{
			ID:          c.id,
			Name:        c.name,
			Description: c.description,
			Passed:      c.passes(doc),
			Timestamp:   at,
		})
	}
	return Result{
		DocumentID:       doc.ID,
		HashMatch:        checks[0].Passed,
		VersionIntegrity: checks[1].Passed,
		AIRiskAssessment: doc.RiskIndicator,
		ZeroTrustChecks:  checks,
		VerifiedAt:       at,
		VerifiedBy:       verifier,
	}
}

func hashMatches(doc *models.Document) bool {
	latest, ok := doc.LatestVersion()
	return ok && latest.Hash == doc.Hash
}

func versionChainIntact(doc *models.Document) bool {
	if len(doc.Versions) == 0 {
		return false
	}
	for _, v := range doc.Versions {
		if v.Hash == "" {
			return false
		}
	}
	return true
}
