package handler

import (
	"strings"

	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
)

// VerifyRequest selects the document to verify.
type VerifyRequest struct {
	DocumentID string `json:"documentId"`
}

func (r *VerifyRequest) Normalize() {
	if r == nil {
		return
	}
	r.DocumentID = strings.TrimSpace(r.DocumentID)
}

func (r *VerifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.DocumentID == "" {
		return dErrors.New(dErrors.CodeValidation, "documentId is required")
	}
	if _, err := id.ParseDocumentID(r.DocumentID); err != nil {
		return err
	}
	return nil
}
