package handler

import (
	"encoding/json"
	"strings"

	"contium/internal/document/models"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/validation"
)

// RegisterRequest submits a new document. Data is decoded against Type.
type RegisterRequest struct {
	Type  string          `json:"type"`
	Title string          `json:"title"`
	Data  json.RawMessage `json:"data"`
}

// Normalize trims whitespace from scalar fields.
func (r *RegisterRequest) Normalize() {
	if r == nil {
		return
	}
	r.Type = strings.TrimSpace(r.Type)
	r.Title = strings.TrimSpace(r.Title)
}

// Validate checks that the request is well-formed.
func (r *RegisterRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Type == "" {
		return dErrors.New(dErrors.CodeValidation, "type is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if err := validation.CheckStringLength("title", r.Title, validation.MaxTitleLength); err != nil {
		return err
	}
	if isEmptyJSON(r.Data) {
		return dErrors.New(dErrors.CodeValidation, "data is required")
	}
	return nil
}

// ToDomain resolves the document type and decodes the typed payload.
func (r *RegisterRequest) ToDomain() (models.Type, models.Data, error) {
	t, err := models.ParseType(r.Type)
	if err != nil {
		return "", nil, err
	}
	data, err := models.DecodeData(t, r.Data)
	if err != nil {
		return "", nil, err
	}
	return t, data, nil
}

// AmendRequest appends a new version to an existing document.
type AmendRequest struct {
	Data    json.RawMessage `json:"data"`
	Changes string          `json:"changes"`
}

func (r *AmendRequest) Normalize() {
	if r == nil {
		return
	}
	r.Changes = strings.TrimSpace(r.Changes)
}

func (r *AmendRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Changes == "" {
		return dErrors.New(dErrors.CodeValidation, "changes is required")
	}
	if err := validation.CheckStringLength("changes", r.Changes, validation.MaxChangesLength); err != nil {
		return err
	}
	if isEmptyJSON(r.Data) {
		return dErrors.New(dErrors.CodeValidation, "data is required")
	}
	return nil
}

// StatusRequest carries an authority decision.
type StatusRequest struct {
	Status string `json:"status"`
}

func (r *StatusRequest) Normalize() {
	if r == nil {
		return
	}
	r.Status = strings.TrimSpace(r.Status)
}

func (r *StatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Status == "" {
		return dErrors.New(dErrors.CodeValidation, "status is required")
	}
	if _, err := models.ParseStatus(r.Status); err != nil {
		return err
	}
	return nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
