package handler

import (
	"contium/internal/document/models"
	"contium/internal/risk"
	"contium/internal/user"
)

// DocumentListResponse wraps a filtered document listing.
type DocumentListResponse struct {
	Documents []*models.Document `json:"documents"`
	Count     int                `json:"count"`
}

// BadgeResponse reports the outcome of a mint request. Badge is nil when the
// document already carried one.
type BadgeResponse struct {
	Minted bool        `json:"minted"`
	Badge  *user.Badge `json:"badge,omitempty"`
}

// ReferencePricesResponse lists the market bands used by invoice analysis.
type ReferencePricesResponse struct {
	Bands []risk.Entry `json:"bands"`
}

func newListResponse(docs []*models.Document) DocumentListResponse {
	if docs == nil {
		docs = []*models.Document{}
	}
	return DocumentListResponse{Documents: docs, Count: len(docs)}
}
