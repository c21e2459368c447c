package handler

import (
	"context"
	"net/url"
	"strings"

	"contium/internal/document/models"
	id "contium/pkg/domain"
)

// listFilter holds the optional query filters of GET /documents. Empty
// fields match everything.
type listFilter struct {
	Type       models.Type
	Registrant id.UserID
	Status     models.Status
}

func parseListFilter(q url.Values) (listFilter, error) {
	var f listFilter
	if v := strings.TrimSpace(q.Get("type")); v != "" {
		t, err := models.ParseType(v)
		if err != nil {
			return f, err
		}
		f.Type = t
	}
	if v := strings.TrimSpace(q.Get("registrant")); v != "" {
		uid, err := id.ParseUserID(v)
		if err != nil {
			return f, err
		}
		f.Registrant = uid
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" {
		st, err := models.ParseStatus(v)
		if err != nil {
			return f, err
		}
		f.Status = st
	}
	return f, nil
}

func (f listFilter) matches(d *models.Document) bool {
	if f.Type != "" && d.Type != f.Type {
		return false
	}
	if !f.Registrant.IsNil() && d.RegisteredBy.ID != f.Registrant {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return true
}

// query narrows with the most selective service query, then applies the
// remaining predicates in memory.
func (f listFilter) query(ctx context.Context, svc Service) ([]*models.Document, error) {
	var (
		docs []*models.Document
		err  error
	)
	switch {
	case !f.Registrant.IsNil():
		docs, err = svc.ListByRegistrant(ctx, f.Registrant)
	case f.Type != "":
		docs, err = svc.ListByType(ctx, f.Type)
	case f.Status != "":
		docs, err = svc.ListByStatus(ctx, f.Status)
	default:
		docs, err = svc.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*models.Document, 0, len(docs))
	for _, d := range docs {
		if f.matches(d) {
			out = append(out, d)
		}
	}
	return out, nil
}
