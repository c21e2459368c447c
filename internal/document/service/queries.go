package service

import (
	"context"
	"errors"

	"contium/internal/document/models"
	"contium/internal/document/store"
	id "contium/pkg/domain"
)

// GetByID returns the document and whether it exists.
func (s *Service) GetByID(ctx context.Context, docID id.DocumentID) (*models.Document, bool, error) {
	doc, err := s.store.FindByID(ctx, docID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, wrapStoreErr(err, "failed to load document")
	}
	return doc, true, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Document, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByType(ctx context.Context, t models.Type) ([]*models.Document, error) {
	return s.store.ListByType(ctx, t)
}

func (s *Service) ListByRegistrant(ctx context.Context, userID id.UserID) ([]*models.Document, error) {
	return s.store.ListByRegistrant(ctx, userID)
}

// ListByStatus backs the authority queues; pending review is StatusRegistered.
func (s *Service) ListByStatus(ctx context.Context, status models.Status) ([]*models.Document, error) {
	return s.store.ListByStatus(ctx, status)
}
