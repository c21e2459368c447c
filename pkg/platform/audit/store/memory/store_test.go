package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "contium/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	require.NoError(t, s.Append(ctx, audit.Event{ActorID: "user-004", Action: string(audit.EventVerificationRun), DocumentID: "doc-1"}))
	require.NoError(t, s.Append(ctx, audit.Event{ActorID: "user-001", Action: string(audit.EventDocumentRegistered), DocumentID: "doc-2"}))
	require.NoError(t, s.Append(ctx, audit.Event{ActorID: "user-004", Action: string(audit.EventStatusChanged), DocumentID: "doc-1"}))

	byActor, err := s.ListByActor(ctx, "user-004")
	require.NoError(t, err)
	require.Len(t, byActor, 2)
	assert.Equal(t, string(audit.EventVerificationRun), byActor[0].Action, "append order is kept")

	byAction, err := s.ListByAction(ctx, audit.EventDocumentRegistered)
	require.NoError(t, err)
	require.Len(t, byAction, 1)
	assert.Equal(t, "doc-2", byAction[0].DocumentID.String())

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.ListByActor(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
