package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rmarchant/folio/internal/models"
	"github.com/rmarchant/folio/internal/store"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	t.Run("unknown username", func(t *testing.T) {
		_, err := s.GetByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("upsert then get", func(t *testing.T) {
		user := &models.User{UserID: uuid.New(), Username: "admin", PasswordHash: "digest-1"}
		require.NoError(t, s.Upsert(ctx, user))

		got, err := s.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, "digest-1", got.PasswordHash)
	})

	t.Run("upsert replaces hash and keeps identity", func(t *testing.T) {
		first, err := s.GetByUsername(ctx, "admin")
		require.NoError(t, err)

		require.NoError(t, s.Upsert(ctx, &models.User{Username: "admin", PasswordHash: "digest-2"}))

		got, err := s.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, "digest-2", got.PasswordHash)
		require.Equal(t, first.UserID, got.UserID)
	})

	t.Run("returned user is a clone", func(t *testing.T) {
		got, err := s.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		got.PasswordHash = "mutated"

		again, err := s.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, "digest-2", again.PasswordHash)
	})
}

func TestProjectStore(t *testing.T) {
	ctx := context.Background()
	s := NewProjectStore()

	first := &models.Project{Title: "first", Description: "d", Image: "img"}
	require.NoError(t, s.Create(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ProjectID)

	// Create ordering is by CreatedAt, so nudge the clock apart.
	time.Sleep(5 * time.Millisecond)
	second := &models.Project{Title: "second", Description: "d", Image: "img"}
	require.NoError(t, s.Create(ctx, second))

	t.Run("list newest first", func(t *testing.T) {
		projects, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		require.Equal(t, "second", projects[0].Title)
		require.Equal(t, "first", projects[1].Title)
	})

	t.Run("update preserves created time", func(t *testing.T) {
		updated := *first
		updated.Title = "renamed"
		require.NoError(t, s.Update(ctx, &updated))

		got, err := s.Get(ctx, first.ProjectID)
		require.NoError(t, err)
		require.Equal(t, "renamed", got.Title)
		require.Equal(t, first.CreatedAt.Unix(), got.CreatedAt.Unix())
	})

	t.Run("update unknown project", func(t *testing.T) {
		err := s.Update(ctx, &models.Project{ProjectID: uuid.New()})
		require.ErrorIs(t, err, store.ErrProjectNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, first.ProjectID))

		_, err := s.Get(ctx, first.ProjectID)
		require.ErrorIs(t, err, store.ErrProjectNotFound)

		require.ErrorIs(t, s.Delete(ctx, first.ProjectID), store.ErrProjectNotFound)
	})
}

func TestContactStore(t *testing.T) {
	ctx := context.Background()
	s := NewContactStore()

	contact := &models.Contact{Name: "Ada", Email: "ada@example.com", Message: "hello"}
	require.NoError(t, s.Create(ctx, contact))

	t.Run("list", func(t *testing.T) {
		contacts, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		require.Equal(t, "Ada", contacts[0].Name)
	})

	t.Run("update", func(t *testing.T) {
		updated := *contact
		updated.Message = "hello again"
		require.NoError(t, s.Update(ctx, &updated))

		contacts, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, "hello again", contacts[0].Message)
	})

	t.Run("delete unknown contact", func(t *testing.T) {
		require.ErrorIs(t, s.Delete(ctx, uuid.New()), store.ErrContactNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, contact.ContactID))

		contacts, err := s.List(ctx)
		require.NoError(t, err)
		require.Empty(t, contacts)
	})
}
