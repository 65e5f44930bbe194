package utils

import (
	"context"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"

	"github.com/signflow/document-backend/models"
)

func TestSentryUserFromContext(t *testing.T) {
	_, _, ok := sentryUserFromContext(context.Background())
	assert.False(t, ok)

	ctx := StoreCredentialsInContext(context.Background(), models.Credentials{
		ActorIdentity: models.Identity{UserId: 42, Email: "jane@example.com", Name: "Jane"},
		TeamId:        7,
	})
	user, teamId, ok := sentryUserFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, sentry.User{ID: "42", Email: "jane@example.com", Name: "Jane"}, user)
	assert.Equal(t, "7", teamId)
}
