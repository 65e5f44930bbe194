package utils

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

func LogAndReportSentryError(ctx context.Context, err error) {
	logger := LoggerFromContext(ctx)
	logger.ErrorContext(ctx, fmt.Sprintf("%+v", err))

	// Ignore errors that are due to context deadlines or canceled context, as presumably their root case has been handled
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if user, teamId, ok := sentryUserFromContext(ctx); ok {
			scope.SetUser(user)
			scope.SetTag("team_id", teamId)
		}
		hub.CaptureException(err)
	})
}

func sentryUserFromContext(ctx context.Context) (sentry.User, string, bool) {
	creds, ok := CredentialsFromCtx(ctx)
	if !ok {
		return sentry.User{}, "", false
	}
	return sentry.User{
		ID:    strconv.FormatInt(creds.ActorIdentity.UserId, 10),
		Email: creds.ActorIdentity.Email,
		Name:  creds.ActorIdentity.Name,
	}, strconv.FormatInt(creds.TeamId, 10), true
}
