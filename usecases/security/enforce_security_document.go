package security

import (
	"github.com/signflow/document-backend/models"

	"github.com/cockroachdb/errors"
)

type EnforceSecurityDocument interface {
	EnforceSecurity
	UpdateDocument(document models.DocumentWithTeam, requestedVisibility models.Optional[models.DocumentVisibility]) error
	ReadDocumentAuditLogs(document models.DocumentWithTeam) error
}

type EnforceSecurityDocumentImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityDocumentImpl) actor(document models.DocumentWithTeam) models.ActorContext {
	return models.ActorContext{
		IsOwner:     document.UserId == e.Credentials.ActorIdentity.UserId,
		CurrentRole: document.Team.CurrentTeamRole,
	}
}

func (e *EnforceSecurityDocumentImpl) UpdateDocument(
	document models.DocumentWithTeam,
	requestedVisibility models.Optional[models.DocumentVisibility],
) error {
	verdict := EvaluateDocumentUpdate(e.actor(document), document.Visibility, requestedVisibility)
	return errors.Join(
		e.ReadTeam(document.TeamId),
		verdict.Err(),
	)
}

func (e *EnforceSecurityDocumentImpl) ReadDocumentAuditLogs(document models.DocumentWithTeam) error {
	actor := e.actor(document)
	if !actor.IsOwner && actor.CurrentRole != models.TeamMemberRoleAdmin {
		return errors.Wrap(models.ForbiddenError,
			"only the document owner and team admins can read the document audit logs")
	}
	return e.ReadTeam(document.TeamId)
}
