package security

import (
	"github.com/signflow/document-backend/models"

	"github.com/cockroachdb/errors"
)

type EnforceSecurity interface {
	ReadTeam(teamId int64) error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) ReadTeam(teamId int64) error {
	if e.Credentials.TeamId != teamId {
		return errors.Wrapf(models.ForbiddenError,
			"team %d does not match the team of the credentials %d", teamId, e.Credentials.TeamId)
	}
	return nil
}
