package documents

import (
	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/usecases/security"
)

// AccessFilter scopes a document lookup to the team of the user and to what their role can see.
// Owned documents are always visible to their owner.
func AccessFilter(team models.Team, userId, documentId int64) models.DocumentAccessFilter {
	return models.DocumentAccessFilter{
		DocumentId:   documentId,
		TeamId:       team.Id,
		UserId:       userId,
		Visibilities: security.VisibilitiesForRole(team.CurrentTeamRole),
	}
}
