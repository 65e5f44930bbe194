package dbmodels

import (
	"github.com/signflow/document-backend/models"
)

type DBTeamWithMemberRole struct {
	Id              int64  `db:"id"`
	OrganisationId  string `db:"organisation_id"`
	CurrentTeamRole string `db:"current_team_role"`
	Cfr21           bool   `db:"cfr21"`
}

const (
	TABLE_TEAMS         = "teams"
	TABLE_TEAM_MEMBERS  = "team_members"
	TABLE_ORGANISATIONS = "organisations"
)

func AdaptTeamWithMemberRole(db DBTeamWithMemberRole) (models.Team, error) {
	return models.Team{
		Id:              db.Id,
		OrganisationId:  db.OrganisationId,
		CurrentTeamRole: models.TeamMemberRole(db.CurrentTeamRole),
		OrganisationClaim: models.OrganisationClaim{
			Flags: models.OrganisationClaimFlags{Cfr21: db.Cfr21},
		},
	}, nil
}
