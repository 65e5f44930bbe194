package repositories

import (
	"context"
	"fmt"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
)

// GetTeamWithMemberRole returns the team with the role of the given user in it.
// A user who is not a member of the team gets a NotFoundError.
func (repo *DbRepository) GetTeamWithMemberRole(ctx context.Context, exec Executor,
	teamId, userId int64,
) (models.Team, error) {
	query := NewQueryBuilder().
		Select(
			"t.id",
			"t.organisation_id",
			"tm.role AS current_team_role",
			"COALESCE((o.claim_flags->>'cfr21')::boolean, false) AS cfr21",
		).
		From(fmt.Sprintf("%s AS t", dbmodels.TABLE_TEAMS)).
		Join(fmt.Sprintf("%s AS tm ON tm.team_id = t.id AND tm.user_id = ?", dbmodels.TABLE_TEAM_MEMBERS), userId).
		Join(fmt.Sprintf("%s AS o ON o.id = t.organisation_id", dbmodels.TABLE_ORGANISATIONS)).
		Where(squirrel.Eq{"t.id": teamId})

	team, err := SqlToModel(ctx, exec, query, dbmodels.AdaptTeamWithMemberRole)
	if errors.Is(err, models.NotFoundError) {
		return models.Team{}, errors.Wrap(models.NotFoundError, "team not found")
	}
	return team, err
}
