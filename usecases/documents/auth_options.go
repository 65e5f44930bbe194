package documents

import (
	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/pure_utils"

	"github.com/cockroachdb/errors"
)

// ResolveAuthOptions merges the requested global auth lists with the current ones. A list that
// was not provided keeps its current value; a provided empty list clears it. Any non empty
// action auth requires the cfr21 organisation flag, whether or not it changed.
func ResolveAuthOptions(
	current models.DocumentAuthOptions,
	requestedAccess models.Optional[[]models.DocumentAccessAuth],
	requestedAction models.Optional[[]models.DocumentActionAuth],
	flags models.OrganisationClaimFlags,
) (models.DocumentAuthOptions, error) {
	resolved := models.DocumentAuthOptions{
		GlobalAccessAuth: pure_utils.EmptyIfNil(requestedAccess.ValueOr(current.GlobalAccessAuth)),
		GlobalActionAuth: pure_utils.EmptyIfNil(requestedAction.ValueOr(current.GlobalActionAuth)),
	}

	// only requested lists are checked, stored rows may hold legacy methods
	for _, auth := range pure_utils.EmptyIfNil(requestedAccess.Value) {
		if !auth.IsValid() {
			return models.DocumentAuthOptions{}, errors.Wrapf(models.BadParameterError,
				"invalid global access auth %q", auth)
		}
	}
	for _, auth := range pure_utils.EmptyIfNil(requestedAction.Value) {
		if !auth.IsValid() {
			return models.DocumentAuthOptions{}, errors.Wrapf(models.BadParameterError,
				"invalid global action auth %q", auth)
		}
	}

	if len(resolved.GlobalActionAuth) > 0 && !flags.Cfr21 {
		return models.DocumentAuthOptions{}, models.ErrActionAuthRequiresCfr21
	}

	return resolved, nil
}
