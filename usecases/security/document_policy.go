package security

import (
	"github.com/signflow/document-backend/models"

	"github.com/hashicorp/go-set/v2"
)

const (
	DenyReasonVisibilityPermission = "visibility permission"
	DenyReasonNoUpdatePermission   = "no permission to update"
)

var (
	managerVisibilities = set.From([]models.DocumentVisibility{
		models.DocumentVisibilityEveryone,
		models.DocumentVisibilityManagerAndAbove,
	})
	memberVisibilities = set.From([]models.DocumentVisibility{
		models.DocumentVisibilityEveryone,
	})
)

type PolicyVerdict struct {
	Allowed bool
	Reason  string
}

func allow() PolicyVerdict {
	return PolicyVerdict{Allowed: true}
}

func deny(reason string) PolicyVerdict {
	return PolicyVerdict{Reason: reason}
}

// Err returns nil for an allowed verdict, and an error wrapping UnAuthorizedError otherwise.
func (v PolicyVerdict) Err() error {
	switch {
	case v.Allowed:
		return nil
	case v.Reason == DenyReasonVisibilityPermission:
		return models.ErrDocumentVisibilityPermission
	default:
		return models.ErrNoDocumentUpdatePermission
	}
}

// EvaluateDocumentUpdate decides whether the actor may update a document. The current visibility
// always bounds a non-owner, even when the request does not change the visibility.
func EvaluateDocumentUpdate(
	actor models.ActorContext,
	current models.DocumentVisibility,
	requested models.Optional[models.DocumentVisibility],
) PolicyVerdict {
	if actor.IsOwner {
		return allow()
	}

	switch actor.CurrentRole {
	case models.TeamMemberRoleAdmin:
		return allow()
	case models.TeamMemberRoleManager:
		return withinVisibilities(managerVisibilities, current, requested)
	case models.TeamMemberRoleMember:
		return withinVisibilities(memberVisibilities, current, requested)
	default:
		return deny(DenyReasonNoUpdatePermission)
	}
}

func withinVisibilities(
	allowed *set.Set[models.DocumentVisibility],
	current models.DocumentVisibility,
	requested models.Optional[models.DocumentVisibility],
) PolicyVerdict {
	if !allowed.Contains(current) {
		return deny(DenyReasonVisibilityPermission)
	}
	if requested.Set && !allowed.Contains(requested.Value) {
		return deny(DenyReasonVisibilityPermission)
	}
	return allow()
}

// VisibilitiesForRole lists the visibilities a team member with the given role can see on
// documents they do not own.
func VisibilitiesForRole(role models.TeamMemberRole) []models.DocumentVisibility {
	switch role {
	case models.TeamMemberRoleAdmin:
		return models.DocumentVisibilities
	case models.TeamMemberRoleManager:
		return visibilitiesIn(managerVisibilities)
	case models.TeamMemberRoleMember:
		return visibilitiesIn(memberVisibilities)
	default:
		return []models.DocumentVisibility{}
	}
}

// keeps the declaration order of the visibilities, so that queries are stable
func visibilitiesIn(allowed *set.Set[models.DocumentVisibility]) []models.DocumentVisibility {
	visibilities := make([]models.DocumentVisibility, 0, allowed.Size())
	for _, v := range models.DocumentVisibilities {
		if allowed.Contains(v) {
			visibilities = append(visibilities, v)
		}
	}
	return visibilities
}
