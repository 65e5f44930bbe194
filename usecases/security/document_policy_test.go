package security_test

import (
	"testing"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/usecases/security"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

var (
	everyone = models.DocumentVisibilityEveryone
	managers = models.DocumentVisibilityManagerAndAbove
	admins   = models.DocumentVisibilityAdmin
)

func TestEvaluateDocumentUpdate_OwnerOverride(t *testing.T) {
	roles := []models.TeamMemberRole{
		models.TeamMemberRoleAdmin,
		models.TeamMemberRoleManager,
		models.TeamMemberRoleMember,
		"",
		"GUEST",
	}
	requested := []models.Optional[models.DocumentVisibility]{
		models.None[models.DocumentVisibility](),
		models.Some(everyone),
		models.Some(managers),
		models.Some(admins),
	}

	for _, role := range roles {
		for _, current := range models.DocumentVisibilities {
			for _, req := range requested {
				verdict := security.EvaluateDocumentUpdate(
					models.ActorContext{IsOwner: true, CurrentRole: role}, current, req)
				assert.True(t, verdict.Allowed, "role %s, current %s, requested %+v", role, current, req)
				assert.NoError(t, verdict.Err())
			}
		}
	}
}

func TestEvaluateDocumentUpdate_NonOwner(t *testing.T) {
	tests := []struct {
		name      string
		role      models.TeamMemberRole
		current   models.DocumentVisibility
		requested models.Optional[models.DocumentVisibility]
		allowed   bool
		reason    string
	}{
		{
			name:    "admin on admin document",
			role:    models.TeamMemberRoleAdmin,
			current: admins,
			allowed: true,
		},
		{
			name:      "admin moves a document to everyone",
			role:      models.TeamMemberRoleAdmin,
			current:   admins,
			requested: models.Some(everyone),
			allowed:   true,
		},
		{
			name:      "manager inside the manager tier",
			role:      models.TeamMemberRoleManager,
			current:   everyone,
			requested: models.Some(managers),
			allowed:   true,
		},
		{
			name:      "manager raises a document to admin",
			role:      models.TeamMemberRoleManager,
			current:   managers,
			requested: models.Some(admins),
			reason:    security.DenyReasonVisibilityPermission,
		},
		{
			name:    "manager edits an admin document without touching visibility",
			role:    models.TeamMemberRoleManager,
			current: admins,
			reason:  security.DenyReasonVisibilityPermission,
		},
		{
			name:      "manager lowers an admin document",
			role:      models.TeamMemberRoleManager,
			current:   admins,
			requested: models.Some(everyone),
			reason:    security.DenyReasonVisibilityPermission,
		},
		{
			name:    "member on an everyone document",
			role:    models.TeamMemberRoleMember,
			current: everyone,
			allowed: true,
		},
		{
			name:      "member keeps everyone",
			role:      models.TeamMemberRoleMember,
			current:   everyone,
			requested: models.Some(everyone),
			allowed:   true,
		},
		{
			name:      "member raises a document to managers",
			role:      models.TeamMemberRoleMember,
			current:   everyone,
			requested: models.Some(managers),
			reason:    security.DenyReasonVisibilityPermission,
		},
		{
			name:    "member on a manager document",
			role:    models.TeamMemberRoleMember,
			current: managers,
			reason:  security.DenyReasonVisibilityPermission,
		},
		{
			name:    "no team role",
			role:    "",
			current: everyone,
			reason:  security.DenyReasonNoUpdatePermission,
		},
		{
			name:    "unknown role",
			role:    "GUEST",
			current: everyone,
			reason:  security.DenyReasonNoUpdatePermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := security.EvaluateDocumentUpdate(
				models.ActorContext{IsOwner: false, CurrentRole: tt.role}, tt.current, tt.requested)

			assert.Equal(t, tt.allowed, verdict.Allowed)
			assert.Equal(t, tt.reason, verdict.Reason)
			if tt.allowed {
				assert.NoError(t, verdict.Err())
			} else {
				assert.True(t, errors.Is(verdict.Err(), models.UnAuthorizedError))
			}
		})
	}
}

func TestPolicyVerdict_Err(t *testing.T) {
	verdict := security.EvaluateDocumentUpdate(
		models.ActorContext{CurrentRole: models.TeamMemberRoleMember}, everyone, models.Some(admins))
	assert.ErrorIs(t, verdict.Err(), models.ErrDocumentVisibilityPermission)

	verdict = security.EvaluateDocumentUpdate(models.ActorContext{}, everyone, models.None[models.DocumentVisibility]())
	assert.ErrorIs(t, verdict.Err(), models.ErrNoDocumentUpdatePermission)
}

func TestVisibilitiesForRole(t *testing.T) {
	assert.Equal(t, []models.DocumentVisibility{everyone, managers, admins},
		security.VisibilitiesForRole(models.TeamMemberRoleAdmin))
	assert.Equal(t, []models.DocumentVisibility{everyone, managers},
		security.VisibilitiesForRole(models.TeamMemberRoleManager))
	assert.Equal(t, []models.DocumentVisibility{everyone},
		security.VisibilitiesForRole(models.TeamMemberRoleMember))
	assert.Empty(t, security.VisibilitiesForRole(""))
}
