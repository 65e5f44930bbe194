package models

type TeamMemberRole string

const (
	TeamMemberRoleAdmin   TeamMemberRole = "ADMIN"
	TeamMemberRoleManager TeamMemberRole = "MANAGER"
	TeamMemberRoleMember  TeamMemberRole = "MEMBER"
)

func (r TeamMemberRole) String() string {
	if r == "" {
		return "NO_ROLE"
	}
	return string(r)
}

type OrganisationClaimFlags struct {
	Cfr21 bool
}

type OrganisationClaim struct {
	Flags OrganisationClaimFlags
}

type Team struct {
	Id                int64
	OrganisationId    string
	CurrentTeamRole   TeamMemberRole
	OrganisationClaim OrganisationClaim
}

// ActorContext is what the update policy knows about the actor for one document.
type ActorContext struct {
	IsOwner     bool
	CurrentRole TeamMemberRole
}
