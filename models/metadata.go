package models

type RequestSource string

const (
	RequestSourceApp   RequestSource = "app"
	RequestSourceApiV1 RequestSource = "apiV1"
	RequestSourceCli   RequestSource = "cli"
)

type AuditUser struct {
	Id    *int64
	Email string
	Name  string
}

// RequestMetadata describes where a call came from. It is copied as is on every
// audit log created by the call.
type RequestMetadata struct {
	IpAddress string
	UserAgent string
	Source    RequestSource
	AuditUser AuditUser
}

func RequestMetadataFromCredentials(creds Credentials, source RequestSource) RequestMetadata {
	userId := creds.ActorIdentity.UserId
	return RequestMetadata{
		Source: source,
		AuditUser: AuditUser{
			Id:    &userId,
			Email: creds.ActorIdentity.Email,
			Name:  creds.ActorIdentity.Name,
		},
	}
}
