package models

type Identity struct {
	UserId int64
	Email  string
	Name   string
}

type Credentials struct {
	ActorIdentity Identity // user performing the call, for audit log
	TeamId        int64
}
