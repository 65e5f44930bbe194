package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type DocumentVisibility string

const (
	DocumentVisibilityEveryone        DocumentVisibility = "EVERYONE"
	DocumentVisibilityManagerAndAbove DocumentVisibility = "MANAGER_AND_ABOVE"
	DocumentVisibilityAdmin           DocumentVisibility = "ADMIN"
)

var DocumentVisibilities = []DocumentVisibility{
	DocumentVisibilityEveryone,
	DocumentVisibilityManagerAndAbove,
	DocumentVisibilityAdmin,
}

func DocumentVisibilityFrom(s string) (DocumentVisibility, bool) {
	for _, v := range DocumentVisibilities {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"
	DocumentStatusPending   DocumentStatus = "PENDING"
	DocumentStatusCompleted DocumentStatus = "COMPLETED"
	DocumentStatusRejected  DocumentStatus = "REJECTED"
)

type Document struct {
	Id                      int64
	UserId                  int64
	TeamId                  int64
	Title                   string
	ExternalId              null.String
	Visibility              DocumentVisibility
	Status                  DocumentStatus
	AuthOptions             DocumentAuthOptions
	UseLegacyFieldInsertion bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DocumentWithTeam is a document together with the team context of the requesting user.
type DocumentWithTeam struct {
	Document
	Team Team
}

type DocumentUpdateData struct {
	Title                   Optional[string]               `json:"title"`
	ExternalId              Optional[null.String]          `json:"externalId"`
	Visibility              Optional[DocumentVisibility]   `json:"visibility"`
	GlobalAccessAuth        Optional[[]DocumentAccessAuth] `json:"globalAccessAuth"`
	GlobalActionAuth        Optional[[]DocumentActionAuth] `json:"globalActionAuth"`
	UseLegacyFieldInsertion Optional[bool]                 `json:"useLegacyFieldInsertion"`
}

func (d DocumentUpdateData) IsEmpty() bool {
	return !d.Title.Set &&
		!d.ExternalId.Set &&
		!d.Visibility.Set &&
		!d.GlobalAccessAuth.Set &&
		!d.GlobalActionAuth.Set &&
		!d.UseLegacyFieldInsertion.Set
}

type UpdateDocumentInput struct {
	DocumentId      int64
	Data            *DocumentUpdateData
	RequestMetadata RequestMetadata
}

// DocumentUpdateAttributes is what is written to the documents table in one update.
// AuthOptions is always written, resolved against the current value.
type DocumentUpdateAttributes struct {
	DocumentId              int64
	Title                   Optional[string]
	ExternalId              Optional[null.String]
	Visibility              Optional[DocumentVisibility]
	UseLegacyFieldInsertion Optional[bool]
	AuthOptions             DocumentAuthOptions
}

// DocumentAccessFilter restricts a document lookup to what the requesting user may see.
type DocumentAccessFilter struct {
	DocumentId   int64
	TeamId       int64
	UserId       int64
	Visibilities []DocumentVisibility
}
