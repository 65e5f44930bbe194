package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentAuditLogType string

const (
	DocumentAuditLogTitleUpdated            DocumentAuditLogType = "DOCUMENT_TITLE_UPDATED"
	DocumentAuditLogExternalIdUpdated       DocumentAuditLogType = "DOCUMENT_EXTERNAL_ID_UPDATED"
	DocumentAuditLogGlobalAuthAccessUpdated DocumentAuditLogType = "DOCUMENT_GLOBAL_AUTH_ACCESS_UPDATED"
	DocumentAuditLogGlobalAuthActionUpdated DocumentAuditLogType = "DOCUMENT_GLOBAL_AUTH_ACTION_UPDATED"
	DocumentAuditLogVisibilityUpdated       DocumentAuditLogType = "DOCUMENT_VISIBILITY_UPDATED"
)

// DocumentFieldChange is the payload of a field update audit log.
type DocumentFieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// DocumentFieldChangeRecord is one effective change found by comparing a request to a document.
type DocumentFieldChangeRecord struct {
	Type   DocumentAuditLogType
	Change DocumentFieldChange
}

type DocumentAuditLog struct {
	Id         uuid.UUID
	Type       DocumentAuditLogType
	DocumentId int64

	UserId *int64
	Email  string
	Name   string

	IpAddress string
	UserAgent string

	Data      DocumentFieldChange
	CreatedAt time.Time
}

// NewDocumentAuditLog stamps a change record with the request metadata of the call.
func NewDocumentAuditLog(documentId int64, record DocumentFieldChangeRecord, metadata RequestMetadata) DocumentAuditLog {
	return DocumentAuditLog{
		Id:         uuid.New(),
		Type:       record.Type,
		DocumentId: documentId,
		UserId:     metadata.AuditUser.Id,
		Email:      metadata.AuditUser.Email,
		Name:       metadata.AuditUser.Name,
		IpAddress:  metadata.IpAddress,
		UserAgent:  metadata.UserAgent,
		Data:       record.Change,
	}
}
