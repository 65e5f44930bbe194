package dto

import (
	"time"

	"github.com/signflow/document-backend/models"

	"github.com/google/uuid"
)

type APIDocumentAuditLog struct {
	Id         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	DocumentId int64     `json:"documentId"`

	UserId *int64 `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`

	IpAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`

	Data      models.DocumentFieldChange `json:"data"`
	CreatedAt time.Time                  `json:"createdAt"`
}

func AdaptDocumentAuditLogDto(l models.DocumentAuditLog) APIDocumentAuditLog {
	return APIDocumentAuditLog{
		Id:         l.Id,
		Type:       string(l.Type),
		DocumentId: l.DocumentId,
		UserId:     l.UserId,
		Email:      l.Email,
		Name:       l.Name,
		IpAddress:  l.IpAddress,
		UserAgent:  l.UserAgent,
		Data:       l.Data,
		CreatedAt:  l.CreatedAt,
	}
}
