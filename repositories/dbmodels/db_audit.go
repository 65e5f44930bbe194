package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/pure_utils"
	"github.com/signflow/document-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type DBDocumentAuditLog struct {
	Id         uuid.UUID       `db:"id"`
	Type       string          `db:"type"`
	DocumentId int64           `db:"document_id"`
	UserId     *int64          `db:"user_id"`
	Email      *string         `db:"email"`
	Name       *string         `db:"name"`
	IpAddress  *string         `db:"ip_address"`
	UserAgent  *string         `db:"user_agent"`
	Data       json.RawMessage `db:"data"`
	CreatedAt  time.Time       `db:"created_at"`
}

const TABLE_DOCUMENT_AUDIT_LOGS = "document_audit_logs"

var SelectDocumentAuditLogColumns = utils.ColumnList[DBDocumentAuditLog]()

// InsertDocumentAuditLogColumns leaves created_at to the database default.
var InsertDocumentAuditLogColumns = SelectDocumentAuditLogColumns[:len(SelectDocumentAuditLogColumns)-1]

func AdaptDocumentAuditLog(db DBDocumentAuditLog) (models.DocumentAuditLog, error) {
	var data models.DocumentFieldChange
	if len(db.Data) > 0 {
		if err := json.Unmarshal(db.Data, &data); err != nil {
			return models.DocumentAuditLog{}, errors.Wrapf(err,
				"error unmarshalling data of document audit log %s", db.Id)
		}
	}

	return models.DocumentAuditLog{
		Id:         db.Id,
		Type:       models.DocumentAuditLogType(db.Type),
		DocumentId: db.DocumentId,
		UserId:     db.UserId,
		Email:      pure_utils.PtrValueOrDefault(db.Email, ""),
		Name:       pure_utils.PtrValueOrDefault(db.Name, ""),
		IpAddress:  pure_utils.PtrValueOrDefault(db.IpAddress, ""),
		UserAgent:  pure_utils.PtrValueOrDefault(db.UserAgent, ""),
		Data:       data,
		CreatedAt:  db.CreatedAt,
	}, nil
}
