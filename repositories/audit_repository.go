package repositories

import (
	"context"
	"encoding/json"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
)

// CreateDocumentAuditLogs inserts all the logs in one statement. It is meant to be called
// with the transaction that also updates the document.
func (repo *DbRepository) CreateDocumentAuditLogs(ctx context.Context, exec Executor,
	logs []models.DocumentAuditLog,
) error {
	if len(logs) == 0 {
		return nil
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_DOCUMENT_AUDIT_LOGS).
		Columns(dbmodels.InsertDocumentAuditLogColumns...)

	for _, log := range logs {
		data, err := json.Marshal(log.Data)
		if err != nil {
			return errors.Wrapf(err, "error marshalling data of document audit log %s", log.Type)
		}
		query = query.Values(
			log.Id,
			string(log.Type),
			log.DocumentId,
			log.UserId,
			nullIfEmpty(log.Email),
			nullIfEmpty(log.Name),
			nullIfEmpty(log.IpAddress),
			nullIfEmpty(log.UserAgent),
			data,
		)
	}

	_, err := ExecBuilder(ctx, exec, query)
	switch {
	case IsForeignKeyViolationError(err):
		return errors.Wrap(models.ErrDocumentNotFound, "document was deleted before its audit logs were written")
	case IsUniqueViolationError(err):
		return errors.Wrap(models.ConflictError, "document audit log already exists")
	}
	return err
}

func (repo *DbRepository) ListDocumentAuditLogs(ctx context.Context, exec Executor, documentId int64) ([]models.DocumentAuditLog, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectDocumentAuditLogColumns...).
		From(dbmodels.TABLE_DOCUMENT_AUDIT_LOGS).
		Where(squirrel.Eq{"document_id": documentId}).
		OrderBy("created_at DESC", "id DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptDocumentAuditLog)
}

// unknown actor or request details are stored as NULL
func nullIfEmpty(s string) *string {
	return null.NewString(s, s != "").Ptr()
}
