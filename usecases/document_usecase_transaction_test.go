package usecases

import (
	"context"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/repositories"
	"github.com/signflow/document-backend/usecases/executor_factory"
	"github.com/signflow/document-backend/usecases/security"
)

// loadedDocumentRepository serves the lookup from memory and sends the writes to the database.
type loadedDocumentRepository struct {
	*repositories.DbRepository
	team     models.Team
	document models.Document
}

func (r loadedDocumentRepository) GetTeamWithMemberRole(ctx context.Context, exec repositories.Executor,
	teamId, userId int64,
) (models.Team, error) {
	return r.team, nil
}

func (r loadedDocumentRepository) GetDocumentForUpdate(ctx context.Context, exec repositories.Executor,
	filter models.DocumentAccessFilter,
) (models.Document, error) {
	return r.document, nil
}

func (r loadedDocumentRepository) GetDocumentById(ctx context.Context, exec repositories.Executor,
	documentId int64,
) (models.Document, error) {
	updated := r.document
	updated.Visibility = models.DocumentVisibilityAdmin
	return updated, nil
}

func buildDocumentUsecaseWithDb() (DocumentUsecase, executor_factory.ExecutorFactoryStub) {
	exec := executor_factory.NewExecutorFactoryStub()
	creds := models.Credentials{ActorIdentity: models.Identity{UserId: 42}, TeamId: 7}
	repository := loadedDocumentRepository{
		DbRepository: repositories.NewDbRepository(),
		team:         models.Team{Id: 7, CurrentTeamRole: models.TeamMemberRoleAdmin},
		document: models.Document{
			Id:         1,
			UserId:     3,
			TeamId:     7,
			Title:      "Contract",
			Visibility: models.DocumentVisibilityEveryone,
			Status:     models.DocumentStatusDraft,
		},
	}

	uc := NewDocumentUsecase(
		&security.EnforceSecurityDocumentImpl{
			EnforceSecurity: &security.EnforceSecurityImpl{Credentials: creds},
			Credentials:     creds,
		},
		exec,
		exec,
		repository,
		creds,
	)
	return uc, exec
}

func updateToAdminVisibility() models.UpdateDocumentInput {
	return models.UpdateDocumentInput{
		DocumentId: 1,
		Data:       &models.DocumentUpdateData{Visibility: models.Some(models.DocumentVisibilityAdmin)},
		RequestMetadata: models.RequestMetadata{
			IpAddress: "10.0.0.1",
			UserAgent: "test-agent",
			Source:    models.RequestSourceApiV1,
		},
	}
}

func TestUpdateDocument_CommitsDocumentAndAuditLogsTogether(t *testing.T) {
	uc, exec := buildDocumentUsecaseWithDb()

	exec.Mock.ExpectBegin()
	exec.Mock.ExpectExec(`UPDATE documents SET visibility = \$1, auth_options = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("ADMIN", pgxmock.AnyArg(), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	exec.Mock.ExpectExec(`INSERT INTO document_audit_logs`).
		WithArgs(pgxmock.AnyArg(), "DOCUMENT_VISIBILITY_UPDATED", int64(1), pgxmock.AnyArg(),
			(*string)(nil), (*string)(nil), null.StringFrom("10.0.0.1").Ptr(), null.StringFrom("test-agent").Ptr(),
			pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	exec.Mock.ExpectCommit()
	// deferred rollback of pgx.BeginFunc, a no-op on a committed transaction
	exec.Mock.ExpectRollback()

	document, err := uc.UpdateDocument(context.Background(), updateToAdminVisibility())

	require.NoError(t, err)
	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.Equal(t, models.DocumentVisibilityAdmin, document.Visibility)
}

func TestUpdateDocument_RollsBackWhenAuditLogInsertFails(t *testing.T) {
	uc, exec := buildDocumentUsecaseWithDb()

	exec.Mock.ExpectBegin()
	exec.Mock.ExpectExec(`UPDATE documents SET visibility = \$1`).
		WithArgs("ADMIN", pgxmock.AnyArg(), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	exec.Mock.ExpectExec(`INSERT INTO document_audit_logs`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	exec.Mock.ExpectRollback()
	exec.Mock.ExpectRollback()

	_, err := uc.UpdateDocument(context.Background(), updateToAdminVisibility())

	assert.ErrorIs(t, err, models.NotFoundError)
	assert.NoError(t, exec.Mock.ExpectationsWereMet())
}

func TestUpdateDocument_RollsBackWhenDocumentUpdateFails(t *testing.T) {
	uc, exec := buildDocumentUsecaseWithDb()

	exec.Mock.ExpectBegin()
	exec.Mock.ExpectExec(`UPDATE documents`).
		WithArgs("ADMIN", pgxmock.AnyArg(), int64(1)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	exec.Mock.ExpectRollback()
	exec.Mock.ExpectRollback()

	_, err := uc.UpdateDocument(context.Background(), updateToAdminVisibility())

	assert.Error(t, err)
	assert.NoError(t, exec.Mock.ExpectationsWereMet())
}
