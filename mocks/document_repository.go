package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/repositories"
)

type DocumentRepository struct {
	mock.Mock
}

func (r *DocumentRepository) GetTeamWithMemberRole(ctx context.Context, exec repositories.Executor,
	teamId, userId int64,
) (models.Team, error) {
	args := r.Called(ctx, exec, teamId, userId)
	return args.Get(0).(models.Team), args.Error(1)
}

func (r *DocumentRepository) GetDocumentForUpdate(ctx context.Context, exec repositories.Executor,
	filter models.DocumentAccessFilter,
) (models.Document, error) {
	args := r.Called(ctx, exec, filter)
	return args.Get(0).(models.Document), args.Error(1)
}

func (r *DocumentRepository) GetDocumentById(ctx context.Context, exec repositories.Executor,
	documentId int64,
) (models.Document, error) {
	args := r.Called(ctx, exec, documentId)
	return args.Get(0).(models.Document), args.Error(1)
}

func (r *DocumentRepository) UpdateDocument(ctx context.Context, exec repositories.Executor,
	attributes models.DocumentUpdateAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *DocumentRepository) CreateDocumentAuditLogs(ctx context.Context, exec repositories.Executor,
	logs []models.DocumentAuditLog,
) error {
	args := r.Called(ctx, exec, logs)
	return args.Error(0)
}

func (r *DocumentRepository) ListDocumentAuditLogs(ctx context.Context, exec repositories.Executor,
	documentId int64,
) ([]models.DocumentAuditLog, error) {
	args := r.Called(ctx, exec, documentId)
	return args.Get(0).([]models.DocumentAuditLog), args.Error(1)
}
