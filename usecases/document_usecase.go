package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/repositories"
	"github.com/signflow/document-backend/usecases/documents"
	"github.com/signflow/document-backend/usecases/executor_factory"
	"github.com/signflow/document-backend/usecases/security"
	"github.com/signflow/document-backend/utils"

	"github.com/prometheus/client_golang/prometheus"
)

type DocumentUsecaseRepository interface {
	GetTeamWithMemberRole(ctx context.Context, exec repositories.Executor, teamId, userId int64) (models.Team, error)
	GetDocumentForUpdate(ctx context.Context, exec repositories.Executor,
		filter models.DocumentAccessFilter) (models.Document, error)
	GetDocumentById(ctx context.Context, exec repositories.Executor, documentId int64) (models.Document, error)
	UpdateDocument(ctx context.Context, exec repositories.Executor, attributes models.DocumentUpdateAttributes) error
	CreateDocumentAuditLogs(ctx context.Context, exec repositories.Executor, logs []models.DocumentAuditLog) error
	ListDocumentAuditLogs(ctx context.Context, exec repositories.Executor, documentId int64) ([]models.DocumentAuditLog, error)
}

type DocumentUsecase struct {
	enforceSecurity    security.EnforceSecurityDocument
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         DocumentUsecaseRepository
	credentials        models.Credentials
}

func NewDocumentUsecase(
	enforceSecurity security.EnforceSecurityDocument,
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	repository DocumentUsecaseRepository,
	credentials models.Credentials,
) DocumentUsecase {
	return DocumentUsecase{
		enforceSecurity:    enforceSecurity,
		executorFactory:    executorFactory,
		transactionFactory: transactionFactory,
		repository:         repository,
		credentials:        credentials,
	}
}

// getDocumentWithTeam reads the document through the access filter of the current user. A document
// that exists but is out of reach of the user is reported as not found.
func (usecase DocumentUsecase) getDocumentWithTeam(ctx context.Context, documentId int64) (models.DocumentWithTeam, error) {
	exec := usecase.executorFactory.NewExecutor()
	userId := usecase.credentials.ActorIdentity.UserId

	team, err := usecase.repository.GetTeamWithMemberRole(ctx, exec, usecase.credentials.TeamId, userId)
	if err != nil {
		return models.DocumentWithTeam{}, err
	}

	document, err := usecase.repository.GetDocumentForUpdate(ctx, exec,
		documents.AccessFilter(team, userId, documentId))
	if err != nil {
		return models.DocumentWithTeam{}, err
	}

	return models.DocumentWithTeam{Document: document, Team: team}, nil
}

func (usecase DocumentUsecase) GetDocument(ctx context.Context, documentId int64) (models.Document, error) {
	document, err := usecase.getDocumentWithTeam(ctx, documentId)
	if err != nil {
		return models.Document{}, err
	}
	return document.Document, nil
}

func (usecase DocumentUsecase) ListDocumentAuditLogs(ctx context.Context, documentId int64) ([]models.DocumentAuditLog, error) {
	document, err := usecase.getDocumentWithTeam(ctx, documentId)
	if err != nil {
		return nil, err
	}
	if err := usecase.enforceSecurity.ReadDocumentAuditLogs(document); err != nil {
		return nil, err
	}
	return usecase.repository.ListDocumentAuditLogs(ctx, usecase.executorFactory.NewExecutor(), documentId)
}

// UpdateDocument applies a partial update to a document and records one audit log per effective
// field change. The document and its audit logs are written in the same transaction.
// An empty request, or a request that changes nothing, returns the document as is.
func (usecase DocumentUsecase) UpdateDocument(ctx context.Context, input models.UpdateDocumentInput) (models.Document, error) {
	logger := utils.LoggerFromContext(ctx)
	start := time.Now()

	document, err := usecase.getDocumentWithTeam(ctx, input.DocumentId)
	if err != nil {
		return models.Document{}, err
	}

	data := models.DocumentUpdateData{}
	if input.Data != nil {
		data = *input.Data
	}

	if err := usecase.enforceSecurity.UpdateDocument(document, data.Visibility); err != nil {
		usecase.countOutcome(utils.DocumentUpdateOutcomeRejected)
		return models.Document{}, err
	}

	if data.IsEmpty() {
		usecase.countOutcome(utils.DocumentUpdateOutcomeUnchanged)
		return document.Document, nil
	}

	authOptions, err := documents.ResolveAuthOptions(
		document.AuthOptions,
		data.GlobalAccessAuth,
		data.GlobalActionAuth,
		document.Team.OrganisationClaim.Flags,
	)
	if err != nil {
		usecase.countOutcome(utils.DocumentUpdateOutcomeRejected)
		return models.Document{}, err
	}

	changes, err := documents.DetectDocumentChanges(document.Document, data, authOptions)
	if err != nil {
		usecase.countOutcome(utils.DocumentUpdateOutcomeRejected)
		return models.Document{}, err
	}

	// the legacy field insertion flag is not audited, but is still a reason to write
	if len(changes) == 0 && !data.UseLegacyFieldInsertion.Set {
		usecase.countOutcome(utils.DocumentUpdateOutcomeUnchanged)
		return document.Document, nil
	}

	auditLogs := make([]models.DocumentAuditLog, 0, len(changes))
	for _, change := range changes {
		auditLogs = append(auditLogs, models.NewDocumentAuditLog(document.Id, change, input.RequestMetadata))
	}

	updated, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Document, error) {
			err := usecase.repository.UpdateDocument(ctx, tx, models.DocumentUpdateAttributes{
				DocumentId:              document.Id,
				Title:                   data.Title,
				ExternalId:              data.ExternalId,
				Visibility:              data.Visibility,
				UseLegacyFieldInsertion: data.UseLegacyFieldInsertion,
				AuthOptions:             authOptions,
			})
			if err != nil {
				return models.Document{}, err
			}

			if err := usecase.repository.CreateDocumentAuditLogs(ctx, tx, auditLogs); err != nil {
				return models.Document{}, err
			}

			return usecase.repository.GetDocumentById(ctx, tx, document.Id)
		})
	if err != nil {
		return models.Document{}, err
	}

	usecase.countOutcome(utils.DocumentUpdateOutcomeUpdated)
	utils.MetricDocumentUpdateLatency.Observe(time.Since(start).Seconds())
	for _, log := range auditLogs {
		utils.MetricDocumentAuditLogsCreated.With(prometheus.Labels{"type": string(log.Type)}).Inc()
	}

	logger.InfoContext(ctx, fmt.Sprintf("updated document %d", updated.Id),
		"document_id", updated.Id,
		"audit_logs", len(auditLogs),
		"source", input.RequestMetadata.Source,
	)

	return updated, nil
}

func (usecase DocumentUsecase) countOutcome(outcome string) {
	utils.MetricDocumentUpdates.With(prometheus.Labels{"outcome": outcome}).Inc()
}
