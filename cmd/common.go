package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/signflow/document-backend/infra"
	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/repositories"
	"github.com/signflow/document-backend/usecases"
	"github.com/signflow/document-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
)

// DocumentCommandUser identifies the user a document command runs as.
type DocumentCommandUser struct {
	UserId    int64  `validate:"gt=0"`
	UserEmail string `validate:"omitempty,email"`
	UserName  string
	TeamId    int64 `validate:"gt=0"`
}

func (u DocumentCommandUser) validate() error {
	if err := validator.New().Struct(u); err != nil {
		return errors.Wrap(models.BadParameterError, err.Error())
	}
	return nil
}

func (u DocumentCommandUser) credentials() models.Credentials {
	return models.Credentials{
		ActorIdentity: models.Identity{
			UserId: u.UserId,
			Email:  u.UserEmail,
			Name:   u.UserName,
		},
		TeamId: u.TeamId,
	}
}

type documentCommand struct {
	ctx     context.Context
	logger  *slog.Logger
	creds   models.Credentials
	usecase usecases.DocumentUsecase
}

// setupDocumentCommand reads the configuration, connects to the database and builds the document
// usecase for the user. The returned function releases everything and must always be called.
func setupDocumentCommand(compiledConfig CompiledConfig, user DocumentCommandUser) (documentCommand, func(), error) {
	serverConfig := serverConfigFromEnv()
	pgConfig := pgConfigFromEnv()

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	noop := func() {}

	if err := serverConfig.Validate(); err != nil {
		logger.ErrorContext(ctx, err.Error())
		return documentCommand{}, noop, err
	}
	if err := user.validate(); err != nil {
		logger.ErrorContext(ctx, err.Error())
		return documentCommand{}, noop, err
	}

	infra.SetupSentry(serverConfig.sentryDsn, serverConfig.env, compiledConfig.Version)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(), pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		sentry.Flush(3 * time.Second)
		return documentCommand{}, noop, err
	}

	creds := user.credentials()
	ctx = utils.StoreCredentialsInContext(ctx, creds)
	uc := usecases.NewUsecasesWithCreds(usecases.NewUsecases(repositories.NewRepositories(pool)), creds)

	cleanup := func() {
		pool.Close()
		pushMetrics(ctx, serverConfig.metrics)
		sentry.Flush(3 * time.Second)
	}

	return documentCommand{
		ctx:     ctx,
		logger:  logger,
		creds:   creds,
		usecase: uc.NewDocumentUsecase(),
	}, cleanup, nil
}

// reportError logs rejected requests as warnings and reports anything else to sentry.
func (c documentCommand) reportError(err error, documentId int64) {
	if isExpectedError(err) {
		c.logger.WarnContext(c.ctx, err.Error(), "document_id", documentId)
		return
	}
	utils.LogAndReportSentryError(c.ctx, err)
}

// errors that describe a rejected request rather than a failure of the service
func isExpectedError(err error) bool {
	return errors.Is(err, models.NotFoundError) ||
		errors.Is(err, models.UnAuthorizedError) ||
		errors.Is(err, models.ForbiddenError) ||
		errors.Is(err, models.BadParameterError)
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(value), "error writing the output")
}
