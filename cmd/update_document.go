package cmd

import (
	"io"
	"os"

	"github.com/signflow/document-backend/dto"
	"github.com/signflow/document-backend/models"

	"github.com/cockroachdb/errors"
)

const cliUserAgent = "document-backend-cli"

// RunUpdateDocument applies one document update request as the given user, and writes the
// updated document as JSON to out. file is the path of the JSON request, "-" for stdin.
func RunUpdateDocument(compiledConfig CompiledConfig, user DocumentCommandUser, documentId int64,
	file string, out io.Writer,
) error {
	command, cleanup, err := setupDocumentCommand(compiledConfig, user)
	defer cleanup()
	if err != nil {
		return err
	}

	raw, err := readRequest(file)
	if err != nil {
		command.logger.ErrorContext(command.ctx, err.Error())
		return err
	}
	data, err := dto.ParseUpdateDocumentBody(raw)
	if err != nil {
		command.reportError(err, documentId)
		return err
	}

	metadata := models.RequestMetadataFromCredentials(command.creds, models.RequestSourceCli)
	metadata.UserAgent = cliUserAgent

	document, err := command.usecase.UpdateDocument(command.ctx, models.UpdateDocumentInput{
		DocumentId:      documentId,
		Data:            &data,
		RequestMetadata: metadata,
	})
	if err != nil {
		command.reportError(err, documentId)
		return err
	}

	return writeJSON(out, dto.AdaptDocumentDto(document))
}

func readRequest(file string) ([]byte, error) {
	if file == "" {
		return nil, errors.Wrap(models.BadParameterError, "a request file is required, use - for stdin")
	}
	if file == "-" {
		raw, err := io.ReadAll(os.Stdin)
		return raw, errors.Wrap(err, "error reading the request from stdin")
	}
	raw, err := os.ReadFile(file)
	return raw, errors.Wrapf(err, "error reading the request file %s", file)
}
