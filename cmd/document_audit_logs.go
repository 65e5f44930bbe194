package cmd

import (
	"io"

	"github.com/signflow/document-backend/dto"
	"github.com/signflow/document-backend/pure_utils"
)

// RunListDocumentAuditLogs writes the audit trail of a document as JSON to out, newest first.
func RunListDocumentAuditLogs(compiledConfig CompiledConfig, user DocumentCommandUser, documentId int64,
	out io.Writer,
) error {
	command, cleanup, err := setupDocumentCommand(compiledConfig, user)
	defer cleanup()
	if err != nil {
		return err
	}

	logs, err := command.usecase.ListDocumentAuditLogs(command.ctx, documentId)
	if err != nil {
		command.reportError(err, documentId)
		return err
	}

	return writeJSON(out, pure_utils.Map(logs, dto.AdaptDocumentAuditLogDto))
}
