package documents

import (
	"slices"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/pure_utils"

	"github.com/guregu/null/v5"
)

// DetectDocumentChanges lists the effective changes a request makes to a document, in the order
// title, external id, global access auth, global action auth, visibility. A field that was not
// provided, or that is equal to the current value, is not a change. The auth lists are compared
// against the resolved auth options, element by element and in order, so [A, B] and [B, A] differ.
//
// Changing the title of a document that is no longer a draft fails before anything is recorded.
func DetectDocumentChanges(
	document models.Document,
	data models.DocumentUpdateData,
	resolvedAuthOptions models.DocumentAuthOptions,
) ([]models.DocumentFieldChangeRecord, error) {
	titleChanged := data.Title.Set && data.Title.Value != document.Title
	if titleChanged && document.Status != models.DocumentStatusDraft {
		return nil, models.ErrDocumentTitleLocked
	}

	changes := make([]models.DocumentFieldChangeRecord, 0)

	if titleChanged {
		changes = append(changes, change(models.DocumentAuditLogTitleUpdated,
			document.Title, data.Title.Value))
	}

	if data.ExternalId.Set && !sameNullString(document.ExternalId, data.ExternalId.Value) {
		changes = append(changes, change(models.DocumentAuditLogExternalIdUpdated,
			document.ExternalId.Ptr(), data.ExternalId.Value.ValueOrZero()))
	}

	current := document.AuthOptions
	if data.GlobalAccessAuth.Set && !slices.Equal(current.GlobalAccessAuth, resolvedAuthOptions.GlobalAccessAuth) {
		changes = append(changes, change(models.DocumentAuditLogGlobalAuthAccessUpdated,
			pure_utils.EmptyIfNil(current.GlobalAccessAuth), resolvedAuthOptions.GlobalAccessAuth))
	}
	if data.GlobalActionAuth.Set && !slices.Equal(current.GlobalActionAuth, resolvedAuthOptions.GlobalActionAuth) {
		changes = append(changes, change(models.DocumentAuditLogGlobalAuthActionUpdated,
			pure_utils.EmptyIfNil(current.GlobalActionAuth), resolvedAuthOptions.GlobalActionAuth))
	}

	if data.Visibility.Set && data.Visibility.Value != document.Visibility {
		changes = append(changes, change(models.DocumentAuditLogVisibilityUpdated,
			document.Visibility, data.Visibility.Value))
	}

	return changes, nil
}

func change(logType models.DocumentAuditLogType, from, to any) models.DocumentFieldChangeRecord {
	return models.DocumentFieldChangeRecord{
		Type:   logType,
		Change: models.DocumentFieldChange{From: from, To: to},
	}
}

func sameNullString(a, b null.String) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.String == b.String
}
