package repositories

import (
	"context"
	"fmt"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/pure_utils"
	"github.com/signflow/document-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
)

// GetDocumentForUpdate reads a document through the access filter of the requesting user:
// the user owns it, or its visibility is one the user's team role can see.
func (repo *DbRepository) GetDocumentForUpdate(ctx context.Context, exec Executor,
	filter models.DocumentAccessFilter,
) (models.Document, error) {
	query := NewQueryBuilder().
		Select(columnsNames("d", dbmodels.SelectDocumentColumns)...).
		From(fmt.Sprintf("%s AS d", dbmodels.TABLE_DOCUMENTS)).
		Where(squirrel.Eq{"d.id": filter.DocumentId}).
		Where(squirrel.Eq{"d.team_id": filter.TeamId}).
		Where(squirrel.Eq{"d.deleted_at": nil}).
		Where(squirrel.Or{
			squirrel.Eq{"d.user_id": filter.UserId},
			squirrel.Eq{"d.visibility": pure_utils.Strings(filter.Visibilities)},
		})

	document, err := SqlToModel(ctx, exec, query, dbmodels.AdaptDocument)
	if errors.Is(err, models.NotFoundError) {
		return models.Document{}, models.ErrDocumentNotFound
	}
	return document, err
}

func (repo *DbRepository) GetDocumentById(ctx context.Context, exec Executor, documentId int64) (models.Document, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectDocumentColumns...).
		From(dbmodels.TABLE_DOCUMENTS).
		Where(squirrel.Eq{"id": documentId}).
		Where(squirrel.Eq{"deleted_at": nil})

	document, err := SqlToModel(ctx, exec, query, dbmodels.AdaptDocument)
	if errors.Is(err, models.NotFoundError) {
		return models.Document{}, models.ErrDocumentNotFound
	}
	return document, err
}

// UpdateDocument writes the provided fields only. Auth options are always written.
func (repo *DbRepository) UpdateDocument(ctx context.Context, exec Executor,
	attributes models.DocumentUpdateAttributes,
) error {
	authOptions, err := dbmodels.EncodeDocumentAuthOptions(attributes.AuthOptions)
	if err != nil {
		return err
	}

	query := NewQueryBuilder().Update(dbmodels.TABLE_DOCUMENTS)
	if attributes.Title.Set {
		query = query.Set("title", attributes.Title.Value)
	}
	if attributes.ExternalId.Set {
		query = query.Set("external_id", attributes.ExternalId.Value)
	}
	if attributes.Visibility.Set {
		query = query.Set("visibility", string(attributes.Visibility.Value))
	}
	if attributes.UseLegacyFieldInsertion.Set {
		query = query.Set("use_legacy_field_insertion", attributes.UseLegacyFieldInsertion.Value)
	}
	query = query.
		Set("auth_options", authOptions).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": attributes.DocumentId})

	rowsAffected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrDocumentNotFound
	}
	return nil
}
