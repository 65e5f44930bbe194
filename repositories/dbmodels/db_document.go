package dbmodels

import (
	"time"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/utils"

	"github.com/guregu/null/v5"
)

type DBDocument struct {
	Id                      int64       `db:"id"`
	UserId                  int64       `db:"user_id"`
	TeamId                  int64       `db:"team_id"`
	Title                   string      `db:"title"`
	ExternalId              null.String `db:"external_id"`
	Visibility              string      `db:"visibility"`
	Status                  string      `db:"status"`
	AuthOptions             []byte      `db:"auth_options"`
	UseLegacyFieldInsertion bool        `db:"use_legacy_field_insertion"`
	CreatedAt               time.Time   `db:"created_at"`
	UpdatedAt               time.Time   `db:"updated_at"`
}

const TABLE_DOCUMENTS = "documents"

var SelectDocumentColumns = utils.ColumnList[DBDocument]()

func AdaptDocument(db DBDocument) (models.Document, error) {
	authOptions, err := AdaptDocumentAuthOptions(db.AuthOptions)
	if err != nil {
		return models.Document{}, err
	}

	return models.Document{
		Id:                      db.Id,
		UserId:                  db.UserId,
		TeamId:                  db.TeamId,
		Title:                   db.Title,
		ExternalId:              db.ExternalId,
		Visibility:              models.DocumentVisibility(db.Visibility),
		Status:                  models.DocumentStatus(db.Status),
		AuthOptions:             authOptions,
		UseLegacyFieldInsertion: db.UseLegacyFieldInsertion,
		CreatedAt:               db.CreatedAt,
		UpdatedAt:               db.UpdatedAt,
	}, nil
}
