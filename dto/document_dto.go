package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/pure_utils"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"
)

type APIDocumentAuthOptions struct {
	GlobalAccessAuth []string `json:"globalAccessAuth"`
	GlobalActionAuth []string `json:"globalActionAuth"`
}

type APIDocument struct {
	Id                      int64                  `json:"id"`
	UserId                  int64                  `json:"userId"`
	TeamId                  int64                  `json:"teamId"`
	Title                   string                 `json:"title"`
	ExternalId              null.String            `json:"externalId"`
	Visibility              string                 `json:"visibility"`
	Status                  string                 `json:"status"`
	AuthOptions             APIDocumentAuthOptions `json:"authOptions"`
	UseLegacyFieldInsertion bool                   `json:"useLegacyFieldInsertion"`
	CreatedAt               time.Time              `json:"createdAt"`
	UpdatedAt               time.Time              `json:"updatedAt"`
}

func AdaptDocumentDto(d models.Document) APIDocument {
	return APIDocument{
		Id:         d.Id,
		UserId:     d.UserId,
		TeamId:     d.TeamId,
		Title:      d.Title,
		ExternalId: d.ExternalId,
		Visibility: string(d.Visibility),
		Status:     string(d.Status),
		AuthOptions: APIDocumentAuthOptions{
			GlobalAccessAuth: pure_utils.Strings(d.AuthOptions.GlobalAccessAuth),
			GlobalActionAuth: pure_utils.Strings(d.AuthOptions.GlobalActionAuth),
		},
		UseLegacyFieldInsertion: d.UseLegacyFieldInsertion,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
}

// keys that can be omitted but not set to null
var nonNullableUpdateKeys = []string{"title", "visibility", "useLegacyFieldInsertion"}

// ParseUpdateDocumentBody reads a partial document update. A key that is absent is not provided.
// "externalId": null clears the external id, and a null auth list clears that list.
func ParseUpdateDocumentBody(raw []byte) (models.DocumentUpdateData, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return models.DocumentUpdateData{}, errors.Wrap(models.BadParameterError,
			"update document body must be a JSON object")
	}

	for _, key := range nonNullableUpdateKeys {
		if value := gjson.GetBytes(raw, key); value.Exists() && value.Type == gjson.Null {
			return models.DocumentUpdateData{}, errors.Wrapf(models.BadParameterError,
				"%s cannot be null", key)
		}
	}

	var data models.DocumentUpdateData
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&data); err != nil {
		return models.DocumentUpdateData{}, errors.Wrap(models.BadParameterError,
			fmt.Sprintf("invalid update document body: %s", err))
	}

	if data.Visibility.Set {
		if _, ok := models.DocumentVisibilityFrom(string(data.Visibility.Value)); !ok {
			return models.DocumentUpdateData{}, errors.Wrapf(models.BadParameterError,
				"invalid visibility %q", data.Visibility.Value)
		}
	}

	return data, nil
}
