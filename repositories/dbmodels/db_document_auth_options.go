package dbmodels

import (
	"encoding/json"

	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/pure_utils"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// AdaptDocumentAuthOptions reads the auth_options column. Older rows store a single method
// instead of a list, or null, for each of the two keys.
func AdaptDocumentAuthOptions(raw []byte) (models.DocumentAuthOptions, error) {
	if len(raw) == 0 {
		return emptyAuthOptions(), nil
	}
	if !gjson.ValidBytes(raw) {
		return models.DocumentAuthOptions{}, errors.Newf("invalid document auth options: %s", raw)
	}

	parsed := gjson.ParseBytes(raw)
	return models.DocumentAuthOptions{
		GlobalAccessAuth: pure_utils.Map(authMethods(parsed.Get("globalAccessAuth")),
			func(s string) models.DocumentAccessAuth { return models.DocumentAccessAuth(s) }),
		GlobalActionAuth: pure_utils.Map(authMethods(parsed.Get("globalActionAuth")),
			func(s string) models.DocumentActionAuth { return models.DocumentActionAuth(s) }),
	}, nil
}

func authMethods(result gjson.Result) []string {
	switch {
	case !result.Exists(), result.Type == gjson.Null:
		return []string{}
	case result.IsArray():
		methods := make([]string, 0, len(result.Array()))
		result.ForEach(func(_, value gjson.Result) bool {
			if value.Type != gjson.Null {
				methods = append(methods, value.String())
			}
			return true
		})
		return methods
	default:
		return []string{result.String()}
	}
}

// EncodeDocumentAuthOptions always writes both keys, as lists.
func EncodeDocumentAuthOptions(options models.DocumentAuthOptions) ([]byte, error) {
	options.GlobalAccessAuth = pure_utils.EmptyIfNil(options.GlobalAccessAuth)
	options.GlobalActionAuth = pure_utils.EmptyIfNil(options.GlobalActionAuth)
	encoded, err := json.Marshal(options)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding document auth options")
	}
	return encoded, nil
}

func emptyAuthOptions() models.DocumentAuthOptions {
	return models.DocumentAuthOptions{
		GlobalAccessAuth: []models.DocumentAccessAuth{},
		GlobalActionAuth: []models.DocumentActionAuth{},
	}
}
