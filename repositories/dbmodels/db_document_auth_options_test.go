package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signflow/document-backend/models"
)

func TestAdaptDocumentAuthOptions(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.DocumentAuthOptions
	}{
		{
			name:     "empty column",
			raw:      "",
			expected: emptyAuthOptions(),
		},
		{
			name: "lists",
			raw:  `{"globalAccessAuth":["ACCOUNT","TWO_FACTOR_AUTH"],"globalActionAuth":["PASSKEY"]}`,
			expected: models.DocumentAuthOptions{
				GlobalAccessAuth: []models.DocumentAccessAuth{"ACCOUNT", "TWO_FACTOR_AUTH"},
				GlobalActionAuth: []models.DocumentActionAuth{"PASSKEY"},
			},
		},
		{
			name: "single values and nulls",
			raw:  `{"globalAccessAuth":"ACCOUNT","globalActionAuth":null}`,
			expected: models.DocumentAuthOptions{
				GlobalAccessAuth: []models.DocumentAccessAuth{"ACCOUNT"},
				GlobalActionAuth: []models.DocumentActionAuth{},
			},
		},
		{
			name:     "missing keys",
			raw:      `{}`,
			expected: emptyAuthOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := AdaptDocumentAuthOptions([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, options)
		})
	}

	_, err := AdaptDocumentAuthOptions([]byte(`{"globalAccessAuth":`))
	assert.Error(t, err)
}

func TestEncodeDocumentAuthOptions(t *testing.T) {
	encoded, err := EncodeDocumentAuthOptions(models.DocumentAuthOptions{
		GlobalAccessAuth: []models.DocumentAccessAuth{models.DocumentAccessAuthAccount},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"globalAccessAuth":["ACCOUNT"],"globalActionAuth":[]}`, string(encoded))
}
