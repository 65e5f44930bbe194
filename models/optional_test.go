package models

import (
	"encoding/json"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_JSON(t *testing.T) {
	var data DocumentUpdateData

	err := json.Unmarshal([]byte(`{"title": "", "externalId": null, "globalAccessAuth": null}`), &data)
	require.NoError(t, err)

	assert.Equal(t, Some(""), data.Title)
	assert.Equal(t, Some(null.String{}), data.ExternalId)
	assert.True(t, data.GlobalAccessAuth.Set)
	assert.Nil(t, data.GlobalAccessAuth.Value)
	assert.False(t, data.Visibility.Set)
	assert.False(t, data.UseLegacyFieldInsertion.Set)
	assert.False(t, data.IsEmpty())
}

func TestOptional_ValueOr(t *testing.T) {
	assert.Equal(t, "current", None[string]().ValueOr("current"))
	assert.Equal(t, "", Some("").ValueOr("current"))
}

func TestDocumentUpdateData_IsEmpty(t *testing.T) {
	assert.True(t, DocumentUpdateData{}.IsEmpty())
	assert.False(t, DocumentUpdateData{UseLegacyFieldInsertion: Some(false)}.IsEmpty())
}

func TestNewDocumentAuditLog(t *testing.T) {
	userId := int64(42)
	metadata := RequestMetadata{
		IpAddress: "10.0.0.1",
		UserAgent: "test-agent",
		Source:    RequestSourceApp,
		AuditUser: AuditUser{Id: &userId, Email: "jane@example.com", Name: "Jane"},
	}
	record := DocumentFieldChangeRecord{
		Type:   DocumentAuditLogTitleUpdated,
		Change: DocumentFieldChange{From: "a", To: "b"},
	}

	first := NewDocumentAuditLog(1, record, metadata)
	second := NewDocumentAuditLog(1, record, metadata)

	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, DocumentAuditLogTitleUpdated, first.Type)
	assert.Equal(t, int64(1), first.DocumentId)
	assert.Equal(t, &userId, first.UserId)
	assert.Equal(t, "jane@example.com", first.Email)
	assert.Equal(t, "10.0.0.1", first.IpAddress)
	assert.Equal(t, "test-agent", first.UserAgent)
	assert.Equal(t, record.Change, first.Data)
}

func TestDocumentVisibilityFrom(t *testing.T) {
	v, ok := DocumentVisibilityFrom("MANAGER_AND_ABOVE")
	assert.True(t, ok)
	assert.Equal(t, DocumentVisibilityManagerAndAbove, v)

	_, ok = DocumentVisibilityFrom("ADMIN_ONLY")
	assert.False(t, ok)
}
