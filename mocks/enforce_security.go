package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/signflow/document-backend/models"
)

type EnforceSecurityDocument struct {
	mock.Mock
}

func (e *EnforceSecurityDocument) ReadTeam(teamId int64) error {
	args := e.Called(teamId)
	return args.Error(0)
}

func (e *EnforceSecurityDocument) UpdateDocument(
	document models.DocumentWithTeam,
	requestedVisibility models.Optional[models.DocumentVisibility],
) error {
	args := e.Called(document, requestedVisibility)
	return args.Error(0)
}

func (e *EnforceSecurityDocument) ReadDocumentAuditLogs(document models.DocumentWithTeam) error {
	args := e.Called(document)
	return args.Error(0)
}
