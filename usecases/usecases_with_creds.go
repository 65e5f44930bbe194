package usecases

import (
	"github.com/signflow/document-backend/models"
	"github.com/signflow/document-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func NewUsecasesWithCreds(usecases Usecases, credentials models.Credentials) UsecasesWithCreds {
	return UsecasesWithCreds{
		Usecases:    usecases,
		Credentials: credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceDocumentSecurity() security.EnforceSecurityDocument {
	return &security.EnforceSecurityDocumentImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewDocumentUsecase() DocumentUsecase {
	return NewDocumentUsecase(
		usecases.NewEnforceDocumentSecurity(),
		usecases.NewExecutorFactory(),
		usecases.NewTransactionFactory(),
		usecases.Repositories.DbRepository,
		usecases.Credentials,
	)
}
