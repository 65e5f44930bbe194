package models

import "slices"

type DocumentAccessAuth string

const (
	DocumentAccessAuthAccount       DocumentAccessAuth = "ACCOUNT"
	DocumentAccessAuthTwoFactorAuth DocumentAccessAuth = "TWO_FACTOR_AUTH"
)

type DocumentActionAuth string

const (
	DocumentActionAuthAccount       DocumentActionAuth = "ACCOUNT"
	DocumentActionAuthPasskey       DocumentActionAuth = "PASSKEY"
	DocumentActionAuthTwoFactorAuth DocumentActionAuth = "TWO_FACTOR_AUTH"
	DocumentActionAuthPassword      DocumentActionAuth = "PASSWORD"
	DocumentActionAuthExplicitNone  DocumentActionAuth = "EXPLICIT_NONE"
)

var (
	documentAccessAuths = []DocumentAccessAuth{
		DocumentAccessAuthAccount,
		DocumentAccessAuthTwoFactorAuth,
	}
	documentActionAuths = []DocumentActionAuth{
		DocumentActionAuthAccount,
		DocumentActionAuthPasskey,
		DocumentActionAuthTwoFactorAuth,
		DocumentActionAuthPassword,
		DocumentActionAuthExplicitNone,
	}
)

func (a DocumentAccessAuth) IsValid() bool {
	return slices.Contains(documentAccessAuths, a)
}

func (a DocumentActionAuth) IsValid() bool {
	return slices.Contains(documentActionAuths, a)
}

// DocumentAuthOptions holds the document-wide authentication requirements.
// The two lists are ordered and always stored together.
type DocumentAuthOptions struct {
	GlobalAccessAuth []DocumentAccessAuth `json:"globalAccessAuth"`
	GlobalActionAuth []DocumentActionAuth `json:"globalActionAuth"`
}
