// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Field Names

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// TokenType is the scheme clients put in front of the access token.
const TokenType = "Bearer"

// managerUserID is the subject of every manager token. There is one account.
const managerUserID = "manager"
