// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// TokenTypeBearer is the token_type reported with every issued access token.
const TokenTypeBearer = "bearer"

// Token is the claim set of an access token together with its compact
// serialized form.
//
// It embeds [jwt.RegisteredClaims] and therefore implements [jwt.Claims], so a
// *Token can be passed directly to jwt.ParseWithClaims. Only sub, exp, iat and
// iss are populated by this service.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// AccessToken is the response body of a successful registration or login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewAccessToken wraps a signed token into the bearer response body.
func NewAccessToken(token Token) AccessToken {
	return AccessToken{
		AccessToken: token.SignedString,
		TokenType:   TokenTypeBearer,
	}
}
