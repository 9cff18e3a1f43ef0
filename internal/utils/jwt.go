// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySignKey is returned when a token is signed or parsed without a key.
var ErrEmptySignKey = errors.New("empty sign key")

// SignJWT signs claims as an HMAC-SHA256 JWT.
//
// Example usage:
//
//	token, err := utils.SignJWT(&jwt.RegisteredClaims{Subject: "x"}, key)
func SignJWT(claims jwt.Claims, signKey []byte) (string, error) {
	if len(signKey) == 0 {
		return "", ErrEmptySignKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseJWT verifies the signature of tokenString and decodes it into claims.
// Only HS256 is accepted. Registered claims such as exp are validated by the
// jwt parser; opts may add further checks (issuer, leeway).
func ParseJWT(tokenString string, claims jwt.Claims, signKey []byte, opts ...jwt.ParserOption) error {
	if len(signKey) == 0 {
		return ErrEmptySignKey
	}

	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return nil
}
