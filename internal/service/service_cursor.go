// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/sentiment-notes/internal/utils"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	cursorKeyInfo = "sentiment-notes/cursor"
	cursorKeySize = 32
	cursorIssuer  = "sentiment-notes"
)

// cursorClaims binds a scan position to the parameters it was issued for.
type cursorClaims struct {
	StartKey  string `json:"sk"`
	Sentiment string `json:"st,omitempty"`
	Limit     int    `json:"lm"`
	jwt.RegisteredClaims
}

// cursorCodec turns storage start keys into opaque, signed, expiring
// continuation tokens and back.
type cursorCodec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func newCursorCodec(secret string, ttl time.Duration) (*cursorCodec, error) {
	if secret == "" {
		return nil, ErrEmptyCursorSecret
	}

	key, err := utils.DeriveKey(secret, cursorKeyInfo, cursorKeySize)
	if err != nil {
		return nil, fmt.Errorf("derive cursor key: %w", err)
	}

	return &cursorCodec{key: key, ttl: ttl, now: time.Now}, nil
}

func (c *cursorCodec) encode(startKey string, sentiment models.Sentiment, limit int) (string, error) {
	now := c.now()
	claims := &cursorClaims{
		StartKey:  startKey,
		Sentiment: string(sentiment),
		Limit:     limit,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cursorIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	return utils.SignJWT(claims, c.key)
}

// decode returns the start key carried by token. Any signature, expiry or
// parameter mismatch is reported as [ErrMalformedCursor].
func (c *cursorCodec) decode(token string, sentiment models.Sentiment, limit int) (string, error) {
	var claims cursorClaims
	err := utils.ParseJWT(token, &claims, c.key,
		jwt.WithIssuer(cursorIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCursor, err)
	}

	if claims.Sentiment != string(sentiment) || claims.Limit != limit {
		return "", fmt.Errorf("%w: issued for sentiment %q limit %d", ErrMalformedCursor, claims.Sentiment, claims.Limit)
	}
	if claims.StartKey == "" {
		return "", fmt.Errorf("%w: empty start key", ErrMalformedCursor)
	}

	return claims.StartKey, nil
}
