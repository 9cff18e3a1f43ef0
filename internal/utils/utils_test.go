// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDContext(t *testing.T) {
	_, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetTraceIDFromContext(WithTraceID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestDeriveKey(t *testing.T) {
	k1, err := DeriveKey("secret", "cursor", 32)
	require.NoError(t, err)
	assert.Len(t, k1, 32)

	k2, err := DeriveKey("secret", "cursor", 32)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	other, err := DeriveKey("secret", "other-purpose", 32)
	require.NoError(t, err)
	assert.NotEqual(t, k1, other)

	_, err = DeriveKey("", "cursor", 32)
	assert.Error(t, err)
}

func TestHashString(t *testing.T) {
	a := HashString("data", "key")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashString("data", "key"))
	assert.NotEqual(t, a, HashString("data", "other"))
}

func TestEqualHashed(t *testing.T) {
	assert.True(t, EqualHashed("k1", "k1", "h"))
	assert.False(t, EqualHashed("k1", "k2", "h"))
	assert.False(t, EqualHashed("k1", "", "h"))
}

func TestSignAndParseJWT(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	claims := &jwt.RegisteredClaims{
		Subject:   "note-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	token, err := SignJWT(claims, key)
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	require.NoError(t, ParseJWT(token, &parsed, key))
	assert.Equal(t, "note-1", parsed.Subject)

	assert.Error(t, ParseJWT(token, &jwt.RegisteredClaims{}, []byte("wrong-key")))
	assert.Error(t, ParseJWT(token+"x", &jwt.RegisteredClaims{}, key))
}

func TestParseJWT_Expired(t *testing.T) {
	key := []byte("k")
	token, err := SignJWT(&jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}, key)
	require.NoError(t, err)

	err = ParseJWT(token, &jwt.RegisteredClaims{}, key)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_EmptyKey(t *testing.T) {
	_, err := SignJWT(&jwt.RegisteredClaims{}, nil)
	assert.ErrorIs(t, err, ErrEmptySignKey)
	assert.ErrorIs(t, ParseJWT("x", &jwt.RegisteredClaims{}, nil), ErrEmptySignKey)
}

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}
