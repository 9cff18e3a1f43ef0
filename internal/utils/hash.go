// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a size-byte key from secret with HKDF-SHA256. info binds
// the key to its purpose, so one configured secret can serve several keys.
//
// Example usage:
//
//	key, err := utils.DeriveKey("my-secret", "notes-cursor", 32)
func DeriveKey(secret, info string, size int) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("empty secret")
	}

	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("error deriving key: %w", err)
	}

	return key, nil
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// EqualHashed reports whether a and b are equal, comparing their HMAC
// digests so the comparison time does not depend on the inputs.
func EqualHashed(a, b, hashKey string) bool {
	return hmac.Equal(hashString([]byte(a), hashKey), hashString([]byte(b), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
