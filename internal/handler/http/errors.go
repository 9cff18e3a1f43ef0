// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidLimit is returned when the limit query parameter is not an
// integer.
var errInvalidLimit = errors.New("limit is not an integer")
