// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errNilServices = errors.New("client services are not set")
	errNilUI       = errors.New("user interface is not set")
)
