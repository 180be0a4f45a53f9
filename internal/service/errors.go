// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrInvalidOAuthState      = errors.New("invalid oauth state")
	ErrFederatedLoginFailed   = errors.New("federated login failed")
	ErrFederatedLoginDisabled = errors.New("federated login is not configured")

	ErrPostNotFound = errors.New("post was not found")

	ErrAppNameIsNotSpecified = errors.New("application name is not specified")
)
