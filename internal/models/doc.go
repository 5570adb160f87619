// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

// Package models defines the HTTP boundary types: request and
// response DTOs with their validation tags, and the error envelope.
// Field names are part of the public API contract and must not
// change.
package models
