// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteValidator_CreateNoteRequest(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name        string
		request     models.CreateNoteRequest
		expectedErr error
	}{
		{
			name:        "valid request",
			request:     models.CreateNoteRequest{Title: "Groceries", Content: "milk, bread"},
			expectedErr: nil,
		},
		{
			name:        "empty content is allowed",
			request:     models.CreateNoteRequest{Title: "Reminder"},
			expectedErr: nil,
		},
		{
			name:        "empty title",
			request:     models.CreateNoteRequest{Content: "orphan content"},
			expectedErr: ErrEmptyTitle,
		},
		{
			name:        "whitespace-only title",
			request:     models.CreateNoteRequest{Title: "   \t"},
			expectedErr: ErrEmptyTitle,
		},
		{
			name:        "title too long",
			request:     models.CreateNoteRequest{Title: strings.Repeat("a", 256)},
			expectedErr: ErrTitleTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestNoteValidator_CreateNoteRequest_PointerReceiver(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), &models.CreateNoteRequest{Title: "Ptr"})
	assert.NoError(t, err)
}

func TestNoteValidator_ShareRequest(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name        string
		request     models.ShareRequest
		expectedErr error
	}{
		{
			name:        "valid email",
			request:     models.ShareRequest{Email: "friend@example.com"},
			expectedErr: nil,
		},
		{
			name:        "email with surrounding spaces",
			request:     models.ShareRequest{Email: "  friend@example.com  "},
			expectedErr: nil,
		},
		{
			name:        "empty email",
			request:     models.ShareRequest{},
			expectedErr: ErrEmptyEmail,
		},
		{
			name:        "missing at sign",
			request:     models.ShareRequest{Email: "not-an-email"},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:        "missing domain",
			request:     models.ShareRequest{Email: "someone@"},
			expectedErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNoteValidator_UnknownField(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), models.CreateNoteRequest{Title: "ok"}, "no-such-field")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}
