// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(201)
	w.WriteHeader(500) // second call must be ignored

	assert.Equal(t, 201, w.status)
	assert.Equal(t, 201, rec.Code)
}

func TestResponseWriter_ImplicitWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("hello"))
	assert.NoError(t, err)

	assert.Equal(t, 200, w.status)
	assert.Equal(t, 5, w.size)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("hello "))
	w.Write([]byte("world"))

	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}
