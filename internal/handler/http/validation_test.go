// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Credentials(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name       string
		creds      models.Credentials
		wantDetail string
	}{
		{name: "valid", creds: models.Credentials{Email: "a@x.com", Password: "secret"}},
		{name: "72-byte password", creds: models.Credentials{Email: "a@x.com", Password: strings.Repeat("p", 72)}},
		{name: "bad email", creds: models.Credentials{Email: "not-an-email", Password: "secret"}, wantDetail: "email: value is not a valid email address"},
		{name: "missing email", creds: models.Credentials{Password: "secret"}, wantDetail: "email: field required"},
		{name: "missing password", creds: models.Credentials{Email: "a@x.com"}, wantDetail: "password: field required"},
		{name: "73-byte password", creds: models.Credentials{Email: "a@x.com", Password: strings.Repeat("p", 73)}, wantDetail: "password: must be between 1 and 72 bytes"},
		{name: "multibyte password over limit", creds: models.Credentials{Email: "a@x.com", Password: strings.Repeat("я", 37)}, wantDetail: "password: must be between 1 and 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.creds)
			if tt.wantDetail == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantDetail, validationDetail(err))
		})
	}
}

func TestValidationDetail_DoesNotEchoValues(t *testing.T) {
	err := newValidator().Struct(models.Credentials{Email: "leaky@@value", Password: strings.Repeat("s", 80)})
	require.Error(t, err)

	detail := validationDetail(err)
	assert.NotContains(t, detail, "leaky")
	assert.NotContains(t, detail, "sss")
	assert.Contains(t, detail, "email:")
	assert.Contains(t, detail, "password:")
}

func TestValidationDetail_NonValidatorError(t *testing.T) {
	assert.Equal(t, "invalid request body", validationDetail(errors.New("boom")))
}
