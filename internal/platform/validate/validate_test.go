// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gdps/internal/platform/apperr"
	"github.com/taibuivan/gdps/internal/platform/validate"
	"github.com/taibuivan/gdps/internal/users/credential"
)

/*
TestValidator_Field records parser rejections with their codes.
*/
func TestValidator_Field(t *testing.T) {
	_, nameErr := credential.ParseName("ab")
	_, emailErr := credential.ParseEmail("12@a.b")

	tests := []struct {
		name     string
		field    string
		err      error
		hasError bool
		code     string
	}{
		{"nil_error", "name", nil, false, ""},
		{"parse_error", "name", nameErr, true, "TOO_SHORT"},
		{"malformed_email", "email", emailErr, true, "MALFORMED"},
		{"plain_error", "name", errors.New("boom"), true, "INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Field(tt.field, tt.err)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
				assert.Equal(t, tt.code, ae.Details[0].Code)
				assert.Equal(t, tt.err.Error(), ae.Details[0].Message)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API with passing rules.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Field("name", nil).
		Custom("id", false, "Must be non-zero").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	_, nameErr := credential.ParseName("")
	_, passwordErr := credential.ParsePassword("abc")

	v := &validate.Validator{}

	err := v.
		Field("name", nameErr).                 // Fails
		Field("password", passwordErr).         // Fails
		Custom("id", true, "Must be non-zero"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
	assert.Equal(t, []string{"EMPTY", "TOO_SHORT", "INVALID"},
		[]string{ae.Details[0].Code, ae.Details[1].Code, ae.Details[2].Code})
}
