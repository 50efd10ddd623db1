package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeConflict, http.StatusConflict},
		{CodeTooManyRequest, http.StatusTooManyRequests},
		{CodeTimeout, http.StatusRequestTimeout},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.code.String(), func(t *testing.T) {
			err := NewBusiness("msg", tc.code)

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			require.Equal(t, tc.want, gerr.StatusCode())
		})
	}
}

func TestNewServer(t *testing.T) {
	cause := errors.New("boom")
	err := NewServer(cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, "Internal server error", gerr.Msg())
	require.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	require.ErrorIs(t, err, cause)
}

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput(errors.New("field broken"))

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, TypeValidation, gerr.Type())
	require.Equal(t, http.StatusBadRequest, gerr.StatusCode())
}

func TestNewInvalidInputWithFields(t *testing.T) {
	err := NewInvalidInput(nil, "phone", "Phone must be a valid phone number")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, map[string]string{"phone": "Phone must be a valid phone number"}, gerr.Fields())
}

func TestNewInvalidFormat(t *testing.T) {
	var gerr *Error
	require.ErrorAs(t, NewInvalidFormat(), &gerr)
	require.Equal(t, "Invalid request body", gerr.Msg())
	require.Equal(t, http.StatusBadRequest, gerr.StatusCode())

	require.ErrorAs(t, NewInvalidFormat("trailing garbage"), &gerr)
	require.Equal(t, "trailing garbage", gerr.Msg())
}
