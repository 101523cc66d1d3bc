package apiutil

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseDerivesSuccess(t *testing.T) {
	resp := NewResponse(http.StatusOK, map[string]int{"n": 1}, "done")
	assert.True(t, resp.Success)
	assert.Equal(t, "done", resp.Message)

	resp = NewResponse(http.StatusCreated, nil, "")
	assert.True(t, resp.Success)
	assert.Equal(t, "Success", resp.Message)

	resp = NewResponse(http.StatusNotFound, nil, "missing")
	assert.False(t, resp.Success)
}

func TestResponseJSONShape(t *testing.T) {
	raw, err := json.Marshal(NewResponse(http.StatusOK, []int{1, 2}, "ok"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":200,"data":[1,2],"message":"ok","success":true}`, string(raw))
}

func TestNewErrorDefaults(t *testing.T) {
	err := NewError(http.StatusInternalServerError, "")
	assert.Equal(t, "something went wrong", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestErrorEnvelopeStackVisibility(t *testing.T) {
	appErr := NewError(http.StatusBadRequest, "bad input").
		WithErrors([]FieldError{{Field: "email", Message: "invalid"}})
	appErr.Stack = "goroutine 1 [running]"

	env := appErr.Envelope(false)
	assert.False(t, env.Success)
	assert.Equal(t, "bad input", env.Message)
	assert.Len(t, env.Errors, 1)
	assert.Empty(t, env.Stack)

	env = appErr.Envelope(true)
	assert.Equal(t, "goroutine 1 [running]", env.Stack)
}
