package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	return c, recorder
}

func TestHandleSuccessEnvelope(t *testing.T) {
	c, recorder := recordedContext()

	HandleSuccess(c, http.StatusCreated, "Category created", gin.H{"name": "murals"})

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"Category created","data":{"name":"murals"}}`,
		recorder.Body.String())
}

func TestHandleErrorEnvelope(t *testing.T) {
	c, recorder := recordedContext()

	HandleError(c, http.StatusUnauthorized, errors.New("invalid email or password"))

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t,
		`{"success":false,"error":"invalid email or password"}`,
		recorder.Body.String())
}

func TestHandleListEnvelope(t *testing.T) {
	c, recorder := recordedContext()

	HandleList(c, http.StatusOK, []string{"a", "b"}, 2)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"success":true,"data":["a","b"],"total":2}`,
		recorder.Body.String())
}
