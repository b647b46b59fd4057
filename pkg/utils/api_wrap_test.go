package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"housebase/internal/questionnaire"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, recorder
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrSoldierNotFound, http.StatusNotFound},
		{ErrSessionNotFound, http.StatusGone},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrInternalError, http.StatusInternalServerError},
		{ErrDatabaseError, http.StatusInternalServerError},
		{questionnaire.ErrSaveInFlight, http.StatusConflict},
	}

	for _, tc := range cases {
		c, recorder := testContext(t)
		HandleServiceError(c, tc.err)
		assert.Equal(t, tc.code, recorder.Code, "error %v", tc.err)
	}
}

func TestHandleServiceErrorListsEveryFieldError(t *testing.T) {
	c, recorder := testContext(t)

	HandleServiceError(c, questionnaire.FieldErrors{
		{QuestionID: "email", Reason: "bad"},
		{QuestionID: "full_name", Reason: "required", Missing: true},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "full_name")
}
