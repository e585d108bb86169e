package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salareserva/room-reservation-backend/internal/pkg/apperror"
)

func render(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)
	return w
}

func TestErrorUsesAppErrorCodeAndDetails(t *testing.T) {
	err := fmt.Errorf("create: %w", apperror.New(http.StatusConflict, "conflict").WithDetails("10:00"))
	w := render(err)

	assert.Equal(t, http.StatusConflict, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "conflict", body.Error)
	assert.Equal(t, "10:00", body.Details)
}

func TestErrorHidesInternalErrors(t *testing.T) {
	w := render(errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.NotContains(t, w.Body.String(), "details")
}

func TestListNeverNil(t *testing.T) {
	b, err := json.Marshal(List[int](nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
