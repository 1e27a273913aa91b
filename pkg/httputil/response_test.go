package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondWithCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondWithCreated(c, 12)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"insertId":12,"message":"Success"}`, rec.Body.String())
}

func TestRespondWithData_EmptySlice(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondWithData(c, []string{})

	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "driver error",
			err:  &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"},
			want: `{"error":"unique_violation","message":"duplicate key value violates unique constraint"}`,
		},
		{
			name: "plain error",
			err:  errors.New("sql: connection is already closed"),
			want: `{"error":"QUERY_ERROR","message":"sql: connection is already closed"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			RespondWithError(c, tt.err)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
			assert.Len(t, c.Errors, 1)
		})
	}
}
