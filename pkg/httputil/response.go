package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	qerrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

const MessageSuccess = "Success"

// Created is the body answered to a successful insert.
type Created struct {
	InsertID int64  `json:"insertId"`
	Message  string `json:"message"`
}

// RespondWithCreated sends the generated id of a new row
func RespondWithCreated(c *gin.Context, id int64) {
	c.JSON(http.StatusOK, Created{InsertID: id, Message: MessageSuccess})
}

// RespondWithData sends data as the bare response body
func RespondWithData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondWithError sends every failure as 400 {error, message}.
func RespondWithError(c *gin.Context, err error) {
	var qErr *qerrors.QueryError
	if !errors.As(err, &qErr) {
		qErr = qerrors.FromQuery(err)
	}
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, qErr)
}
