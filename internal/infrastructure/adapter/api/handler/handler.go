package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/eaglebank/eagle-bank/internal/domain/error"
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// pathID parses an unsigned integer path parameter. A malformed value writes
// a 400 with the given code and aborts the handler.
func pathID(c *gin.Context, name string, code int, message string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    code,
			Message: message,
		})
		return 0, false
	}
	return id, true
}

// respondError maps a domain error onto the wire: status, numeric code and a
// message that never leaks internals
func respondError(c *gin.Context, logger coreport.Logger, err error, fields map[string]any) {
	status := domainerr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		fields["error"] = err.Error()
		logger.Error("Request failed", fields)
	}
	c.JSON(status, dto.FromError(err))
}
