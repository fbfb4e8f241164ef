package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
	"github.com/parthdk16/Restaurant-Management-System-sub001/session"
)

// fail maps session error kinds onto HTTP statuses; anything else is a
// store failure and comes back as a 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, session.ErrInvalidArgument):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, session.ErrInvalidState):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
