package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mininotes/notes-service/app/api/auth"
	"github.com/mininotes/notes-service/business/v1/note"
	"github.com/mininotes/notes-service/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description Lists every note stored for the authenticated user
// @Tags Note
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handler.Response
// @Failure 401 {object} handler.Response
// @Failure 500 {object} handler.Response
// @Router /api/notes/list [get]
func List(ctx *gin.Context) handler.Result {

	found, err := note.List(ctx, auth.UserID(ctx))
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Failure(err.Error()),
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   handler.Success(found),
	}
}
