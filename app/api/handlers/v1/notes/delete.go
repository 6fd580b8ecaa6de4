package notes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mininotes/notes-service/app/api/auth"
	"github.com/mininotes/notes-service/business/v1/note"
	"github.com/mininotes/notes-service/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes one note by id for the authenticated user
// @Tags Note
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note id"
// @Success 200 {object} handler.Response
// @Failure 401 {object} handler.Response
// @Failure 404 {object} handler.Response
// @Failure 500 {object} handler.Response
// @Router /api/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {

	id := ctx.Param("id")
	err := note.Delete(ctx, auth.UserID(ctx), id)

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Failure("Note not found"),
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Failure(err.Error()),
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   handler.Success(gin.H{"deleted": id}),
		}
	}
}
