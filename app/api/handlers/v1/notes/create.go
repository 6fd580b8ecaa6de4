package notes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mininotes/notes-service/app/api/auth"
	"github.com/mininotes/notes-service/business/v1/note"
	"github.com/mininotes/notes-service/platform/web/handler"
)

type createRequest struct {
	Text string `json:"text"`
}

// Create godoc
// @Summary Create a note
// @Description Stores a new note for the authenticated user
// @Tags Note
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body createRequest true "Note text"
// @Success 200 {object} handler.Response
// @Failure 400 {object} handler.Response
// @Failure 401 {object} handler.Response
// @Failure 500 {object} handler.Response
// @Router /api/notes/create [post]
func Create(ctx *gin.Context) handler.Result {

	var req createRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Failure("invalid request body"),
		}
	}

	created, err := note.Add(ctx, auth.UserID(ctx), req.Text)

	switch {
	case errors.Is(err, note.ErrEmptyText):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Failure("Note text is required"),
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Failure(err.Error()),
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   handler.Success(created),
		}
	}
}
