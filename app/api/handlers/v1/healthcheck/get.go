package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mininotes/notes-service/platform/web/handler"
)

// Get godoc
// @Summary Service health
// @Description Reports whether the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   gin.H{"status": "ok"},
	}
}
