package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mininotes/notes-service/app/api/auth"
	"github.com/mininotes/notes-service/app/api/handlers/v1/healthcheck"
	"github.com/mininotes/notes-service/app/api/handlers/v1/notes"
	"github.com/mininotes/notes-service/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/api/health", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	guarded := r.Group("/api/notes", auth.RequireUser())
	guarded.GET("/list", handler.Wrapper(notes.List))
	guarded.POST("/create", handler.Wrapper(notes.Create))
	guarded.DELETE("/:id", handler.Wrapper(notes.Delete))
}
