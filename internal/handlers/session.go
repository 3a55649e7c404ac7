package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventsphere/internal/middleware"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/services"
)

// currentSession returns the session RequireSession resolved, or writes a
// 500 and returns nil when the route was registered without it.
func currentSession(c *gin.Context) *services.Session {
	v, exists := c.Get(middleware.SessionKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("session not resolved"))
		return nil
	}
	s, ok := v.(*services.Session)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid session"))
		return nil
	}
	return s
}
