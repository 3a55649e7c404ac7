package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/theme"
)

func themeBody(t *theme.Theme) gin.H {
	return gin.H{"theme": t.Name(), "is_dark": t.IsDark()}
}

func GetTheme() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(themeBody(s.Theme), ""))
	}
}

// ToggleTheme flips the theme. When the preference cannot be stored the
// new theme is still returned, together with the error.
func ToggleTheme() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		if _, err := s.Theme.Toggle(c.Request.Context()); err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{
				Success: false,
				Data:    themeBody(s.Theme),
				Error:   "theme changed but could not be saved",
			})
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(themeBody(s.Theme), "Theme updated"))
	}
}
