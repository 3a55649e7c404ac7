package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/services"
)

// SendClientEmail is the welcome email endpoint the client signup page
// calls. Its responses use a bare {"message"} body rather than the
// envelope because the page reads them as such.
func SendClientEmail(ms *services.MailService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Header("Allow", http.MethodPost)
			c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed"})
			return
		}

		var client models.ClientForm
		if err := c.ShouldBindJSON(&client); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		if err := ms.SendClientWelcome(c.Request.Context(), client); err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Error sending email",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
	}
}
