package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventsphere/internal/apiclient"
	"github.com/joshua-takyi/eventsphere/internal/feed"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/services"
)

// VisitorHeader carries the id a returning visitor's theme is stored under.
const VisitorHeader = "X-Visitor-ID"

type sessionResponse struct {
	SessionID string    `json:"session_id"`
	Theme     string    `json:"theme"`
	IsDark    bool      `json:"is_dark"`
	Feed      feed.View `json:"feed"`
}

type commentRequest struct {
	Content string `json:"content"`
}

func CreateSession(ss *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := ss.Create(c.Request.Context(), c.GetHeader(VisitorHeader))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(sessionResponse{
			SessionID: s.ID,
			Theme:     s.Theme.Name(),
			IsDark:    s.Theme.IsDark(),
			Feed:      s.Feed.Snapshot(),
		}, "Session created"))
	}
}

// GetFeed returns the feed state. The search and status query parameters,
// when present, are applied as filters first. An unknown status leaves
// both filters unchanged.
func GetFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		var term, status *string
		if v, ok := c.GetQuery("search"); ok {
			term = &v
		}
		if v, ok := c.GetQuery("status"); ok {
			status = &v
		}
		if err := s.Feed.ApplyFilters(term, status); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(s.Feed.Snapshot(), ""))
	}
}

// RefreshFeed re-fetches the event list. A failed fetch is reported in the
// view's error field, not as an HTTP error.
func RefreshFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		_ = s.Feed.FetchEvents(c.Request.Context())
		c.JSON(http.StatusOK, models.SuccessResponse(s.Feed.Snapshot(), ""))
	}
}

func ResetFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		s.Feed.ResetFilters()
		c.JSON(http.StatusOK, models.SuccessResponse(s.Feed.Snapshot(), "Filters reset"))
	}
}

// ToggleEvent opens or closes an event card. Details load in the
// background; the returned view shows them as loading.
func ToggleEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		s.Feed.ShowDetails(c.Param("id"))
		c.JSON(http.StatusOK, models.SuccessResponse(s.Feed.Snapshot(), ""))
	}
}

func ToggleSection() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		section, ok := feed.ParseSection(c.Param("section"))
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("unknown section"))
			return
		}
		expanded := s.Feed.ToggleSection(section)
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"section":  section,
			"expanded": expanded,
		}, ""))
	}
}

func PostComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := currentSession(c)
		if s == nil {
			return
		}
		var req commentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		comment, err := s.Feed.PostComment(c.Request.Context(), c.Param("id"), req.Content)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(apiclient.UserMessage(err, "Failed to post comment")))
			return
		}
		if comment == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(comment, "Comment posted"))
	}
}
