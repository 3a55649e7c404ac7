package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventsphere/internal/apiclient"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/services"
)

type eventOptions struct {
	Reference models.ReferenceData `json:"reference"`
	Form      models.EventForm     `json:"form"`
}

// EventFormOptions returns the select lists and the initial form values.
// When the prefetch fails the lists are empty and the error is set.
func EventFormOptions(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, err := es.ReferenceData(c.Request.Context())
		opts := eventOptions{Reference: rd, Form: models.NewEventForm(rd)}
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ApiResponse{
				Success: false,
				Data:    opts,
				Error:   apiclient.UserMessage(err, "Failed to load form data"),
			})
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(opts, ""))
	}
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.EventForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		event, err := es.CreateEvent(c.Request.Context(), form)
		if err != nil {
			var ve *services.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(ve.Error()))
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(apiclient.UserMessage(err, "Failed to create event")))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(event, "Event created successfully"))
	}
}

func CreateClient(cs *services.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.ClientForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		if err := cs.Register(c.Request.Context(), &form); err != nil {
			var ve *services.ValidationError
			switch {
			case errors.As(err, &ve):
				c.JSON(http.StatusBadRequest, models.ErrorResponse(ve.Error()))
			case errors.Is(err, services.ErrWelcomeEmail):
				_ = c.Error(err)
				c.JSON(http.StatusBadGateway, models.ErrorResponse("Error sending email"))
			default:
				_ = c.Error(err)
				c.JSON(http.StatusBadGateway, models.ErrorResponse(apiclient.UserMessage(err, "Failed to create client")))
			}
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(form, "Client created successfully"))
	}
}
