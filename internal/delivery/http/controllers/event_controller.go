package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// maxUploadBytes bounds the in-memory portion of multipart parsing.
const maxUploadBytes = 10 << 20

// EventController serves the public event-listing endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEventsResponse is the response body for GET /events (200).
type ListEventsResponse struct {
	Message string          `json:"message"`
	Events  []*domain.Event `json:"events"`
}

// ListEvents godoc
// @Summary List all events
// @Description Returns all events, newest first.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events", err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{
		Message: "Events fetched successfully",
		Events:  events,
	})
}

// GetEventResponse is the response body for GET /events/{slug} (200).
type GetEventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns a single event. The slug is matched case-insensitively after trimming.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.GetEventResponse
// @Failure 400 {object} helpers.ErrorResponse "blank slug"
// @Failure 404 {object} helpers.ErrorResponse "no event with that slug"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if strings.TrimSpace(slug) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid or missing slug parameter", "")
		return
	}

	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			sanitized := strings.ToLower(strings.TrimSpace(slug))
			helpers.WriteJSONError(w, http.StatusNotFound, fmt.Sprintf("Event with slug '%s' not found", sanitized), "")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event", err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, GetEventResponse{
		Message: "Event fetched successfully",
		Event:   event,
	})
}

// CreateEventResponse is the response body for POST /events (201).
type CreateEventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// CreateEvent godoc
// @Summary Create an event
// @Description Accepts multipart form fields plus an image file. The image is uploaded to the media host first; the event is then normalized, validated, and persisted. Agenda and tags may be sent as repeated fields or as a single JSON array field.
// @Tags events
// @Accept mpfd
// @Produce json
// @Param image formData file true "Event image"
// @Param title formData string true "Event title (slug is derived from it)"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.ErrorResponse "missing image or validation failure"
// @Failure 409 {object} helpers.ErrorResponse "slug already exists"
// @Failure 500 {object} helpers.ErrorResponse "upload or persist failure"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form data", err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Image file is required", "")
		return
	}
	defer file.Close()

	in := &domain.EventInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Overview:    r.FormValue("overview"),
		Venue:       r.FormValue("venue"),
		Location:    r.FormValue("location"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Mode:        r.FormValue("mode"),
		Audience:    r.FormValue("audience"),
		Agenda:      formList(r, "agenda"),
		Organizer:   r.FormValue("organizer"),
		Tags:        formList(r, "tags"),
		Image: &domain.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		},
	}

	event, err := c.Service.CreateEvent(r.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Event validation failed", verr.Error())
		case errors.Is(err, domain.ErrDuplicateSlug):
			helpers.WriteJSONError(w, http.StatusConflict, "Event creation failed", err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Event creation failed", err.Error())
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{
		Message: "Event created successfully",
		Event:   event,
	})
}

// formList reads a multi-valued form field. A single value that is a JSON
// array is decoded, so clients may send either repeated fields or one
// JSON-encoded field.
func formList(r *http.Request, name string) []string {
	values := r.MultipartForm.Value[name]
	if len(values) == 1 {
		if s := strings.TrimSpace(values[0]); strings.HasPrefix(s, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				return decoded
			}
		}
	}
	return values
}
