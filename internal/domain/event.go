package domain

import (
	"context"
	"io"
	"strings"
	"time"
)

// Event mode values.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Field length limits enforced at validation time.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
	MaxOverviewLen    = 500
)

// Event represents a listed developer event.
// Slug is derived from Title; Date and Time are stored in canonical form
// (YYYY-MM-DD and 24-hour HH:MM).
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventInput carries the raw fields of a create request before normalization.
type EventInput struct {
	Title       string
	Description string
	Overview    string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      []string
	Organizer   string
	Tags        []string
	Image       *ImageUpload
}

// ImageUpload is a raw image file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// NewEvent builds an Event from raw input. String fields are trimmed and
// list elements are trimmed with empties dropped; imageURL is the already
// uploaded media URL. ID is set by the repository on create.
func NewEvent(in *EventInput, imageURL string, createdAt time.Time) *Event {
	return &Event{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Overview:    strings.TrimSpace(in.Overview),
		Image:       strings.TrimSpace(imageURL),
		Venue:       strings.TrimSpace(in.Venue),
		Location:    strings.TrimSpace(in.Location),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Mode:        strings.TrimSpace(in.Mode),
		Audience:    strings.TrimSpace(in.Audience),
		Agenda:      trimList(in.Agenda),
		Organizer:   strings.TrimSpace(in.Organizer),
		Tags:        trimList(in.Tags),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Normalize derives Slug from Title and rewrites Date and Time into their
// canonical forms. It is invoked explicitly before every persist; a failure
// aborts the create and nothing is written.
func (e *Event) Normalize() error {
	var verr ValidationError

	e.Slug = Slugify(e.Title)

	if e.Date != "" {
		date, err := NormalizeDate(e.Date)
		if err != nil {
			verr.Add("date", err.Error())
		} else {
			e.Date = date
		}
	}
	if e.Time != "" {
		t, err := NormalizeTime(e.Time)
		if err != nil {
			verr.Add("time", err.Error())
		} else {
			e.Time = t
		}
	}

	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

// Validate checks required fields, length limits, the mode enum, and the
// non-empty agenda/tags rules. It returns a *ValidationError aggregating
// every violation, or nil when the event is valid.
func (e *Event) Validate() error {
	var verr ValidationError

	if e.Title == "" {
		verr.Add("title", "title is required")
	} else if len(e.Title) > MaxTitleLen {
		verr.Add("title", "title must be at most 100 characters")
	}
	if e.Slug == "" {
		verr.Add("slug", "slug could not be derived from title")
	}
	if e.Description == "" {
		verr.Add("description", "description is required")
	} else if len(e.Description) > MaxDescriptionLen {
		verr.Add("description", "description must be at most 1000 characters")
	}
	if e.Overview == "" {
		verr.Add("overview", "overview is required")
	} else if len(e.Overview) > MaxOverviewLen {
		verr.Add("overview", "overview must be at most 500 characters")
	}
	if e.Image == "" {
		verr.Add("image", "image URL is required")
	}
	if e.Venue == "" {
		verr.Add("venue", "venue is required")
	}
	if e.Location == "" {
		verr.Add("location", "location is required")
	}
	if e.Date == "" {
		verr.Add("date", "date is required")
	}
	if e.Time == "" {
		verr.Add("time", "time is required")
	}
	switch e.Mode {
	case ModeOnline, ModeOffline, ModeHybrid:
	case "":
		verr.Add("mode", "mode is required")
	default:
		verr.Add("mode", "mode must be one of online, offline, hybrid")
	}
	if e.Audience == "" {
		verr.Add("audience", "audience is required")
	}
	if len(e.Agenda) == 0 {
		verr.Add("agenda", "at least one agenda item is required")
	}
	if e.Organizer == "" {
		verr.Add("organizer", "organizer is required")
	}
	if len(e.Tags) == 0 {
		verr.Add("tags", "at least one tag is required")
	}

	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
}

// EventService defines the application operations over events.
type EventService interface {
	// CreateEvent uploads the input image, normalizes and validates the
	// event, and persists it. Returns the created event.
	CreateEvent(ctx context.Context, in *EventInput) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
}
