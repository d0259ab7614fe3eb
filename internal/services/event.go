package services

import (
	"context"
	"fmt"
	"time"

	"devevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	media          domain.MediaStore
	contextTimeout time.Duration
}

// NewEventService wires the event repository and media store into a
// domain.EventService.
func NewEventService(eventRepo domain.EventRepository, media domain.MediaStore, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		media:          media,
		contextTimeout: timeout,
	}
}

// CreateEvent uploads the image, then normalizes, validates, and persists
// the event. The upload and the insert are sequential, not transactional:
// a failed insert after a successful upload leaves the uploaded object
// behind.
func (s *eventService) CreateEvent(ctx context.Context, in *domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in.Image == nil {
		verr := &domain.ValidationError{}
		verr.Add("image", "image file is required")
		return nil, verr
	}

	imageURL, err := s.media.Upload(ctx, in.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}

	event := domain.NewEvent(in, imageURL, time.Now())
	if err := event.Normalize(); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.GetBySlug(ctx, slug)
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.ListAll(ctx)
}
