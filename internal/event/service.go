package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ktmtfamily/family-tree-api/internal/model"
	"github.com/ktmtfamily/family-tree-api/internal/shared/logger"
)

type EventService struct {
	eventRepository Repository
	newID           func() string
}

func NewEventService(eventRepository Repository) *EventService {
	return &EventService{
		eventRepository: eventRepository,
		newID:           uuid.NewString,
	}
}

func (s *EventService) List(ctx context.Context) ([]EventResponse, error) {
	events, err := s.eventRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	response := make([]EventResponse, 0, len(events))
	for i := range events {
		response = append(response, toResponse(&events[i]))
	}
	return response, nil
}

// Create stores a new event under a fresh UUID and returns that id
func (s *EventService) Create(ctx context.Context, request *EventRequest) (string, error) {
	event := toModel(s.newID(), request)

	if err := s.eventRepository.Create(ctx, event); err != nil {
		logger.FromContext(ctx).Error("Failed to create event", "error", err)
		return "", fmt.Errorf("create event: %w", err)
	}

	logger.FromContext(ctx).Info("Event created", "event_id", event.ID)
	return event.ID, nil
}

// Update replaces the event's fields. Nothing happens for an unknown id.
func (s *EventService) Update(ctx context.Context, eventID string, request *EventRequest) error {
	if err := s.eventRepository.Update(ctx, toModel(eventID, request)); err != nil {
		logger.FromContext(ctx).Error("Failed to update event", "event_id", eventID, "error", err)
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes the event. Nothing happens for an unknown id.
func (s *EventService) Delete(ctx context.Context, eventID string) error {
	if err := s.eventRepository.Delete(ctx, eventID); err != nil {
		logger.FromContext(ctx).Error("Failed to delete event", "event_id", eventID, "error", err)
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func toModel(id string, request *EventRequest) *model.Event {
	return &model.Event{
		ID:               id,
		Title:            request.Title,
		Description:      request.Description,
		Date:             request.Date,
		Location:         request.Location,
		ImageURL:         request.ImageURL,
		RegistrationLink: request.RegistrationLink,
	}
}

func toResponse(e *model.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Date:             e.Date,
		Location:         e.Location,
		ImageURL:         e.ImageURL,
		RegistrationLink: e.RegistrationLink,
	}
}
