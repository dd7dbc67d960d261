package services

import (
	"context"
	"time"

	"campus-spaces/registrar/internal/db/repositories"
	"campus-spaces/registrar/internal/models/dtos/responses"
)

// DirectoryService serves the read-only reference data: the institution
// list and upcoming events.
type DirectoryService struct {
	institutionRepo *repositories.InstitutionRepository
	eventRepo       *repositories.EventRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	institutionRepo *repositories.InstitutionRepository,
	eventRepo *repositories.EventRepository,
) *DirectoryService {
	return &DirectoryService{
		institutionRepo: institutionRepo,
		eventRepo:       eventRepo,
	}
}

// ListInstitutions returns all institutions
func (svc *DirectoryService) ListInstitutions(ctx context.Context) (*responses.InstitutionListResponse, error) {
	institutions, err := svc.institutionRepo.List(ctx)
	if err != nil {
		return nil, newInternalError(err)
	}

	views := make([]responses.InstitutionView, 0, len(institutions))
	for _, inst := range institutions {
		views = append(views, responses.InstitutionView{
			ID:     inst.ID,
			Name:   inst.Name,
			Domain: inst.Domain,
			Icon:   inst.Icon,
		})
	}

	return &responses.InstitutionListResponse{Institutions: views}, nil
}

// ListEvents returns upcoming events for one institution
func (svc *DirectoryService) ListEvents(ctx context.Context, institutionID string) (*responses.EventListResponse, error) {
	if institutionID == "" {
		return nil, newValidationError("institutionId required")
	}

	events, err := svc.eventRepo.ListUpcomingByInstitution(ctx, institutionID, time.Now())
	if err != nil {
		return nil, newInternalError(err)
	}

	views := make([]responses.EventView, 0, len(events))
	for _, ev := range events {
		views = append(views, responses.EventView{
			ID:           ev.ID,
			Title:        ev.Title,
			Description:  ev.Description,
			Category:     ev.Category,
			Date:         ev.StartsAt.Format(time.RFC3339),
			Time:         ev.Time,
			Attendees:    ev.Attendees,
			MaxAttendees: ev.MaxAttendees,
		})
	}

	return &responses.EventListResponse{Events: views}, nil
}
