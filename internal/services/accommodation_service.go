package services

import (
	"context"

	"confreg/internal/models/response_models"
	"confreg/internal/repositories"
	"confreg/pkg/utils"
)

type AccommodationServiceInterface interface {
	// ListAvailable returns options with at least one free bed. Accepted
	// speakers always see the speaker venue, full or not. personID is
	// empty for anonymous callers.
	ListAvailable(ctx context.Context, personID string) ([]response_models.AccommodationResponse, error)
}

type AccommodationService struct {
	accommodationRepo repositories.AccommodationRepository
	personRepo        repositories.PersonRepository
}

func NewAccommodationService(
	accommodationRepo repositories.AccommodationRepository,
	personRepo repositories.PersonRepository,
) AccommodationServiceInterface {
	return &AccommodationService{
		accommodationRepo: accommodationRepo,
		personRepo:        personRepo,
	}
}

func (a *AccommodationService) ListAvailable(ctx context.Context, personID string) ([]response_models.AccommodationResponse, error) {
	isSpeaker := false
	if personID != "" {
		person, err := a.personRepo.FindByID(ctx, personID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if person != nil {
			isSpeaker = person.IsSpeaker()
		}
	}

	options, err := a.accommodationRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AccommodationResponse, 0, len(options))
	for _, option := range options {
		occupants, err := a.accommodationRepo.CountOccupants(ctx, option.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		left := option.Beds - int(occupants)
		if left < 0 {
			left = 0
		}

		if option.SpeakerOnly {
			if !isSpeaker {
				continue
			}
		} else if left < 1 {
			continue
		}

		responses = append(responses, response_models.AccommodationResponse{
			ID:           option.ID.String(),
			Name:         option.Name,
			Option:       option.Option,
			CostPerNight: option.CostPerNight,
			BedsLeft:     left,
			SpeakerOnly:  option.SpeakerOnly,
		})
	}
	return responses, nil
}
