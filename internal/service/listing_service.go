package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bruinrent/internal/cache"
	"github.com/spec-kit/bruinrent/internal/domain"
	"github.com/spec-kit/bruinrent/internal/events"
	"github.com/spec-kit/bruinrent/internal/repository"
	apperrors "github.com/spec-kit/bruinrent/pkg/util"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
)

// ListingCreateInput carries new-listing fields. Pointer fields distinguish
// an absent value from a legitimate zero (price 0, bedrooms 0).
type ListingCreateInput struct {
	Title            *string
	Price            *float64
	Address          *string
	Bedrooms         *int
	DistanceFromUCLA *float64
	LeaseDuration    *string
	Description      *string
	Images           []string
	Availability     *string
}

// ListingPatch carries a partial update; nil fields are left untouched and
// only supplied fields are revalidated.
type ListingPatch struct {
	Title            *string
	Price            *float64
	Address          *string
	Bedrooms         *int
	DistanceFromUCLA *float64
	LeaseDuration    *string
	Description      *string
	Images           []string
	Availability     *string
}

// ListingService implements listing CRUD. Every mutating operation reads the
// record first and checks ownership before any write executes.
type ListingService struct {
	listings   repository.ListingRepository
	cache      *cache.ListingCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewListingService builds the service.
func NewListingService(listings repository.ListingRepository, listingCache *cache.ListingCache, dispatcher events.Dispatcher, logger *zap.Logger) *ListingService {
	return &ListingService{
		listings:   listings,
		cache:      listingCache,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// List returns all listings with owner identity joined, newest first.
func (s *ListingService) List(ctx context.Context) ([]domain.ListingWithOwner, error) {
	if cached, ok := s.cache.GetAll(ctx); ok {
		return cached, nil
	}

	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.SetAll(ctx, listings)
	return listings, nil
}

// ListByOwner returns the given user's listings, newest first.
func (s *ListingService) ListByOwner(ctx context.Context, ownerID string) ([]domain.ListingWithOwner, error) {
	listings, err := s.listings.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return listings, nil
}

// Get returns a single listing by id.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.ListingWithOwner, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Listing")
		}
		return nil, apperrors.MapError(err)
	}
	return listing, nil
}

// Create validates the input and persists a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID string, input ListingCreateInput) (*domain.ListingWithOwner, error) {
	if input.Title == nil || input.Price == nil || input.Address == nil ||
		input.Bedrooms == nil || input.DistanceFromUCLA == nil ||
		input.LeaseDuration == nil || input.Description == nil {
		return nil, apperrors.NewValidationError("Please provide all required fields", nil)
	}

	listing := &domain.Listing{
		ID:               uuid.NewString(),
		OwnerID:          ownerID,
		Title:            strings.TrimSpace(*input.Title),
		Price:            *input.Price,
		Address:          strings.TrimSpace(*input.Address),
		Bedrooms:         *input.Bedrooms,
		DistanceFromUCLA: *input.DistanceFromUCLA,
		LeaseDuration:    *input.LeaseDuration,
		Description:      *input.Description,
		Images:           input.Images,
		Availability:     domain.AvailabilityAvailable,
	}
	if listing.Images == nil {
		listing.Images = []string{}
	}
	if input.Availability != nil {
		listing.Availability = domain.Availability(*input.Availability)
	}

	if err := validateListing(listing); err != nil {
		return nil, err
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventListingCreated, listing.ID, ownerID)
	return s.Get(ctx, listing.ID)
}

// Update applies a partial update after confirming the requester owns the
// listing. The ownership check always precedes the write.
func (s *ListingService) Update(ctx context.Context, id, requesterID string, patch ListingPatch) (*domain.ListingWithOwner, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.OwnerID != requesterID {
		return nil, apperrors.NewForbidden("Not authorized to update this listing")
	}

	updated := current.Listing
	applyPatch(&updated, patch)

	if err := validateListing(&updated); err != nil {
		return nil, err
	}

	if err := s.listings.Update(ctx, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Listing")
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventListingUpdated, id, requesterID)
	return s.Get(ctx, id)
}

// Delete removes a listing after confirming the requester owns it.
func (s *ListingService) Delete(ctx context.Context, id, requesterID string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != requesterID {
		return apperrors.NewForbidden("Not authorized to delete this listing")
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Listing")
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventListingDeleted, id, requesterID)
	return nil
}

func (s *ListingService) publish(ctx context.Context, eventType events.EventType, listingID, ownerID string) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ListingID: listingID,
		OwnerID:   ownerID,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Warn("event publish failed",
			zap.String("event_type", string(eventType)),
			zap.String("listing_id", listingID),
			zap.Error(err))
	}
}

func applyPatch(listing *domain.Listing, patch ListingPatch) {
	if patch.Title != nil {
		listing.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Price != nil {
		listing.Price = *patch.Price
	}
	if patch.Address != nil {
		listing.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.Bedrooms != nil {
		listing.Bedrooms = *patch.Bedrooms
	}
	if patch.DistanceFromUCLA != nil {
		listing.DistanceFromUCLA = *patch.DistanceFromUCLA
	}
	if patch.LeaseDuration != nil {
		listing.LeaseDuration = *patch.LeaseDuration
	}
	if patch.Description != nil {
		listing.Description = *patch.Description
	}
	if patch.Images != nil {
		listing.Images = patch.Images
	}
	if patch.Availability != nil {
		listing.Availability = domain.Availability(*patch.Availability)
	}
}

func validateListing(listing *domain.Listing) error {
	switch {
	case listing.Title == "":
		return apperrors.NewValidationError("Please add a title", nil)
	case len(listing.Title) > maxTitleLength:
		return apperrors.NewValidationError("Title cannot be more than 100 characters", nil)
	case listing.Price < 0:
		return apperrors.NewValidationError("Price cannot be negative", nil)
	case listing.Address == "":
		return apperrors.NewValidationError("Please add an address", nil)
	case listing.Bedrooms < 0:
		return apperrors.NewValidationError("Bedrooms cannot be negative", nil)
	case listing.DistanceFromUCLA < 0:
		return apperrors.NewValidationError("Distance cannot be negative", nil)
	case listing.LeaseDuration == "":
		return apperrors.NewValidationError("Please add lease duration", nil)
	case listing.Description == "":
		return apperrors.NewValidationError("Please add a description", nil)
	case len(listing.Description) > maxDescriptionLength:
		return apperrors.NewValidationError("Description cannot be more than 1000 characters", nil)
	case !listing.Availability.Valid():
		return apperrors.NewValidationError("Availability must be one of Available, Pending, Rented", nil)
	}
	return nil
}
