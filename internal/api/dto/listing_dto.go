package dto

import (
	"time"

	"github.com/spec-kit/bruinrent/internal/domain"
)

// CreateListingRequest payload for a new listing. Pointer fields let the
// service tell a missing field apart from an explicit zero.
type CreateListingRequest struct {
	Title            *string  `json:"title"`
	Price            *float64 `json:"price"`
	Address          *string  `json:"address"`
	Bedrooms         *int     `json:"bedrooms"`
	DistanceFromUCLA *float64 `json:"distanceFromUCLA"`
	LeaseDuration    *string  `json:"leaseDuration"`
	Description      *string  `json:"description"`
	Images           []string `json:"images"`
	Availability     *string  `json:"availability"`
}

// UpdateListingRequest payload for a partial update; absent fields are left
// untouched.
type UpdateListingRequest struct {
	Title            *string  `json:"title"`
	Price            *float64 `json:"price"`
	Address          *string  `json:"address"`
	Bedrooms         *int     `json:"bedrooms"`
	DistanceFromUCLA *float64 `json:"distanceFromUCLA"`
	LeaseDuration    *string  `json:"leaseDuration"`
	Description      *string  `json:"description"`
	Images           []string `json:"images"`
	Availability     *string  `json:"availability"`
}

// OwnerResponse is the joined owner identity on listing responses.
type OwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListingResponse is the wire shape of a listing.
type ListingResponse struct {
	ID               string        `json:"id"`
	Owner            OwnerResponse `json:"owner"`
	Title            string        `json:"title"`
	Price            float64       `json:"price"`
	Address          string        `json:"address"`
	Bedrooms         int           `json:"bedrooms"`
	DistanceFromUCLA float64       `json:"distanceFromUCLA"`
	LeaseDuration    string        `json:"leaseDuration"`
	Description      string        `json:"description"`
	Images           []string      `json:"images"`
	Availability     string        `json:"availability"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// NewListingResponse maps a joined listing to its wire shape.
func NewListingResponse(listing *domain.ListingWithOwner) ListingResponse {
	images := listing.Images
	if images == nil {
		images = []string{}
	}
	return ListingResponse{
		ID: listing.ID,
		Owner: OwnerResponse{
			ID:    listing.Owner.ID,
			Name:  listing.Owner.Name,
			Email: listing.Owner.Email,
		},
		Title:            listing.Title,
		Price:            listing.Price,
		Address:          listing.Address,
		Bedrooms:         listing.Bedrooms,
		DistanceFromUCLA: listing.DistanceFromUCLA,
		LeaseDuration:    listing.LeaseDuration,
		Description:      listing.Description,
		Images:           images,
		Availability:     string(listing.Availability),
		CreatedAt:        listing.CreatedAt,
		UpdatedAt:        listing.UpdatedAt,
	}
}

// NewListingResponses maps a slice of joined listings.
func NewListingResponses(listings []domain.ListingWithOwner) []ListingResponse {
	items := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		items = append(items, NewListingResponse(&listings[i]))
	}
	return items
}
