package domain

import "time"

// Availability represents the rental state of a listing.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityPending   Availability = "Pending"
	AvailabilityRented    Availability = "Rented"
)

// Valid reports whether the value is one of the known availability states.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityPending, AvailabilityRented:
		return true
	}
	return false
}

// Listing is the domain model for a rental posting. The owner reference is
// fixed at creation; only the owner may mutate or delete the listing.
type Listing struct {
	ID               string
	OwnerID          string
	Title            string
	Price            float64
	Address          string
	Bedrooms         int
	DistanceFromUCLA float64
	LeaseDuration    string
	Description      string
	Images           []string
	Availability     Availability
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ListingOwner carries the joined owner identity returned with listings.
type ListingOwner struct {
	ID    string
	Name  string
	Email string
}

// ListingWithOwner pairs a listing with its owner's public identity.
type ListingWithOwner struct {
	Listing
	Owner ListingOwner
}
