package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventListingCreated EventType = "listing_created"
	EventListingUpdated EventType = "listing_updated"
	EventListingDeleted EventType = "listing_deleted"
)

// Event represents a domain event emitted by the listing service.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	ListingID string    `json:"listing_id"`
	OwnerID   string    `json:"owner_id"`
	Timestamp time.Time `json:"timestamp"`
}
