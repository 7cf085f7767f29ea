// Package queue defines the listing event payload and the background
// consumer reading it from the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// ListingQueue is the durable queue listing events are published to.
const ListingQueue = "listing.events"

// Event kinds.
const (
	KindCreated = "created"
	KindUpdated = "updated"
	KindDeleted = "deleted"
)

// Entities a listing event can refer to.
const (
	EntityVenue  = "venue"
	EntityArtist = "artist"
	EntityShow   = "show"
)

// ListingEvent is published after a venue, artist or show write commits.
// It carries enough for the activity log without a database lookup.
type ListingEvent struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Entity     string `json:"entity"`
	EntityID   int64  `json:"entity_id"`
	Name       string `json:"name"`
	OccurredAt string `json:"occurred_at"`
}

// NewListingEvent builds an event with a fresh id, stamped at in UTC.
func NewListingEvent(kind, entity string, id int64, name string, at time.Time) ListingEvent {
	return ListingEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		Entity:     entity,
		EntityID:   id,
		Name:       name,
		OccurredAt: at.UTC().Format(time.RFC3339),
	}
}
