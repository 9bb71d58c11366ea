package models

import "github.com/tarsy-project/tarsy/ent"

// CreateEventRequest contains fields for persisting a durable event
type CreateEventRequest struct {
	SessionID string         `json:"session_id"`
	Channel   string         `json:"channel"`
	Payload   map[string]any `json:"payload"`
}

// EventsResponse contains the events on a channel after a given cursor ID
type EventsResponse struct {
	Events []*ent.Event `json:"events"`
}
