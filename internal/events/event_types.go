package events

import (
	"time"

	"github.com/sportsmgr/club-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPlayerCreated    EventType = "player_created"
	EventPlayerTransfered EventType = "player_transfered"
	EventMatchScheduled   EventType = "match_scheduled"
	EventMatchCompleted   EventType = "match_completed"
	EventTacticUpdated    EventType = "tactic_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	ActorRole domain.Role `json:"actor_role,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PlayerCreatedPayload payload.
type PlayerCreatedPayload struct {
	TeamID       *string `json:"team_id,omitempty"`
	JerseyNumber int     `json:"jersey_number"`
	LastName     string  `json:"last_name"`
}

// PlayerTransferedPayload payload.
type PlayerTransferedPayload struct {
	FromTeamID *string `json:"from_team_id,omitempty"`
	ToTeamID   *string `json:"to_team_id,omitempty"`
}

// MatchScheduledPayload payload.
type MatchScheduledPayload struct {
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	KickoffAt  time.Time `json:"kickoff_at"`
}

// MatchCompletedPayload payload.
type MatchCompletedPayload struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// TacticUpdatedPayload payload.
type TacticUpdatedPayload struct {
	TeamID    string `json:"team_id"`
	Formation string `json:"formation"`
}
