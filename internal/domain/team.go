package domain

import "time"

// TeamType distinguishes club sides from national squads.
type TeamType string

const (
	TeamTypeClub     TeamType = "CLUB"
	TeamTypeNational TeamType = "NATIONAL"
	TeamTypeOther    TeamType = "OTHER"
)

// SportType enumerates supported sports.
type SportType string

const (
	SportFootball   SportType = "FOOTBALL"
	SportBasketball SportType = "BASKETBALL"
	SportHandball   SportType = "HANDBALL"
	SportVolleyball SportType = "VOLLEYBALL"
)

// Team models a managed club or national side.
type Team struct {
	ID        string
	Name      string
	LeagueID  string
	Country   *string
	City      *string
	Division  *string
	Venue     *string
	Founded   *string
	Type      TeamType
	SportType SportType
	LogoURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
