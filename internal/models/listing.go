package models

import (
	"time"
)

const (
	CategoryHave = "Have"
	CategoryNeed = "Need"

	// Sentinels used by the browse filters. A selection equal to one of
	// these disables the corresponding predicate.
	AllCities     = "All Cities"
	AllAreas      = "All Areas"
	AllCategories = "All"
)

func ValidCategory(c string) bool {
	return c == CategoryHave || c == CategoryNeed
}

type Listing struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	City             string    `json:"city"`
	County           string    `json:"county,omitempty"`
	ContactName      string    `json:"contact_name,omitempty"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	ContactInfo      string    `json:"contact_info,omitempty"`
	TelegramUsername string    `json:"telegram_username,omitempty"`
	Views            int       `json:"views"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewListing carries the posting form fields. RoomType, StayType and
// PropertyType feed the title builder when Title is left blank.
type NewListing struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	City             string `json:"city"`
	County           string `json:"county"`
	ContactName      string `json:"contact_name"`
	ContactEmail     string `json:"contact_email"`
	ContactInfo      string `json:"contact_info"`
	TelegramUsername string `json:"telegram_username"`
	RoomType         string `json:"room_type"`
	StayType         string `json:"stay_type"`
	PropertyType     string `json:"property_type"`
}

// CreatedListing is the create response. OwnerToken is returned exactly
// once, at creation; reads never include it.
type CreatedListing struct {
	Listing
	OwnerToken string `json:"owner_token"`
}
