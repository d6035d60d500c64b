package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"roomshare/internal/models"
	"roomshare/internal/moderation"
)

// ListingStore is the slice of the repository the listing flows
// consume.
type ListingStore interface {
	Create(ctx context.Context, l models.Listing, ownerToken string) (models.Listing, error)
	GetByID(ctx context.Context, id int64) (models.Listing, error)
	GetListings(ctx context.Context, city string, limit int) ([]models.Listing, error)
	GetNewListings(ctx context.Context, city string, since time.Time) ([]models.Listing, error)
	Delete(ctx context.Context, id int64) error
	OwnerTokenByID(ctx context.Context, id int64) (string, error)
}

type ListingService struct {
	ListingRepo ListingStore
	Moderation  *moderation.Filter
	// Notify, when set, receives every listing created through this
	// service. Wired to the feed merge and the push channel.
	Notify func(models.Listing)
	// OperatorCode optionally allows a configured operator code to
	// authorize deletes in place of the per-listing owner token.
	OperatorCode string
}

// CreateListing runs the moderation gate and contact validation, then
// stores the listing with a freshly issued owner token. The token is
// returned exactly once, in the create response.
func (s *ListingService) CreateListing(ctx context.Context, req models.NewListing) (models.CreatedListing, error) {
	if !models.ValidCategory(req.Category) {
		return models.CreatedListing{}, models.ErrInvalidCategory
	}

	title := req.Title
	if title == "" {
		title = composeTitle(req)
	}

	if match, ok := s.Moderation.Check([]moderation.Field{
		{Name: "title", Text: title},
		{Name: "description", Text: req.Description},
		{Name: "contact name", Text: req.ContactName},
	}); ok {
		return models.CreatedListing{}, &models.RestrictedContentError{Field: match.Field, Term: match.Term}
	}

	if err := validateContact(req); err != nil {
		return models.CreatedListing{}, err
	}

	listing := models.Listing{
		Title:            title,
		Description:      req.Description,
		Category:         req.Category,
		City:             req.City,
		County:           req.County,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactInfo:      req.ContactInfo,
		TelegramUsername: req.TelegramUsername,
	}

	token := uuid.NewString()
	created, err := s.ListingRepo.Create(ctx, listing, token)
	if err != nil {
		return models.CreatedListing{}, err
	}
	if s.Notify != nil {
		s.Notify(created)
	}
	return models.CreatedListing{Listing: created, OwnerToken: token}, nil
}

func (s *ListingService) GetListingByID(ctx context.Context, id int64) (models.Listing, error) {
	return s.ListingRepo.GetByID(ctx, id)
}

func (s *ListingService) GetListings(ctx context.Context, city string, limit int) ([]models.Listing, error) {
	return s.ListingRepo.GetListings(ctx, city, limit)
}

func (s *ListingService) GetNewListings(ctx context.Context, city string, since time.Time) ([]models.Listing, error) {
	return s.ListingRepo.GetNewListings(ctx, city, since)
}

// DeleteListing authorizes against the owner token issued at creation
// (or the configured operator code) before touching the row. An
// invalid token is rejected without invoking the delete.
func (s *ListingService) DeleteListing(ctx context.Context, id int64, token string) error {
	if token == "" {
		return models.ErrInvalidDeleteToken
	}
	if s.OperatorCode != "" && token == s.OperatorCode {
		return s.ListingRepo.Delete(ctx, id)
	}
	stored, err := s.ListingRepo.OwnerTokenByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == "" || stored != token {
		return models.ErrInvalidDeleteToken
	}
	return s.ListingRepo.Delete(ctx, id)
}

// composeTitle builds "Available 1bed/1bath Private Room in Las
// Colinas" style titles from the structured form fields when the
// poster left the title blank.
func composeTitle(req models.NewListing) string {
	prefix := "Available "
	if req.Category == models.CategoryNeed {
		prefix = "Looking for "
	}
	location := req.County
	if location == "" {
		location = req.City
	}
	roomType := req.RoomType
	if roomType == "" {
		roomType = "1bed/1bath"
	}
	stayType := req.StayType
	if stayType == "" {
		stayType = "Private Room"
	}
	return fmt.Sprintf("%s%s %s in %s", prefix, roomType, stayType, location)
}

// validateContact enforces at least one usable contact channel:
// contact_email must look like an email when given; otherwise any
// non-empty contact_info or telegram username is accepted.
func validateContact(req models.NewListing) error {
	if req.ContactEmail != "" {
		if !moderation.ValidEmail(req.ContactEmail) {
			return models.ErrInvalidEmail
		}
		return nil
	}
	if moderation.ValidContact(req.ContactInfo) || moderation.ValidContact(req.TelegramUsername) {
		return nil
	}
	return models.ErrMissingContact
}
