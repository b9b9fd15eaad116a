package model

import "time"

// ListingID uniquely identifies a property listing
type ListingID string

// ListingKind is the closed set of property types
type ListingKind string

const (
	KindHouse      ListingKind = "house"
	KindApartment  ListingKind = "apartment"
	KindLand       ListingKind = "land"
	KindCommercial ListingKind = "commercial"
)

// ParseListingKind validates a listing kind string
func ParseListingKind(s string) (ListingKind, error) {
	switch ListingKind(s) {
	case KindHouse, KindApartment, KindLand, KindCommercial:
		return ListingKind(s), nil
	default:
		return "", ErrUnknownListingKind
	}
}

// ListingStatus is the closed set of listing availability states
type ListingStatus string

const (
	StatusAvailable   ListingStatus = "available"
	StatusUnavailable ListingStatus = "unavailable"
	StatusSold        ListingStatus = "sold"
	StatusRented      ListingStatus = "rented"
)

// ParseListingStatus validates a listing status string.
// An empty string defaults to StatusAvailable.
func ParseListingStatus(s string) (ListingStatus, error) {
	switch ListingStatus(s) {
	case "":
		return StatusAvailable, nil
	case StatusAvailable, StatusUnavailable, StatusSold, StatusRented:
		return ListingStatus(s), nil
	default:
		return "", ErrUnknownListingStatus
	}
}

// Listing represents a property advertised on the marketplace
type Listing struct {
	ID               ListingID
	Title            string
	Kind             ListingKind
	Address          string
	FormattedAddress string
	Latitude         *float64
	Longitude        *float64
	Price            float64
	Area             float64
	Rooms            int
	Bathrooms        int
	Description      string
	Amenities        []string
	Images           []string
	Rent             float64
	CondoFee         float64
	PropertyTax      float64
	BelowMarket      bool
	Status           ListingStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
