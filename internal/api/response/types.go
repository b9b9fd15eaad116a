package response

import (
	"time"

	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/services/account"
	"github.com/vladia/corretora-go/internal/services/geocode"
)

// Account is the public projection of an account: everything except the
// password hash
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:        string(a.ID),
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AuthResponse is the response for register, login and profile update
type AuthResponse struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}

// AuthResponseFromAuth creates an AuthResponse from a service auth result
func AuthResponseFromAuth(a *account.Auth) AuthResponse {
	return AuthResponse{
		Account: AccountFromModel(a.Account),
		Token:   a.Token,
	}
}

// VerifyResponse is the response for the token-liveness probe
type VerifyResponse struct {
	Valid   bool    `json:"valid"`
	Account Account `json:"account"`
}

// Listing represents a listing in API responses
type Listing struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Kind             string    `json:"kind"`
	Address          string    `json:"address"`
	FormattedAddress string    `json:"formatted_address,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	Price            float64   `json:"price"`
	Area             float64   `json:"area"`
	Rooms            int       `json:"rooms,omitempty"`
	Bathrooms        int       `json:"bathrooms,omitempty"`
	Description      string    `json:"description"`
	Amenities        []string  `json:"amenities,omitempty"`
	Images           []string  `json:"images,omitempty"`
	Rent             float64   `json:"rent,omitempty"`
	CondoFee         float64   `json:"condo_fee,omitempty"`
	PropertyTax      float64   `json:"property_tax,omitempty"`
	BelowMarket      bool      `json:"below_market,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListingFromModel converts a model.Listing to a response Listing
func ListingFromModel(l *model.Listing) Listing {
	return Listing{
		ID:               string(l.ID),
		Title:            l.Title,
		Kind:             string(l.Kind),
		Address:          l.Address,
		FormattedAddress: l.FormattedAddress,
		Latitude:         l.Latitude,
		Longitude:        l.Longitude,
		Price:            l.Price,
		Area:             l.Area,
		Rooms:            l.Rooms,
		Bathrooms:        l.Bathrooms,
		Description:      l.Description,
		Amenities:        l.Amenities,
		Images:           l.Images,
		Rent:             l.Rent,
		CondoFee:         l.CondoFee,
		PropertyTax:      l.PropertyTax,
		BelowMarket:      l.BelowMarket,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// ListingsFromModel converts a slice of listings
func ListingsFromModel(ls []*model.Listing) []Listing {
	out := make([]Listing, len(ls))
	for i, l := range ls {
		out[i] = ListingFromModel(l)
	}
	return out
}

// GeocodeResult is the response for geocoding endpoints
type GeocodeResult struct {
	FormattedAddress string            `json:"formatted_address"`
	Latitude         float64           `json:"latitude,omitempty"`
	Longitude        float64           `json:"longitude,omitempty"`
	Components       map[string]string `json:"components,omitempty"`
	Place            string            `json:"place,omitempty"`
	Importance       float64           `json:"importance,omitempty"`
}

// GeocodeResultFromService converts a geocode.Result
func GeocodeResultFromService(r *geocode.Result) GeocodeResult {
	return GeocodeResult{
		FormattedAddress: r.FormattedAddress,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Components:       r.Components,
		Place:            r.Place,
		Importance:       r.Importance,
	}
}
