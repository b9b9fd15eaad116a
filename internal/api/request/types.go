package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the request body for updating the profile.
// current_password is required only when new_password is set.
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

// ListingRequest is the request body for creating or updating a listing
type ListingRequest struct {
	Title            string   `json:"title"`
	Kind             string   `json:"kind"`
	Address          string   `json:"address"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Price            float64  `json:"price"`
	Area             float64  `json:"area"`
	Rooms            int      `json:"rooms,omitempty"`
	Bathrooms        int      `json:"bathrooms,omitempty"`
	Description      string   `json:"description"`
	Amenities        []string `json:"amenities,omitempty"`
	Images           []string `json:"images,omitempty"`
	Rent             float64  `json:"rent,omitempty"`
	CondoFee         float64  `json:"condo_fee,omitempty"`
	PropertyTax      float64  `json:"property_tax,omitempty"`
	BelowMarket      bool     `json:"below_market,omitempty"`
	Status           string   `json:"status,omitempty"`
}

// GeocodeRequest is the request body for forward geocoding
type GeocodeRequest struct {
	Address string `json:"address"`
}

// ReverseGeocodeRequest is the request body for reverse geocoding
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
