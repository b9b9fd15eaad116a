package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AuthResult:
		o.printAuthResult(v)
	case VerifyResult:
		o.printVerifyResult(v)
	case Listing:
		o.printListing(v)
	case []Listing:
		o.printListings(v)
	case GeocodeResult:
		o.printGeocodeResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

// AuthResult combines account and token
type AuthResult struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}

// VerifyResult reports token validity
type VerifyResult struct {
	Valid   bool    `json:"valid"`
	Account Account `json:"account"`
}

// Listing response type
type Listing struct {
	ID               string   `json:"id"`
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
	Status           string   `json:"status"`
}

// GeocodeResult response type
type GeocodeResult struct {
	FormattedAddress string  `json:"formatted_address"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	Place            string  `json:"place,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccount(a Account) {
	fmt.Printf("Account: %s (%s)\n", a.Name, a.ID)
	fmt.Printf("Email: %s\n", a.Email)
	if a.Phone != "" {
		fmt.Printf("Phone: %s\n", a.Phone)
	}
	fmt.Printf("Role: %s\n", a.Role)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printAccount(a.Account)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printVerifyResult(v VerifyResult) {
	if !v.Valid {
		fmt.Println("Token: invalid")
		return
	}
	fmt.Println("Token: valid")
	o.printAccount(v.Account)
}

func (o *Output) printListing(l Listing) {
	fmt.Printf("Listing: %s (%s)\n", l.Title, l.ID)
	fmt.Printf("Kind: %s\n", l.Kind)
	fmt.Printf("Status: %s\n", l.Status)
	fmt.Printf("Address: %s\n", l.Address)
	if l.FormattedAddress != "" {
		fmt.Printf("Formatted: %s\n", l.FormattedAddress)
	}
	if l.Latitude != nil && l.Longitude != nil {
		fmt.Printf("Coordinates: %f, %f\n", *l.Latitude, *l.Longitude)
	}
	fmt.Printf("Price: %.2f\n", l.Price)
	if l.Rent > 0 {
		fmt.Printf("Rent: %.2f\n", l.Rent)
	}
	if l.CondoFee > 0 {
		fmt.Printf("Condo Fee: %.2f\n", l.CondoFee)
	}
	if l.Rooms > 0 || l.Bathrooms > 0 {
		fmt.Printf("Rooms: %d rooms, %d bathrooms\n", l.Rooms, l.Bathrooms)
	}
	if l.Area > 0 {
		fmt.Printf("Area: %.1f m2\n", l.Area)
	}
	if len(l.Amenities) > 0 {
		fmt.Printf("Amenities: %s\n", strings.Join(l.Amenities, ", "))
	}
	if l.BelowMarket {
		fmt.Println("Below market price")
	}
}

func (o *Output) printListings(listings []Listing) {
	fmt.Printf("Listings (%d):\n", len(listings))
	for _, l := range listings {
		fmt.Printf("  - %s [%s/%s] %.2f (%s)\n", l.Title, l.Kind, l.Status, l.Price, l.ID)
	}
}

func (o *Output) printGeocodeResult(g GeocodeResult) {
	if g.Latitude != 0 || g.Longitude != 0 {
		fmt.Printf("Coordinates: %f, %f\n", g.Latitude, g.Longitude)
	}
	fmt.Printf("Address: %s\n", g.FormattedAddress)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
