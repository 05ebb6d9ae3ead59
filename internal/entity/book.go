package entity

import (
	"time"
)

// OnlineLocation is the reserved availability key for remote vendors.
const OnlineLocation = "Online"

type Book struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Author       string                 `json:"author"`
	Imprint      string                 `json:"imprint"`
	ReleaseDate  string                 `json:"release_date"` // DD/MM/AAAA, as printed
	Synopsis     string                 `json:"synopsis"`
	Availability []LocationAvailability `json:"availability"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// LocationAvailability keeps the catalog's original casing and diacritics in
// Location. The slice order is the catalog's insertion order; city matching
// depends on it being stable.
type LocationAvailability struct {
	Location string   `json:"location"`
	Stores   []string `json:"stores"`
}
