package catalog

type AvailabilityResponse struct {
	Location string   `json:"location"`
	Stores   []string `json:"stores"`
}

type BookDetailsResponse struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Author       string                 `json:"author"`
	Imprint      string                 `json:"imprint"`
	ReleaseDate  string                 `json:"release_date"`
	Synopsis     string                 `json:"synopsis"`
	Availability []AvailabilityResponse `json:"availability"`
}

type StoresResponse struct {
	Title  string   `json:"title"`
	City   *string  `json:"city"`
	Stores []string `json:"stores"`
	Online []string `json:"online"`
}
