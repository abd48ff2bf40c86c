package entity

// Coordinates is an optional lat/lng pair for map rendering.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination is an immutable catalog entry. Price is kept as a display
// string (e.g. "From $156/night"); numeric consumers go through the
// pricing package.
type Destination struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Country        string       `json:"country"`
	Continent      string       `json:"continent"`
	Description    string       `json:"description"`
	Price          string       `json:"price"`
	Rating         float64      `json:"rating"`
	Category       string       `json:"category"`
	TravelTypes    []string     `json:"travel_types"`
	BudgetLevel    string       `json:"budget_level"`
	BestSeason     string       `json:"best_season"`
	Duration       string       `json:"duration"`
	TopAttractions []string     `json:"top_attractions,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
}

// HasTravelType reports whether the entry carries the given tag.
func (d Destination) HasTravelType(tag string) bool {
	for _, t := range d.TravelTypes {
		if t == tag {
			return true
		}
	}
	return false
}
