package catalog

import (
	"strings"

	apperrors "globetrek/internal/errors"
)

// Destination holds everything rendered on a destination page. Values are
// immutable for the process lifetime; the catalog has no write operations.
type Destination struct {
	Slug             string
	Name             string
	TouristSpots     []string
	LocalAttractions []string
	Climate          string
	BestTravelTimes  string
}

// Catalog is a read-only destination lookup. The slug slice preserves
// insertion order so search results come back in a stable, unranked order.
type Catalog struct {
	order  []string
	bySlug map[string]Destination
}

// New builds the catalog with its compiled-in destinations.
func New() *Catalog {
	c := &Catalog{bySlug: make(map[string]Destination)}
	c.add(Destination{
		Slug:             "paris",
		Name:             "Paris, France",
		TouristSpots:     []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Montmartre", "Seine River Cruises"},
		LocalAttractions: []string{"Champs-Élysées", "Arc de Triomphe", "Disneyland Paris", "Palace of Versailles"},
		Climate:          "Mild and moderately wet. Best travel times are spring (April-June) and fall (September-October) when temperatures are pleasant and tourist crowds are smaller.",
		BestTravelTimes:  "April to June, September to October",
	})
	c.add(Destination{
		Slug:             "tokyo",
		Name:             "Tokyo, Japan",
		TouristSpots:     []string{"Tokyo Tower", "Senso-ji Temple", "Meiji Shrine", "Shibuya Crossing", "Ueno Park"},
		LocalAttractions: []string{"Akihabara", "Ginza District", "Tsukiji Market", "Odaiba", "Tokyo Disneyland and DisneySea"},
		Climate:          "Humid subtropical with four distinct seasons. Spring (March-May) and autumn (September-November) offer the most comfortable weather.",
		BestTravelTimes:  "March to May, September to November",
	})
	c.add(Destination{
		Slug:             "new_york",
		Name:             "New York City, USA",
		TouristSpots:     []string{"Statue of Liberty", "Central Park", "Times Square", "Empire State Building", "Brooklyn Bridge"},
		LocalAttractions: []string{"Broadway", "Museum of Modern Art (MoMA)", "Fifth Avenue", "High Line", "One World Observatory"},
		Climate:          "Humid subtropical. Winters are cold, summers are hot and humid. Best times are spring (April-June) and fall (September-November).",
		BestTravelTimes:  "April to June, September to November",
	})
	c.add(Destination{
		Slug:             "rome",
		Name:             "Rome, Italy",
		TouristSpots:     []string{"Colosseum", "Vatican Museums", "St. Peter's Basilica", "Trevi Fountain", "Roman Forum"},
		LocalAttractions: []string{"Pantheon", "Piazza Navona", "Spanish Steps", "Villa Borghese"},
		Climate:          "Mediterranean climate with hot, dry summers and mild, wet winters. Spring (April-June) and fall (September-October) are ideal for travel.",
		BestTravelTimes:  "April to June, September to October",
	})
	c.add(Destination{
		Slug:             "sydney",
		Name:             "Sydney, Australia",
		TouristSpots:     []string{"Sydney Opera House", "Sydney Harbour Bridge", "Bondi Beach", "Taronga Zoo", "Darling Harbour"},
		LocalAttractions: []string{"Royal Botanic Garden", "The Rocks", "Blue Mountains", "Manly Beach"},
		Climate:          "Temperate with warm summers and mild winters. Best times are spring (September-November) and autumn (March-May).",
		BestTravelTimes:  "September to November, March to May",
	})
	return c
}

func (c *Catalog) add(d Destination) {
	c.order = append(c.order, d.Slug)
	c.bySlug[d.Slug] = d
}

// Get returns the destination for an exact slug match.
func (c *Catalog) Get(slug string) (Destination, error) {
	d, ok := c.bySlug[slug]
	if !ok {
		return Destination{}, apperrors.ErrDestinationNotFound
	}
	return d, nil
}

// Search returns destinations whose name contains the query,
// case-insensitively, in insertion order. An empty query matches everything.
func (c *Catalog) Search(query string) []Destination {
	q := strings.ToLower(query)
	var results []Destination
	for _, slug := range c.order {
		d := c.bySlug[slug]
		if strings.Contains(strings.ToLower(d.Name), q) {
			results = append(results, d)
		}
	}
	return results
}
