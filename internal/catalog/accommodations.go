package catalog

// Accommodation is a sample lodging entry shown by the accommodation finder.
// There is no real data source behind it yet.
type Accommodation struct {
	Name        string
	Description string
	Price       string
	Latitude    float64
	Longitude   float64
	Image       string
}

// Accommodations returns the fixed sample list.
func (c *Catalog) Accommodations() []Accommodation {
	return []Accommodation{
		{
			Name:        "Hotel A",
			Description: "A nice place to stay",
			Price:       "$100 per night",
			Latitude:    -34.397,
			Longitude:   150.644,
			Image:       "hotel_a.jpg",
		},
		{
			Name:        "Hostel B",
			Description: "Budget-friendly accommodation",
			Price:       "$50 per night",
			Latitude:    -34.397,
			Longitude:   150.644,
			Image:       "hostel_b.jpg",
		},
	}
}
