package provider

import "rathh/internal/domains/tour/model"

func ptr(s string) *string { return &s }

// fixtureCatalog backs the simulation provider. Prices stay inside the
// default 0-5000 span and durations cover every bucket.
var fixtureCatalog = []model.Tour{
	{
		ID:              "tour_101",
		Name:            "Bonalu Jathara Festival Experience",
		Location:        "Hyderabad, Telangana",
		Price:           1500,
		Offer:           ptr("25% off with BONALU25"),
		PopularityScore: 4.8,
		BookingCount:    32,
		MaxGuests:       50,
		StartDate:       "2026-02-15",
		EndDate:         "2026-02-17",
		DurationDays:    3,
		Description:     "Witness the Bonalu processions through the Old City with a cultural historian of Telugu traditions.",
		ImageURL:        "https://images.example.com/tours/bonalu-jathara.jpg",
		Category:        ptr("festival"),
	},
	{
		ID:              "tour_102",
		Name:            "Warangal Fort and Thousand Pillar Trail",
		Location:        "Warangal, Telangana",
		Price:           2200,
		PopularityScore: 4.5,
		BookingCount:    18,
		MaxGuests:       25,
		StartDate:       "2026-03-02",
		EndDate:         "2026-03-06",
		DurationDays:    5,
		Description:     "Kakatiya-era architecture across Warangal Fort, the Thousand Pillar Temple and Ramappa.",
		ImageURL:        "https://images.example.com/tours/warangal-fort.jpg",
		Category:        ptr("culture"),
	},
	{
		ID:              "tour_103",
		Name:            "Godavari River Heritage Cruise",
		Location:        "East Godavari, AP",
		Price:           3400,
		Offer:           ptr("Early monsoon saver"),
		PopularityScore: 4.2,
		BookingCount:    41,
		MaxGuests:       60,
		StartDate:       "2026-04-10",
		EndDate:         "2026-04-19",
		DurationDays:    10,
		Description:     "A slow cruise along the Godavari with village stops, temple visits and riverside camps.",
		ImageURL:        "https://images.example.com/tours/godavari-cruise.jpg",
		Category:        ptr("culture"),
	},
	{
		ID:              "tour_104",
		Name:            "Tirumala Pilgrimage Walk",
		Location:        "Tirupati, Chittoor",
		Price:           800,
		PopularityScore: 4.9,
		BookingCount:    120,
		MaxGuests:       100,
		StartDate:       "2026-02-20",
		EndDate:         "2026-02-21",
		DurationDays:    2,
		Description:     "Guided Alipiri footpath climb to Tirumala with darshan assistance and prasadam.",
		ImageURL:        "https://images.example.com/tours/tirumala-walk.jpg",
		Category:        ptr("gathering"),
	},
	{
		ID:              "tour_105",
		Name:            "Nallamala Wildlife Safari Expedition",
		Location:        "Ranga Reddy District",
		Price:           4600,
		PopularityScore: 3.9,
		BookingCount:    9,
		MaxGuests:       12,
		StartDate:       "2026-05-01",
		EndDate:         "2026-05-16",
		DurationDays:    16,
		Description:     "Deep forest expedition through the Nallamala range tracking leopards and sloth bears.",
		ImageURL:        "https://images.example.com/tours/nallamala-safari.jpg",
		Category:        ptr("wildlife"),
	},
	{
		ID:              "tour_106",
		Name:            "Warli and Gond Tribal Art Immersion",
		Location:        "Warangal, Telangana",
		Price:           1800,
		Offer:           ptr("20% off with TRIBAL20"),
		PopularityScore: 4.4,
		BookingCount:    12,
		MaxGuests:       20,
		StartDate:       "2026-03-18",
		EndDate:         "2026-03-24",
		DurationDays:    7,
		Description:     "Live and paint with tribal artists, learning Warli and Gond techniques passed down generations.",
		ImageURL:        "https://images.example.com/tours/tribal-art.jpg",
		Category:        ptr("tribal"),
	},
	{
		ID:              "tour_107",
		Name:            "Krishna Delta Backwater Escape",
		Location:        "Krishna District, AP",
		Price:           2600,
		PopularityScore: 4.0,
		BookingCount:    27,
		MaxGuests:       30,
		StartDate:       "2026-06-05",
		EndDate:         "2026-06-08",
		DurationDays:    4,
		Description:     "Houseboat stay on the Krishna delta with barrage visits and coastal cuisine.",
		ImageURL:        "https://images.example.com/tours/krishna-delta.jpg",
	},
	{
		ID:              "tour_108",
		Name:            "Hyderabad Nightlife and Food Crawl",
		Location:        "Hyderabad, Telangana",
		Price:           1200,
		PopularityScore: 4.6,
		BookingCount:    58,
		MaxGuests:       40,
		StartDate:       "2026-02-28",
		EndDate:         "2026-03-01",
		DurationDays:    2,
		Description:     "An after-dark crawl through Irani cafes, biryani houses and rooftop lounges.",
		ImageURL:        "https://images.example.com/tours/hyderabad-nights.jpg",
		Category:        ptr("nightlife"),
	},
	{
		ID:              "tour_109",
		Name:            "Deccan Monsoon Grand Circuit",
		Location:        "Hyderabad, Telangana",
		Price:           4900,
		Offer:           ptr("Group booking discount"),
		PopularityScore: 3.7,
		BookingCount:    6,
		MaxGuests:       16,
		StartDate:       "2026-07-01",
		EndDate:         "2026-07-21",
		DurationDays:    21,
		Description:     "Three weeks across the Deccan plateau covering forts, stepwells and monsoon festivals.",
		ImageURL:        "https://images.example.com/tours/deccan-circuit.jpg",
		Category:        ptr("culture"),
	},
	{
		ID:              "tour_110",
		Name:            "Sankranti Village Festival Stay",
		Location:        "East Godavari, AP",
		Price:           950,
		PopularityScore: 4.7,
		BookingCount:    73,
		MaxGuests:       45,
		StartDate:       "2026-01-13",
		EndDate:         "2026-01-18",
		DurationDays:    6,
		Description:     "Celebrate Sankranti in a Godavari village with kite flying, haridasu songs and harvest feasts.",
		ImageURL:        "https://images.example.com/tours/sankranti-stay.jpg",
		Category:        ptr("festival"),
	},
}
