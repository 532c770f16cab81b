package dto

import (
	"mime/multipart"
	"rathh/internal/domains/tour/model"
	gDto "rathh/shared/dto"
)

// SearchToursRequest carries the composed filter criteria plus the client's
// chosen ordering. Price bounds are clamped server side before the search.
type SearchToursRequest struct {
	StartDate    string   `json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate      string   `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	Durations    []string `json:"durations"    validate:"omitempty,dive,oneof=short medium long extended"`
	Categories   []string `json:"categories"   validate:"omitempty,dive,max=100"`
	Destinations []string `json:"destinations" validate:"omitempty,dive,max=100"`
	PriceMin     int      `json:"price_min"    validate:"omitempty,min=0"`
	PriceMax     int      `json:"price_max"    validate:"omitempty,min=0"`
	SortBy       string   `json:"sort_by"      validate:"omitempty,oneof=popularity price duration start_date end_date"`
}

func (r *SearchToursRequest) ToCriteria() model.FilterCriteria {
	return model.FilterCriteria{
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Durations:    r.Durations,
		Categories:   r.Categories,
		Destinations: r.Destinations,
		PriceMin:     r.PriceMin,
		PriceMax:     r.PriceMax,
	}
}

type TourResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	Offer           *string `json:"offer"`
	PopularityScore float64 `json:"popularity_score"`
	BookingCount    int     `json:"booking_count"`
	MaxGuests       int     `json:"max_guests"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DurationDays    int     `json:"duration_days"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url"`
	Category        *string `json:"category"`
}

func (r *TourResponse) FromModel(mod model.Tour) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Location = mod.Location
	r.Price = mod.Price
	r.Offer = mod.Offer
	r.PopularityScore = mod.PopularityScore
	r.BookingCount = mod.BookingCount
	r.MaxGuests = mod.MaxGuests
	r.StartDate = mod.StartDate
	r.EndDate = mod.EndDate
	r.DurationDays = mod.DurationDays
	r.Description = mod.Description
	r.ImageURL = mod.ImageURL
	r.Category = mod.Category
}

type SearchToursResponse struct {
	Tours         []TourResponse `json:"tours"`
	TotalData     int            `json:"total_data"`
	ActiveFilters int            `json:"active_filters"`
}

func (r *SearchToursResponse) FromModels(models []model.Tour, activeFilters int) {
	r.TotalData = len(models)
	r.ActiveFilters = activeFilters

	r.Tours = make([]TourResponse, len(models))
	for i, mod := range models {
		r.Tours[i].FromModel(mod)
	}
}

// SearchParams is the handoff written by the producing page and read by the
// search results page.
type SearchParams struct {
	Destination string `json:"destination" validate:"omitempty,max=100"`
	StartDate   string `json:"start_date"  validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date"    validate:"omitempty,datetime=2006-01-02"`
	Category    string `json:"category"    validate:"omitempty,max=100"`
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
}

func (r *UploadImageResponse) FromModel(id, url string) {
	r.ID = id
	r.ImageURL = url
}

// Ordering defaults for the live provider listing.
var DefaultQueryParams = gDto.QueryParams{
	SortBy:  model.FieldPopularityScore,
	SortDir: gDto.SortDirDesc,
}
