package dto

import (
	"rathh/internal/domains/booking/model"
	"rathh/shared"
	"rathh/shared/constant"
	gDto "rathh/shared/dto"
)

type BookingResponse struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	TripID         string  `json:"trip_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	GroupType      string  `json:"group_type"`
	PricePerPerson float64 `json:"price_per_person"`
	TravelerCount  int     `json:"traveler_count"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	City           string  `json:"city"`
	Country        string  `json:"country"`
	ConfirmedAt    string  `json:"confirmed_at"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingID = booking.BookingID
	r.TripID = booking.TripID
	r.StartDate = booking.StartDate
	r.EndDate = booking.EndDate
	r.GroupType = booking.GroupType
	r.PricePerPerson = booking.PricePerPerson
	r.TravelerCount = booking.TravelerCount
	r.Subtotal = booking.Subtotal
	r.Tax = booking.Tax
	r.Total = booking.Total
	r.FirstName = booking.FirstName
	r.LastName = booking.LastName
	r.Email = booking.Email
	r.Phone = booking.Phone
	r.City = booking.City
	r.Country = booking.Country
	r.ConfirmedAt = booking.ConfirmedAt.Format(constant.DateFormat)
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

var DefaultQueryParams = gDto.QueryParams{
	Page:    constant.DefaultValuePage,
	Limit:   constant.DefaultValueLimit,
	SortBy:  model.FieldConfirmedAt,
	SortDir: constant.DefaultValueSortDir,
}
