package service

import (
	"context"
	"fmt"

	"rathh/infras/otel"
	"rathh/internal/domains/booking/model"
	"rathh/internal/domains/booking/model/dto"
	"rathh/internal/domains/booking/repository"
	"rathh/shared/constant"
	gDto "rathh/shared/dto"
	"rathh/shared/failure"
	"rathh/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	GetBookings(ctx context.Context, params gDto.QueryParams, tripID, email string, upcoming *bool) (dto.GetBookingsResponse, error)
	GetBooking(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	Receipt(ctx context.Context, bookingID string) ([]byte, string, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otl otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

// GetBookings lists the booking ledger one page at a time, optionally
// narrowed to a trip, a traveler email, or upcoming/past trips.
func (s *serviceImpl) GetBookings(ctx context.Context, params gDto.QueryParams, tripID, email string, upcoming *bool) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := buildFilter(tripID, email, upcoming)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

// GetBooking looks a booking up by its public booking id, the bk_ token
// handed out at confirmation.
func (s *serviceImpl) GetBooking(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getByBookingID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Receipt renders the booking receipt as a PDF and returns it together with
// its download filename.
func (s *serviceImpl) Receipt(ctx context.Context, bookingID string) (content []byte, filename string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Receipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getByBookingID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}

	content, filename, err = buildReceiptPDF(booking)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to render receipt")

		return nil, "", fmt.Errorf("failed to render receipt: %w", err)
	}

	return content, filename, nil
}

func (s *serviceImpl) getByBookingID(ctx context.Context, bookingID string) (booking model.Booking, err error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
			},
		},
	}

	booking, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func buildFilter(tripID, email string, upcoming *bool) gDto.FilterGroup {
	filter := gDto.FilterGroup{}

	if tripID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldTripID,
			Operator: gDto.FilterOperatorEq,
			Value:    tripID,
		})
	}

	if email != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
		})
	}

	// upcoming trips have not departed yet; past trips have already ended
	if upcoming != nil {
		today := timezone.Now().Format(constant.DateStampFormat)

		if *upcoming {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    today,
			})
		} else {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    today,
			})
		}
	}

	return filter
}
