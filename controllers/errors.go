package controllers

import (
	"errors"
	"net/http"

	"Gin_redis_dress_rental/blobs"
	"Gin_redis_dress_rental/db"
	"Gin_redis_dress_rental/models"

	"github.com/go-playground/validator/v10"
)

// Toast texts shown to admins.
const (
	msgItemFieldsRequired = "Please fill all required fields"
	msgDatesRequired      = "Please select both start and end dates"
	msgInvalidRange       = "End date cannot be before start date"
	msgInvalidDate        = "Please enter dates as YYYY-MM-DD"
	msgItemNotFound       = "That dress no longer exists"
	msgRentalNotFound     = "That rental period no longer exists"
	msgUploadTooLarge     = "Image is too large"
	msgTooManyRequests    = "Too many changes at once, please try again shortly"

	msgAvailabilityUpdated = "Availability updated"
	msgRentalAdded         = "Rental period added successfully"
	msgRentalRemoved       = "Rental period removed"
	msgItemAdded           = "Dress added successfully"
)

// tooLarge covers both our own blob limit and the request body cap.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.Is(err, blobs.ErrTooLarge) || errors.As(err, &mbe)
}

func isMissingField(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// message turns a store or binding error into the toast an admin sees.
func message(err error) string {
	switch {
	case errors.Is(err, db.ErrMissingFields):
		return msgItemFieldsRequired
	case errors.Is(err, models.ErrDatesRequired):
		return msgDatesRequired
	case errors.Is(err, models.ErrInvalidRange):
		return msgInvalidRange
	case errors.Is(err, models.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, db.ErrItemNotFound):
		return msgItemNotFound
	case errors.Is(err, db.ErrRentalNotFound):
		return msgRentalNotFound
	case tooLarge(err):
		return msgUploadTooLarge
	}
	return err.Error()
}

func status(err error) int {
	switch {
	case errors.Is(err, db.ErrItemNotFound), errors.Is(err, db.ErrRentalNotFound):
		return http.StatusNotFound
	case tooLarge(err):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, db.ErrMissingFields),
		errors.Is(err, models.ErrDatesRequired),
		errors.Is(err, models.ErrInvalidRange),
		errors.Is(err, models.ErrInvalidDate),
		isMissingField(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
