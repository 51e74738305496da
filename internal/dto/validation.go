package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations attaches the cross-field date checks to gin's binding
// validator. Call once at startup, before the engine handles requests.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterStructValidation(validateTripDates, CreateTripRequest{}, UpdateTripRequest{})
	v.RegisterStructValidation(validateStepDates, CreateStepRequest{}, UpdateStepRequest{})
	v.RegisterStructValidation(validateConflictQuery, ConflictCheckQuery{})
}

// reportBadRange flags end_date when it precedes start_date. ISO dates
// compare correctly as plain strings.
func reportBadRange(sl validator.StructLevel, start, end *string) {
	if start != nil && end != nil && *end < *start {
		sl.ReportError(end, "EndDate", "end_date", "gtecsfield", "StartDate")
	}
}

func validateTripDates(sl validator.StructLevel) {
	switch req := sl.Current().Interface().(type) {
	case CreateTripRequest:
		reportBadRange(sl, req.StartDate, req.EndDate)
	case UpdateTripRequest:
		reportBadRange(sl, req.StartDate, req.EndDate)
	}
}

func validateStepDates(sl validator.StructLevel) {
	switch req := sl.Current().Interface().(type) {
	case CreateStepRequest:
		reportBadRange(sl, req.StartDate, req.EndDate)
	case UpdateStepRequest:
		reportBadRange(sl, req.StartDate, req.EndDate)
	}
}

func validateConflictQuery(sl validator.StructLevel) {
	if q, ok := sl.Current().Interface().(ConflictCheckQuery); ok {
		reportBadRange(sl, &q.StartDate, &q.EndDate)
	}
}
