package webrequest

import (
	"github.com/mohadmed-adel/firebase-query-server/internal/helper"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

// SearchFilters mirrors the multi-predicate search body: every field is
// optional, equality fields are exact-match, dates are calendar days.
type SearchFilters struct {
	EventType string `json:"eventType"`
	UserID    string `json:"userId"`
	Platform  string `json:"platform"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type SearchRequest struct {
	Filters SearchFilters `json:"filters"`
	Limit   int           `json:"limit"`
}

var searchFiltersDisplayNames = map[string]string{
	"startDate": "Tanggal Mulai",
	"endDate":   "Tanggal Akhir",
}

func (f SearchFilters) GetFieldDisplayName() map[string]string {
	return searchFiltersDisplayNames
}

func (f SearchFilters) Validate() []data.ValidationErrorData {
	return helper.ValidateStruct(f.GetFieldDisplayName(), &f,
		helper.Field(&f.StartDate, ozzo.Date(helper.APIDateLayout)),
		helper.Field(&f.EndDate, ozzo.Date(helper.APIDateLayout)),
	)
}

func (s SearchRequest) Validate() []data.ValidationErrorData {
	errs := s.Filters.Validate()
	if s.Limit < 0 {
		errs = append(errs, data.ValidationErrorData{
			Field:   "limit",
			Message: "Limit tidak boleh negatif!",
		})
	}
	return errs
}
