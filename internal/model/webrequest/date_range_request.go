package webrequest

import (
	"github.com/mohadmed-adel/firebase-query-server/internal/helper"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

// DateRangeRequest carries the /api/logs/date-range query params. Both bounds
// are required together; the store is never touched when either is missing.
type DateRangeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Limit     int    `json:"limit"`
}

var dateRangeDisplayNames = map[string]string{
	"startDate": "Tanggal Mulai",
	"endDate":   "Tanggal Akhir",
}

func (d DateRangeRequest) GetFieldDisplayName() map[string]string {
	return dateRangeDisplayNames
}

func (d DateRangeRequest) Validate() []data.ValidationErrorData {
	return helper.ValidateStruct(d.GetFieldDisplayName(), &d,
		helper.Field(&d.StartDate, ozzo.Required, ozzo.Date(helper.APIDateLayout)),
		helper.Field(&d.EndDate, ozzo.Required, ozzo.Date(helper.APIDateLayout)),
	)
}
