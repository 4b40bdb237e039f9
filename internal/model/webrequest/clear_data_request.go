package webrequest

import (
	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"
)

// ClearDataRequest guards the bulk delete endpoint: the body must carry
// {"confirm": true} before anything is removed.
type ClearDataRequest struct {
	Confirm bool `json:"confirm"`
}

func (r ClearDataRequest) Validate() []data.ValidationErrorData {
	if !r.Confirm {
		return []data.ValidationErrorData{{
			Field:   "confirm",
			Message: "Konfirmasi diperlukan. Kirim { \"confirm\": true } untuk menghapus semua data.",
		}}
	}
	return nil
}
