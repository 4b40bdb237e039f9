package webresponse

import "github.com/mohadmed-adel/firebase-query-server/internal/model/data"

type JSONResponse struct {
	Error     bool                       `json:"error"`
	Message   string                     `json:"message"`
	Data      interface{}                `json:"data,omitempty"`
	ErrorList []data.ValidationErrorData `json:"error_list,omitempty"`
}
