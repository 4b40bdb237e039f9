package webresponse

// LogListResponse is the payload for paginated log retrieval. LastID is the
// opaque cursor for the next page (nil when the page is empty) and HasMore is
// the length==limit heuristic, not an exact lookahead.
type LogListResponse struct {
	Logs    []map[string]interface{} `json:"logs"`
	LastID  interface{}              `json:"lastId"`
	HasMore bool                     `json:"hasMore"`
}
