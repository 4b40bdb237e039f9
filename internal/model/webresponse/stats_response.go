package webresponse

type DateRangeResponse struct {
	Earliest *string `json:"earliest"`
	Latest   *string `json:"latest"`
}

// StatsResponse is recomputed from a full collection scan on every request;
// nothing here is cached or persisted.
type StatsResponse struct {
	TotalLogs  int               `json:"totalLogs"`
	EventTypes map[string]int    `json:"eventTypes"`
	Platforms  map[string]int    `json:"platforms"`
	Users      []string          `json:"users"`
	DateRange  DateRangeResponse `json:"dateRange"`
}
