package webrequest

import "testing"

func TestDateRangeRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		request DateRangeRequest
		wantErr bool
	}{
		{"both bounds valid", DateRangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-03"}, false},
		{"missing endDate", DateRangeRequest{StartDate: "2024-01-01"}, true},
		{"missing startDate", DateRangeRequest{EndDate: "2024-01-03"}, true},
		{"both missing", DateRangeRequest{}, true},
		{"malformed startDate", DateRangeRequest{StartDate: "01-02-2024", EndDate: "2024-01-03"}, true},
		{"malformed endDate", DateRangeRequest{StartDate: "2024-01-01", EndDate: "2024/01/03"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.request.Validate()
			if tt.wantErr && len(errs) == 0 {
				t.Error("Expected validation errors, got none")
			}
			if !tt.wantErr && len(errs) != 0 {
				t.Errorf("Expected no validation errors, got %v", errs)
			}
		})
	}
}

func TestDateRangeRequestMissingEndDateNamesField(t *testing.T) {
	errs := DateRangeRequest{StartDate: "2024-01-01"}.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected exactly one error, got %d", len(errs))
	}
	if errs[0].Field != "endDate" {
		t.Errorf("Expected the endDate field to be named, got %q", errs[0].Field)
	}
}

func TestSearchRequestValidation(t *testing.T) {
	valid := SearchRequest{Filters: SearchFilters{EventType: "enter", StartDate: "2024-01-01"}}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for a valid request, got %v", errs)
	}

	// Optional dates may be absent entirely.
	if errs := (SearchRequest{}).Validate(); len(errs) != 0 {
		t.Errorf("Empty filters are valid, got %v", errs)
	}

	if errs := (SearchRequest{Filters: SearchFilters{EndDate: "not-a-date"}}).Validate(); len(errs) == 0 {
		t.Error("Expected an error for a malformed endDate")
	}

	if errs := (SearchRequest{Limit: -1}).Validate(); len(errs) == 0 {
		t.Error("Expected an error for a negative limit")
	}
}

func TestClearDataRequestValidation(t *testing.T) {
	if errs := (ClearDataRequest{Confirm: true}).Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors when confirmed, got %v", errs)
	}
	if errs := (ClearDataRequest{}).Validate(); len(errs) != 1 {
		t.Error("Expected a confirmation error")
	}
}
