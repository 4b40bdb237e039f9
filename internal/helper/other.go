package helper

import (
	"time"

	"github.com/google/uuid"
)

// APIDateLayout is the calendar-day format accepted on every date parameter.
const APIDateLayout = "2006-01-02"

// Indonesia timezone (Asia/Jakarta - GMT+7)
var IndonesiaTimezone = time.FixedZone("WIB", 7*60*60)

func GetCurrentTime() time.Time {
	return time.Now().In(IndonesiaTimezone)
}

func GetCurrentTimeWithFormat(format string) string {
	return time.Now().In(IndonesiaTimezone).Format(format)
}

func GenerateUID() string {
	return uuid.New().String()
}

func IsNumeric(s string) bool {
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// ParseAPIDate converts a YYYY-MM-DD string to the start of that calendar
// day in UTC.
func ParseAPIDate(dateStr string) (time.Time, error) {
	return time.Parse(APIDateLayout, dateStr)
}
