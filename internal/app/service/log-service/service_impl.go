package log_service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	log_repository "github.com/mohadmed-adel/firebase-query-server/internal/app/repository/log-repository"
	"github.com/mohadmed-adel/firebase-query-server/internal/helper"
	"github.com/mohadmed-adel/firebase-query-server/internal/logger"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/webrequest"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/webresponse"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 100

	// defaultWorkingSet bounds the scan feeding every in-memory filter.
	// Pushing arbitrary field predicates to the store would require
	// composite indexes on (field, timestamp); scanning the most recent N
	// records and filtering here avoids that. Filters therefore only see
	// the newest workingSet records, a documented limitation.
	defaultWorkingSet = 1000
)

type LogServiceImpl struct {
	LogRepository log_repository.LogRepository
	WorkingSet    int
}

func NewLogService(logRepository log_repository.LogRepository) LogService {
	workingSet := defaultWorkingSet
	if v := strings.TrimSpace(os.Getenv("SEARCH_WORKING_SET")); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			workingSet = i
		}
	}

	return &LogServiceImpl{
		LogRepository: logRepository,
		WorkingSet:    workingSet,
	}
}

func (s *LogServiceImpl) GetAllLogs(c *gin.Context) (webresponse.JSONResponse, int) {
	limit := parseLimit(c)
	startAfter := strings.TrimSpace(c.Query("startAfter"))

	logs, hasMore, err := s.LogRepository.FetchRecent(c.Request.Context(), limit, startAfter)
	if err != nil {
		if errors.Is(err, log_repository.ErrCursorNotFound) {
			return webresponse.JSONResponse{
				Error:   true,
				Message: "Cursor startAfter tidak valid",
			}, http.StatusBadRequest
		}
		return storeErrorResponse("get_all_logs", err)
	}

	var lastID interface{}
	if len(logs) > 0 {
		lastID = logs[len(logs)-1].ID.Hex()
	}

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil mengambil data log",
		Data: webresponse.LogListResponse{
			Logs:    toResponseItems(logs),
			LastID:  lastID,
			HasMore: hasMore,
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) GetLogsByEventType(c *gin.Context) (webresponse.JSONResponse, int) {
	return s.filterBySingleField(c, "get_logs_by_event_type", c.Param("eventType"),
		func(log data.GeofenceLog) string { return log.EventType })
}

func (s *LogServiceImpl) GetLogsByUserID(c *gin.Context) (webresponse.JSONResponse, int) {
	return s.filterBySingleField(c, "get_logs_by_user", c.Param("userId"),
		func(log data.GeofenceLog) string { return log.UserID })
}

func (s *LogServiceImpl) GetLogsByPlatform(c *gin.Context) (webresponse.JSONResponse, int) {
	return s.filterBySingleField(c, "get_logs_by_platform", c.Param("platform"),
		func(log data.GeofenceLog) string { return log.Platform })
}

// filterBySingleField fetches the bounded working set ordered descending,
// applies one exact-match filter in memory, then truncates to the requested
// limit. The filter only sees the newest WorkingSet records.
func (s *LogServiceImpl) filterBySingleField(c *gin.Context, operation, value string, selector func(data.GeofenceLog) string) (webresponse.JSONResponse, int) {
	limit := parseLimit(c)

	logs, err := s.LogRepository.FetchAll(c.Request.Context(), s.WorkingSet)
	if err != nil {
		return storeErrorResponse(operation, err)
	}

	filtered := make([]data.GeofenceLog, 0)
	for _, log := range logs {
		if selector(log) == value {
			filtered = append(filtered, log)
		}
	}
	filtered = truncate(filtered, limit)

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil mengambil data log",
		Data: map[string]interface{}{
			"logs": toResponseItems(filtered),
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) GetLogsByDateRange(c *gin.Context) (webresponse.JSONResponse, int) {
	request := webrequest.DateRangeRequest{
		StartDate: strings.TrimSpace(c.Query("startDate")),
		EndDate:   strings.TrimSpace(c.Query("endDate")),
	}

	if validate := request.Validate(); len(validate) != 0 {
		return webresponse.JSONResponse{
			Error:     true,
			Message:   "startDate dan endDate wajib diisi (format YYYY-MM-DD)",
			ErrorList: validate,
		}, http.StatusBadRequest
	}

	limit := parseLimit(c)
	start, _ := helper.ParseAPIDate(request.StartDate)
	end, _ := helper.ParseAPIDate(request.EndDate)

	// Literal inclusive bounds pushed to the store: the end bound is the
	// start of that calendar day. The search path below differs on purpose
	// and extends the end date by one day.
	logs, err := s.LogRepository.FetchRange(c.Request.Context(), start, end, limit)
	if err != nil {
		return storeErrorResponse("get_logs_by_date_range", err)
	}

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil mengambil data log",
		Data: map[string]interface{}{
			"logs": toResponseItems(logs),
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) GetLogsFromLastHours(c *gin.Context) (webresponse.JSONResponse, int) {
	hoursStr := strings.TrimSpace(c.Param("hours"))
	hours, _ := strconv.Atoi(hoursStr)
	if hoursStr == "" || !helper.IsNumeric(hoursStr) || hours <= 0 {
		return webresponse.JSONResponse{
			Error:   true,
			Message: "Parameter hours harus berupa angka positif",
			ErrorList: []data.ValidationErrorData{{
				Field:   "hours",
				Message: "Jumlah Jam harus berupa angka positif!",
			}},
		}, http.StatusBadRequest
	}

	limit := parseLimit(c)
	now := time.Now()
	cutoff := now.Add(-time.Duration(hours) * time.Hour)

	logs, err := s.LogRepository.FetchRange(c.Request.Context(), cutoff, now, limit)
	if err != nil {
		return storeErrorResponse("get_logs_from_last_hours", err)
	}

	return webresponse.JSONResponse{
		Error:   false,
		Message: fmt.Sprintf("Berhasil mengambil data log %d jam terakhir", hours),
		Data: map[string]interface{}{
			"logs": toResponseItems(logs),
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) SearchLogs(c *gin.Context, request webrequest.SearchRequest) (webresponse.JSONResponse, int) {
	if validate := request.Validate(); len(validate) != 0 {
		return webresponse.JSONResponse{
			Error:     true,
			Message:   "Pastikan semua filter terisi dengan benar",
			ErrorList: validate,
		}, http.StatusBadRequest
	}

	limit := request.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	logs, err := s.LogRepository.FetchAll(c.Request.Context(), s.WorkingSet)
	if err != nil {
		return storeErrorResponse("search_logs", err)
	}

	logger.AppLogger.Debug().Int("working_set", len(logs)).Msg("Search: working set fetched")

	filters := request.Filters
	filtered := logs

	if filters.EventType != "" {
		filtered = keepMatching(filtered, func(log data.GeofenceLog) bool {
			return log.EventType == filters.EventType
		})
		logger.AppLogger.Debug().Str("eventType", filters.EventType).Int("remaining", len(filtered)).Msg("Search: after eventType filter")
	}
	if filters.UserID != "" {
		filtered = keepMatching(filtered, func(log data.GeofenceLog) bool {
			return log.UserID == filters.UserID
		})
		logger.AppLogger.Debug().Str("userId", filters.UserID).Int("remaining", len(filtered)).Msg("Search: after userId filter")
	}
	if filters.Platform != "" {
		filtered = keepMatching(filtered, func(log data.GeofenceLog) bool {
			return log.Platform == filters.Platform
		})
		logger.AppLogger.Debug().Str("platform", filters.Platform).Int("remaining", len(filtered)).Msg("Search: after platform filter")
	}
	if filters.StartDate != "" {
		start, _ := helper.ParseAPIDate(filters.StartDate)
		filtered = keepMatching(filtered, func(log data.GeofenceLog) bool {
			return !log.Timestamp.Before(start)
		})
		logger.AppLogger.Debug().Str("startDate", filters.StartDate).Int("remaining", len(filtered)).Msg("Search: after startDate filter")
	}
	if filters.EndDate != "" {
		// One day past the end date keeps the whole end day inclusive.
		endDate, _ := helper.ParseAPIDate(filters.EndDate)
		end := endDate.AddDate(0, 0, 1)
		filtered = keepMatching(filtered, func(log data.GeofenceLog) bool {
			return log.Timestamp.Before(end)
		})
		logger.AppLogger.Debug().Str("endDate", filters.EndDate).Int("remaining", len(filtered)).Msg("Search: after endDate filter")
	}

	filtered = truncate(filtered, limit)

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil melakukan pencarian log",
		Data: map[string]interface{}{
			"logs": toResponseItems(filtered),
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) GetStatistics(c *gin.Context) (webresponse.JSONResponse, int) {
	stats, err := s.collectStatistics(c.Request.Context())
	if err != nil {
		return storeErrorResponse("get_statistics", err)
	}

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil mengambil statistik log",
		Data:    stats,
	}, http.StatusOK
}

func (s *LogServiceImpl) GetEventTypes(c *gin.Context) (webresponse.JSONResponse, int) {
	stats, err := s.collectStatistics(c.Request.Context())
	if err != nil {
		return storeErrorResponse("get_event_types", err)
	}

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil mengambil daftar tipe event",
		Data: map[string]interface{}{
			"eventTypes": sortedKeys(stats.EventTypes),
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) GetPlatforms(c *gin.Context) (webresponse.JSONResponse, int) {
	stats, err := s.collectStatistics(c.Request.Context())
	if err != nil {
		return storeErrorResponse("get_platforms", err)
	}

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil mengambil daftar platform",
		Data: map[string]interface{}{
			"platforms": sortedKeys(stats.Platforms),
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) GetUsers(c *gin.Context) (webresponse.JSONResponse, int) {
	stats, err := s.collectStatistics(c.Request.Context())
	if err != nil {
		return storeErrorResponse("get_users", err)
	}

	return webresponse.JSONResponse{
		Error:   false,
		Message: "Berhasil mengambil daftar pengguna",
		Data: map[string]interface{}{
			"users": stats.Users,
		},
	}, http.StatusOK
}

func (s *LogServiceImpl) ClearAllData(c *gin.Context, request webrequest.ClearDataRequest) (webresponse.JSONResponse, int) {
	if validate := request.Validate(); len(validate) != 0 {
		return webresponse.JSONResponse{
			Error:     true,
			Message:   "Konfirmasi diperlukan untuk menghapus semua data",
			ErrorList: validate,
		}, http.StatusBadRequest
	}

	deleted, err := s.LogRepository.DeleteAll(c.Request.Context())
	if err != nil {
		// Some chunks may have committed before the failure; report only
		// the count, the error stays an error.
		logger.AppLogger.Error().Err(err).Int64("deleted", deleted).Msg("Bulk delete failed mid-way")
		return storeErrorResponse("clear_all_data", err)
	}

	message := fmt.Sprintf("Berhasil menghapus %d data log geofence", deleted)
	if deleted == 0 {
		message = "Tidak ada data untuk dihapus"
	}

	logger.AppLogger.Info().Int64("deleted", deleted).Msg("Geofence data cleared")

	return webresponse.JSONResponse{
		Error:   false,
		Message: message,
		Data: map[string]interface{}{
			"deletedCount": deleted,
		},
	}, http.StatusOK
}

// collectStatistics scans the entire collection, never truncating, and
// derives every facet in one pass.
func (s *LogServiceImpl) collectStatistics(ctx context.Context) (webresponse.StatsResponse, error) {
	logs, err := s.LogRepository.FetchAll(ctx, 0)
	if err != nil {
		return webresponse.StatsResponse{}, err
	}

	stats := webresponse.StatsResponse{
		TotalLogs:  len(logs),
		EventTypes: make(map[string]int),
		Platforms:  make(map[string]int),
		Users:      make([]string, 0),
	}

	userSet := make(map[string]struct{})
	var earliest, latest time.Time

	for i, log := range logs {
		stats.EventTypes[log.EventType]++
		stats.Platforms[log.Platform]++

		if log.UserID != "" {
			userSet[log.UserID] = struct{}{}
		}

		if i == 0 || log.Timestamp.Before(earliest) {
			earliest = log.Timestamp
		}
		if i == 0 || log.Timestamp.After(latest) {
			latest = log.Timestamp
		}
	}

	for user := range userSet {
		stats.Users = append(stats.Users, user)
	}
	sort.Strings(stats.Users)

	if len(logs) > 0 {
		earliestStr := earliest.UTC().Format(time.RFC3339)
		latestStr := latest.UTC().Format(time.RFC3339)
		stats.DateRange = webresponse.DateRangeResponse{
			Earliest: &earliestStr,
			Latest:   &latestStr,
		}
	}

	return stats, nil
}

func parseLimit(c *gin.Context) int {
	limit := defaultLimit
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			limit = i
		}
	}
	return limit
}

func keepMatching(logs []data.GeofenceLog, keep func(data.GeofenceLog) bool) []data.GeofenceLog {
	filtered := make([]data.GeofenceLog, 0, len(logs))
	for _, log := range logs {
		if keep(log) {
			filtered = append(filtered, log)
		}
	}
	return filtered
}

func truncate(logs []data.GeofenceLog, limit int) []data.GeofenceLog {
	if limit > 0 && len(logs) > limit {
		return logs[:limit]
	}
	return logs
}

func toResponseItems(logs []data.GeofenceLog) []map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(logs))
	for _, log := range logs {
		items = append(items, log.ToResponse())
	}
	return items
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func storeErrorResponse(operation string, err error) (webresponse.JSONResponse, int) {
	logger.AppLogger.Error().Err(err).Str("operation", operation).Msg("Store operation failed")

	return webresponse.JSONResponse{
		Error:   true,
		Message: "Terjadi kesalahan pada server",
		Data: map[string]interface{}{
			"operation": operation,
			"detail":    err.Error(),
		},
	}, http.StatusInternalServerError
}
