package log_handler

import (
	"net/http"
	"time"

	log_service "github.com/mohadmed-adel/firebase-query-server/internal/app/service/log-service"
	"github.com/mohadmed-adel/firebase-query-server/internal/helper"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/webrequest"

	"github.com/gin-gonic/gin"
)

const serviceName = "Geofence Logs Query Server"

type LogHandlerImpl struct {
	LogService log_service.LogService
}

func NewLogHandler(logService log_service.LogService) LogHandler {
	return &LogHandlerImpl{LogService: logService}
}

func (h *LogHandlerImpl) GetAllLogs(c *gin.Context) {
	response, statusCode := h.LogService.GetAllLogs(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetLogsByEventType(c *gin.Context) {
	response, statusCode := h.LogService.GetLogsByEventType(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetLogsByUserID(c *gin.Context) {
	response, statusCode := h.LogService.GetLogsByUserID(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetLogsByPlatform(c *gin.Context) {
	response, statusCode := h.LogService.GetLogsByPlatform(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetLogsByDateRange(c *gin.Context) {
	response, statusCode := h.LogService.GetLogsByDateRange(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetLogsFromLastHours(c *gin.Context) {
	response, statusCode := h.LogService.GetLogsFromLastHours(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) SearchLogs(c *gin.Context) {
	var request webrequest.SearchRequest
	if err := helper.ReadJSON(c, &request); err != nil {
		helper.WriteJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response, statusCode := h.LogService.SearchLogs(c, request)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetStatistics(c *gin.Context) {
	response, statusCode := h.LogService.GetStatistics(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetEventTypes(c *gin.Context) {
	response, statusCode := h.LogService.GetEventTypes(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetPlatforms(c *gin.Context) {
	response, statusCode := h.LogService.GetPlatforms(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) GetUsers(c *gin.Context) {
	response, statusCode := h.LogService.GetUsers(c)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) ClearAllData(c *gin.Context) {
	var request webrequest.ClearDataRequest
	if err := helper.ReadJSON(c, &request); err != nil {
		helper.WriteJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response, statusCode := h.LogService.ClearAllData(c, request)
	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) Health(c *gin.Context) {
	helper.WriteJSON(c, http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}

func (h *LogHandlerImpl) Index(c *gin.Context) {
	helper.WriteJSON(c, http.StatusOK, gin.H{
		"service": serviceName,
		"api":     "/api",
	})
}
