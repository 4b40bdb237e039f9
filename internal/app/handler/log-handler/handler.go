package log_handler

import "github.com/gin-gonic/gin"

type LogHandler interface {
	GetAllLogs(c *gin.Context)
	GetLogsByEventType(c *gin.Context)
	GetLogsByUserID(c *gin.Context)
	GetLogsByPlatform(c *gin.Context)
	GetLogsByDateRange(c *gin.Context)
	GetLogsFromLastHours(c *gin.Context)
	SearchLogs(c *gin.Context)

	GetStatistics(c *gin.Context)
	GetEventTypes(c *gin.Context)
	GetPlatforms(c *gin.Context)
	GetUsers(c *gin.Context)

	ClearAllData(c *gin.Context)

	Health(c *gin.Context)
	Index(c *gin.Context)
}
