package log_service

import (
	"github.com/mohadmed-adel/firebase-query-server/internal/model/webrequest"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/webresponse"

	"github.com/gin-gonic/gin"
)

type LogService interface {
	GetAllLogs(c *gin.Context) (webresponse.JSONResponse, int)
	GetLogsByEventType(c *gin.Context) (webresponse.JSONResponse, int)
	GetLogsByUserID(c *gin.Context) (webresponse.JSONResponse, int)
	GetLogsByPlatform(c *gin.Context) (webresponse.JSONResponse, int)
	GetLogsByDateRange(c *gin.Context) (webresponse.JSONResponse, int)
	GetLogsFromLastHours(c *gin.Context) (webresponse.JSONResponse, int)
	SearchLogs(c *gin.Context, request webrequest.SearchRequest) (webresponse.JSONResponse, int)

	GetStatistics(c *gin.Context) (webresponse.JSONResponse, int)
	GetEventTypes(c *gin.Context) (webresponse.JSONResponse, int)
	GetPlatforms(c *gin.Context) (webresponse.JSONResponse, int)
	GetUsers(c *gin.Context) (webresponse.JSONResponse, int)

	ClearAllData(c *gin.Context, request webrequest.ClearDataRequest) (webresponse.JSONResponse, int)
}
