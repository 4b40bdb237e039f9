package logger

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mohadmed-adel/firebase-query-server/internal/helper"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	AppLogger  zerolog.Logger
	HttpLogger zerolog.Logger
)

func Init() {
	logLevel := parseLogLevel(os.Getenv("LOG_LEVEL"), zerolog.InfoLevel)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		return short + ":" + strconv.Itoa(line)
	}

	// Daily log directory
	logPath := "logs/" + helper.GetCurrentTimeWithFormat("02-01-2006")
	if err := os.MkdirAll(logPath, 0755); err != nil {
		log.Error().Err(err).Msg("Failed to create log directory")
		return
	}

	// AppLogger (console + file, with caller info)
	appFile, _ := os.OpenFile(logPath+"/app.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	multiWriter := zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
		appFile,
	)
	AppLogger = zerolog.New(multiWriter).
		Level(logLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	// HttpLogger (file only, no caller info)
	httpFile, _ := os.OpenFile(logPath+"/http.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	HttpLogger = zerolog.New(httpFile).
		Level(logLevel).
		With().
		Timestamp().
		Logger()
}

func parseLogLevel(levelStr string, defaultLevel zerolog.Level) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return defaultLevel
	}
}
