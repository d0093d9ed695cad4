package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger logs to stdout and to <LogPath>/<Name>.log, rotated by
// lumberjack. The file always gets JSON; stdout gets the console encoder
// in debug mode.
func InitLogger(config AppConfig) (*zap.Logger, error) {
	if config.LogPath != "" {
		if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir %s: %w", config.LogPath, err)
		}
	}

	level := zap.InfoLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	if config.Debug {
		level = zap.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	consoleEncoder := zapcore.NewJSONEncoder(encoderConfig)
	if config.Debug {
		consoleEncoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	rotating := &lumberjack.Logger{
		Filename:   filepath.Join(config.LogPath, config.Name+".log"),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotating), level),
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	)

	return zap.New(core, zap.AddCaller()).With(zap.String("app", config.Name)), nil
}
