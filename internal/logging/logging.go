package logging

import (
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// New builds the process logger: JSON in production, colored console
// otherwise.
func New() *zap.Logger {
	var cfg zap.Config
	if insideContainer() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := cfg.Build()
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}
