// Package logger builds the zap loggers used across the fit scorer and the field helpers
// that keep raw CV and job description text out of log output.
package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FieldCVLength is the structured log field key for the CV text length.
	FieldCVLength = "cv_length"
	// FieldCVHash is the structured log field key for the CV text hash prefix.
	FieldCVHash = "cv_sha256"
	// FieldJDLength is the structured log field key for the job description length.
	FieldJDLength = "jd_length"
	// FieldJDHash is the structured log field key for the job description hash prefix.
	FieldJDHash = "jd_sha256"
	// FieldStage is the structured log field key for the pipeline stage name.
	FieldStage = "stage"
	// FieldRunID is the structured log field key for the scoring run identifier.
	FieldRunID = "run_id"
)

// hashPrefixLength is the number of hex characters kept from an input hash
const hashPrefixLength = 12

// New creates a logger writing to stderr. JSON output is meant for machines,
// the console encoder for people.
func New(json, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if !json {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// HashPrefix returns the first hex characters of the sha256 of text
func HashPrefix(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:hashPrefixLength]
}

// InputFields describes the scoring inputs by length and hash only
func InputFields(cv, jd string) []zap.Field {
	return []zap.Field{
		zap.Int(FieldCVLength, len(cv)),
		zap.String(FieldCVHash, HashPrefix(cv)),
		zap.Int(FieldJDLength, len(jd)),
		zap.String(FieldJDHash, HashPrefix(jd)),
	}
}

// TruncateForLog shortens s to at most limit runes, marking the cut with an ellipsis.
// A non-positive limit returns s unchanged.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// OrNop returns logger, or a no-op logger when it is nil
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
