package utils

import (
	"creapar-service/internal/pkg/constvars"
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv reads key and converts it with parse. Unset or blank variables
// yield fallback; unparsable ones are reported and also yield fallback, since
// configuration is read before the zap logger exists.
func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("config: %s=%q is not valid (%v), using %v", key, raw, err, fallback)
		return fallback
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue, func(raw string) (float64, error) {
		return strconv.ParseFloat(raw, 64)
	})
}

// IsProduction reports whether APP_ENV selects the production profile, which
// hides dev messages from error responses.
func IsProduction() bool {
	return GetEnvString("APP_ENV", constvars.AppEnvDevelopment) == constvars.AppEnvProduction
}
