package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// GetEnv reads an environment variable as a string, int, bool or float,
// returning defaultValue when the variable is unset or empty.
func GetEnv[T string | int | bool | float64](name string, defaultValue T) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return defaultValue
	}

	parsed, err := parseEnv[T](name, value)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

// GetRequiredEnv is GetEnv for variables the process cannot start without.
func GetRequiredEnv[T string | int | bool | float64](name string) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		log.Fatalf("%s environment variable is required", name)
	}

	parsed, err := parseEnv[T](name, value)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

func parseEnv[T string | int | bool | float64](name, value string) (T, error) {
	var out T

	switch any(out).(type) {
	case string:
		return any(value).(T), nil
	case int:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: %q is not an integer", name, value)
		}
		return any(parsed).(T), nil
	case bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: %q is not a boolean", name, value)
		}
		return any(parsed).(T), nil
	case float64:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: %q is not a number", name, value)
		}
		return any(parsed).(T), nil
	}

	return out, fmt.Errorf("environment variable %s has unsupported type", name)
}
