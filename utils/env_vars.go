package utils

import (
	"fmt"
	"os"
	"strconv"
)

type envVarType interface {
	~string | ~int | ~bool | ~float64
}

// GetEnv reads an environment variable and converts it to the type of the default value.
// An unset or empty variable returns the default value.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	value, ok := os.LookupEnv(envVarName)
	if !ok || value == "" {
		return defaultValue
	}
	parsed, err := parseEnv[T](value)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return parsed
}

func parseEnv[T envVarType](value string) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = value
	case *int:
		v, err := strconv.Atoi(value)
		if err != nil {
			return out, fmt.Errorf("'%s' is not an integer", value)
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return out, fmt.Errorf("'%s' cannot be converted to bool", value)
		}
		*p = v
	case *float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return out, fmt.Errorf("'%s' is not a float", value)
		}
		*p = v
	default:
		return out, fmt.Errorf("unsupported environment variable type %T", out)
	}
	return out, nil
}
