package env

import (
	"os"
	"strconv"
	"sync"
	"time"
)

var dVal sync.Map

// RegisterDefault stores a fallback value returned by GetVar
// when the variable is absent from the process environment.
func RegisterDefault(key, defaultValue string) {
	dVal.Store(key, defaultValue)
}

func GetVar(key string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		if v, _ := dVal.Load(key); v != nil {
			return v.(string)
		}
		return ""
	}
	return value
}

func GetBool(key string) bool {
	b, _ := strconv.ParseBool(GetVar(key))
	return b
}

func GetDuration(key string) time.Duration {
	d, _ := time.ParseDuration(GetVar(key))
	return d
}
