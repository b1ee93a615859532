package utils

import (
	"github.com/alphaoracle/alphaoracle/utils/env"
)

// Dev returns true if the service is in development mode
func Dev() bool {
	return env.GetVar("ORACLE_MODE") == "DEV"
}

// Stg returns true if the service is in staging mode
func Stg() bool {
	return env.GetVar("ORACLE_MODE") == "STG"
}

// Prod returns true if the service is in production mode
func Prod() bool {
	return env.GetVar("ORACLE_MODE") == "PROD"
}

var (
	Sha1hash string
	Version  string = "2.0.0"
)
