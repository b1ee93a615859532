package env

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetVarPrefersEnvironment(t *testing.T) {
	RegisterDefault("ORACLE_ENV_TEST", "fallback")
	assert.Equal(t, "fallback", GetVar("ORACLE_ENV_TEST"))

	os.Setenv("ORACLE_ENV_TEST", "set")
	defer os.Unsetenv("ORACLE_ENV_TEST")
	assert.Equal(t, "set", GetVar("ORACLE_ENV_TEST"))
}

func TestGetBool(t *testing.T) {
	os.Setenv("ORACLE_BOOL_TEST", "true")
	defer os.Unsetenv("ORACLE_BOOL_TEST")
	assert.True(t, GetBool("ORACLE_BOOL_TEST"))

	// unset and unparseable both read as false
	assert.False(t, GetBool("ORACLE_BOOL_MISSING"))
	os.Setenv("ORACLE_BOOL_TEST", "yes please")
	assert.False(t, GetBool("ORACLE_BOOL_TEST"))
}

func TestGetDuration(t *testing.T) {
	RegisterDefault("ORACLE_DELAY_TEST", "12s")
	assert.Equal(t, 12*time.Second, GetDuration("ORACLE_DELAY_TEST"))

	assert.Equal(t, time.Duration(0), GetDuration("ORACLE_DELAY_MISSING"))
}
