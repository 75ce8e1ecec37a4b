package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("OASLINT_TEST_BOOL", "true")
	t.Setenv("OASLINT_TEST_INT", "8")
	t.Setenv("OASLINT_TEST_DURATION", "90s")
	assert.True(t, EnvBool("OASLINT_TEST_BOOL", false))
	assert.Equal(t, 8, EnvInt("OASLINT_TEST_INT", 1))
	assert.Equal(t, 90*time.Second, EnvDuration("OASLINT_TEST_DURATION", time.Minute))

	t.Setenv("OASLINT_TEST_BOOL", "sometimes")
	t.Setenv("OASLINT_TEST_INT", "0")
	t.Setenv("OASLINT_TEST_DURATION", "-1s")
	assert.False(t, EnvBool("OASLINT_TEST_BOOL", false))
	assert.Equal(t, 1, EnvInt("OASLINT_TEST_INT", 1))
	assert.Equal(t, time.Minute, EnvDuration("OASLINT_TEST_DURATION", time.Minute))

	assert.Equal(t, 3, EnvInt("OASLINT_TEST_UNSET", 3))
}
