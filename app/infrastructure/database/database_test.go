package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abled.ai/abled-api-gateway/config/environment_variables"
)

func TestNewDB_MissingWriteDSN(t *testing.T) {
	prev := environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN
	environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN = ""
	defer func() {
		environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN = prev
	}()

	db, err := NewDB()
	require.Error(t, err)
	assert.Nil(t, db)
}
