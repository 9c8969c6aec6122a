package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaStatements(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS analyses")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS rank_batches")
	for _, stmt := range schemaStatements {
		assert.Contains(t, stmt, "IF NOT EXISTS", "schema creation must be idempotent")
	}
}
