package repository

import (
	"testing"

	"github.com/imobiflow/imobiflow-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatesByOwnerQuery(t *testing.T) {
	sqlQuery, args, err := aggregatesByOwnerQuery(42).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT p.status, p.price FROM properties p WHERE p.user_id = $1", sqlQuery)
	assert.Equal(t, []interface{}{42}, args)
}

func TestLaunchesQuery(t *testing.T) {
	sqlQuery, args, err := launchesQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "FROM properties p WHERE p.status = $1 AND p.is_launch = $2")
	assert.Contains(t, sqlQuery, "ORDER BY p.created_at DESC")
	assert.Equal(t, []interface{}{domain.PropertyStatusAvailable, true}, args)
}

func TestSimilarQuery(t *testing.T) {
	t.Run("com limite", func(t *testing.T) {
		sqlQuery, args, err := similarQuery(domain.SimilarFilter{
			ExcludeID:    "abc",
			City:         "Curitiba",
			PropertyType: "Apartamento",
			Limit:        12,
		}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sqlQuery, "p.status = $1 AND p.id <> $2 AND (p.city = $3 OR p.property_type = $4)")
		assert.Contains(t, sqlQuery, "ORDER BY p.created_at DESC LIMIT 12")
		assert.Equal(t, []interface{}{domain.PropertyStatusAvailable, "abc", "Curitiba", "Apartamento"}, args)
	})

	t.Run("sem limite", func(t *testing.T) {
		sqlQuery, _, err := similarQuery(domain.SimilarFilter{ExcludeID: "abc"}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sqlQuery, "LIMIT")
	})
}
