package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPatchSQL(t *testing.T) {
	query, args := BuildPatchSQL("trips", "trp_1", []Assignment{
		{Column: "title", Value: "Kyoto in spring"},
		{Column: "status", Value: "active"},
	}, "2026-04-01T00:00:00.000Z")

	assert.Equal(t,
		"UPDATE trips SET title = $1, status = $2, updated_at = $3 WHERE id = $4",
		query)
	assert.Equal(t,
		[]interface{}{"Kyoto in spring", "active", "2026-04-01T00:00:00.000Z", "trp_1"},
		args)
}

func TestBuildPatchSQL_SingleAssignment(t *testing.T) {
	var price *int64
	query, args := BuildPatchSQL("flights", "flt_9", []Assignment{
		{Column: "price", Value: price},
	}, "2026-04-01T00:00:00.000Z")

	assert.Equal(t,
		"UPDATE flights SET price = $1, updated_at = $2 WHERE id = $3",
		query)
	assert.Len(t, args, 3)
	assert.Nil(t, args[0])
	assert.Equal(t, "flt_9", args[2])
}
