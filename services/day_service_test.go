package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

func TestBuildDayPatch(t *testing.T) {
	assigns, err := BuildDayPatch(utils.Body{"date": "2026-04-11", "title": "Arashiyama"})
	require.NoError(t, err)
	require.Len(t, assigns, 2)
	assert.Equal(t, "date", assigns[0].Column)
	assert.Equal(t, "2026-04-11", assigns[0].Value)
	assert.Equal(t, "title", assigns[1].Column)

	// Snake_case spelling resolves to the same column
	assigns, err = BuildDayPatch(utils.Body{"day_no": float64(3)})
	require.NoError(t, err)
	require.Len(t, assigns, 1)
	assert.Equal(t, "day_no", assigns[0].Column)
	assert.Equal(t, int64(3), assigns[0].Value)

	_, err = BuildDayPatch(utils.Body{"date": "2026-02-30"})
	assert.Error(t, err)
}

func TestPatchDay_NoRecognizedFields(t *testing.T) {
	service := NewDayService()

	for _, body := range []utils.Body{{}, {"foo": "bar"}} {
		_, err := service.PatchDay("day_x", body)
		appErr, ok := err.(*utils.AppError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, utils.ErrNoFields, appErr.Message)
	}
}
