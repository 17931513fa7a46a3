package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdesk/entities"
)

func TestFields_ValidTask(t *testing.T) {
	due := "2024-05-01"
	fields, err := Fields(entities.Task{
		Type:        "irrigation",
		Description: "north rows",
		Plot:        "12A",
		Status:      entities.StatusPending,
		DueDate:     &due,
	})
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestFields_ReportsJSONNames(t *testing.T) {
	bad := "01/05/2024"
	fields, err := Fields(entities.Task{Status: "Paused", DueDate: &bad})
	require.NoError(t, err)
	assert.Equal(t, "is required", fields["type"])
	assert.Equal(t, "is required", fields["description"])
	assert.Equal(t, "is required", fields["plot"])
	assert.Contains(t, fields["status"], "must be one of")
	assert.Equal(t, "must be a date (YYYY-MM-DD)", fields["due_date"])
}

func TestFields_InventoryNegativeStock(t *testing.T) {
	fields, err := Fields(entities.InventoryItem{ItemName: "Urea", Category: "fertilizer", Unit: "kg", Stock: -1})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"stock": "must be >= 0"}, fields)
}

func TestSummary_Sorted(t *testing.T) {
	s := Summary(map[string]string{"name": "is required", "email": "must be an email address"})
	assert.Equal(t, "email must be an email address; name is required", s)
}
