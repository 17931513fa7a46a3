package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatus_UnmarshalNormalises(t *testing.T) {
	cases := map[string]TaskStatus{
		`"Completed"`:   StatusCompleted,
		`"completed"`:   StatusCompleted,
		`"in progress"`: StatusInProgress,
		`"In_Progress"`: StatusInProgress,
		`" pending "`:   StatusPending,
	}
	for raw, want := range cases {
		var got TaskStatus
		require.NoError(t, json.Unmarshal([]byte(raw), &got), raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestTaskStatus_UnknownRejected(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"status":"archived"}`), &task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")
}

func TestTaskStatus_Active(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusInProgress.Active())
	assert.False(t, StatusCompleted.Active())
}

func TestInventoryItem_LowStock(t *testing.T) {
	assert.True(t, InventoryItem{Stock: 5, Threshold: 5}.LowStock())
	assert.True(t, InventoryItem{Stock: 1, Threshold: 5}.LowStock())
	assert.False(t, InventoryItem{Stock: 6, Threshold: 5}.LowStock())
}
