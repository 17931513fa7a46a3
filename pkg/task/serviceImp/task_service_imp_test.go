package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdesk/database"
	"farmdesk/entities"
	"farmdesk/pkg/optional"
	"farmdesk/pkg/task/repositoryImp"
	svc "farmdesk/pkg/task/service"
	"farmdesk/pkg/validation"
)

func newSvc(t *testing.T) svc.TaskService {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	return New(repositoryImp.New(db))
}

func TestCreate_DefaultsStatus(t *testing.T) {
	s := newSvc(t)
	task := &entities.Task{Type: "irrigation", Description: "drip line 3", Plot: "12A", SupervisorID: 2}
	require.NoError(t, s.Create(task))
	assert.NotZero(t, task.ID)
	assert.Equal(t, entities.StatusPending, task.Status)
}

func TestCreate_RejectsMissingFields(t *testing.T) {
	s := newSvc(t)
	err := s.Create(&entities.Task{Type: "irrigation"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "plot")

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_MergesPatch(t *testing.T) {
	s := newSvc(t)
	a := &entities.Task{Type: "spray", Description: "aphids", Plot: "1A"}
	b := &entities.Task{Type: "weeding", Description: "rows 1-4", Plot: "1B"}
	require.NoError(t, s.Create(a))
	require.NoError(t, s.Create(b))

	done := entities.StatusCompleted
	out, err := s.Update(a.ID, svc.TaskPatch{Status: &done, RequiredQuantity: optional.Of(4.5)})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, out.Status)
	assert.Equal(t, "aphids", out.Description)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entities.StatusCompleted, list[0].Status)
	assert.Equal(t, 4.5, *list[0].RequiredQuantity)
	assert.Equal(t, entities.StatusPending, list[1].Status)
	assert.Equal(t, "rows 1-4", list[1].Description)
}

func TestUpdate_UnknownID(t *testing.T) {
	s := newSvc(t)
	_, err := s.Update(99, svc.TaskPatch{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDelete(t *testing.T) {
	s := newSvc(t)
	task := &entities.Task{Type: "spray", Description: "x", Plot: "2C"}
	require.NoError(t, s.Create(task))
	require.NoError(t, s.Delete(task.ID))
	assert.ErrorIs(t, s.Delete(task.ID), gorm.ErrRecordNotFound)
}

func TestUpdate_NullClearsOptionalFields(t *testing.T) {
	s := newSvc(t)
	due := "2026-01-02"
	item := uint(3)
	qty := 2.0
	task := &entities.Task{Type: "spray", Description: "aphids", Plot: "1A", DueDate: &due, InventoryItemID: &item, RequiredQuantity: &qty}
	require.NoError(t, s.Create(task))

	out, err := s.Update(task.ID, svc.TaskPatch{DueDate: optional.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, out.DueDate)

	list, err := s.List()
	require.NoError(t, err)
	assert.Nil(t, list[0].DueDate)
	require.NotNil(t, list[0].InventoryItemID)
	assert.Equal(t, uint(3), *list[0].InventoryItemID)

	_, err = s.Update(task.ID, svc.TaskPatch{InventoryItemID: optional.Null[uint](), RequiredQuantity: optional.Null[float64]()})
	require.NoError(t, err)
	list, err = s.List()
	require.NoError(t, err)
	assert.Nil(t, list[0].InventoryItemID)
	assert.Nil(t, list[0].RequiredQuantity)
}
