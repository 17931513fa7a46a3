package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdesk/config"
	"farmdesk/database"
	"farmdesk/entities"
	"farmdesk/internal/server"
	"farmdesk/pkg/client"
	"farmdesk/pkg/dialog"
	"farmdesk/pkg/listctl"
	uploadSvcImp "farmdesk/pkg/upload/serviceImp"
)

func newBackend(t *testing.T) *client.Client {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	presigner, err := uploadSvcImp.NewS3(config.S3Options{})
	require.NoError(t, err)
	srv := httptest.NewServer(server.New(server.Options{DB: db, Presigner: presigner}))
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func ids[T interface{ GetID() uint }](xs []T) map[uint]T {
	out := make(map[uint]T, len(xs))
	for _, x := range xs {
		out[x.GetID()] = x
	}
	return out
}

func TestCreateThenListIsSuperset(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)
	plots := c.Plots()

	_, err := plots.Create(ctx, entities.Plot{Name: "North", PlotNumber: "12A", Latitude: 15.1, Longitude: 100.2})
	require.NoError(t, err)
	before, err := plots.List(ctx)
	require.NoError(t, err)

	created, err := plots.Create(ctx, entities.Plot{Name: "South", PlotNumber: "12B", Latitude: 15.0, Longitude: 100.1})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	after, err := plots.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	byID := ids(after)
	for _, p := range before {
		assert.Equal(t, p, byID[p.ID])
	}
	got := byID[created.ID]
	assert.Equal(t, "South", got.Name)
	assert.Equal(t, "12B", got.PlotNumber)
}

func TestUpdateOnlyTouchesTarget(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)
	inv := c.Inventory()

	a, err := inv.Create(ctx, entities.InventoryItem{ItemName: "Urea", Category: "fertilizer", Stock: 50, Unit: "kg", Threshold: 10})
	require.NoError(t, err)
	b, err := inv.Create(ctx, entities.InventoryItem{ItemName: "Diesel", Category: "fuel", Stock: 200, Unit: "L", Threshold: 40})
	require.NoError(t, err)

	_, err = inv.Update(ctx, a.ID, map[string]any{"stock": 5})
	require.NoError(t, err)

	list, err := inv.List(ctx)
	require.NoError(t, err)
	byID := ids(list)
	assert.Equal(t, 5.0, byID[a.ID].Stock)
	assert.True(t, byID[a.ID].LowStock())
	assert.Equal(t, "Urea", byID[a.ID].ItemName)
	assert.Equal(t, b.Stock, byID[b.ID].Stock)
	assert.Equal(t, b.ItemName, byID[b.ID].ItemName)
}

func TestDeleteExcludesID(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)
	sups := c.Supervisors()

	s, err := sups.Create(ctx, entities.Supervisor{Name: "Somchai", Email: "s@farm.example", Phone: "08", Plots: []string{"12A"}})
	require.NoError(t, err)
	keep, err := sups.Create(ctx, entities.Supervisor{Name: "Malee", Email: "m@farm.example", Phone: "09"})
	require.NoError(t, err)

	require.NoError(t, sups.Delete(ctx, s.ID))

	list, err := sups.List(ctx)
	require.NoError(t, err)
	byID := ids(list)
	assert.NotContains(t, byID, s.ID)
	assert.Contains(t, byID, keep.ID)

	var se *client.StatusError
	require.ErrorAs(t, sups.Delete(ctx, s.ID), &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestTaskStatusRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	task, err := c.Tasks().Create(ctx, entities.Task{Type: "harvest", Description: "block 4", Plot: "21B", Status: entities.StatusInProgress})
	require.NoError(t, err)

	updated, err := c.Tasks().Update(ctx, task.ID, map[string]string{"status": "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, updated.Status)
}

func TestUploadURLDisabled(t *testing.T) {
	c := newBackend(t)
	_, err := c.RequestUpload(context.Background(), entities.UploadRequest{FileName: "a.jpg"})
	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
}

func TestUpdateNullClearsOptionalField(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	sup := uint(5)
	p, err := c.Plots().Create(ctx, entities.Plot{Name: "North", PlotNumber: "12A", SupervisorID: &sup})
	require.NoError(t, err)
	require.NotNil(t, p.SupervisorID)

	out, err := c.Plots().Update(ctx, p.ID, map[string]any{"supervisor_id": nil})
	require.NoError(t, err)
	assert.Nil(t, out.SupervisorID)

	list, err := c.Plots().List(ctx)
	require.NoError(t, err)
	assert.Nil(t, list[0].SupervisorID)
	assert.Equal(t, "North", list[0].Name)
}

func TestEditDialogClearsField(t *testing.T) {
	ctx := context.Background()
	c := newBackend(t)

	due := "2026-01-02"
	created, err := c.Tasks().Create(ctx, entities.Task{Type: "spray", Description: "aphids", Plot: "1A", Status: entities.StatusPending, DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)

	ctl := listctl.New[entities.Task](c.Tasks())
	require.NoError(t, ctl.Mount(ctx))
	d := dialog.New[entities.Task](ctl)
	d.OpenEdit(created.ID, ctl.Items()[0])
	d.Draft().DueDate = nil
	_, err = d.Confirm(ctx)
	require.NoError(t, err)

	items := ctl.Items()
	require.Len(t, items, 1)
	assert.Nil(t, items[0].DueDate)
	assert.Equal(t, "aphids", items[0].Description)

	sups := listctl.New[entities.Supervisor](c.Supervisors())
	s, err := c.Supervisors().Create(ctx, entities.Supervisor{Name: "Malee", Email: "m@farm.example", Phone: "08", PhotoURL: "https://b.s3.r.amazonaws.com/k.jpg"})
	require.NoError(t, err)
	require.NoError(t, sups.Mount(ctx))
	sd := dialog.NewSupervisor(sups, nil)
	sd.OpenEdit(s.ID, sups.Items()[0])
	sd.Draft().PhotoURL = ""
	_, err = sd.Confirm(ctx)
	require.NoError(t, err)
	assert.Empty(t, sups.Items()[0].PhotoURL)
}
