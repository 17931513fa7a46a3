package listctl

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdesk/entities"
)

type fakeSource struct {
	mu      sync.Mutex
	items   []entities.Plot
	nextID  uint
	listErr error
	mutErr  error
	lists   int
}

func (f *fakeSource) Name() string { return "plots" }

func (f *fakeSource) List(context.Context) ([]entities.Plot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entities.Plot(nil), f.items...), nil
}

func (f *fakeSource) Create(_ context.Context, p entities.Plot) (*entities.Plot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return nil, f.mutErr
	}
	f.nextID++
	p.ID = f.nextID
	f.items = append(f.items, p)
	return &p, nil
}

func (f *fakeSource) Update(_ context.Context, id uint, patch any) (*entities.Plot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return nil, f.mutErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = patch.(map[string]string)["name"]
			out := f.items[i]
			return &out, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeSource) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return f.mutErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func seeded() *fakeSource {
	return &fakeSource{
		items:  []entities.Plot{{ID: 1, Name: "North", PlotNumber: "1A"}, {ID: 2, Name: "South", PlotNumber: "1B"}},
		nextID: 2,
	}
}

func TestNew_StartsLoading(t *testing.T) {
	c := New[entities.Plot](seeded())
	s := c.State()
	assert.Equal(t, Loading, s.Phase)
	assert.Empty(t, s.Items)
}

func TestMount_Ready(t *testing.T) {
	c := New[entities.Plot](seeded())
	require.NoError(t, c.Mount(context.Background()))
	assert.Equal(t, Ready, c.Phase())
	assert.Len(t, c.Items(), 2)
}

func TestMount_FailureClearsItems(t *testing.T) {
	src := seeded()
	c := New[entities.Plot](src)
	require.NoError(t, c.Mount(context.Background()))
	require.Len(t, c.Items(), 2)

	boom := errors.New("connection refused")
	src.listErr = boom
	err := c.Retry(context.Background())
	require.ErrorIs(t, err, boom)

	s := c.State()
	assert.Equal(t, Error, s.Phase)
	assert.Empty(t, s.Items)
	assert.ErrorIs(t, s.Err, boom)

	src.listErr = nil
	require.NoError(t, c.Retry(context.Background()))
	assert.Equal(t, Ready, c.Phase())
	assert.Nil(t, c.State().Err)
}

func TestCreate_Refetches(t *testing.T) {
	src := seeded()
	c := New[entities.Plot](src)
	require.NoError(t, c.Mount(context.Background()))

	out, err := c.Create(context.Background(), entities.Plot{Name: "East", PlotNumber: "2A"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), out.ID)
	assert.Len(t, c.Items(), 3)
	assert.Equal(t, 2, src.lists)
}

func TestUpdateDelete_Refetch(t *testing.T) {
	c := New[entities.Plot](seeded())
	ctx := context.Background()
	require.NoError(t, c.Mount(ctx))

	_, err := c.Update(ctx, 2, map[string]string{"name": "South Field"})
	require.NoError(t, err)
	assert.Equal(t, "North", c.Items()[0].Name)
	assert.Equal(t, "South Field", c.Items()[1].Name)

	require.NoError(t, c.Delete(ctx, 1))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ID)
}

func TestMutationFailure_NotifiesAndKeepsState(t *testing.T) {
	src := seeded()
	var notices []Notice
	c := New[entities.Plot](src, WithNotifier[entities.Plot](NotifierFunc(func(n Notice) {
		notices = append(notices, n)
	})))
	ctx := context.Background()
	require.NoError(t, c.Mount(ctx))
	before := c.State()

	src.mutErr = errors.New("500")
	_, err := c.Create(ctx, entities.Plot{Name: "x", PlotNumber: "x"})
	require.Error(t, err)
	_, err = c.Update(ctx, 1, map[string]string{"name": "y"})
	require.Error(t, err)
	require.Error(t, c.Delete(ctx, 1))

	require.Len(t, notices, 3)
	assert.Equal(t, []string{"create", "update", "delete"}, []string{notices[0].Op, notices[1].Op, notices[2].Op})
	assert.Equal(t, "plots", notices[0].Resource)
	assert.Contains(t, notices[2].String(), "delete plots failed")

	assert.Equal(t, before, c.State())
	assert.Equal(t, 1, src.lists)
}

func TestSubscribe_ReceivesLatest(t *testing.T) {
	c := New[entities.Plot](seeded())
	ch := c.Subscribe()

	first := <-ch
	assert.Equal(t, Loading, first.Phase)

	require.NoError(t, c.Mount(context.Background()))
	latest := <-ch
	assert.Equal(t, Ready, latest.Phase)
	assert.Len(t, latest.Items, 2)

	c.Unsubscribe(ch)
	_, open := <-ch
	assert.False(t, open)
}

func TestState_IsCopy(t *testing.T) {
	c := New[entities.Plot](seeded())
	require.NoError(t, c.Mount(context.Background()))
	s := c.State()
	s.Items[0].Name = "mutated"
	assert.Equal(t, "North", c.Items()[0].Name)
}
