package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oybek/lalahouse/model"
)

type MockHouseAPI struct {
	mock.Mock
}

func (m *MockHouseAPI) ListHouses(ctx context.Context) ([]model.House, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.House), args.Error(1)
}

func (m *MockHouseAPI) MyHouses(ctx context.Context) ([]model.House, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.House), args.Error(1)
}

func (m *MockHouseAPI) HouseCustomers(ctx context.Context) ([]model.HouseBookings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HouseBookings), args.Error(1)
}

func (m *MockHouseAPI) GetHouse(ctx context.Context, id int) (*model.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.House), args.Error(1)
}

func (m *MockHouseAPI) CreateHouse(ctx context.Context, form model.HouseForm) (*model.House, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.House), args.Error(1)
}

func (m *MockHouseAPI) UpdateHouse(ctx context.Context, id int, form model.HouseForm) error {
	args := m.Called(ctx, id, form)
	return args.Error(0)
}

func (m *MockHouseAPI) DeleteHouse(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAvailableIsCached(t *testing.T) {
	api := new(MockHouseAPI)
	api.On("ListHouses", mock.Anything).Return([]model.House{{ID: 1, Title: "Loft"}}, nil).Once()

	w := NewHouses(api, time.Minute)

	first, err := w.Available(context.Background())
	require.NoError(t, err)
	second, err := w.Available(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	api.AssertNumberOfCalls(t, "ListHouses", 1)
}

func TestMutationsDropAvailableCache(t *testing.T) {
	form := model.HouseForm{Title: "Loft", Address: "12 Main St", Location: "Kigali", Price: 900}

	api := new(MockHouseAPI)
	api.On("ListHouses", mock.Anything).Return([]model.House{{ID: 1}}, nil)
	api.On("CreateHouse", mock.Anything, form).Return(&model.House{ID: 2}, nil)
	api.On("UpdateHouse", mock.Anything, 2, form).Return(nil)
	api.On("DeleteHouse", mock.Anything, 2).Return(nil)

	w := NewHouses(api, time.Minute)

	_, err := w.Available(context.Background())
	require.NoError(t, err)

	_, err = w.Create(context.Background(), form)
	require.NoError(t, err)
	_, err = w.Available(context.Background())
	require.NoError(t, err)
	api.AssertNumberOfCalls(t, "ListHouses", 2)

	require.NoError(t, w.Update(context.Background(), 2, form))
	_, err = w.Available(context.Background())
	require.NoError(t, err)
	api.AssertNumberOfCalls(t, "ListHouses", 3)

	require.NoError(t, w.Delete(context.Background(), 2))
	_, err = w.Available(context.Background())
	require.NoError(t, err)
	api.AssertNumberOfCalls(t, "ListHouses", 4)
}

func TestFailedMutationKeepsCache(t *testing.T) {
	api := new(MockHouseAPI)
	api.On("ListHouses", mock.Anything).Return([]model.House{{ID: 1}}, nil).Once()
	api.On("DeleteHouse", mock.Anything, 1).Return(assert.AnError)

	w := NewHouses(api, time.Minute)

	_, err := w.Available(context.Background())
	require.NoError(t, err)

	require.Error(t, w.Delete(context.Background(), 1))

	_, err = w.Available(context.Background())
	require.NoError(t, err)
	api.AssertNumberOfCalls(t, "ListHouses", 1)
}
