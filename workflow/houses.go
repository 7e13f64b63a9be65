package workflow

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/oybek/lalahouse/model"
)

type HouseAPI interface {
	ListHouses(ctx context.Context) ([]model.House, error)
	MyHouses(ctx context.Context) ([]model.House, error)
	HouseCustomers(ctx context.Context) ([]model.HouseBookings, error)
	GetHouse(ctx context.Context, id int) (*model.House, error)
	CreateHouse(ctx context.Context, form model.HouseForm) (*model.House, error)
	UpdateHouse(ctx context.Context, id int, form model.HouseForm) error
	DeleteHouse(ctx context.Context, id int) error
}

const availableKey = "available"

// Houses loads the three house feeds and runs the host's CRUD. The
// available feed is cached briefly so re-rendering the renter menu does
// not refetch it; any host mutation drops the cache.
type Houses struct {
	api       HouseAPI
	available *ttlcache.Cache[string, []model.House]
}

func NewHouses(api HouseAPI, availableTTL time.Duration) *Houses {
	return &Houses{
		api: api,
		available: ttlcache.New(
			ttlcache.WithTTL[string, []model.House](availableTTL),
			ttlcache.WithDisableTouchOnHit[string, []model.House](),
		),
	}
}

func (w *Houses) Available(ctx context.Context) ([]model.House, error) {
	if kv := w.available.Get(availableKey); kv != nil {
		return kv.Value(), nil
	}
	houses, err := w.api.ListHouses(ctx)
	if err != nil {
		return nil, err
	}
	w.available.Set(availableKey, houses, ttlcache.DefaultTTL)
	return houses, nil
}

func (w *Houses) Mine(ctx context.Context) ([]model.House, error) {
	return w.api.MyHouses(ctx)
}

func (w *Houses) Customers(ctx context.Context) ([]model.HouseBookings, error) {
	return w.api.HouseCustomers(ctx)
}

func (w *Houses) Get(ctx context.Context, id int) (*model.House, error) {
	return w.api.GetHouse(ctx, id)
}

func (w *Houses) Create(ctx context.Context, form model.HouseForm) (*model.House, error) {
	house, err := w.api.CreateHouse(ctx, form)
	if err != nil {
		return nil, err
	}
	w.available.Delete(availableKey)
	return house, nil
}

func (w *Houses) Update(ctx context.Context, id int, form model.HouseForm) error {
	if err := w.api.UpdateHouse(ctx, id, form); err != nil {
		return err
	}
	w.available.Delete(availableKey)
	return nil
}

func (w *Houses) Delete(ctx context.Context, id int) error {
	if err := w.api.DeleteHouse(ctx, id); err != nil {
		return err
	}
	w.available.Delete(availableKey)
	return nil
}
