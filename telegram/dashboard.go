package telegram

import (
	"context"
	"log"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/oybek/lalahouse/model"
	"github.com/oybek/lalahouse/workflow"
)

// houseCacheTTL bounds how long the available-houses feed is reused
// before the next menu render refetches it.
const houseCacheTTL = time.Minute

// dashboard is the mounted per-chat state: the resolved access and the
// workflow clients bound to that chat's bearer token.
type dashboard struct {
	access   model.Access
	bookings *workflow.Bookings
	houses   *workflow.Houses
}

// mount resolves the chat's persisted session and builds (or reuses) its
// dashboard. A store failure or a broken blob both come back as the
// unauthenticated dashboard; resolving never fails.
func (lp *LongPoll) mount(ctx context.Context, chatID int64) *dashboard {
	blob, err := lp.sessions.Load(ctx, chatID)
	if err != nil {
		log.Printf("[ChatId=%d] load session: %v", chatID, err)
		blob = nil
	}
	access := model.ResolveAccess(blob)

	if kv := lp.dash.Get(chatID); kv != nil {
		mounted := kv.Value()
		if mounted.access.Kind == access.Kind && mounted.access.Token() == access.Token() {
			return mounted
		}
	}

	authed := lp.api.Authed(access.Token())
	mounted := &dashboard{
		access:   access,
		bookings: workflow.NewBookings(authed),
		houses:   workflow.NewHouses(authed, houseCacheTTL),
	}
	lp.dash.Set(chatID, mounted, ttlcache.DefaultTTL)
	return mounted
}

// unmount drops the chat's dashboard; the next update rebuilds it from
// the persisted session.
func (lp *LongPoll) unmount(chatID int64) {
	lp.dash.Delete(chatID)
}
