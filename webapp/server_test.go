package webapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oybek/lalahouse/model"
)

func TestGetFormPrefill(t *testing.T) {
	forms := ttlcache.New(ttlcache.WithTTL[string, model.HouseForm](time.Minute))
	forms.Set("abc-123", model.HouseForm{Title: "Loft", Address: "12 Main St", Location: "Kigali", Price: 900}, ttlcache.DefaultTTL)

	srv := httptest.NewServer(NewServer(forms).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/house/abc-123")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var form model.HouseForm
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&form))
	assert.Equal(t, "Loft", form.Title)
	assert.Equal(t, float64(900), form.Price)
}

func TestGetFormUnknownUUID(t *testing.T) {
	forms := ttlcache.New(ttlcache.WithTTL[string, model.HouseForm](time.Minute))

	srv := httptest.NewServer(NewServer(forms).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/house/nope")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
