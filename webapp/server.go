// Package webapp backs the Telegram WebApp house form. When a host opens
// the edit form, the bot parks the house's current values under a one-time
// uuid; the form fetches them from here to prefill its fields.
package webapp

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"

	"github.com/oybek/lalahouse/model"
)

type Server struct {
	forms *ttlcache.Cache[string, model.HouseForm]
}

func NewServer(forms *ttlcache.Cache[string, model.HouseForm]) *Server {
	return &Server{forms: forms}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/house/{uuid}", s.getForm).Methods(http.MethodGet)
	return r
}

func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["uuid"]

	kv := s.forms.Get(id)
	if kv == nil {
		http.Error(w, "form not found or expired", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(kv.Value()); err != nil {
		log.Printf("encode form %s: %v", id, err)
	}
}
