// Package serve exposes a Spell instance over HTTP.
package serve

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	spell "github.com/corrigo/spell"
)

// NewRouter builds a mux.Router exposing /lookup, /compound, and /segment,
// each reading its query from the "q" query-string parameter.
func NewRouter(s *spell.Spell) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/lookup", lookupHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/compound", compoundHandler(s)).Methods(http.MethodGet)
	r.HandleFunc("/segment", segmentHandler(s)).Methods(http.MethodGet)
	return r
}

func lookupHandler(s *spell.Spell) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			http.Error(w, "missing q parameter", http.StatusBadRequest)
			return
		}

		verbosity := spell.Top
		if v := r.URL.Query().Get("verbosity"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				verbosity = spell.Verbosity(n)
			}
		}

		suggestions, err := s.Lookup(q, verbosity)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, suggestions)
	}
}

func compoundHandler(s *spell.Spell) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			http.Error(w, "missing q parameter", http.StatusBadRequest)
			return
		}
		result, err := s.LookupCompound(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, result)
	}
}

func segmentHandler(s *spell.Spell) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			http.Error(w, "missing q parameter", http.StatusBadRequest)
			return
		}
		result, err := s.WordSegmentation(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, result)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
