// Package saved serves the vessel definitions a user keeps between
// sessions.
package saved

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Vesselcalc/internal/auth"
	"Vesselcalc/internal/calc/vessel"
	"Vesselcalc/internal/repo"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

const MaxNameLength = 120

type Handler struct {
	Repo repo.VesselRepository
	Log  *log.Logger
	// OnCalc, when set, is told the kind of every successful calculation.
	OnCalc func(kind string)
}

type CreateRequest struct {
	Name   string       `json:"name"`
	Vessel vessel.Input `json:"vessel"`
}

func (h *Handler) logger() *log.Logger {
	if h.Log == nil {
		return log.Default()
	}
	return h.Log
}

func userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}

func vesselID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	list, err := h.Repo.ListVessels(r.Context(), uid)
	if err != nil {
		h.logger().Error("list vessels", "user", uid, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create stores a definition after checking that it builds.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Name) > MaxNameLength {
		http.Error(w, "Name required, up to 120 characters", http.StatusBadRequest)
		return
	}
	if _, err := vessel.Build(req.Vessel); err != nil {
		http.Error(w, err.Error(), vessel.StatusOf(err))
		return
	}
	s, err := h.Repo.SaveVessel(r.Context(), uid, req.Name, req.Vessel)
	if err != nil {
		h.logger().Error("save vessel", "user", uid, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	h.logger().Debug("saved vessel", "user", uid, "id", s.ID, "kind", s.Input.Kind)
	writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (repo.SavedVessel, bool) {
	uid, ok := userID(w, r)
	if !ok {
		return repo.SavedVessel{}, false
	}
	id, ok := vesselID(w, r)
	if !ok {
		return repo.SavedVessel{}, false
	}
	s, err := h.Repo.GetVessel(r.Context(), uid, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Vessel not found", http.StatusNotFound)
		return repo.SavedVessel{}, false
	}
	if err != nil {
		h.logger().Error("get vessel", "user", uid, "id", id, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return repo.SavedVessel{}, false
	}
	return s, true
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if s, ok := h.load(w, r); ok {
		writeJSON(w, http.StatusOK, s)
	}
}

// Calc runs the calculation of a stored definition.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	res, err := vessel.Calculate(s.Input)
	if err != nil {
		http.Error(w, err.Error(), vessel.StatusOf(err))
		return
	}
	if h.OnCalc != nil {
		h.OnCalc(string(res.Kind))
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := vesselID(w, r)
	if !ok {
		return
	}
	err := h.Repo.DeleteVessel(r.Context(), uid, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Vessel not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger().Error("delete vessel", "user", uid, "id", id, "err", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
