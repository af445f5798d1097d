package vessel

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// MaxTablePoints bounds the n query parameter of the table endpoint.
const MaxTablePoints = 1000

type Handler struct {
	TablePoints int
	// OnCalc, when set, is told the kind of every successful calculation.
	OnCalc func(kind string)
}

type TableResult struct {
	Kind        Kind       `json:"kind"`
	TotalHeight float64    `json:"total_height"`
	TotalVolume float64    `json:"total_volume"`
	Rows        []TableRow `json:"rows"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		writeError(w, err)
		return
	}
	h.calculated(res.Kind)
	writeJSON(w, res)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Profile(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	n, err := h.Points(r)
	if err != nil {
		http.Error(w, "Invalid n", http.StatusBadRequest)
		return
	}
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	v, err := Build(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, TableResult{
		Kind:        v.Kind(),
		TotalHeight: v.TotalHeight(),
		TotalVolume: v.TotalVolume(),
		Rows:        v.Table(n),
	})
}

func (h *Handler) calculated(k Kind) {
	if h.OnCalc != nil {
		h.OnCalc(string(k))
	}
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Catalog())
}

// Points reads the table size from the n query parameter, falling back to
// the handler default.
func (h *Handler) Points(r *http.Request) (int, error) {
	n := h.TablePoints
	if n <= 0 {
		n = DefaultTablePoints
	}
	q := r.URL.Query().Get("n")
	if q == "" {
		return n, nil
	}
	n, err := strconv.Atoi(q)
	if err != nil || n <= 0 || n > MaxTablePoints {
		return 0, errors.New("n out of range")
	}
	return n, nil
}

// StatusOf maps calculation errors to an HTTP status.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDimension), errors.Is(err, ErrUnknownKind), errors.Is(err, ErrInvalidFlowRate):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), StatusOf(err))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
