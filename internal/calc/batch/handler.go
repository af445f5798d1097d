package batch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"Vesselcalc/internal/calc/vessel"
)

// MaxUpload bounds an imported workbook.
const MaxUpload = 10 << 20

type Handler struct {
	Limit int
	Table vessel.Handler
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(r.Context(), input, h.Limit)
	if err != nil {
		http.Error(w, err.Error(), status(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := Import(r.Context(), file, h.Limit)
	if err != nil {
		http.Error(w, "Invalid file", status(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) TableXLSX(w http.ResponseWriter, r *http.Request) {
	n, err := h.Table.Points(r)
	if err != nil {
		http.Error(w, "Invalid n", http.StatusBadRequest)
		return
	}
	var input vessel.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	v, err := vessel.Build(input)
	if err != nil {
		http.Error(w, err.Error(), vessel.StatusOf(err))
		return
	}
	f, err := TableWorkbook(v, n)
	if err != nil {
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"capacity.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
	}
}

func status(err error) int {
	switch {
	case errors.Is(err, ErrEmpty):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}
