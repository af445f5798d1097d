package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"Vesselcalc/internal/calc/vessel"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Points < 0 || input.Points > vessel.MaxTablePoints {
		http.Error(w, "Invalid table_points", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, input, time.Now()); err != nil {
		status := vessel.StatusOf(err)
		if status == http.StatusBadRequest {
			http.Error(w, err.Error(), status)
			return
		}
		http.Error(w, "Report generation error", status)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"vessel.pdf\"")
	buf.WriteTo(w)
}
