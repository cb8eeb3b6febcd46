package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
)

type JobHandler struct {
	jobs ports.JobDispatcher
}

func NewJobHandler(jobs ports.JobDispatcher) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, jobResponse{Job: job})
}
