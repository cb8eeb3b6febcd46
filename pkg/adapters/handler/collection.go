package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/catalog"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
)

type CollectionHandler struct {
	service ports.CollectionService
	jobs    ports.JobDispatcher
}

func NewCollectionHandler(service ports.CollectionService, jobs ports.JobDispatcher) *CollectionHandler {
	return &CollectionHandler{service: service, jobs: jobs}
}

type jobResponse struct {
	Job domain.Job `json:"job"`
}

func (h *CollectionHandler) submit(w http.ResponseWriter, r *http.Request, kind string, fn ports.JobFunc) {
	job, err := h.jobs.Submit(kind, fn, nil)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/jobs/"+job.ID)
	writeJSON(w, http.StatusAccepted, jobResponse{Job: job})
}

func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.service.ListCollections(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if collections == nil {
		collections = []domain.CollectionMetadata{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": collections})
}

// CreateCollection populates a new collection. With ?async=true the work is queued
// and the response carries the job to poll.
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req domain.CollectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if async, _ := strconv.ParseBool(r.URL.Query().Get("async")); async {
		h.submit(w, r, "populate", func(ctx context.Context) (any, error) {
			return h.service.CreateCollection(ctx, req)
		})
		return
	}

	meta, err := h.service.CreateCollection(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, meta)
}

func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	collection, err := h.service.GetCollection(r.Context(), collectionName(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	view := collectionView{Collection: collection, Images: make([]string, len(collection.CoinList))}
	if series, err := catalog.ByIndex(collection.CoinType); err == nil {
		for i, slot := range collection.CoinList {
			view.Images[i] = series.CoinSlotImage(slot, false)
		}
	}
	writeJSON(w, http.StatusOK, view)
}

// collectionView adds the resolved asset of every slot, index-aligned with coinList.
type collectionView struct {
	*domain.Collection
	Images []string `json:"images"`
}

func (h *CollectionHandler) EditCollection(w http.ResponseWriter, r *http.Request) {
	var req domain.CollectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	meta, err := h.service.EditCollection(r.Context(), collectionName(r), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCollection(r.Context(), collectionName(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type copyCollectionRequest struct {
	Name string `json:"name"`
}

func (h *CollectionHandler) CopyCollection(w http.ResponseWriter, r *http.Request) {
	var req copyCollectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	meta, err := h.service.CopyCollection(r.Context(), collectionName(r), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, meta)
}

type displayRequest struct {
	DisplayType int `json:"displayType"`
}

func (h *CollectionHandler) SetDisplayType(w http.ResponseWriter, r *http.Request) {
	var req displayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.SetDisplayType(r.Context(), collectionName(r), req.DisplayType); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	Names []string `json:"names"`
}

func (h *CollectionHandler) ReorderCollections(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.ReorderCollections(r.Context(), req.Names); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CollectionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context(), collectionName(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *CollectionHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	var patch domain.SlotPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	slot, err := h.service.UpdateSlot(r.Context(), collectionName(r), index, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

func (h *CollectionHandler) CopySlot(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	if err := h.service.CopySlot(r.Context(), collectionName(r), index); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CollectionHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	if err := h.service.DeleteSlot(r.Context(), collectionName(r), index); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams every collection as one interchange document. The document is
// built in memory first so a failure still yields a clean error response.
func (h *CollectionHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), &buf); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="coin-collection-%s.json"`, time.Now().Format("2006-01-02")))
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, &buf)
}

// Import queues a replacement of every collection with the uploaded document.
func (h *CollectionHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	h.submit(w, r, "import", func(ctx context.Context) (any, error) {
		return h.service.Import(ctx, bytes.NewReader(body))
	})
}

type extendRequest struct {
	Year int `json:"year"`
}

// ExtendToYear adds the slots of a new year to running collections. The year
// defaults to the current one.
func (h *CollectionHandler) ExtendToYear(w http.ResponseWriter, r *http.Request) {
	req := extendRequest{Year: time.Now().Year()}
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	extended, err := h.service.ExtendToYear(r.Context(), req.Year)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if extended == nil {
		extended = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"year": req.Year, "extended": extended})
}
