package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/catalog"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
)

type SeriesHandler struct {
	service ports.CollectionService
}

func NewSeriesHandler(service ports.CollectionService) *SeriesHandler {
	return &SeriesHandler{service: service}
}

type seriesSummary struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	Group         string `json:"group"`
	StartYear     int    `json:"startYear"`
	StopYear      int    `json:"stopYear"`
	EditableDates bool   `json:"editableDates"`
}

type seriesDetail struct {
	*catalog.Series
	GroupName string                `json:"groupName"`
	Defaults  domain.SlotParameters `json:"defaults"`
}

func (h *SeriesHandler) ListSeries(w http.ResponseWriter, r *http.Request) {
	series := catalog.All()
	if name := r.URL.Query().Get("group"); name != "" {
		g, ok := parseGroup(name)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown series group")
			return
		}
		series = catalog.Group(g)
	}
	out := make([]seriesSummary, 0, len(series))
	for _, s := range series {
		out = append(out, seriesSummary{
			Index:         s.Index,
			Name:          s.Name,
			Group:         s.Group.String(),
			StartYear:     s.StartYear,
			StopYear:      s.StopYear,
			EditableDates: s.EditableDates,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

func parseGroup(name string) (catalog.DisplayGroup, bool) {
	for _, g := range []catalog.DisplayGroup{catalog.GroupBasic, catalog.GroupAdvanced, catalog.GroupMore} {
		if g.String() == name {
			return g, true
		}
	}
	return 0, false
}

func (h *SeriesHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	s, err := catalog.ByIndex(index)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, seriesDetail{Series: s, GroupName: s.Group.String(), Defaults: s.DefaultParameters()})
}

// Preview returns the slots a collection of the series would get. An empty body
// previews the default parameters.
func (h *SeriesHandler) Preview(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	var params domain.SlotParameters
	if r.ContentLength != 0 && !decodeJSON(w, r, &params) {
		return
	}
	slots, err := h.service.Preview(r.Context(), index, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": len(slots), "data": slots})
}
