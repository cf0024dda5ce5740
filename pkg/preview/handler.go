package preview

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

// PreviewCacheControl lets shared caches keep a preview for five minutes
// and serve it stale for ten more while revalidating.
const PreviewCacheControl = "public, max-age=0, s-maxage=300, stale-while-revalidate=600"

type previewBody struct {
	models.PreviewResult
	Cache CacheStatus `json:"cache"`
}

type errorBody struct {
	Error string `json:"error"`
}

type handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler returns the HTTP surface of svc:
//
//	GET /documents/{id}/preview?sheet=&maxRows=&maxCols=
//	GET /healthz
func NewHandler(svc *Service, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{svc: svc, log: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /documents/{id}/preview", h.preview)
	mux.HandleFunc("GET /healthz", h.health)
	return mux
}

func (h *handler) preview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	req := Request{
		DocumentID: r.PathValue("id"),
		SheetName:  q.Get("sheet"),
	}
	var err error
	if req.MaxRows, err = queryInt(q.Get("maxRows")); err != nil {
		writeError(w, http.StatusBadRequest, "maxRows: "+err.Error())
		return
	}
	if req.MaxCols, err = queryInt(q.Get("maxCols")); err != nil {
		writeError(w, http.StatusBadRequest, "maxCols: "+err.Error())
		return
	}

	resp, err := h.svc.Preview(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		h.log.Info("preview request failed", "document", req.DocumentID, "status", status, "error", err)
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("X-Cache", string(resp.CacheStatus))
	w.Header().Set("Cache-Control", PreviewCacheControl)
	writeJSON(w, http.StatusOK, previewBody{PreviewResult: resp.Result, Cache: resp.CacheStatus})
	h.log.Debug("preview served", "document", req.DocumentID, "cache", resp.CacheStatus,
		"duration", time.Since(start))
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		Cache  any    `json:"cache"`
	}{"ok", h.svc.CacheStats()})
}

func queryInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}
	return n, nil
}

func statusFor(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
