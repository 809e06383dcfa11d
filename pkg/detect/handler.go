package detect

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sniff/pkg/logger"
	"github.com/dmitrymomot/sniff/pkg/navigator"
)

// SkipParam is the query parameter holding a comma separated list of axes to skip.
const SkipParam = "skip"

// Handler returns a router exposing the detector over HTTP:
//
//	GET  /         detect from request headers, respond with the Result as JSON
//	POST /         detect from a posted navigator snapshot
//	GET  /classes  detect from request headers, respond with the class list
//
// Every route accepts ?skip=browser,os,plugins,supports on top of cfg. The GET
// routes only see request headers, which carry no feature signals, so they
// always skip the supports axis.
func Handler(d *Detector, cfg Config) chi.Router {
	h := &handler{detector: d, cfg: cfg}

	r := chi.NewRouter()
	r.Get("/", h.fromHeaders)
	r.Post("/", h.fromSnapshot)
	r.Get("/classes", h.classes)
	return r
}

type handler struct {
	detector *Detector
	cfg      Config
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (h *handler) fromHeaders(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.headerConfig(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, h.detector.Detect(r.Context(), navigator.FromRequest(r), cfg))
}

func (h *handler) fromSnapshot(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.config(w, r)
	if !ok {
		return
	}

	snap, err := navigator.Decode(r.Body)
	switch {
	case errors.Is(err, navigator.ErrInvalidSnapshot):
		h.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, h.detector.Detect(r.Context(), snap, cfg))
}

func (h *handler) classes(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.headerConfig(w, r)
	if !ok {
		return
	}
	res := h.detector.Detect(r.Context(), navigator.FromRequest(r), cfg)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strings.Join(res.Classes(), " ")))
}

// config applies the skip query parameter. It writes a 400 and reports false
// when the parameter names an unknown axis.
func (h *handler) config(w http.ResponseWriter, r *http.Request) (Config, bool) {
	skip := r.URL.Query().Get(SkipParam)
	if skip == "" {
		return h.cfg, true
	}
	cfg, err := h.cfg.Skip(strings.Split(skip, ",")...)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return Config{}, false
	}
	return cfg, true
}

func (h *handler) headerConfig(w http.ResponseWriter, r *http.Request) (Config, bool) {
	cfg, ok := h.config(w, r)
	cfg.SkipSupports = true
	return cfg, ok
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.detector.log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
	}
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.detector.log.InfoContext(r.Context(), "request rejected",
		logger.Error(err),
		logger.UserAgent(r.UserAgent()),
	)
	h.writeJSON(w, r, status, errorResponse{Error: http.StatusText(status), Detail: err.Error()})
}
