package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/timesnake/pkg/buildinfo"
	"github.com/matzehuels/timesnake/pkg/chart"
	"github.com/matzehuels/timesnake/pkg/errors"
	"github.com/matzehuels/timesnake/pkg/observability"
	"github.com/matzehuels/timesnake/pkg/pipeline"
)

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

type errorResponse struct {
	Error     string      `json:"error"`
	Code      errors.Code `json:"code,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

// handleTimeline renders the reference chart. The query may override the
// canvas width and track spacing, and set the render options.
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	c := chart.Reference()
	q := r.URL.Query()
	if v, ok, err := queryFloat(q.Get("width"), "width"); err != nil {
		s.writeError(w, r, err)
		return
	} else if ok {
		c.Layout.CanvasWidth = v
	}
	if v, ok, err := queryFloat(q.Get("track_spacing"), "track_spacing"); err != nil {
		s.writeError(w, r, err)
		return
	} else if ok {
		c.Layout.TrackSpacing = v
	}
	if err := c.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := renderOptions(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Chart = c
	s.render(w, r, opts)
}

// handleRender renders a posted chart. The body's Content-Type picks the
// chart encoding and defaults to JSON.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	src := chart.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		f, err := chart.ParseFormat(ct)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		src = f
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(body) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidChart, "request body is empty"))
		return
	}

	opts, err := renderOptions(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Source = body
	opts.SourceFormat = src
	s.render(w, r, opts)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	format := opts.Formats[0]
	opts.Logger = s.logger.With("request_id", RequestIDFromContext(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Chart-Hash", result.ChartHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions reads the query parameters shared by both render routes.
func renderOptions(r *http.Request, format string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats:    []string{format},
		Rasterizer: q.Get("rasterizer"),
		Title:      q.Get("title"),
	}
	if v, ok, err := queryFloat(q.Get("scale"), "scale"); err != nil {
		return opts, err
	} else if ok {
		opts.Scale = v
	}
	if p := q.Get("precision"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "precision must be an integer, got %q", p)
		}
		opts.Precision = n
	}
	if v := q.Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "refresh must be a boolean, got %q", v)
		}
		opts.Refresh = b
	}
	return opts, opts.ValidateAndSetDefaults()
}

func queryFloat(v, name string) (float64, bool, error) {
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
	}
	if err := errors.ValidateFinite(name, f); err != nil {
		return 0, false, err
	}
	return f, true, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "request_id", RequestIDFromContext(r.Context()), "error", err)
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{
		Error:     msg,
		Code:      errors.GetCode(err),
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
