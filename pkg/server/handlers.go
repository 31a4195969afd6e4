package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tagcloud/pkg/buildinfo"
	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	tcio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/sizes"
)

// contentTypes maps output formats to MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
}

// LayoutRequest is the body of POST /v1/layout. With Tags set, the tags are
// placed in order; otherwise Options must describe a source.
type LayoutRequest struct {
	Tags    []TagRequest     `json:"tags,omitempty"`
	Options pipeline.Options `json:"options"`
}

// TagRequest is one tag to place.
type TagRequest struct {
	Label    string  `json:"label"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FontSize float64 `json:"font_size,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	opts := req.Options
	opts.Logger = log.FromContext(r.Context())

	entries, err := requestEntries(req)
	if err != nil {
		fail(w, r, err)
		return
	}
	doc, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), entries, opts)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheHeader(hit))
	w.Header().Set("Content-Type", "application/json")
	if err := tcio.WriteJSON(doc, w); err != nil {
		log.FromContext(r.Context()).Error("write layout", "err", err)
	}
}

func requestEntries(req LayoutRequest) ([]sizes.Entry, error) {
	if len(req.Tags) == 0 {
		return pipeline.Entries(req.Options)
	}
	entries := make(sizes.Entries, len(req.Tags))
	for i, t := range req.Tags {
		entries[i] = sizes.Entry{
			Label:    t.Label,
			Size:     cloud.Size{Width: t.Width, Height: t.Height},
			FontSize: t.FontSize,
			Weight:   1,
		}
	}
	return entries.Sizes()
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		fail(w, r, err)
		return
	}
	opts, err := renderOptions(r, format)
	if err != nil {
		fail(w, r, err)
		return
	}
	doc, err := tcio.ReadJSON(r.Body)
	if err != nil {
		fail(w, r, err)
		return
	}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), doc, opts)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeArtifact(w, r, format, artifacts[format], hit)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		fail(w, r, err)
		return
	}
	var opts pipeline.Options
	if err := decodeJSON(r, &opts); err != nil {
		fail(w, r, err)
		return
	}
	if err := validateFilename(r); err != nil {
		fail(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Logger = log.FromContext(r.Context())

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("X-Layout-Hash", result.LayoutHash)
	writeArtifact(w, r, format, result.Artifacts[format], result.CacheInfo.RenderHit)
}

// renderOptions reads render options from the query string:
// style, scale, margin, background, title, embed_font.
func renderOptions(r *http.Request, format string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats:    []string{format},
		Style:      q.Get("style"),
		Background: q.Get("background"),
		Title:      q.Get("title"),
		Logger:     log.FromContext(r.Context()),
	}
	var err error
	if opts.Scale, err = floatParam(q.Get("scale")); err != nil {
		return opts, err
	}
	if opts.Margin, err = floatParam(q.Get("margin")); err != nil {
		return opts, err
	}
	if v := q.Get("embed_font"); v != "" {
		if opts.EmbedFont, err = strconv.ParseBool(v); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "embed_font")
		}
	}
	if err := validateFilename(r); err != nil {
		return opts, err
	}
	return opts, opts.ValidateForRender()
}

func floatParam(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid number %q", v)
	}
	return f, nil
}

// validateFilename checks the optional filename query parameter used for
// Content-Disposition.
func validateFilename(r *http.Request) error {
	name := r.URL.Query().Get("filename")
	if name == "" {
		return nil
	}
	return errors.ValidatePath(name)
}

func writeArtifact(w http.ResponseWriter, r *http.Request, format string, data []byte, hit bool) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheHeader(hit))
	if name := r.URL.Query().Get("filename"); name != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

func cacheHeader(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
