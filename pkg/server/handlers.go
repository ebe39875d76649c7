package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/matzehuels/framecode/pkg/buildinfo"
	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/host"
	fio "github.com/matzehuels/framecode/pkg/io"
	"github.com/matzehuels/framecode/pkg/observability"
	"github.com/matzehuels/framecode/pkg/pipeline"
)

// ConvertResponse is the body of a successful /v1/convert response.
type ConvertResponse struct {
	BuildID    string        `json:"build_id"`
	ParentID   string        `json:"parent_id,omitempty"`
	Selection  []string      `json:"selection,omitempty"`
	Markup     string        `json:"markup"`
	Stylesheet string        `json:"stylesheet"`
	Stats      ResponseStats `json:"stats"`
}

// ResponseStats summarizes a conversion.
type ResponseStats struct {
	Nodes   int `json:"nodes"`
	Dropped int `json:"dropped"`
	Rules   int `json:"rules"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Node  string `json:"node,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

// handleConvert converts the document in the request body. Query parameters
// markup, stylesheet, minify and resolver override the server defaults.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, err := fio.ReadDocument(http.MaxBytesReader(w, r.Body, maxDocumentSize), fio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	nodes, parentID, err := doc.Select()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), nodes, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ev := host.Event{Selection: nodes, ParentID: parentID}
	writeJSON(w, http.StatusOK, ConvertResponse{
		BuildID:    res.BuildID,
		ParentID:   parentID,
		Selection:  ev.IDs(),
		Markup:     res.Markup,
		Stylesheet: res.Stylesheet,
		Stats: ResponseStats{
			Nodes:   res.Stats.Nodes,
			Dropped: res.Stats.Dropped,
			Rules:   res.Stats.Rules,
		},
	})
}

func (s *Server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.cfg.Options
	q := r.URL.Query()
	if v := q.Get("markup"); v != "" {
		opts.Markup = v
	}
	if v := q.Get("stylesheet"); v != "" {
		opts.Stylesheet = v
	}
	if v := q.Get("resolver"); v != "" {
		opts.Resolver = v
	}
	if v := q.Get("minify"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid minify value: %q", v)
		}
		opts.Minify = b
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// handleEvents upgrades to a websocket and converts every inbound
// selection document.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxDocumentSize)

	s.logger.Info("client connected", "remote", conn.RemoteAddr().String())

	var writeMu sync.Mutex
	send := func(msg host.Message) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}

	session, err := host.NewSession(s.runner, host.PosterFunc(func(_ context.Context, msg host.Message) error {
		return send(msg)
	}), host.Config{Options: s.cfg.Options, Payload: s.cfg.Payload, Logger: s.logger})
	if err != nil {
		s.logger.Error("create session", "err", err)
		return
	}
	defer session.Close()

	ctx := r.Context()
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket error", "err", err)
			}
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		doc, err := fio.ReadDocument(bytes.NewReader(data), fio.FormatJSON)
		if err == nil {
			var ev host.Event
			ev.Selection, ev.ParentID, err = doc.Select()
			if err == nil {
				session.Handle(ctx, ev)
				continue
			}
		}
		s.logger.Warn("rejected selection event", "err", err)
		observability.HTTP().OnError(ctx, r.Method, r.URL.Path, err)
		if err := send(host.Message{Type: host.MessageError, Error: errors.UserMessage(err)}); err != nil {
			break
		}
	}
	s.logger.Info("client disconnected", "remote", conn.RemoteAddr().String())
}

// =============================================================================
// Responses
// =============================================================================

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	writeJSON(w, status, ErrorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
		Node:  errors.NodeID(err),
	})
}

func statusFor(err error) int {
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDialect, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeStyleResolution:
		return http.StatusBadGateway
	case errors.ErrCodeCanceled:
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
