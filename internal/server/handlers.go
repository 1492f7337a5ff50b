package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sagr12004/Spell-Checker/internal/assist"
	"github.com/sagr12004/Spell-Checker/internal/types"
)

// IndexMessage is the banner returned by GET /.
const IndexMessage = "✅ Spell Checker API running (NO grammar checker)"

// Endpoints lists the public routes and what they do.
var Endpoints = map[string]string{
	"POST /check":            "Spell check",
	"POST /tone-detect":      "Tone detection (Gemini)",
	"POST /ai-improve":       "AI rewriting (Gemini)",
	"POST /export/pdf":       "Export to PDF",
	"POST /export/docx":      "Export to DOCX",
	"POST /add-word":         "Add custom word",
	"POST /reset-dictionary": "Reset custom dictionary",
}

// IndexResponse is the body of GET /.
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// handleIndex describes the service
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, IndexResponse{Message: IndexMessage, Endpoints: Endpoints})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAddWord adds a word to the custom dictionary
func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req types.WordRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	word, err := s.dictionary.Add(req.Word)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.MessageResponse{
		Message: fmt.Sprintf("✅ '%s' added to custom dictionary", word),
	})
}

// handleResetDictionary clears the custom dictionary
func (s *Server) handleResetDictionary(w http.ResponseWriter, _ *http.Request) {
	s.dictionary.Reset()
	s.jsonResponse(w, http.StatusOK, types.MessageResponse{Message: "✅ Custom dictionary cleared"})
}

// handleCheck spell-checks the request text
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req types.TextRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.checker.Check(r.Context(), req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.wordsChecked.Add(float64(result.TotalWords))
	s.metrics.misspellings.Add(float64(result.WrongWordsCount))
	s.jsonResponse(w, http.StatusOK, result)
}

// handleToneDetect classifies the tone of the request text
func (s *Server) handleToneDetect(w http.ResponseWriter, r *http.Request) {
	s.handleAssist(w, r, assist.TaskToneDetect)
}

// handleAIImprove rewrites the request text professionally
func (s *Server) handleAIImprove(w http.ResponseWriter, r *http.Request) {
	s.handleAssist(w, r, assist.TaskAIImprove)
}

func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request, task assist.Task) {
	// A missing key is reported before the body is looked at.
	if !s.assist.Configured() {
		_, err := s.assist.Run(r.Context(), task, "")
		s.metrics.aiRequests.WithLabelValues(string(task), outcomeError).Inc()
		s.writeError(w, r, err)
		return
	}

	var req types.TextRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	reply, err := s.assist.Run(r.Context(), task, req.Text)
	s.metrics.aiRequests.WithLabelValues(string(task), outcome(err)).Inc()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, reply)
}

// handleExport renders the request text and sends it as a download
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")

	var req types.TextRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	artifact, err := s.exports.Write(format, req.Text)
	var validationErr *types.ValidationError
	if !errors.As(err, &validationErr) {
		s.metrics.exports.WithLabelValues(format, outcome(err)).Inc()
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	f, err := os.Open(artifact.Path)
	if err != nil {
		s.writeError(w, r, &types.ExportError{Format: format, Message: "failed to open export", Cause: err})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.writeError(w, r, &types.ExportError{Format: format, Message: "failed to stat export", Cause: err})
		return
	}

	s.logger.WithFields(logrus.Fields{
		"format": format,
		"file":   artifact.Filename,
		"bytes":  artifact.Size,
	}).Debug("export written")

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	http.ServeContent(w, r, artifact.Filename, info.ModTime(), f)
}

// decodeBody decodes a JSON request body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
