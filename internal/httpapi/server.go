package httpapi

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

const turnTimeout = 120 * time.Second

// turnProcessor is the slice of the orchestrator the server needs.
type turnProcessor interface {
	ProcessInput(ctx context.Context, conv *model.Conversation, input string) (string, error)
}

// session is one live conversation. The lock serializes turns: the
// conversation state is only safe under sequential processing.
type session struct {
	mu   sync.Mutex
	conv *model.Conversation
}

// Server exposes the assistant over HTTP. Conversations live in memory for
// the lifetime of the process; the transcript store, when configured, is a
// write-behind archive and never read on the chat path.
type Server struct {
	orch  turnProcessor
	store model.TranscriptStore

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewServer creates a server. store may be nil to disable archival.
func NewServer(orch turnProcessor, store model.TranscriptStore) *Server {
	return &Server{
		orch:     orch,
		store:    store,
		sessions: make(map[string]*session),
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/api/chat", s.handleChat)
	r.GET("/api/sessions/:id/transcript", s.handleTranscript)
	r.DELETE("/api/sessions/:id", s.handleEndSession)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// session returns the live session for id, creating one when id is empty or
// unknown. Unknown non-empty ids are honored so clients can resume after a
// client-side retry with the id they were handed.
func (s *Server) session(id string) (string, *session) {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{conv: assistant.NewSession()}
		s.sessions[id] = sess
	}
	return id, sess
}

// handleChat handles POST /api/chat.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "missing message"})
		return
	}

	id, sess := s.session(strings.TrimSpace(req.SessionID))

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	sess.mu.Lock()
	reply, err := s.orch.ProcessInput(ctx, sess.conv, req.Message)
	sess.mu.Unlock()
	if err != nil {
		logx.Error().Err(err).Str("sessionID", id).Msg("turn failed")
		c.JSON(http.StatusBadGateway, errorResponse{Error: "assistant unavailable"})
		return
	}

	s.archiveTurn(ctx, id, req.Message, reply)
	c.JSON(http.StatusOK, chatResponse{SessionID: id, Reply: reply})
}

// archiveTurn writes the finished turn to the transcript store. Archival is
// best effort: a storage failure never fails the chat response.
func (s *Server) archiveTurn(ctx context.Context, id, message, reply string) {
	if s.store == nil {
		return
	}
	if err := s.store.AppendTurn(ctx, id, schema.UserMessage(message)); err != nil {
		logx.Warn().Err(err).Str("sessionID", id).Msg("failed to archive user turn")
		return
	}
	if err := s.store.AppendTurn(ctx, id, schema.AssistantMessage(reply, nil)); err != nil {
		logx.Warn().Err(err).Str("sessionID", id).Msg("failed to archive assistant turn")
	}
}

type transcriptResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []*schema.Message `json:"messages"`
}

// handleTranscript handles GET /api/sessions/:id/transcript.
func (s *Server) handleTranscript(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "transcript archival disabled"})
		return
	}
	id := c.Param("id")

	msgs, err := s.store.LoadTranscript(c.Request.Context(), id)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", id).Msg("failed to load transcript")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, transcriptResponse{SessionID: id, Messages: msgs})
}

// handleEndSession handles DELETE /api/sessions/:id. It drops the in-memory
// conversation and clears the archived transcript.
func (s *Server) handleEndSession(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.ClearTranscript(c.Request.Context(), id); err != nil {
			logx.Warn().Err(err).Str("sessionID", id).Msg("failed to clear transcript")
		}
	}
	c.Status(http.StatusNoContent)
}
