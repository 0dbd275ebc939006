package httpapi

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const greetingPrompt = "Give a warm, friendly greeting to a user who just opened the AI assistant. Be conversational and inviting. Keep it to 1-2 sentences."

const greetingFallback = "Hello! I'm your AI assistant. How can I help you today?"

// handleGreet writes a spoken greeting. Always answers 200: generation
// failures fall back to a fixed line, narration failures to no audio.
func (s *Server) handleGreet(c *gin.Context) {
	greeting, err := s.chat.Chat(c.Request.Context(), greetingPrompt, nil, false)
	if err != nil || greeting == "" {
		greeting = greetingFallback
	}

	var audioURL any
	if s.narrator != nil {
		name, err := s.narrator.SaveSpeech(c.Request.Context(), greeting, "greeting")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: greeting narration failed: %v\n", err)
		} else {
			audioURL = "/audio/" + name
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"greeting":  greeting,
		"audio_url": audioURL,
	})
}

// handleSTT transcribes an uploaded audio file.
func (s *Server) handleSTT(c *gin.Context) {
	if s.transcriber == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "STT service not available"})
		return
	}

	header, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}
	if header.Filename == "" || header.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty audio file"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	text, err := s.transcriber.Transcribe(c.Request.Context(), file, header.Filename)
	if err != nil || text == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// handleChatText answers one text message and narrates the reply.
func (s *Server) handleChatText(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		UseRAG *bool  `json:"use_rag"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}
	useRAG := req.UseRAG == nil || *req.UseRAG

	reply, err := s.chat.Chat(c.Request.Context(), req.Text, nil, useRAG)
	if err != nil || reply == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get GPT response"})
		return
	}

	if s.narrator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "TTS service not available"})
		return
	}
	name, err := s.narrator.SaveSpeech(c.Request.Context(), reply, "reply")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply_text": reply,
		"audio_url":  "/audio/" + name,
		"rag_used":   s.ragAvailable() && useRAG,
	})
}

// handleChatVoice transcribes a voice message, answers it with the
// session's conversation history, and narrates the reply.
func (s *Server) handleChatVoice(c *gin.Context) {
	if s.transcriber == nil || s.narrator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Voice chat not available"})
		return
	}

	header, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}
	if header.Filename == "" || header.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty audio file"})
		return
	}

	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	useRAG := true
	if v, ok := c.GetPostForm("use_rag"); ok {
		useRAG = strings.EqualFold(v, "true")
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	transcription, err := s.transcriber.Transcribe(c.Request.Context(), file, header.Filename)
	if err != nil || transcription == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
		return
	}

	reply, err := s.chat.Chat(c.Request.Context(), transcription, s.history(sessionID), useRAG)
	if err != nil || reply == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get GPT response"})
		return
	}
	s.remember(sessionID, transcription, reply)

	name, err := s.narrator.SaveSpeech(c.Request.Context(), reply, "reply")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcription": transcription,
		"reply_text":    reply,
		"audio_url":     "/audio/" + name,
		"rag_used":      s.ragAvailable() && useRAG,
		"session_id":    sessionID,
	})
}

// handleAudio serves a generated narration file.
func (s *Server) handleAudio(c *gin.Context) {
	if s.narrator == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
		return
	}
	path := s.narrator.FilePath(c.Param("filename"))
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio file not found"})
		return
	}
	c.File(path)
}
