package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-bot/internal/whatsapp"
)

// verifyWebhook answers the Cloud API subscription handshake.
func (s *Server) verifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken {
		s.logger.Info("webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}
	c.String(http.StatusForbidden, "Forbidden")
}

// receiveWebhook handles one inbound WhatsApp message: run it through the
// interpreter and push the reply back over the send API. The interpreter is
// fast enough to answer before acknowledging, so no background handoff.
func (s *Server) receiveWebhook(c *gin.Context) {
	var update whatsapp.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		s.logger.Error("parse webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "webhook processing failed"})
		return
	}

	msg, ok := update.FirstMessage()
	if !ok || msg.Text.Body == "" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	s.logger.Info("inbound message", zap.String("from", msg.From))
	reply := s.interpreter.HandleMessage(c.Request.Context(), msg.Text.Body)

	if s.sender != nil {
		if err := s.sender.SendText(c.Request.Context(), msg.From, reply); err != nil {
			s.logger.Error("send reply", zap.String("to", msg.From), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
