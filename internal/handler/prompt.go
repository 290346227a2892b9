package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/prompt-relay/internal/logx"
	"github.com/kube-rca/prompt-relay/internal/model"
	"github.com/kube-rca/prompt-relay/internal/service"
)

type PromptHandler struct {
	svc *service.PromptService
}

func NewPromptHandler(svc *service.PromptService) *PromptHandler {
	return &PromptHandler{svc: svc}
}

// Relay godoc
// @Summary Relay a prompt to the model
// @Tags prompt
// @Accept json
// @Produce json
// @Param request body model.PromptRequest true "Prompt payload"
// @Success 200 {string} string "JSON-encoded generated text"
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/prompt [post]
func (h *PromptHandler) Relay(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	text, err := h.svc.Relay(c.Request.Context(), string(body))
	if err != nil {
		logx.Log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("relay failed")
		switch {
		case errors.Is(err, service.ErrMalformedRequest):
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrEndpointInvocation), errors.Is(err, service.ErrUnexpectedResponseShape):
			c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		}
		return
	}

	encoded, err := service.EncodeText(text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(encoded))
}
