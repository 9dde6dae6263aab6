package api

import (
	"errors"
	"net/http"

	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/progression"
	"github.com/Noty-chan/rogue-prison/internal/service"

	"github.com/gin-gonic/gin"
)

type ActionRequest struct {
	SaveID string             `json:"sid"`
	Action progression.Action `json:"action"`
}

// SubmitAction applies one player action to a save. A rejected action is
// still a 200: the returned state carries the explanation in ui.toast.
func (h *GameHandler) SubmitAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	res, err := service.Act(h.repo, h.dispatcher, req.SaveID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSaveID):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingSaveID})
		default:
			logging.Error("action failed", err, logging.Fields{
				constants.LogFieldSaveID: req.SaveID,
				constants.LogFieldAction: req.Action.Type,
			})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreSave})
		}
		return
	}
	h.respondState(c, res)
}
