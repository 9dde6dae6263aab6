package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/service"
	"github.com/Noty-chan/rogue-prison/internal/view"

	"github.com/gin-gonic/gin"
)

type BootstrapRequest struct {
	SaveID string `json:"sid"`
}

// Bootstrap opens or creates a save and returns its projected state. An
// empty or missing body is a request for a new save.
func (h *GameHandler) Bootstrap(c *gin.Context) {
	var req BootstrapRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, err := service.Bootstrap(h.repo, h.dispatcher, req.SaveID)
	if err != nil {
		logging.Error("bootstrap failed", err, logging.Fields{constants.LogFieldSaveID: req.SaveID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadSave})
		return
	}
	h.respondState(c, res)
}

func (h *GameHandler) respondState(c *gin.Context, res *service.Result) {
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeySaveID: res.SaveID,
		constants.JSONKeyState:  view.Project(res.State, h.dispatcher.Catalog()),
	})
}
