package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/dedupe"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/keys"
	"github.com/Noty-chan/rogue-prison/internal/service"
	"github.com/Noty-chan/rogue-prison/internal/view"

	"github.com/gin-gonic/gin"
)

// GetContent returns the codex: every card in both forms plus statuses,
// buffs and relics. It is built once per process.
func (h *GameHandler) GetContent(c *gin.Context) {
	doc, err := h.codex()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedBuildContent})
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlContent)
	c.JSON(http.StatusOK, doc)
}

func (h *GameHandler) codex() (*view.CodexDoc, error) {
	if doc := h.codexDoc.Load(); doc != nil {
		return doc, nil
	}
	v, err, _ := dedupe.ContentGroup.Do("codex", func() (interface{}, error) {
		doc := view.Codex(h.dispatcher.Catalog())
		h.codexDoc.Store(doc)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*view.CodexDoc), nil
}

// ListRunHistory returns the finished runs of a save, newest first, limited
// to 20 by default.
func (h *GameHandler) ListRunHistory(c *gin.Context) {
	// optional ?limit=N
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	sid := keys.SaveID(c.Param("sid"))
	key := fmt.Sprintf("history:%s:%d", sid, limit)
	v, err, _ := dedupe.HistoryGroup.Do(key, func() (interface{}, error) {
		return service.History(h.repo, sid, limit)
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingSaveID) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingSaveID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	rows := v.([]game.RunResult)
	if rows == nil {
		rows = []game.RunResult{}
	}
	out, err := MarshalIntoSnakeTimestamps(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySaveID: sid, constants.JSONKeyRuns: out})
}
