package api

import (
	"net/http"

	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/version"
	"github.com/gin-gonic/gin"
)

// Version returns build and VCS metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Info())
}

// Ping is the liveness probe used by the healthcheck binary.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyOK: true})
}
