package api

import (
	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/gin-gonic/gin"
)

// Register mounts every API route under /api.
func Register(router *gin.Engine, h *GameHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteBootstrap, h.Bootstrap)
		apiRoutes.POST(constants.RouteAction, h.SubmitAction)
		apiRoutes.GET(constants.RouteContent, h.GetContent)
		apiRoutes.GET(constants.RouteSaveHistory, h.ListRunHistory)
		apiRoutes.GET(constants.RoutePing, Ping)
		apiRoutes.GET(constants.RouteVersion, Version)
	}
}
