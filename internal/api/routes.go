package api

import (
	"github.com/ericogr/deckbattle/internal/constants"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every endpoint under the /api prefix.
func RegisterRoutes(router *gin.Engine, h *BattleHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteCards, h.ListCards)

		apiRoutes.POST(constants.RouteBattles, h.StartBattle)
		apiRoutes.GET(constants.RouteBattleByID, h.GetBattle)
		apiRoutes.DELETE(constants.RouteBattleByID, h.AbandonBattle)
		apiRoutes.GET(constants.RouteBattleLog, h.GetBattleLog)
		apiRoutes.POST(constants.RouteBattlePlay, h.PlayCards)
		apiRoutes.POST(constants.RouteBattleEndTurn, h.EndTurn)

		apiRoutes.GET(constants.RouteHistory, h.ListHistory)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.GET(constants.RouteProfileByName, h.GetProfile)
	}
}
