package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCards returns the card catalog.
func (h *BattleHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog().List())
}

// GetBattle returns the full state of a battle.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	v, err := h.svc.GetState(c.Param(constants.ParamBattleID))
	if err != nil {
		writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GetBattleLog returns only the battle log, most recent first.
func (h *BattleHandler) GetBattleLog(c *gin.Context) {
	entries, err := h.svc.GetLog(c.Param(constants.ParamBattleID))
	if err != nil {
		writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"log": entries})
}

// ListHistory returns recently finished battles.
func (h *BattleHandler) ListHistory(c *gin.Context) {
	records, err := h.svc.History(parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players by wins (desc), limited to top 10 by default.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	profiles, err := h.svc.Leaderboard(parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeader})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(profiles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeader})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProfile returns one player's stats.
func (h *BattleHandler) GetProfile(c *gin.Context) {
	p, err := h.svc.Profile(c.Param(constants.ParamName))
	if errors.Is(err, service.ErrInvalidPlayerName) {
		writeBattleError(c, err)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	c.JSON(http.StatusOK, out)
}
