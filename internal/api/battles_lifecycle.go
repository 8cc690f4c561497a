package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/service"

	"github.com/gin-gonic/gin"
)

type StartBattleRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	// Seed replays a battle; zero picks a fresh one.
	Seed int64 `json:"seed"`
}

type PlayCardsRequest struct {
	CardIDs []string `json:"card_ids" binding:"required,min=1,dive,required"`
	// Target is the enemy slot; nil aims at the first living enemy.
	Target *int `json:"target"`
}

// StartBattle creates a new battle for the named player.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	var req StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	v, err := h.svc.StartBattle(req.PlayerName, req.Seed)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlayerName) {
			writeBattleError(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStartBattle})
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PlayCards plays one card or a selection of cards from the hand.
func (h *BattleHandler) PlayCards(c *gin.Context) {
	var req PlayCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	target := service.NoTarget
	if req.Target != nil {
		target = *req.Target
	}
	v, err := h.svc.PlayCards(c.Param(constants.ParamBattleID), req.CardIDs, target)
	if err != nil {
		writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// EndTurn ends the player's turn and resolves the enemy turn.
func (h *BattleHandler) EndTurn(c *gin.Context) {
	v, err := h.svc.EndTurn(c.Param(constants.ParamBattleID))
	if err != nil {
		writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// AbandonBattle forfeits and discards a battle.
func (h *BattleHandler) AbandonBattle(c *gin.Context) {
	if err := h.svc.Abandon(c.Param(constants.ParamBattleID)); err != nil {
		writeBattleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "abandoned"})
}
