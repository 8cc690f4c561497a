package api

import (
	"github.com/ericogr/deckbattle/internal/service"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	svc *service.BattleService
}

// NewBattleHandler creates a new BattleHandler backed by the battle service.
func NewBattleHandler(svc *service.BattleService) *BattleHandler {
	return &BattleHandler{svc: svc}
}
