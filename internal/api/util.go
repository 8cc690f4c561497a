package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/engine"
	"github.com/ericogr/deckbattle/internal/logging"
	"github.com/ericogr/deckbattle/internal/service"
	"github.com/gin-gonic/gin"
)

// parseLimit reads the optional ?limit=N query, falling back to the default
// for missing or out-of-range values.
func parseLimit(c *gin.Context) int {
	limit := constants.DefaultListLimit
	if s := c.Query(constants.QueryLimit); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= constants.MaxListLimit {
			limit = n
		}
	}
	return limit
}

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// (CreatedAt, UpdatedAt, DeletedAt) to snake_case keys so clients
// consistently receive snake_case timestamps. The embedded gorm.Model ID is
// renamed the same way.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		for from, to := range map[string]string{
			"ID":        "id",
			"CreatedAt": "created_at",
			"UpdatedAt": "updated_at",
			"DeletedAt": "deleted_at",
		} {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals the given value into JSON, then decodes
// into an interface{} and normalizes timestamp keys to snake_case.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}

// writeBattleError maps service and engine errors to HTTP responses.
func writeBattleError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, constants.ErrFailedResolveAction
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		status, msg = http.StatusNotFound, constants.ErrBattleNotFound
	case errors.Is(err, service.ErrInvalidPlayerName):
		status, msg = http.StatusBadRequest, constants.ErrInvalidPlayerName
	case errors.Is(err, engine.ErrBattleOver):
		status, msg = http.StatusConflict, constants.ErrBattleOver
	case errors.Is(err, engine.ErrNotPlayerTurn), errors.Is(err, engine.ErrNotEnemyTurn):
		status, msg = http.StatusConflict, constants.ErrNotPlayerTurn
	case errors.Is(err, engine.ErrCardNotInHand):
		status, msg = http.StatusUnprocessableEntity, constants.ErrCardNotInHand
	case errors.Is(err, engine.ErrInsufficientEnergy):
		status, msg = http.StatusUnprocessableEntity, constants.ErrInsufficientEnergy
	case errors.Is(err, engine.ErrSelectionTooLarge):
		status, msg = http.StatusUnprocessableEntity, constants.ErrSelectionTooLarge
	case errors.Is(err, engine.ErrDuplicateSelection):
		status, msg = http.StatusUnprocessableEntity, constants.ErrDuplicateSelection
	case errors.Is(err, engine.ErrEmptySelection):
		status, msg = http.StatusUnprocessableEntity, constants.ErrEmptySelection
	case errors.Is(err, engine.ErrInvalidTarget):
		status, msg = http.StatusUnprocessableEntity, constants.ErrInvalidTarget
	default:
		logging.Error("battle request failed", err, nil)
	}
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}
