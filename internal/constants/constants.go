package constants

// Environment variable keys
const (
	EnvConfigPath = "DECKBATTLE_CONFIG"
	EnvAddr       = "DECKBATTLE_ADDR"
	EnvDBPath     = "DECKBATTLE_DB"

	DefaultConfigPath = "./deckbattle.yaml"
	DefaultDBPath     = "./data/deckbattle.db"
	DefaultAddr       = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteCards          = "/cards"
	RouteBattles        = "/battles"
	RouteBattleByID     = "/battles/:battleID"
	RouteBattleLog      = "/battles/:battleID/log"
	RouteBattlePlay     = "/battles/:battleID/play"
	RouteBattleEndTurn  = "/battles/:battleID/end-turn"
	RouteHistory        = "/history"
	RouteLeaderboard    = "/leaderboard"
	RouteProfileByName  = "/profiles/:name"
	RouteVersion        = "/version"
	ParamBattleID       = "battleID"
	ParamName           = "name"
	QueryLimit          = "limit"
	DefaultListLimit    = 10
	MaxListLimit        = 100
	MaxPlayerNameLength = 40
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidPlayerName   = "Invalid player name"
	ErrBattleNotFound      = "Battle not found"
	ErrFailedStartBattle   = "Failed to start battle"
	ErrFailedFetchHistory  = "Failed to fetch history"
	ErrFailedFetchLeader   = "Failed to fetch leaderboard"
	ErrFailedFetchProfile  = "Failed to fetch profile"
	ErrBattleOver          = "Battle is over"
	ErrNotPlayerTurn       = "Not the player's turn"
	ErrCardNotInHand       = "Card is not in hand"
	ErrInsufficientEnergy  = "Not enough energy"
	ErrSelectionTooLarge   = "Too many cards selected"
	ErrDuplicateSelection  = "Card selected more than once"
	ErrEmptySelection      = "No cards selected"
	ErrInvalidTarget       = "Invalid target"
	ErrFailedResolveAction = "Failed to resolve action"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldPlayer   = "player"
	LogFieldCardID   = "card_id"
	LogFieldTurn     = "turn"
	LogFieldPhase    = "phase"
	LogFieldOutcome  = "outcome"
	LogFieldSeed     = "seed"
	LogFieldAddr     = "addr"
	LogFieldPath     = "path"
	LogFieldCount    = "count"
)
