package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/deckbattle/internal/constants"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(constants.EnvAddr, "")
	t.Setenv(constants.EnvDBPath, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultAddr, cfg.Server.Address)
	assert.Equal(t, 30, cfg.Battle.PlayerMaxHP)
	assert.Len(t, cfg.EnemyRoster, 1)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(constants.EnvAddr, "")
	t.Setenv(constants.EnvDBPath, "")
	doc := `
server:
  address: ":9090"
battle:
  player_max_hp: 40
  idle_timeout: 5m
enemy_roster:
  - id: orc
    name: Orc
    max_hp: 30
    base_attack: 6
  - id: bat
    name: Bat
    max_hp: 8
    base_attack: 2
`
	path := filepath.Join(t.TempDir(), "deckbattle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 40, cfg.Battle.PlayerMaxHP)
	assert.Equal(t, 3, cfg.Battle.PlayerMaxEnergy, "unset keys keep their default")
	assert.Equal(t, 5*time.Minute, cfg.Battle.IdleTimeout)
	require.Len(t, cfg.EnemyRoster, 2)
	assert.Equal(t, "Bat", cfg.EnemyRoster[1].Name)
	assert.NotEmpty(t, cfg.CardList)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(constants.EnvAddr, "127.0.0.1:7000")
	t.Setenv(constants.EnvDBPath, "/tmp/battles.db")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Address)
	assert.Equal(t, "/tmp/battles.db", cfg.Database.Path)
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("battle: [unclosed"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	cases := map[string]func(c *Config){
		"non-positive hand size": func(c *Config) { c.Battle.HandSize = 0 },
		"max hand below hand":    func(c *Config) { c.Battle.MaxHandSize = 2 },
		"no idle timeout":        func(c *Config) { c.Battle.IdleTimeout = 0 },
		"empty roster":           func(c *Config) { c.EnemyRoster = nil },
		"duplicate enemy":        func(c *Config) { c.EnemyRoster = append(c.EnemyRoster, c.EnemyRoster[0]) },
		"negative attack":        func(c *Config) { c.EnemyRoster[0].BaseAttack = -1 },
		"duplicate card": func(c *Config) {
			dup := c.CardList[0]
			dup.ID = "STRIKE"
			c.CardList = append(c.CardList, dup)
		},
		"unknown tag":          func(c *Config) { c.CardList[0].Tags = []string{"sparkly"} },
		"unknown rarity":       func(c *Config) { c.CardList[0].Rarity = "mythic" },
		"negative cost":        func(c *Config) { c.CardList[0].Cost = -1 },
		"no effects":           func(c *Config) { c.CardList[0].Effects = nil },
		"unknown step":         func(c *Config) { c.CardList[0].Effects[0].Kind = "teleport" },
		"unknown target":       func(c *Config) { c.CardList[0].Effects[0].Target = "everyone" },
		"status without id":    func(c *Config) { c.CardList[0].Effects = []EffectStep{{Kind: StepStatus}} },
		"empty log step":       func(c *Config) { c.CardList[0].Effects = []EffectStep{{Kind: StepLog}} },
		"deck references typo": func(c *Config) { c.StarterDeck[0].Card = "strik" },
		"deck count zero":      func(c *Config) { c.StarterDeck[0].Count = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParse_JSONDocument(t *testing.T) {
	doc := `{"battle": {"player_max_hp": 12, "player_max_energy": 3, "hand_size": 5, "max_hand_size": 10, "log_cap": 20, "max_selection": 3, "idle_timeout": "1m"}}`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Battle.PlayerMaxHP)
	assert.Equal(t, time.Minute, cfg.Battle.IdleTimeout)
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "deckbattle.example.yaml"))
	require.NoError(t, err)
	require.Len(t, cfg.EnemyRoster, 2)
	assert.Equal(t, "Cultist", cfg.EnemyRoster[1].Name)
	assert.Equal(t, 30*time.Minute, cfg.Battle.IdleTimeout)
	assert.Len(t, cfg.CardList, len(Default().CardList))
}
