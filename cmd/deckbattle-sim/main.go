// Command deckbattle-sim plays seeded battles with the autoplay policy and
// prints the outcome of each one. It is handy for balancing card lists and
// rosters before they go live.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ericogr/deckbattle/internal/autoplay"
	"github.com/ericogr/deckbattle/internal/catalog"
	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/game"
	"github.com/ericogr/deckbattle/internal/logging"
	"github.com/ericogr/deckbattle/internal/service"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	defer logging.Sync()

	configPath := flag.String("config", constants.DefaultConfigPath, "path to the YAML configuration")
	seed := flag.Int64("seed", 1, "seed of the first battle")
	runs := flag.Int("runs", 1, "number of consecutive seeds to play")
	maxTurns := flag.Int("max-turns", 30, "turn cap per battle")
	showLog := flag.Bool("log", false, "print the battle log of every run")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("config:"), err)
		os.Exit(1)
	}
	cat, err := catalog.New(cfg.CardList)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("catalog:"), err)
		os.Exit(1)
	}

	wins := 0
	for i := 0; i < *runs; i++ {
		s := *seed + int64(i)
		b, err := service.BuildBattle(cfg, cat, s)
		if err != nil {
			fmt.Fprintln(os.Stderr, red("battle:"), err)
			os.Exit(1)
		}
		res := autoplay.Run(b, *maxTurns)
		if res.Phase == game.PhaseVictory {
			wins++
		}
		st := b.State()
		fmt.Printf("seed %s  %s  turns=%d cards=%d hp=%d/%d\n",
			bold(s), phaseLabel(res.Phase), res.Turns, res.CardsPlayed, st.Player.HP, st.Player.MaxHP)
		if *showLog {
			entries := b.Log()
			for j := len(entries) - 1; j >= 0; j-- {
				fmt.Println("  " + entries[j])
			}
		}
	}
	if *runs > 1 {
		fmt.Printf("%s %d/%d\n", bold("wins"), wins, *runs)
	}
}

func phaseLabel(p game.Phase) string {
	switch p {
	case game.PhaseVictory:
		return green("victory")
	case game.PhaseDefeat:
		return red("defeat ")
	}
	return yellow("timeout")
}
