package catalog

import (
	"fmt"

	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/game"
)

// Kind tags a Step.
type Kind int

const (
	KindDamage Kind = iota
	KindBlock
	KindHeal
	KindEnergy
	KindDraw
	KindDiscard
	KindStatus
	KindExhaustSelf
	KindLog
)

var kindByName = map[string]Kind{
	config.StepDamage:      KindDamage,
	config.StepBlock:       KindBlock,
	config.StepHeal:        KindHeal,
	config.StepEnergy:      KindEnergy,
	config.StepDraw:        KindDraw,
	config.StepDiscard:     KindDiscard,
	config.StepStatus:      KindStatus,
	config.StepExhaustSelf: KindExhaustSelf,
	config.StepLog:         KindLog,
}

// Step is one primitive of a card effect. Only the fields its Kind uses are
// meaningful.
type Step struct {
	Kind    Kind
	Target  game.Target
	Amount  int
	Status  game.StatusEffect
	Message string
}

// Program is an ordered list of steps. It implements game.Effect.
type Program []Step

var _ game.Effect = Program(nil)

// Compile converts configured effect steps into a Program.
func Compile(steps []config.EffectStep) (Program, error) {
	prog := make(Program, 0, len(steps))
	for i, s := range steps {
		kind, ok := kindByName[s.Kind]
		if !ok {
			return nil, fmt.Errorf("effect %d: unknown kind '%s'", i, s.Kind)
		}
		step := Step{Kind: kind, Target: game.Target(s.Target), Amount: s.Amount, Message: s.Message}
		if step.Target == "" && (kind == KindDamage || kind == KindStatus) {
			step.Target = game.TargetEnemy
		}
		if kind == KindStatus {
			if s.Status == nil {
				return nil, fmt.Errorf("effect %d: status step without status", i)
			}
			step.Status = *s.Status
		}
		prog = append(prog, step)
	}
	return prog, nil
}

// Resolve runs every step in order against ctx.
func (p Program) Resolve(ctx game.EffectContext) {
	for _, s := range p {
		s.apply(ctx)
	}
}

func (s Step) apply(ctx game.EffectContext) {
	switch s.Kind {
	case KindDamage:
		ctx.DealDamage(s.Target, s.Amount)
	case KindBlock:
		ctx.GainBlock(s.Amount)
	case KindHeal:
		ctx.HealPlayer(s.Amount)
	case KindEnergy:
		ctx.GainEnergy(s.Amount)
	case KindDraw:
		ctx.DrawCards(s.Amount)
	case KindDiscard:
		ctx.DiscardCards(s.Amount)
	case KindStatus:
		ctx.ApplyStatus(s.Target, s.Status)
	case KindExhaustSelf:
		ctx.ExhaustCard(ctx.Card().ID)
	case KindLog:
		ctx.Log(s.Message)
	}
}
