package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/logging"
)

type fileSpec struct {
	Statuses map[string]Info `yaml:"statuses"`
	Buffs    map[string]Info `yaml:"buffs"`
	Cards    []cardSpec      `yaml:"cards"`
	Curses   []cardSpec      `yaml:"curses"`
	Relics   []RelicDef      `yaml:"relics"`
	Enemies  []enemySpec     `yaml:"enemies"`
	Elites   []enemySpec     `yaml:"elites"`
	Bosses   []enemySpec     `yaml:"bosses"`
	Events   []eventSpec     `yaml:"events"`
	Twists   []game.Twist    `yaml:"twists"`
}

type cardSpec struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	Rarity        string        `yaml:"rarity"`
	Type          string        `yaml:"type"`
	Cost          int           `yaml:"cost"`
	Target        string        `yaml:"target"`
	Desc          string        `yaml:"desc"`
	Effects       []effectSpec  `yaml:"effects"`
	Tags          []string      `yaml:"tags"`
	Exhaust       bool          `yaml:"exhaust"`
	StaysInHand   bool          `yaml:"stays_in_hand"`
	ChargePerTurn int           `yaml:"charge_per_turn"`
	Upgrade       *upgradeSpec  `yaml:"upgrade"`
	Curse         *CursePenalty `yaml:"curse"`
}

type upgradeSpec struct {
	Desc          string       `yaml:"desc"`
	Cost          *int         `yaml:"cost"`
	Effects       []effectSpec `yaml:"effects"`
	ChargePerTurn *int         `yaml:"charge_per_turn"`
}

// amountSpec accepts either a scalar or {base, plus_charge}.
type amountSpec struct {
	Base       int
	PlusCharge bool
}

func (a *amountSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		return n.Decode(&a.Base)
	}
	var m struct {
		Base       int  `yaml:"base"`
		PlusCharge bool `yaml:"plus_charge"`
	}
	if err := n.Decode(&m); err != nil {
		return err
	}
	a.Base, a.PlusCharge = m.Base, m.PlusCharge
	return nil
}

type optionSpec struct {
	Label   string       `yaml:"label"`
	Effects []effectSpec `yaml:"effects"`
}

type effectSpec struct {
	Op         string       `yaml:"op"`
	Amount     amountSpec   `yaml:"amount"`
	NoCrit     bool         `yaml:"no_crit"`
	OnCrit     []effectSpec `yaml:"on_crit"`
	Status     string       `yaml:"status"`
	Stacks     int          `yaml:"stacks"`
	To         string       `yaml:"to"`
	N          *int         `yaml:"n"`
	Duration   string       `yaml:"duration"`
	ReduceCost int          `yaml:"reduce_cost"`
	Buff       string       `yaml:"buff"`
	Tag        string       `yaml:"tag"`
	Then       []effectSpec `yaml:"then"`
	Pct        *float64     `yaml:"pct"`
	Statuses   []string     `yaml:"statuses"`
	Mult       *float64     `yaml:"mult"`
	BonusIf    []string     `yaml:"bonus_if_has_any_status"`
	Bonus      int          `yaml:"bonus"`
	Options    []optionSpec `yaml:"options"`
	Steps      []effectSpec `yaml:"steps"`
}

func (e effectSpec) count() int {
	if e.N == nil {
		return 1
	}
	return *e.N
}

type requiresSpec struct {
	PhaseIs    string   `yaml:"phase_is"`
	PhaseNot   string   `yaml:"phase_not"`
	HPPctBelow *float64 `yaml:"hp_pct_below"`
}

type boostSpec struct {
	Status string `yaml:"status"`
	Bonus  int    `yaml:"bonus"`
}

type moveSpec struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"`
	W           *int         `yaml:"w"`
	Dmg         int          `yaml:"dmg"`
	Status      string       `yaml:"status"`
	Stacks      int          `yaml:"stacks"`
	Block       int          `yaml:"block"`
	Amount      int          `yaml:"amount"`
	Threshold   *float64     `yaml:"threshold"`
	SetPhase    string       `yaml:"set_phase"`
	Requires    requiresSpec `yaml:"requires"`
	Buff        string       `yaml:"buff"`
	DmgMult     float64      `yaml:"dmg_mult"`
	StatusBoost *boostSpec   `yaml:"status_boost"`
	CounterDmg  int          `yaml:"counter_dmg"`
	IntentDesc  string       `yaml:"intent_desc"`
	Desc        string       `yaml:"desc"`
}

type enemySpec struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	MaxHP    int        `yaml:"max_hp"`
	Tier     int        `yaml:"tier"`
	Phase    string     `yaml:"phase"`
	Tags     []string   `yaml:"tags"`
	ImmuneTo []string   `yaml:"immune_to"`
	Moves    []moveSpec `yaml:"moves"`
}

type eventEffectSpec struct {
	Op     string            `yaml:"op"`
	Rarity string            `yaml:"rarity"`
	N      *int              `yaml:"n"`
	Amount int               `yaml:"amount"`
	Steps  []eventEffectSpec `yaml:"steps"`
}

type eventSpec struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Desc    string `yaml:"desc"`
	Options []struct {
		ID     string          `yaml:"id"`
		Label  string          `yaml:"label"`
		Effect eventEffectSpec `yaml:"effect"`
	} `yaml:"options"`
}

func status(name, where string) (game.Status, error) {
	s := game.Status(name)
	if !s.Valid() {
		return "", fmt.Errorf("%s: unknown status %q", where, name)
	}
	return s, nil
}

func statuses(names []string, where string) ([]game.Status, error) {
	out := make([]game.Status, 0, len(names))
	for _, n := range names {
		s, err := status(n, where)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func buff(name, where string) (game.Buff, error) {
	b := game.Buff(name)
	if !b.Valid() {
		return "", fmt.Errorf("%s: unknown buff %q", where, name)
	}
	return b, nil
}

// decodeEffects converts raw effect specs. Unknown ops are dropped so new
// content can ship ahead of the interpreter.
func decodeEffects(specs []effectSpec, where string) ([]Effect, error) {
	out := make([]Effect, 0, len(specs))
	for _, s := range specs {
		e, err := decodeEffect(s, where)
		if err != nil {
			return nil, err
		}
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func decodeEffect(s effectSpec, where string) (Effect, error) {
	switch s.Op {
	case "damage":
		onCrit, err := decodeEffects(s.OnCrit, where)
		if err != nil {
			return nil, err
		}
		return Damage{Amount: Amount(s.Amount), NoCrit: s.NoCrit, OnCrit: onCrit}, nil
	case "aoe_damage":
		bonusIf, err := statuses(s.BonusIf, where)
		if err != nil {
			return nil, err
		}
		return AOEDamage{Amount: s.Amount.Base, BonusIf: bonusIf, Bonus: s.Bonus}, nil
	case "block":
		return GainBlock{Amount: s.Amount.Base}, nil
	case "apply":
		st, err := status(s.Status, where)
		if err != nil {
			return nil, err
		}
		to := StatusTarget(s.To)
		switch to {
		case "":
			to = ToEnemy
		case ToEnemy, ToAllEnemies, ToSelf:
		default:
			return nil, fmt.Errorf("%s: unknown apply target %q", where, s.To)
		}
		return ApplyStatus{Status: st, Stacks: s.Stacks, To: to}, nil
	case "draw":
		return Draw{N: s.count()}, nil
	case "gain_mana":
		return GainMana{N: s.count()}, nil
	case "gain_max_mana":
		if s.Duration != "" && s.Duration != "combat" {
			logging.Warn("dropping gain_max_mana with unsupported duration", logging.Fields{"where": where, "duration": s.Duration})
			return nil, nil
		}
		return GainMaxMana{N: s.count()}, nil
	case "heal":
		return Heal{Amount: s.Amount.Base}, nil
	case "lose_hp":
		return LoseHP{Amount: s.Amount.Base}, nil
	case "heal_per_enemy":
		return HealPerEnemy{Amount: s.Amount.Base}, nil
	case "discard_choose":
		return DiscardChoose{N: s.count()}, nil
	case "discard_random":
		return DiscardRandom{N: s.count()}, nil
	case "take_from_discard":
		return TakeFromDiscard{N: s.count(), ReduceCost: s.ReduceCost}, nil
	case "add_buff":
		b, err := buff(s.Buff, where)
		if err != nil {
			return nil, err
		}
		return AddBuff{Buff: b}, nil
	case "if_hand_has_tag":
		then, err := decodeEffects(s.Then, where)
		if err != nil {
			return nil, err
		}
		return IfHandHasTag{Tag: s.Tag, Then: then}, nil
	case "if_enemy_hp_below":
		pct := 0.5
		if s.Pct != nil {
			pct = *s.Pct
		}
		then, err := decodeEffects(s.Then, where)
		if err != nil {
			return nil, err
		}
		return IfEnemyHPBelow{Pct: pct, Then: then}, nil
	case "dot_detach_explode":
		sts, err := statuses(s.Statuses, where)
		if err != nil {
			return nil, err
		}
		mult := 1.0
		if s.Mult != nil {
			mult = *s.Mult
		}
		return DetonateDoTs{Statuses: sts, Mult: mult}, nil
	case "choose_one":
		opts := make([]Option, 0, len(s.Options))
		for _, o := range s.Options {
			effs, err := decodeEffects(o.Effects, where)
			if err != nil {
				return nil, err
			}
			opts = append(opts, Option{Label: o.Label, Effects: effs})
		}
		return ChooseOne{Options: opts}, nil
	case "combo":
		steps, err := decodeEffects(s.Steps, where)
		if err != nil {
			return nil, err
		}
		return Combo{Steps: steps}, nil
	default:
		logging.Warn("dropping unknown effect op", logging.Fields{"where": where, "op": s.Op})
		return nil, nil
	}
}

func decodeCard(s cardSpec, upgraded bool) (*CardDef, error) {
	where := "card " + s.ID
	def := &CardDef{
		ID:            s.ID,
		Name:          s.Name,
		Rarity:        Rarity(s.Rarity),
		Type:          CardType(s.Type),
		Cost:          s.Cost,
		Target:        TargetMode(s.Target),
		Desc:          s.Desc,
		Tags:          s.Tags,
		Exhaust:       s.Exhaust,
		StaysInHand:   s.StaysInHand,
		ChargePerTurn: s.ChargePerTurn,
		Upgraded:      upgraded,
		Curse:         s.Curse,
	}
	if def.Target == "" {
		def.Target = TargetNone
	}
	switch def.Target {
	case TargetEnemy, TargetSelf, TargetAllEnemies, TargetNone, TargetAny:
	default:
		return nil, fmt.Errorf("%s: unknown target %q", where, s.Target)
	}
	switch def.Type {
	case TypeAttack, TypeDefense, TypeSkill, TypeUpgrade, TypeCurse:
	default:
		return nil, fmt.Errorf("%s: unknown type %q", where, s.Type)
	}
	if def.Curse != nil && def.Curse.Status != "" && !def.Curse.Status.Valid() {
		return nil, fmt.Errorf("%s: unknown curse status %q", where, def.Curse.Status)
	}
	effects := s.Effects
	if upgraded && s.Upgrade != nil {
		if s.Upgrade.Desc != "" {
			def.Desc = s.Upgrade.Desc
		}
		if s.Upgrade.Cost != nil {
			def.Cost = *s.Upgrade.Cost
		}
		if len(s.Upgrade.Effects) > 0 {
			effects = s.Upgrade.Effects
		}
		if s.Upgrade.ChargePerTurn != nil {
			def.ChargePerTurn = *s.Upgrade.ChargePerTurn
		}
	}
	effs, err := decodeEffects(effects, where)
	if err != nil {
		return nil, err
	}
	def.Effects = effs
	return def, nil
}

func decodeMove(s moveSpec, where string) (Move, error) {
	m := Move{
		ID:         s.ID,
		Name:       s.Name,
		Weight:     1,
		Threshold:  s.Threshold,
		SetPhase:   s.SetPhase,
		IntentDesc: s.IntentDesc,
		Requires: Requirements{
			PhaseIs:  s.Requires.PhaseIs,
			PhaseNot: s.Requires.PhaseNot,
			HPBelow:  s.Requires.HPPctBelow,
		},
	}
	if s.W != nil {
		m.Weight = *s.W
	}
	where = where + " move " + s.ID
	optStatus := func() (game.Status, error) {
		if s.Status == "" {
			return "", nil
		}
		return status(s.Status, where)
	}
	switch s.Type {
	case "attack":
		m.Action = Attack{Damage: s.Dmg}
	case "attack_apply", "apply", "apply_all":
		st, err := status(s.Status, where)
		if err != nil {
			return m, err
		}
		switch s.Type {
		case "attack_apply":
			m.Action = AttackApply{Damage: s.Dmg, Status: st, Stacks: s.Stacks}
		case "apply":
			m.Action = Inflict{Status: st, Stacks: s.Stacks}
		default:
			m.Action = InflictAll{Status: st, Stacks: s.Stacks}
		}
	case "block":
		m.Action = Fortify{Block: s.Block}
	case "heal":
		m.Action = Mend{Amount: s.Amount}
	case "phase_shift":
		ps := PhaseShift{Phase: s.SetPhase, Block: s.Block, DmgMult: s.DmgMult}
		if ps.Phase == "" {
			ps.Phase = "phase2"
		}
		if s.Buff != "" {
			b, err := buff(s.Buff, where)
			if err != nil {
				return m, err
			}
			ps.Buff = b
		}
		if s.StatusBoost != nil && s.StatusBoost.Status != "" {
			st, err := status(s.StatusBoost.Status, where)
			if err != nil {
				return m, err
			}
			ps.Boost = &StatusBoost{Status: st, Bonus: s.StatusBoost.Bonus}
		}
		m.Action = ps
	case "counter_prep":
		st, err := optStatus()
		if err != nil {
			return m, err
		}
		m.Action = CounterPrep{Block: s.Block, Damage: s.CounterDmg, Status: st, Stacks: s.Stacks}
	case "self_debuff":
		m.Action = SelfDebuff{Desc: s.Desc}
	default:
		logging.Warn("unknown move type, enemy will stall", logging.Fields{"where": where, "type": s.Type})
		m.Action = Stall{}
	}
	return m, nil
}

func decodeEnemy(s enemySpec, kind EnemyKind) (*EnemyDef, error) {
	where := "enemy " + s.ID
	def := &EnemyDef{
		ID:    s.ID,
		Name:  s.Name,
		MaxHP: s.MaxHP,
		Tier:  s.Tier,
		Kind:  kind,
		Phase: s.Phase,
		Tags:  s.Tags,
	}
	if def.Tier == 0 {
		def.Tier = 1
	}
	if def.Phase == "" {
		def.Phase = "base"
	}
	imm, err := statuses(s.ImmuneTo, where)
	if err != nil {
		return nil, err
	}
	def.Immune = imm
	if len(s.Moves) == 0 {
		return nil, fmt.Errorf("%s: no moves", where)
	}
	for _, ms := range s.Moves {
		m, err := decodeMove(ms, where)
		if err != nil {
			return nil, err
		}
		def.Moves = append(def.Moves, m)
	}
	return def, nil
}

func decodeEventEffect(s eventEffectSpec, where string) (EventEffect, error) {
	n := 1
	if s.N != nil {
		n = *s.N
	}
	switch s.Op {
	case "", "noop":
		return Noop{}, nil
	case "event_gain_card":
		r := Rarity(s.Rarity)
		if r != "" && !validRarity(r) {
			return nil, fmt.Errorf("%s: unknown rarity %q", where, s.Rarity)
		}
		return GainCard{Rarity: r, N: n}, nil
	case "event_gain_relic":
		return GainRelic{}, nil
	case "event_gain_curse":
		return GainCurse{}, nil
	case "event_remove_card":
		return RemoveCard{N: n}, nil
	case "event_upgrade_card":
		return UpgradeCard{N: n}, nil
	case "lose_hp":
		return PayHP{Amount: s.Amount}, nil
	case "heal":
		return Rest{Amount: s.Amount}, nil
	case "gain_gold":
		return GainGold{Amount: s.Amount}, nil
	case "gain_max_hp":
		return GainMaxHP{Amount: s.Amount}, nil
	case "combo":
		steps := make([]EventEffect, 0, len(s.Steps))
		for _, st := range s.Steps {
			e, err := decodeEventEffect(st, where)
			if err != nil {
				return nil, err
			}
			steps = append(steps, e)
		}
		return EventCombo{Steps: steps}, nil
	default:
		logging.Warn("unknown event op treated as noop", logging.Fields{"where": where, "op": s.Op})
		return Noop{}, nil
	}
}

func decodeEvent(s eventSpec) (*EventDef, error) {
	def := &EventDef{ID: s.ID, Name: s.Name, Desc: s.Desc}
	for _, o := range s.Options {
		eff, err := decodeEventEffect(o.Effect, "event "+s.ID+" option "+o.ID)
		if err != nil {
			return nil, err
		}
		def.Options = append(def.Options, EventOption{ID: o.ID, Label: o.Label, Effect: eff})
	}
	return def, nil
}

func validRarity(r Rarity) bool {
	for _, v := range Rarities {
		if v == r {
			return true
		}
	}
	return false
}
