package game

// Status is a stackable condition on a combatant.
type Status string

const (
	StatusPoison     Status = "poison"
	StatusBurn       Status = "burn"
	StatusBleed      Status = "bleed"
	StatusWeak       Status = "weak"
	StatusVulnerable Status = "vulnerable"
	StatusStun       Status = "stun"
	StatusFreeze     Status = "freeze"
	StatusThorns     Status = "thorns"
)

// Statuses lists every status in display order.
var Statuses = []Status{
	StatusPoison, StatusBurn, StatusBleed, StatusWeak,
	StatusVulnerable, StatusStun, StatusFreeze, StatusThorns,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Buff is a combat-scoped named counter.
type Buff string

const (
	BuffWardSmall          Buff = "ward_small"
	BuffWardMedium         Buff = "ward_medium"
	BuffRegenSmall         Buff = "regen_small"
	BuffRegenMedium        Buff = "regen_medium"
	BuffBurnOnHit          Buff = "burn_on_hit"
	BuffBurnOnHit2         Buff = "burn_on_hit_2"
	BuffCritPlus10         Buff = "crit_plus_10"
	BuffCritPlus15         Buff = "crit_plus_15"
	BuffManaOnDiscard      Buff = "mana_on_discard"
	BuffManaBlockOnDiscard Buff = "mana_block_on_discard"
	BuffBounceNext         Buff = "bounce_next"
	BuffEchoAttackHalf     Buff = "echo_attack_half"
	BuffBattery            Buff = "battery"
	BuffBatteryPlus        Buff = "battery_plus"
	BuffPoisonNoDecay      Buff = "poison_no_decay"
	BuffBurnBoost          Buff = "burn_boost"
	BuffDrawOnDiscard      Buff = "draw_on_discard"
	BuffDrawBlockOnDiscard Buff = "draw_block_on_discard"
	BuffReflectHalf1Turn   Buff = "reflect_half_1turn"
	BuffReflectFull1Turn   Buff = "reflect_full_1turn"
	BuffCritGodmode        Buff = "crit_godmode"
	BuffEclipse            Buff = "eclipse"
	BuffEclipsePlus        Buff = "eclipse_plus"
	BuffRegenGuard         Buff = "regen_guard"
	BuffRegenGuardPlus     Buff = "regen_guard_plus"
	BuffPhoenixHeart       Buff = "phoenix_heart"
	BuffPhoenixHeartPlus   Buff = "phoenix_heart_plus"
	BuffVenomRain          Buff = "venom_rain"
	BuffVenomRainPlus      Buff = "venom_rain_plus"
	BuffArcaneCharge       Buff = "arcane_charge"
	BuffArcaneOverdrive    Buff = "arcane_overdrive"
)

// Buffs lists every known buff.
var Buffs = []Buff{
	BuffWardSmall, BuffWardMedium, BuffRegenSmall, BuffRegenMedium,
	BuffBurnOnHit, BuffBurnOnHit2, BuffCritPlus10, BuffCritPlus15,
	BuffManaOnDiscard, BuffManaBlockOnDiscard, BuffBounceNext, BuffEchoAttackHalf,
	BuffBattery, BuffBatteryPlus, BuffPoisonNoDecay, BuffBurnBoost,
	BuffDrawOnDiscard, BuffDrawBlockOnDiscard, BuffReflectHalf1Turn, BuffReflectFull1Turn,
	BuffCritGodmode, BuffEclipse, BuffEclipsePlus, BuffRegenGuard, BuffRegenGuardPlus,
	BuffPhoenixHeart, BuffPhoenixHeartPlus, BuffVenomRain, BuffVenomRainPlus,
	BuffArcaneCharge, BuffArcaneOverdrive,
}

func (b Buff) Valid() bool {
	for _, v := range Buffs {
		if v == b {
			return true
		}
	}
	return false
}

// Phase is the combat turn state.
type Phase string

const (
	PhasePlayer Phase = "player"
	PhaseEnemy  Phase = "enemy"
	PhaseWon    Phase = "won"
	PhaseLost   Phase = "lost"
)

// Terminal reports whether the combat has ended.
func (p Phase) Terminal() bool { return p == PhaseWon || p == PhaseLost }

// PendingType identifies which player input a pending choice waits for.
type PendingType string

const (
	PendingDiscardChoose   PendingType = "discard_choose"
	PendingTakeFromDiscard PendingType = "take_from_discard"
	PendingChooseOne       PendingType = "choose_one"
)

// Screen is the client-facing mode of the whole game state.
type Screen string

const (
	ScreenMenu       Screen = "MENU"
	ScreenMap        Screen = "MAP"
	ScreenCombat     Screen = "COMBAT"
	ScreenReward     Screen = "REWARD"
	ScreenEvent      Screen = "EVENT"
	ScreenEventPick  Screen = "EVENT_PICK"
	ScreenShop       Screen = "SHOP"
	ScreenShopRemove Screen = "SHOP_REMOVE"
	ScreenCampfire   Screen = "CAMPFIRE"
	ScreenCampfireUp Screen = "CAMPFIRE_UP"
	ScreenActEnd     Screen = "ACT_END"
	ScreenVictory    Screen = "VICTORY"
	ScreenDefeat     Screen = "DEFEAT"
	ScreenInherit    Screen = "INHERIT"
)

// RoomType is the kind of a map node.
type RoomType string

const (
	RoomFight    RoomType = "fight"
	RoomElite    RoomType = "elite"
	RoomBoss     RoomType = "boss"
	RoomEvent    RoomType = "event"
	RoomShop     RoomType = "shop"
	RoomCampfire RoomType = "campfire"
	RoomChest    RoomType = "chest"
)

// IsCombat reports whether entering the room starts a fight.
func (r RoomType) IsCombat() bool {
	return r == RoomFight || r == RoomElite || r == RoomBoss
}

const (
	ResultVictory = "victory"
	ResultDefeat  = "defeat"
)
