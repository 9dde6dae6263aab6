package progression

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/loot"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

const (
	twistChance      = 0.5
	chestCurseChance = 0.4
	shopOffers       = 3
	removePrice      = 60
	campfireHeal     = 18
	pickChoices      = 4
)

func (s *step) chooseRoom(id string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	if s.st.Screen != game.ScreenMap {
		return rejection(MsgNotHere)
	}
	var choice *game.RoomChoice
	for i := range run.RoomChoices {
		if run.RoomChoices[i].ID == id {
			choice = &run.RoomChoices[i]
			break
		}
	}
	if choice == nil {
		return rejection(MsgUnknownRoom)
	}
	room := *choice
	if !contains(run.Visited, id) {
		run.Visited = append(run.Visited, id)
	}
	run.CurrentNode = id
	run.Room = &room
	s.rollTwist(room.Type)

	switch room.Type {
	case game.RoomFight, game.RoomElite, game.RoomBoss:
		engine.StartCombat(run, s.cat, s.rng(), room.Type)
		s.st.Screen = game.ScreenCombat
	case game.RoomEvent:
		s.startEvent()
	case game.RoomShop:
		s.startShop()
	case game.RoomCampfire:
		s.st.Screen = game.ScreenCampfire
	case game.RoomChest:
		s.openChest()
	}
	return nil
}

// rollTwist gives half of all rooms a twist. Outside combat a poisonous
// twist costs hp immediately.
func (s *step) rollTwist(rt game.RoomType) {
	run := s.st.Run
	twists := s.cat.Twists()
	if len(twists) == 0 || s.rng().Float64() >= twistChance {
		run.Twist = nil
		return
	}
	tw := rng.Pick(s.rng(), twists)
	run.Twist = &tw
	if !rt.IsCombat() && tw.HPPing > 0 {
		run.HP = max(1, run.HP-tw.HPPing)
	}
	s.toast("Special room: %s. %s", tw.Name, tw.Desc)
}

func (s *step) startEvent() {
	ev := rng.Pick(s.rng(), s.cat.Events())
	s.st.Run.Event = ev.ID
	s.st.Screen = game.ScreenEvent
}

func (s *step) eventOption(optID string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	ev, ok := s.cat.Event(run.Event)
	if run.Event == "" || !ok || run.EventPick != nil {
		return rejection(MsgNotHere)
	}
	opt, ok := ev.Option(optID)
	if !ok {
		return rejection(MsgUnknownOption)
	}
	s.applyEventEffect(opt.Effect)
	if s.st.Screen == game.ScreenEventPick {
		return nil
	}
	run.Event = ""
	s.completeFloor()
	return nil
}

func (s *step) applyEventEffect(eff content.EventEffect) {
	run := s.st.Run
	switch e := eff.(type) {
	case content.Noop:
		s.toast("Nothing happens. Suspicious.")
	case content.GainCard:
		for _, id := range loot.RandomCards(s.cat, s.rng(), e.Rarity, e.N) {
			run.AddCard(id, false)
		}
		s.toast("+%d %s card(s).", e.N, e.Rarity)
	case content.GainRelic:
		s.grantRandomRelic()
	case content.GainCurse:
		id := loot.RandomCurse(s.cat, s.rng())
		run.AddCard(id, false)
		s.toast("A curse joins your deck: %s.", s.cardName(id))
	case content.RemoveCard:
		s.openEventPick("remove", rng.Sample(s.rng(), run.Deck, pickChoices), e.N)
		s.toast("Choose a card to remove.")
	case content.UpgradeCard:
		cands := upgradable(s.cat, run.Deck)
		if len(cands) == 0 {
			s.toast("Nothing here can be improved.")
			return
		}
		s.openEventPick("upgrade", rng.Sample(s.rng(), cands, pickChoices), e.N)
		s.toast("Choose a card to upgrade.")
	case content.PayHP:
		run.HP = max(1, run.HP-e.Amount)
		s.toast("-%d HP.", e.Amount)
	case content.Rest:
		before := run.HP
		run.HP = min(run.MaxHP, run.HP+e.Amount)
		s.toast("Healed %d HP.", run.HP-before)
	case content.GainGold:
		run.Gold = max(0, run.Gold+e.Amount)
		s.toast("Gold %+d.", e.Amount)
	case content.GainMaxHP:
		run.MaxHP = max(1, run.MaxHP+e.Amount)
		run.HP = min(run.MaxHP, run.HP+e.Amount)
		s.toast("Max HP +%d.", e.Amount)
	case content.EventCombo:
		for _, sub := range e.Steps {
			s.applyEventEffect(sub)
		}
	}
}

func (s *step) openEventPick(kind string, picks []*game.CardInstance, n int) {
	if len(picks) == 0 {
		return
	}
	s.st.Run.EventPick = &game.DeckPick{Kind: kind, Choices: game.Refs(picks), N: max(1, n)}
	s.st.Screen = game.ScreenEventPick
}

// eventPick applies one pick. Multi-card removals stay open until every
// pick is made or the offer runs out.
func (s *step) eventPick(uid string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	pick := run.EventPick
	if pick == nil {
		return rejection(MsgNotHere)
	}
	if !game.ContainsRef(pick.Choices, uid) {
		return rejection(MsgNotOnOffer)
	}
	switch pick.Kind {
	case "upgrade":
		if ci := run.FindCard(uid); ci != nil {
			ci.Upgraded = true
		}
		s.toast("Card upgraded.")
		pick.N = 0
	default:
		run.RemoveCard(uid)
		pick.N--
		pick.Choices = dropRef(pick.Choices, uid)
		s.toast("Card removed.")
	}
	if pick.N > 0 && len(pick.Choices) > 0 {
		s.toast("Card removed. %d more to go.", pick.N)
		return nil
	}
	run.EventPick = nil
	run.Event = ""
	s.completeFloor()
	return nil
}

func (s *step) startShop() {
	run := s.st.Run
	discount := 1.0
	n := shopOffers
	if tw := run.Twist; tw != nil && tw.ShopDiscount > 0 {
		discount = tw.ShopDiscount
		n++
	}
	shop := &game.Shop{RemovePrice: removePrice}
	for i := 0; i < n; i++ {
		id := loot.CardChoices(run, s.cat, s.rng(), 1)[0]
		def, _ := s.cat.Card(id, false)
		shop.Offers = append(shop.Offers, game.ShopOffer{CardID: id, Price: loot.Price(def.Rarity, discount)})
	}
	run.Shop = shop
	s.st.Screen = game.ScreenShop
}

func (s *step) shopBuy(what string, idx *int) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	shop := run.Shop
	if shop == nil || s.st.Screen != game.ScreenShop {
		return rejection(MsgNotHere)
	}
	switch what {
	case "card":
		if idx == nil || *idx < 0 || *idx >= len(shop.Offers) {
			return rejection(MsgNotOnOffer)
		}
		offer := shop.Offers[*idx]
		if run.Gold < offer.Price {
			return rejection(MsgNotEnoughGold)
		}
		run.Gold -= offer.Price
		run.AddCard(offer.CardID, false)
		shop.Offers = append(shop.Offers[:*idx], shop.Offers[*idx+1:]...)
		s.toast("Bought %s.", s.cardName(offer.CardID))
	case "remove":
		if run.Gold < shop.RemovePrice {
			return rejection(MsgNotEnoughGold)
		}
		if len(run.Deck) == 0 {
			return rejection(MsgNotHere)
		}
		run.ShopRemove = &game.DeckPick{
			Kind:    "remove",
			Choices: game.Refs(rng.Sample(s.rng(), run.Deck, pickChoices)),
			Price:   shop.RemovePrice,
		}
		s.st.Screen = game.ScreenShopRemove
		s.toast("Choose a card to remove.")
	default:
		return rejection(MsgUnknownOption)
	}
	return nil
}

func (s *step) shopRemove(uid string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	sr := run.ShopRemove
	if sr == nil {
		return rejection(MsgNotHere)
	}
	if !game.ContainsRef(sr.Choices, uid) {
		return rejection(MsgNotOnOffer)
	}
	if run.Gold < sr.Price {
		return rejection(MsgNotEnoughGold)
	}
	run.Gold -= sr.Price
	run.RemoveCard(uid)
	run.ShopRemove = nil
	s.st.Screen = game.ScreenShop
	s.toast("Card removed.")
	return nil
}

func (s *step) shopLeave() error {
	run, err := s.run()
	if err != nil {
		return err
	}
	if run.Shop == nil {
		return rejection(MsgNotHere)
	}
	run.Shop = nil
	run.ShopRemove = nil
	s.completeFloor()
	return nil
}

func (s *step) campfire(choice string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	if s.st.Screen != game.ScreenCampfire {
		return rejection(MsgNotHere)
	}
	switch choice {
	case "rest":
		before := run.HP
		run.HP = min(run.MaxHP, run.HP+campfireHeal)
		s.toast("You rest: +%d HP.", run.HP-before)
		s.completeFloor()
	case "upgrade":
		cands := upgradable(s.cat, run.Deck)
		if len(cands) == 0 {
			return rejection(MsgNothingUpgrade)
		}
		run.CampfireUp = &game.DeckPick{Kind: "upgrade", Choices: game.Refs(rng.Sample(s.rng(), cands, pickChoices))}
		s.st.Screen = game.ScreenCampfireUp
		s.toast("Choose a card to upgrade.")
	default:
		return rejection(MsgUnknownOption)
	}
	return nil
}

func (s *step) campfireUpgrade(uid string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	up := run.CampfireUp
	if up == nil {
		return rejection(MsgNotHere)
	}
	if !game.ContainsRef(up.Choices, uid) {
		return rejection(MsgNotOnOffer)
	}
	if ci := run.FindCard(uid); ci != nil {
		ci.Upgraded = true
		s.toast("%s upgraded.", s.cardName(ci.ID))
	}
	run.CampfireUp = nil
	s.completeFloor()
	return nil
}

// openChest pays gold, a relic while any remain, a card and possibly a
// curse, then moves on.
func (s *step) openChest() {
	run := s.st.Run
	src := s.rng()
	gold := loot.ChestGold(src)
	run.Gold += gold
	s.grantRandomRelic()
	relicToast := s.st.UI.Toast

	cursed := false
	if s.chestAlwaysCursed() || rng.Chance(src, chestCurseChance) {
		run.AddCard(loot.RandomCurse(s.cat, src), false)
		cursed = true
	}
	card := loot.CardChoices(run, s.cat, src, 1)[0]
	run.AddCard(card, false)

	s.toast("Chest: +%d gold and %s. %s", gold, s.cardName(card), relicToast)
	if cursed {
		s.st.UI.Toast += " A curse slipped into your deck!"
	}
	s.completeFloor()
}

func (s *step) chestAlwaysCursed() bool {
	for _, id := range s.st.Run.Relics {
		if rel, ok := s.cat.Relic(id); ok && rel.ChestCurse {
			return true
		}
	}
	return false
}

func (s *step) grantRandomRelic() {
	run := s.st.Run
	id, ok := loot.RandomRelic(s.cat, run.Relics, s.rng())
	if !ok {
		s.toast("No relics left to find.")
		return
	}
	run.GrantRelic(id)
	rel, _ := s.cat.Relic(id)
	s.toast("Relic found: %s.", rel.Name)
}

func (s *step) cardName(id string) string {
	if def, ok := s.cat.Card(id, false); ok {
		return def.Name
	}
	return id
}

// upgradable lists deck cards that are neither upgraded nor curses.
func upgradable(cat *content.Catalog, deck []*game.CardInstance) []*game.CardInstance {
	var out []*game.CardInstance
	for _, ci := range deck {
		if ci.Upgraded {
			continue
		}
		if def, ok := cat.Card(ci.ID, false); ok && !def.IsCurse() {
			out = append(out, ci)
		}
	}
	return out
}

func dropRef(refs []game.CardRef, uid string) []game.CardRef {
	out := refs[:0]
	for _, r := range refs {
		if r.UID != uid {
			out = append(out, r)
		}
	}
	return out
}
