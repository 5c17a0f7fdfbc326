package hero

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cory-johannsen/herogen/internal/game/inventory"
	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// Attributes returns the flat key/value view of h consumed by display layers.
//
// Postcondition: the map holds exactly the keys in Keys().
func (h Hero) Attributes() map[string]string {
	itoa := strconv.Itoa
	m := map[string]string{
		KeyID:            h.id.String(),
		KeyName:          h.request.Name,
		KeyGender:        h.request.Gender.String(),
		KeyHairColor:     h.request.HairColor,
		KeyRaceName:      h.request.Race.String(),
		KeyKlassName:     h.request.Klass.String(),
		KeyLevel:         itoa(h.level),
		KeyHP:            itoa(h.hp),
		KeyHPMax:         itoa(h.hpMax),
		KeyAC:            itoa(h.ac),
		KeyACMagic:       itoa(h.acMagic),
		KeyXP:            itoa(h.xp),
		KeySpeed:         itoa(h.speed),
		KeyGold:          itoa(h.gold),
		KeySilver:        itoa(h.silver),
		KeyGoldBanked:    strconv.FormatFloat(h.goldBanked, 'f', 1, 64),
		KeyOccupation:    h.occupation,
		KeyOccDescriptor: h.occDescriptor,
		KeyDescription:   h.description,
		KeyToHitMelee:    itoa(h.toHitMelee),
		KeyDamage:        itoa(h.damage),
		KeyWtAllow:       itoa(h.wtAllow),
		KeyLoad:          itoa(h.load),
		KeyLiteracy:      h.literacy,
		KeyToKnow:        itoa(h.toKnow),
		KeyCurrentMSP:    itoa(h.currentMSP),
		KeyMaxMSP:        itoa(h.maxMSP),
		KeyMSPPerLevel:   itoa(h.mspPerLevel),
		KeySpellsKnown:   itoa(h.spellsKnown),
		KeyMaxLangs:      itoa(h.maxLangs),
		KeyMAM:           itoa(h.mam),
		KeyCurrentCSP:    itoa(h.currentCSP),
		KeyMaxCSP:        itoa(h.maxCSP),
		KeyCSPPerLevel:   itoa(h.cspPerLevel),
		KeyTurnUndead:    itoa(h.turnUndead),
		KeyHPMod:         itoa(h.hpMod),
		KeyRMR:           itoa(h.rmr),
		KeyToHitMissile:  itoa(h.toHitMissile),
		KeyACMod:         itoa(h.acMod),
		KeyWeight:        itoa(h.weight),
		KeyHeight:        itoa(h.height),
		KeyHunger:        h.hunger,
		KeyAP:            itoa(h.ap),
		KeyOverbearing:   itoa(h.overbearing),
		KeyPummeling:     itoa(h.pummeling),
		KeyGrappling:     itoa(h.grappling),
		KeyShieldBash:    itoa(h.shieldBash),
		KeyLanguages:     JoinList(h.languages),
		KeyOccSkills:     JoinList(h.occSkills),
		KeyRaceSkills:    JoinList(h.raceSkills),
		KeyKlassSkills:   JoinList(h.klassSkills),
		KeySpells:        JoinList(h.spells),
		KeyThiefSkills:   "",
		KeyInventory:     JoinList(h.inventory.Strings()),
	}
	for _, t := range trait.All() {
		m[t.String()] = itoa(h.traits.Get(t))
	}
	if h.thiefSkills != nil {
		m[KeyThiefSkills] = JoinList(klass.FormatThiefSkills(*h.thiefSkills))
	}
	return m
}

var listEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`)

// JoinList encodes items as one attribute value. A ';' or '\' inside an item is
// escaped with a backslash, so items may themselves contain ListSeparator.
func JoinList(items []string) string {
	escaped := make([]string, len(items))
	for i, it := range items {
		escaped[i] = listEscaper.Replace(it)
	}
	return strings.Join(escaped, ListSeparator)
}

// SplitList decodes a value produced by JoinList.
//
// Postcondition: SplitList(JoinList(items)) equals items whenever items is
// non-empty and is not the single empty string.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			i++
			b.WriteByte(s[i])
		case strings.HasPrefix(s[i:], ListSeparator):
			out = append(out, b.String())
			b.Reset()
			i += len(ListSeparator) - 1
		default:
			b.WriteByte(c)
		}
	}
	return append(out, b.String())
}

// attrReader pulls typed values out of an attribute map, keeping the first error.
type attrReader struct {
	m   map[string]string
	err error
}

func (r *attrReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	v, ok := r.m[key]
	if !ok {
		r.err = invalid(key, "missing attribute")
	}
	return v
}

func (r *attrReader) num(key string) int {
	s := r.str(key)
	if r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.err = invalid(key, "%q is not an integer", s)
	}
	return n
}

func (r *attrReader) float(key string) float64 {
	s := r.str(key)
	if r.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = invalid(key, "%q is not a number", s)
	}
	return f
}

func (r *attrReader) list(key string) []string {
	return SplitList(r.str(key))
}

// FromAttributes rebuilds a Hero from the map produced by Attributes.
//
// Postcondition: FromAttributes(h.Attributes()) yields a Hero whose Attributes()
// equals h.Attributes(). Missing or malformed keys return *InvalidInputError.
func FromAttributes(m map[string]string) (Hero, error) {
	r := &attrReader{m: m}
	var h Hero

	idStr := r.str(KeyID)
	name := r.str(KeyName)
	genderStr := r.str(KeyGender)
	hair := r.str(KeyHairColor)
	raceStr := r.str(KeyRaceName)
	klassStr := r.str(KeyKlassName)
	if r.err != nil {
		return Hero{}, r.err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Hero{}, invalid(KeyID, "%q is not a UUID", idStr)
	}
	h.id = id
	g, err := race.ParseGender(genderStr)
	if err != nil {
		return Hero{}, invalid(KeyGender, "%s", err)
	}
	rn, err := race.Parse(raceStr)
	if err != nil {
		return Hero{}, invalid(KeyRaceName, "%s", err)
	}
	kn, err := klass.Parse(klassStr)
	if err != nil {
		return Hero{}, invalid(KeyKlassName, "%s", err)
	}
	h.request = Request{Name: name, Gender: g, HairColor: hair, Race: rn, Klass: kn}
	if err := h.request.Validate(); err != nil {
		return Hero{}, err
	}

	for _, t := range trait.All() {
		h.traits = h.traits.With(t, r.num(t.String()))
	}
	h.level = r.num(KeyLevel)
	h.hp = r.num(KeyHP)
	h.hpMax = r.num(KeyHPMax)
	h.ac = r.num(KeyAC)
	h.acMagic = r.num(KeyACMagic)
	h.xp = r.num(KeyXP)
	h.speed = r.num(KeySpeed)
	h.gold = r.num(KeyGold)
	h.silver = r.num(KeySilver)
	h.goldBanked = r.float(KeyGoldBanked)
	h.occupation = r.str(KeyOccupation)
	h.occDescriptor = r.str(KeyOccDescriptor)
	h.description = r.str(KeyDescription)
	h.toHitMelee = r.num(KeyToHitMelee)
	h.damage = r.num(KeyDamage)
	h.wtAllow = r.num(KeyWtAllow)
	h.load = r.num(KeyLoad)
	h.literacy = r.str(KeyLiteracy)
	h.toKnow = r.num(KeyToKnow)
	h.currentMSP = r.num(KeyCurrentMSP)
	h.maxMSP = r.num(KeyMaxMSP)
	h.mspPerLevel = r.num(KeyMSPPerLevel)
	h.spellsKnown = r.num(KeySpellsKnown)
	h.maxLangs = r.num(KeyMaxLangs)
	h.mam = r.num(KeyMAM)
	h.currentCSP = r.num(KeyCurrentCSP)
	h.maxCSP = r.num(KeyMaxCSP)
	h.cspPerLevel = r.num(KeyCSPPerLevel)
	h.turnUndead = r.num(KeyTurnUndead)
	h.hpMod = r.num(KeyHPMod)
	h.rmr = r.num(KeyRMR)
	h.toHitMissile = r.num(KeyToHitMissile)
	h.acMod = r.num(KeyACMod)
	h.weight = r.num(KeyWeight)
	h.height = r.num(KeyHeight)
	h.hunger = r.str(KeyHunger)
	h.ap = r.num(KeyAP)
	h.overbearing = r.num(KeyOverbearing)
	h.pummeling = r.num(KeyPummeling)
	h.grappling = r.num(KeyGrappling)
	h.shieldBash = r.num(KeyShieldBash)
	h.languages = r.list(KeyLanguages)
	h.occSkills = r.list(KeyOccSkills)
	h.raceSkills = r.list(KeyRaceSkills)
	h.klassSkills = r.list(KeyKlassSkills)
	h.spells = r.list(KeySpells)
	thief := r.list(KeyThiefSkills)
	items := r.list(KeyInventory)
	if r.err != nil {
		return Hero{}, r.err
	}

	if len(thief) > 0 {
		table, err := parseThiefSkills(thief)
		if err != nil {
			return Hero{}, err
		}
		h.thiefSkills = &table
	}
	inv, err := inventory.ParseInventory(items)
	if err != nil {
		return Hero{}, invalid(KeyInventory, "%s", err)
	}
	h.inventory = inv
	return h, nil
}

func parseThiefSkills(entries []string) (klass.ThiefSkills, error) {
	var table klass.ThiefSkills
	if len(entries) != klass.ThiefSkillCount {
		return table, invalid(KeyThiefSkills, "want %d entries, got %d", klass.ThiefSkillCount, len(entries))
	}
	for i, e := range entries {
		prefix := klass.ThiefSkillNames[i] + " ("
		if !strings.HasPrefix(e, prefix) || !strings.HasSuffix(e, "%)") {
			return table, invalid(KeyThiefSkills, "malformed entry %q", e)
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(e, prefix), "%)"))
		if err != nil {
			return table, invalid(KeyThiefSkills, "malformed entry %q", e)
		}
		table[i] = n
	}
	return table, nil
}
