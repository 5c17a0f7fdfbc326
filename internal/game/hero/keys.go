package hero

// Attribute keys of Hero.Attributes, in character-sheet order.
const (
	KeyID            = "ID"
	KeyName          = "NAME"
	KeyGender        = "GENDER"
	KeyHairColor     = "HAIR_COLOR"
	KeyRaceName      = "RACENAME"
	KeyKlassName     = "KLASSNAME"
	KeyLevel         = "LEVEL"
	KeyHP            = "HP"
	KeyHPMax         = "HP_MAX"
	KeyAC            = "AC"
	KeyACMagic       = "AC_MAGIC"
	KeyXP            = "XP"
	KeySpeed         = "SPEED"
	KeyGold          = "GOLD"
	KeySilver        = "SILVER"
	KeyGoldBanked    = "GOLD_BANKED"
	KeyOccupation    = "OCCUPATION"
	KeyOccDescriptor = "OCC_DESCRIPTOR"
	KeyDescription   = "DESCRIPTION"
	KeySTR           = "STR"
	KeyToHitMelee    = "TO_HIT_MELEE"
	KeyDamage        = "DAMAGE"
	KeyWtAllow       = "WT_ALLOW"
	KeyLoad          = "LOAD"
	KeyINT           = "INT"
	KeyLiteracy      = "LITERACY"
	KeyToKnow        = "TO_KNOW"
	KeyCurrentMSP    = "CURRENT_MSP"
	KeyMaxMSP        = "MAX_MSP"
	KeyMSPPerLevel   = "MSP_PER_LEVEL"
	KeySpellsKnown   = "SPELLS_KNOWN"
	KeyMaxLangs      = "MAX_LANGS"
	KeyWIS           = "WIS"
	KeyMAM           = "MAM"
	KeyCurrentCSP    = "CURRENT_CSP"
	KeyMaxCSP        = "MAX_CSP"
	KeyCSPPerLevel   = "CSP_PER_LEVEL"
	KeyTurnUndead    = "TURN_UNDEAD"
	KeyCON           = "CON"
	KeyHPMod         = "HP_MOD"
	KeyRMR           = "RMR"
	KeyDEX           = "DEX"
	KeyToHitMissile  = "TO_HIT_MISSLE"
	KeyACMod         = "AC_MOD"
	KeyCHR           = "CHR"
	KeyWeight        = "WEIGHT"
	KeyHeight        = "HEIGHT"
	KeyHunger        = "HUNGER"
	KeyAP            = "AP"
	KeyOverbearing   = "OVERBEARING"
	KeyPummeling     = "PUMMELING"
	KeyGrappling     = "GRAPPLING"
	KeyShieldBash    = "SHIELD_BASH"
	KeyLanguages     = "LANGUAGES"
	KeyOccSkills     = "OCC_SKILLS"
	KeyRaceSkills    = "RACE_SKILLS"
	KeyKlassSkills   = "KLASS_SKILLS"
	KeySpells        = "SPELLS"
	KeyThiefSkills   = "THIEF_SKILLS"
	KeyInventory     = "INVENTORY"
)

// ListSeparator joins list-valued attributes; see JoinList.
const ListSeparator = "; "

var listKeys = map[string]bool{
	KeyLanguages:   true,
	KeyOccSkills:   true,
	KeyRaceSkills:  true,
	KeyKlassSkills: true,
	KeySpells:      true,
	KeyThiefSkills: true,
	KeyInventory:   true,
}

// IsListKey reports whether the value under key is encoded with JoinList.
func IsListKey(key string) bool { return listKeys[key] }

// Keys returns every attribute key in character-sheet order.
func Keys() []string {
	return []string{
		KeyID, KeyName, KeyGender, KeyHairColor, KeyRaceName, KeyKlassName,
		KeyLevel, KeyHP, KeyHPMax, KeyAC, KeyACMagic,
		KeyXP, KeySpeed, KeyGold, KeySilver, KeyGoldBanked,
		KeyOccupation, KeyOccDescriptor, KeyDescription,
		KeySTR, KeyToHitMelee, KeyDamage, KeyWtAllow, KeyLoad,
		KeyINT, KeyLiteracy, KeyToKnow, KeyCurrentMSP, KeyMaxMSP, KeyMSPPerLevel, KeySpellsKnown, KeyMaxLangs,
		KeyWIS, KeyMAM, KeyCurrentCSP, KeyMaxCSP, KeyCSPPerLevel, KeyTurnUndead,
		KeyCON, KeyHPMod, KeyRMR,
		KeyDEX, KeyToHitMissile, KeyACMod,
		KeyCHR, KeyWeight, KeyHeight, KeyHunger,
		KeyAP, KeyOverbearing, KeyPummeling, KeyGrappling, KeyShieldBash,
		KeyLanguages, KeyOccSkills, KeyRaceSkills, KeyKlassSkills, KeySpells, KeyThiefSkills,
		KeyInventory,
	}
}
