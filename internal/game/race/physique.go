package race

import (
	"strings"

	"github.com/cory-johannsen/herogen/internal/game/dice"
)

// Percentile gates for the physique spread.
const (
	belowMedianMax = 30
	aboveMedianMin = 71
)

func (ph physique) roll(src dice.Source) int {
	switch pct := dice.Percent(src); {
	case pct <= belowMedianMax:
		return ph.median - dice.MustRoll(ph.low, src)
	case pct >= aboveMedianMin:
		return ph.median + dice.MustRoll(ph.high, src)
	default:
		return ph.median
	}
}

// CalcHeight rolls a height in inches.
func (p Profile) CalcHeight(src dice.Source, g Gender) int {
	return p.height[g].roll(src)
}

// CalcWeight rolls a weight in pounds.
func (p Profile) CalcWeight(src dice.Source, g Gender) int {
	return p.weight[g].roll(src)
}

// HeightRange returns the inclusive bounds CalcHeight can produce.
func (p Profile) HeightRange(g Gender) (lo, hi int) {
	ph := p.height[g]
	return ph.median - ph.low.Max(), ph.median + ph.high.Max()
}

// WeightRange returns the inclusive bounds CalcWeight can produce.
func (p Profile) WeightRange(g Gender) (lo, hi int) {
	ph := p.weight[g]
	return ph.median - ph.low.Max(), ph.median + ph.high.Max()
}

// Body and appearance bands.
const (
	ShortMax     = 54
	TallMin      = 70
	LightMax     = 110
	HeavyMin     = 175
	AverageTrait = 11
	lowCharisma  = 8
	highCharisma = 18
)

var attractiveBody = [3][3]string{
	{"petite", "compact", "burly"},
	{"lithe", "athletic", "muscular"},
	{"thin", "tall", "towering"},
}

var plainBody = [3][3]string{
	{"tiny", "pudgy", "squat"},
	{"slinky", "average-size", "heavy"},
	{"skinny", "tall", "giant"},
}

var charismaDescriptors = [...]string{
	"crippled and horribly ugly",
	"horribly scarred",
	"scarred from war or fire",
	"the result of years of misery",
	"weather-beaten and tough",
	"nothing special to look at",
	"clear-eyed and rugged but not handsome",
	"slightly attractive if one could scrape off the years of wear and tear",
	"a handsome adventurer",
	"gorgeous",
	"very attractive",
	"stunningly beautiful",
	"mesmerizing, and you will do whatever this person suggests to you",
}

func band(v, lowMax, highMin int) int {
	switch {
	case v <= lowMax:
		return 0
	case v >= highMin:
		return 2
	default:
		return 1
	}
}

// BodyType maps charisma, height, and weight onto a body adjective.
func BodyType(chr, height, weight int) string {
	table := &plainBody
	if chr >= AverageTrait {
		table = &attractiveBody
	}
	return table[band(height, ShortMax, TallMin)][band(weight, LightMax, HeavyMin)]
}

// CharismaDescriptor maps charisma onto one of 13 appearance phrases.
func CharismaDescriptor(chr int) string {
	switch {
	case chr < lowCharisma:
		return charismaDescriptors[0]
	case chr > highCharisma:
		return charismaDescriptors[len(charismaDescriptors)-1]
	default:
		return charismaDescriptors[chr-lowCharisma+1]
	}
}

// Description renders the one-paragraph physical description, e.g.
// "A tall male with brown hair and pointed ears. He is gorgeous."
func (p Profile) Description(g Gender, hair string, chr, height, weight int) string {
	body := BodyType(chr, height, weight)
	article := "A"
	if strings.ContainsRune("aeiouAEIOU", rune(body[0])) {
		article = "An"
	}
	hairPart := hair + " hair"
	if strings.EqualFold(hair, "bald") {
		hairPart = "a bald head"
	}
	pronoun := "He"
	if g == Female {
		pronoun = "She"
	}
	var sb strings.Builder
	sb.WriteString(article)
	sb.WriteString(" ")
	sb.WriteString(body)
	sb.WriteString(" ")
	sb.WriteString(strings.ToLower(g.String()))
	sb.WriteString(" with ")
	sb.WriteString(hairPart)
	sb.WriteString(" and ")
	sb.WriteString(p.descriptor)
	sb.WriteString(". ")
	sb.WriteString(pronoun)
	sb.WriteString(" is ")
	sb.WriteString(CharismaDescriptor(chr))
	sb.WriteString(".")
	return sb.String()
}
