package inventory

import (
	"fmt"
	"math"
)

// SilverPerGold is the number of silver pieces in one gold piece.
const SilverPerGold = 10

// DecomposeSilver converts a total silver count into gold and silver pieces.
//
// Precondition: total >= 0.
// Postcondition: gold*SilverPerGold + silver == total; 0 <= silver < SilverPerGold.
func DecomposeSilver(total int) (gold, silver int) {
	return total / SilverPerGold, total % SilverPerGold
}

// BankedToSilver converts a banked balance, where the fraction is silver, into silver pieces.
func BankedToSilver(banked float64) int {
	return int(math.Round(banked * SilverPerGold))
}

// FormatCoins returns "N gp, M sp".
//
// Precondition: gold >= 0; silver >= 0.
func FormatCoins(gold, silver int) string {
	g, s := DecomposeSilver(gold*SilverPerGold + silver)
	return fmt.Sprintf("%d gp, %d sp", g, s)
}
