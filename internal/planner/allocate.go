package planner

// allocateFlyers divides totalFlyers across zoneAddresses (one count per
// zone) proportionally to each zone's estimated addresses. If every zone
// has zero estimated addresses, it falls back to an even integer split.
// Either way, integer division leaves a remainder; that remainder is
// absorbed entirely into route 0 rather than spread around.
func allocateFlyers(totalFlyers int, zoneAddresses []int) []int {
	n := len(zoneAddresses)
	out := make([]int, n)
	if n == 0 {
		return out
	}

	totalAddresses := 0
	for _, a := range zoneAddresses {
		totalAddresses += a
	}

	assigned := 0
	for i, a := range zoneAddresses {
		var flyers int
		if totalAddresses > 0 {
			flyers = totalFlyers * a / totalAddresses
		} else {
			flyers = totalFlyers / n
		}
		out[i] = flyers
		assigned += flyers
	}

	if diff := totalFlyers - assigned; diff != 0 {
		out[0] += diff
	}

	return out
}
