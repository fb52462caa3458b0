// Package order is the pure position model: it decides what a valid total
// ordering is without touching storage.
package order

// Normalize reconciles a caller-supplied ordering against the live id set.
// Ids from desired are taken in the order given, skipping unknowns and
// duplicates; any live id the caller left out is appended afterwards in its
// current relative order. The result is always a permutation of actual, so a
// stale or partial client list can never drop or duplicate a card.
func Normalize(desired, actual []string) []string {
	live := make(map[string]bool, len(actual))
	for _, id := range actual {
		live[id] = true
	}

	out := make([]string, 0, len(actual))
	placed := make(map[string]bool, len(actual))

	for _, id := range desired {
		if live[id] && !placed[id] {
			out = append(out, id)
			placed[id] = true
		}
	}
	for _, id := range actual {
		if !placed[id] {
			out = append(out, id)
			placed[id] = true
		}
	}
	return out
}
