package assistant

import (
	"regexp"
	"strings"
	"time"

	"voicepay/models"
)

var (
	// "inv-125", "invoice 125", "inv125".
	explicitIDPattern = regexp.MustCompile(`inv(?:oice)?[-\s]?(\d{2,6})`)
	// Any standalone run of 2 to 6 digits ("pay 125").
	bareDigitsPattern = regexp.MustCompile(`\d{2,6}`)
)

type tierFunc func(ref string, candidates []models.Invoice) *models.Invoice

// ResolveReference maps a free-form spoken or typed reference onto
// exactly one invoice from candidates, or nil when nothing matches.
// Tiers are tried in order and the first tier producing a match wins;
// within a tier the first matching candidate in input order wins, so
// the result is deterministic for a given input. The function is pure.
func ResolveReference(ref string, candidates []models.Invoice) *models.Invoice {
	s := strings.ToLower(strings.TrimSpace(ref))
	if s == "" {
		return nil
	}
	for _, tier := range []tierFunc{
		matchExplicitID,
		matchBareDigits,
		matchTextContains,
		matchKeyword,
	} {
		if inv := tier(s, candidates); inv != nil {
			return inv
		}
	}
	return nil
}

// matchExplicitID handles explicit identifier references. The extracted
// digits must equal a candidate's short id or appear inside its full
// invoice id.
func matchExplicitID(ref string, candidates []models.Invoice) *models.Invoice {
	m := explicitIDPattern.FindStringSubmatch(ref)
	if m == nil {
		return nil
	}
	sid := m[1]
	for i := range candidates {
		inv := &candidates[i]
		if inv.ShortID == sid {
			return inv
		}
		if inv.InvoiceID != "" && strings.Contains(inv.InvoiceID, sid) {
			return inv
		}
	}
	return nil
}

// matchBareDigits handles references like "pay 125": short id equality
// only, no invoice id containment.
func matchBareDigits(ref string, candidates []models.Invoice) *models.Invoice {
	sid := bareDigitsPattern.FindString(ref)
	if sid == "" {
		return nil
	}
	for i := range candidates {
		if candidates[i].ShortID == sid {
			return &candidates[i]
		}
	}
	return nil
}

// matchTextContains tests the whole normalized reference against each
// candidate's vendor, label and description, in that field order.
func matchTextContains(ref string, candidates []models.Invoice) *models.Invoice {
	for i := range candidates {
		inv := &candidates[i]
		for _, field := range []string{inv.Vendor, inv.Label, inv.Description} {
			if strings.Contains(strings.ToLower(field), ref) {
				return inv
			}
		}
	}
	return nil
}

// matchKeyword handles superlatives over the unpaid candidates. A
// phrase that fits no keyword set resolves to nothing rather than a
// guess at broader intent.
func matchKeyword(ref string, candidates []models.Invoice) *models.Invoice {
	var unpaid []*models.Invoice
	for i := range candidates {
		if !candidates[i].Paid {
			unpaid = append(unpaid, &candidates[i])
		}
	}
	if len(unpaid) == 0 {
		return nil
	}

	switch {
	case containsAny(ref, "last", "latest", "most recent"):
		return pickBy(unpaid, func(a, b *models.Invoice) bool { return dueDate(a).After(dueDate(b)) })
	case containsAny(ref, "oldest", "earliest"):
		return pickBy(unpaid, func(a, b *models.Invoice) bool { return dueDate(a).Before(dueDate(b)) })
	case containsAny(ref, "largest", "biggest", "highest"):
		return pickBy(unpaid, func(a, b *models.Invoice) bool { return a.Amount > b.Amount })
	case containsAny(ref, "smallest", "small"):
		return pickBy(unpaid, func(a, b *models.Invoice) bool { return a.Amount < b.Amount })
	}
	return nil
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// pickBy returns the best invoice under beats, keeping the earliest
// candidate on ties.
func pickBy(pool []*models.Invoice, beats func(a, b *models.Invoice) bool) *models.Invoice {
	best := pool[0]
	for _, inv := range pool[1:] {
		if beats(inv, best) {
			best = inv
		}
	}
	return best
}

// dueDate parses the backend's ISO-8601 due date; full timestamps and
// bare dates both occur. Unparseable values sort as the zero time.
func dueDate(inv *models.Invoice) time.Time {
	if t, err := time.Parse(time.RFC3339, inv.DueDate); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", inv.DueDate); err == nil {
		return t
	}
	return time.Time{}
}
