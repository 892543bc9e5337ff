package recurrence

import (
	"sort"
	"strings"
)

// slotKeyTerms are the scheduling words looked for in response field names.
var slotKeyTerms = []string{"time", "slot", "schedule", "interview", "appointment"}

// slotValueTerms additionally accepts "available" when scanning field
// values, where phrasing like "available at 9 AM" is common.
var slotValueTerms = append(slotKeyTerms, "available")

// isSlotAnswer filters out the non-answers an LLM tool call produces for
// slot fields it could not fill.
func isSlotAnswer(v string) bool {
	return v != "" && v != "Yes" && v != "N/A"
}

// ExtractSelectedSlot scans an unstructured response map for the slot an
// applicant chose. Precedence: (1) the literal "selected_time_slot" field,
// (2) any field whose name contains a scheduling term, (3) any value that
// carries an AM/PM marker together with a scheduling term. First match
// wins; fields are visited in sorted key order so the result does not
// depend on map iteration order. This is a best-effort heuristic over LLM
// output: misses are acceptable, and the keyword co-occurrence requirement
// in tier 3 keeps unrelated AM/PM mentions from being taken for slots.
func ExtractSelectedSlot(responses map[string]any) (string, bool) {
	if v, ok := responses["selected_time_slot"].(string); ok && isSlotAnswer(v) {
		return v, true
	}

	keys := make([]string, 0, len(responses))
	for k := range responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, ok := responses[k].(string)
		if !ok || !isSlotAnswer(v) {
			continue
		}
		name := strings.ToLower(k)
		for _, term := range slotKeyTerms {
			if strings.Contains(name, term) {
				return v, true
			}
		}
	}

	for _, k := range keys {
		v, ok := responses[k].(string)
		if !ok || !isSlotAnswer(v) {
			continue
		}
		upper := strings.ToUpper(v)
		if !strings.Contains(upper, "AM") && !strings.Contains(upper, "PM") {
			continue
		}
		lower := strings.ToLower(v)
		for _, term := range slotValueTerms {
			if strings.Contains(lower, term) {
				return v, true
			}
		}
	}

	return "", false
}
