package optimizer

import (
	"math/rand/v2"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/vocab"
)

// VerbPicker chooses one verb from the pool. Production code uses
// RandomVerbPicker; tests inject a deterministic picker so output can be
// asserted exactly.
type VerbPicker func(verbs []string) string

// RandomVerbPicker picks a verb pseudo-randomly.
func RandomVerbPicker(verbs []string) string {
	return verbs[rand.IntN(len(verbs))]
}

// rewriteResponsibility prepends a strong action verb to a responsibility
// line unless it already starts with one, lower-casing the original first
// letter when a verb is prepended.
func rewriteResponsibility(line string, pick VerbPicker) string {
	v := vocab.MustLoad()

	for _, prefix := range v.ActionVerbPrefixes {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}

	if line == "" {
		return line
	}
	return pick(v.ActionVerbs) + " " + strings.ToLower(line[:1]) + line[1:]
}
