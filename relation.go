package arff

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const labelFlag = "-C"

// relation is the parsed form of an @relation directive: the display name
// and the label layout carried in it.
type relation struct {
	name       string
	labelCount int
	explicit   bool
	swap       bool
}

// parseRelation reads the text following the @relation keyword.
//
// A "-C N" token pair anywhere in the name sets the label count to |N|;
// a negative N means the labels lead each row and must be moved to the end.
// Without the flag the label count is defaultLabels and no columns move.
func parseRelation(raw string, defaultLabels int) (relation, error) {
	name := stripMatchingQuotes(strings.TrimSpace(raw))
	if name == "" {
		return relation{}, ErrEmptyRelationName
	}

	rel := relation{name: name, labelCount: defaultLabels}
	fields := strings.Fields(name)
	for i, f := range fields {
		if f != labelFlag {
			continue
		}
		if i+1 >= len(fields) {
			return relation{}, errors.Wrapf(ErrMalformedNumber, "%s without a value", labelFlag)
		}
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return relation{}, errors.Wrapf(ErrMalformedNumber, "%s value %q", labelFlag, fields[i+1])
		}
		rel.swap = n < 0
		if n < 0 {
			n = -n
		}
		rel.labelCount = n
		rel.explicit = true
		break
	}
	return rel, nil
}

// stripMatchingQuotes removes one pair of surrounding ' or " quotes.
// 'label' -> label
// "some attribute" -> some attribute
// 'mixed" -> 'mixed" (unchanged)
func stripMatchingQuotes(s string) string {
	if len(s) > 1 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
