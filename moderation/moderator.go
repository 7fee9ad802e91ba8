package moderation

import (
	"log/slog"
	"sort"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator holds two automatons: censored words are masked in place,
// blocked words reject the whole message.
type Moderator struct {
	censored     *goahocorasick.Machine
	blocked      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewModerator builds the Aho-Corasick automatons from normalized versions of both word lists.
// Words reduced to nothing by normalization (pure punctuation) are ignored.
func NewModerator(censoredWords, blockedWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	censored, err := buildMachine(censoredWords)
	if err != nil {
		return nil, err
	}
	blocked, err := buildMachine(blockedWords)
	if err != nil {
		return nil, err
	}
	return &Moderator{
		censored:     censored,
		blocked:      blocked,
		censoredChar: censoredChar,
		log:          log,
	}, nil
}

func buildMachine(words []string) (*goahocorasick.Machine, error) {
	normalized := lo.FilterMap(words, func(word string, _ int) (string, bool) {
		n := string(normalizeRunes([]rune(word)))
		return n, n != ""
	})
	normalized = lo.Uniq(normalized)
	if len(normalized) == 0 {
		return nil, nil
	}
	sort.Strings(normalized)

	patterns := lo.Map(normalized, func(word string, _ int) []rune {
		return []rune(word)
	})
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// Censor replaces the original characters of every censored word while preserving spacing.
// It returns the censored text and the matched words in order of appearance.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.censored == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.Normalized) == 0 {
		return original, nil
	}

	spans := m.censored.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		origStart := mapping.OrigIdx[normStart]
		origEnd := mapping.OrigIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}

	if len(words) > 0 {
		m.log.Debug("Censored words found", "count", len(words))
	}
	return string(origRunes), words
}

// Blocked reports whether the text contains a blocked word, and which one.
func (m *Moderator) Blocked(original string) (string, bool) {
	if m.blocked == nil {
		return "", false
	}
	mapping := normalize(original)
	if len(mapping.Normalized) == 0 {
		return "", false
	}
	spans := m.blocked.MultiPatternSearch(mapping.Normalized, true)
	if len(spans) == 0 {
		return "", false
	}
	return string(spans[0].Word), true
}

// normalize transforms the input into a searchable form and tracks original rune positions.
func normalize(input string) TextMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return TextMapping{Normalized: norm, OrigIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	return normalize(string(input)).Normalized
}

// simplifyRune maps common leet speak characters back to their standard letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
