package domain

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultPattern is the classic pomodoro cycle: three focus blocks with
// short breaks, closed by a long break.
func DefaultPattern() []SessionType {
	return []SessionType{
		SessionTypeFocus,
		SessionTypeShortBreak,
		SessionTypeFocus,
		SessionTypeShortBreak,
		SessionTypeFocus,
		SessionTypeLongBreak,
	}
}

// tokenTypes maps normalized pattern tokens to session types.
var tokenTypes = map[string]SessionType{
	"focus":       SessionTypeFocus,
	"short":       SessionTypeShortBreak,
	"shortbreak":  SessionTypeShortBreak,
	"short_break": SessionTypeShortBreak,
	"long":        SessionTypeLongBreak,
	"longbreak":   SessionTypeLongBreak,
	"long_break":  SessionTypeLongBreak,
}

// knownTokens lists the canonical token spellings, used for fuzzy
// suggestions when an unrecognized token is typed.
var knownTokens = []string{"focus", "short", "long", "shortbreak", "longbreak"}

// ParsePattern converts free-text pattern input into an ordered sequence
// of session types. Input is split on commas; tokens are trimmed and
// matched case-insensitively. Unrecognized tokens are dropped without
// erroring. If no token survives, ErrEmptyPattern is returned and the
// caller must keep its previous pattern.
//
// ParsePattern is pure: it never mutates shared state, so callers can
// apply the result atomically or discard it.
func ParsePattern(text string) ([]SessionType, error) {
	var pattern []SessionType
	for _, raw := range strings.Split(text, ",") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			continue
		}
		if t, ok := tokenTypes[token]; ok {
			pattern = append(pattern, t)
		}
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return pattern, nil
}

// patternToken returns the canonical token for a session type.
func patternToken(t SessionType) string {
	switch t {
	case SessionTypeShortBreak:
		return "short"
	case SessionTypeLongBreak:
		return "long"
	default:
		return "focus"
	}
}

// PatternString renders a pattern in the canonical comma-separated form
// accepted by ParsePattern.
func PatternString(pattern []SessionType) string {
	tokens := make([]string, len(pattern))
	for i, t := range pattern {
		tokens[i] = patternToken(t)
	}
	return strings.Join(tokens, ", ")
}

// SuggestToken fuzzy-matches an unrecognized token against the known
// token spellings and returns the closest one, or "" when nothing is
// remotely close.
func SuggestToken(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	matches := fuzzy.Find(token, knownTokens)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
