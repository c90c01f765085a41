package model

import (
	"regexp"
	"strings"
)

// Account names feed both ledger and beancount output, so characters that are
// structural in either grammar are rejected, as are whitespace runs that
// would collide with column alignment.
var (
	illegalNameChars = regexp.MustCompile(`[()\[\]#;%*|]`)
	whitespaceRun    = regexp.MustCompile(`\s{2,}`)
	anyWhitespaceRun = regexp.MustCompile(`\s+`)
)

// ValidateAccountName reports whether name is safe to emit as an account
// path segment without normalization.
func ValidateAccountName(name string) bool {
	return !illegalNameChars.MatchString(name) && !whitespaceRun.MatchString(name)
}

// NormalizeAccountName strips illegal characters, collapses whitespace runs
// to single spaces, and trims. Idempotent: normalizing an already-normalized
// name is a no-op.
func NormalizeAccountName(name string) string {
	name = illegalNameChars.ReplaceAllString(name, "")
	name = anyWhitespaceRun.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
