// Package translator holds the translation backends and decorators.
package translator

import (
	"golang.org/x/text/language"
)

// AutoDetect asks a translator to detect the source language.
var AutoDetect = language.Und

// SameLanguage reports whether two locales share their base language ("en-US" and "en-GB" do).
func SameLanguage(a, b language.Tag) bool {
	ba, _ := a.Base()
	bb, _ := b.Base()
	return ba == bb
}
