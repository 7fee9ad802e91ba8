// Package render turns formatted strings into transport components.
package render

import (
	"chat-flex/domain"
	"regexp"
	"strings"
)

var (
	bracketed = regexp.MustCompile(`\[[#a-zA-Z0-9]*\]`)
	hexColor  = regexp.MustCompile(`^#[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?$`)
)

var colorNames = map[string]struct{}{
	"clear": {}, "black": {}, "white": {}, "lightgray": {}, "gray": {}, "darkgray": {},
	"blue": {}, "navy": {}, "royal": {}, "slate": {}, "sky": {}, "cyan": {}, "teal": {},
	"green": {}, "acid": {}, "lime": {}, "forest": {}, "olive": {}, "yellow": {}, "gold": {},
	"goldenrod": {}, "orange": {}, "brown": {}, "tan": {}, "brick": {}, "red": {}, "scarlet": {},
	"crimson": {}, "coral": {}, "salmon": {}, "pink": {}, "magenta": {}, "purple": {},
	"violet": {}, "maroon": {},
}

// isColorTag accepts "[]", "[red]", "[#ff0000]" and "[#ff0000aa]".
func isColorTag(tag string) bool {
	inner := tag[1 : len(tag)-1]
	if inner == "" || hexColor.MatchString(inner) {
		return true
	}
	_, ok := colorNames[strings.ToLower(inner)]
	return ok
}

const escapedBracket = "[["

// StripMarkup removes color tags and unescapes doubled brackets.
// Bracketed text that is not a color, like "[alice]", is kept.
func StripMarkup(text string) string {
	parts := strings.Split(text, escapedBracket)
	for i, part := range parts {
		parts[i] = bracketed.ReplaceAllStringFunc(part, func(tag string) string {
			if isColorTag(tag) {
				return ""
			}
			return tag
		})
	}
	return strings.Join(parts, "[")
}

type plain struct{}

// Plain keeps the text as is in both renderings.
var Plain = plain{}

func (plain) Decode(text string) domain.Component {
	return domain.Component{Source: text, Plain: text}
}

type markup struct{}

// Markup keeps color tags in the source rendering only.
var Markup = markup{}

func (markup) Decode(text string) domain.Component {
	return domain.Component{Source: text, Plain: StripMarkup(text)}
}
