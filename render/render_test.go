package render

import (
	"chat-flex/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "No tag", input: "hello", expected: "hello"},
		{name: "Named color", input: "[red]hello[] world", expected: "hello world"},
		{name: "Hex color", input: "[#ff0000]red[#00ff00aa]green", expected: "redgreen"},
		{name: "Escaped bracket", input: "[[red] is not a tag", expected: "[red] is not a tag"},
		{name: "Unknown content is kept", input: "[1] first", expected: "[1] first"},
		{name: "Player name is kept", input: "[alice]: [RED]hi", expected: "[alice]: hi"},
		{name: "Short hex is kept", input: "[#fff]x", expected: "[#fff]x"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, StripMarkup(tt.input))
		})
	}
}

func TestDecoders(t *testing.T) {
	req := require.New(t)

	req.Equal(domain.Component{Source: "[red]hi", Plain: "[red]hi"}, Plain.Decode("[red]hi"))
	req.Equal(domain.Component{Source: "[red]hi", Plain: "hi"}, Markup.Decode("[red]hi"))
}
