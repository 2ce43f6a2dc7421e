package flexparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "bare sentinel",
			err:  &ParseError{Err: ErrInvalidInput},
			want: "invalid input",
		},
		{
			name: "with position",
			err:  &ParseError{Err: ErrUnexpectedToken, Char: '<', Offset: 4},
			want: `unexpected token '<' at offset 4`,
		},
		{
			name: "with detail",
			err:  &ParseError{Err: ErrUnexpectedEOF, Offset: 12, Detail: "unterminated comment"},
			want: "unexpected end of input at offset 12: unterminated comment",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{Err: ErrUnmatchedClosingTag, Offset: 6}
	assert.ErrorIs(t, err, ErrUnmatchedClosingTag)
	assert.NotErrorIs(t, err, ErrUnexpectedEOF)
}
