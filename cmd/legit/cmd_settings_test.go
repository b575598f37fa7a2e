package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEditor(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		visual string
		want   string
	}{
		{name: "EDITOR wins over VISUAL", editor: "vim", visual: "code", want: "vim"},
		{name: "VISUAL is the fallback", visual: "code", want: "code"},
		{name: "neither set", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)
			assert.Equal(t, tt.want, resolveEditor())
		})
	}
}
