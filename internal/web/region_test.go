package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseRegion(t *testing.T) {
	tests := []struct {
		name  string
		write func(r *responseRegion)
		mode  string
		body  string
	}{
		{
			name:  "nothing written",
			write: func(r *responseRegion) {},
			mode:  modeNone,
			body:  "",
		},
		{
			name: "last replace wins",
			write: func(r *responseRegion) {
				r.Replace("<div>loading</div>")
				r.Replace("<div>done</div>")
			},
			mode: modeReplace,
			body: "<div>done</div>",
		},
		{
			name:  "empty replace still replaces",
			write: func(r *responseRegion) { r.Replace("") },
			mode:  modeReplace,
			body:  "",
		},
		{
			name: "appends accumulate",
			write: func(r *responseRegion) {
				r.Append("<div>a</div>")
				r.Append("<div>b</div>")
			},
			mode: modeAppend,
			body: "<div>a</div>\n<div>b</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &responseRegion{}
			tt.write(r)
			mode, body := r.result()
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.body, body)
		})
	}
}
