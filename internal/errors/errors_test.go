package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCause(t *testing.T) {
	root := New("duplicate key value violates unique constraint")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "bare", err: root, want: root},
		{name: "pkg wrap", err: Wrap(root, "failed to save customer"), want: root},
		{name: "stdlib wrap", err: fmt.Errorf("save: %w", root), want: root},
		{name: "mixed", err: Wrap(fmt.Errorf("save: %w", Wrap(root, "insert")), "repo"), want: root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootCause(tt.err))
		})
	}
}
