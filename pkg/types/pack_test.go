package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharesExcludeGroup(t *testing.T) {
	tests := []struct {
		name string
		a, b Pack
		want bool
	}{
		{"same group", Pack{ExcludeGroup: "g1"}, Pack{ExcludeGroup: "g1"}, true},
		{"different groups", Pack{ExcludeGroup: "g1"}, Pack{ExcludeGroup: "g2"}, false},
		{"one without group", Pack{ExcludeGroup: "g1"}, Pack{}, false},
		{"both without group", Pack{}, Pack{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.SharesExcludeGroup(tt.b))
			assert.Equal(t, tt.want, tt.b.SharesExcludeGroup(tt.a))
		})
	}
}

func TestPackNames(t *testing.T) {
	assert.Equal(t, []string{}, PackNames(nil))
	assert.Equal(t, []string{"core", "docs"}, PackNames([]Pack{{Name: "core"}, {Name: "docs"}}))
}
