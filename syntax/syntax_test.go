package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSId(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{in: "dg1", want: true},
		{in: "_x", want: true},
		{in: "X_1_y", want: true},
		{in: "_", want: true},
		{in: "1bad"},
		{in: ""},
		{in: "a-b"},
		{in: "a b"},
		{in: "a.b"},
		{in: "ä"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidSId(tc.in))
			assert.Equal(t, tc.want, IsValidUnitSId(tc.in))
		})
	}
}

func TestIsValidXMLID(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{in: "meta_1", want: true},
		{in: "m.1-a", want: true},
		{in: "ähm", want: true},
		{in: "_", want: true},
		{in: "1meta"},
		{in: "-meta"},
		{in: ""},
		{in: "a:b"},
		{in: "a b"},
	} {
		t.Run(tc.in, func(t *testing.T) { assert.Equal(t, tc.want, IsValidXMLID(tc.in)) })
	}
}
