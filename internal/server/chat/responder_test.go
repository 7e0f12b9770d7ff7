package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reply(category string) string {
	for _, r := range DefaultRules {
		if r.Category == category {
			return r.Reply
		}
	}
	return ""
}

func TestRespond_Categories(t *testing.T) {
	r := NewResponder(nil)

	tests := []struct {
		in       string
		category string
	}{
		{"Hello bot", "greeting"},
		{"hey", "greeting"},
		{"My K8S pod is pending", "kubernetes"},
		{"I love kubernetes and docker", "kubernetes"},
		{"the container keeps restarting", "docker"},
		{"MongoDB is slow", "database"},
		{"our pipeline is red", "cicd"},
		{"GitHub Actions broke", "cicd"},
		{"found a bug", "error"},
		{"Thank you!", "thanks"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, reply(tt.category), r.Respond(tt.in))
		})
	}
}

func TestRespond_CaseInsensitiveDeterministic(t *testing.T) {
	r := NewResponder(nil)
	assert.Equal(t, r.Respond("hi there"), r.Respond("Hi there"))
	assert.Equal(t, r.Respond("Hi there"), r.Respond("Hi there"))
	assert.Equal(t, reply("greeting"), r.Respond("HI THERE"))
}

func TestRespond_SubstringMatching(t *testing.T) {
	r := NewResponder(nil)
	// "podcast" contains "pod"
	assert.Equal(t, reply("kubernetes"), r.Respond("any podcast tips?"))
	// "failure" contains "fail"
	assert.Equal(t, reply("error"), r.Respond("a total failure"))
}

func TestRespond_FallbackEchoesOriginal(t *testing.T) {
	r := NewResponder(nil)

	in := "What's the WEATHER on Mars?"
	got := r.Respond(in)
	assert.Contains(t, got, `"`+in+`"`)
	assert.Equal(t, got, r.Respond(in))

	pct := "100% uptime?"
	assert.Contains(t, r.Respond(pct), pct)
}

func TestRespond_CustomRules(t *testing.T) {
	r := NewResponder([]Rule{
		{Category: "a", Keywords: []string{"x"}, Reply: "first"},
		{Category: "b", Keywords: []string{"x"}, Reply: "second"},
	})
	assert.Equal(t, "first", r.Respond("X"))
	assert.Contains(t, r.Respond("zzz"), "zzz")
}
