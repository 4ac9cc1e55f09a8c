package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxplot/lambdafy-greeter/util"
)

func TestTruthy(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"True":  true,
		" 1 ":   true,
		"yes":   true,
		"YES":   true,
		"on":    true,
		"false": false,
		"0":     false,
		"no":    false,
		"foo":   false,
		"":      false,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, util.Truthy(input))
		})
	}
}
