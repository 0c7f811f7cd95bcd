package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSet(t *testing.T) {
	t.Setenv("HEROKUCTL_TEST_EMPTY", "")

	assert.True(t, IsSet("HEROKUCTL_TEST_EMPTY"))
	assert.False(t, IsSet("HEROKUCTL_TEST_MISSING"))
}

func TestIsTruthy(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"TRUE":  true,
		"0":     false,
		"false": false,
		"yes":   false,
		"":      false,
	}

	for value, exp := range cases {
		t.Setenv("HEROKUCTL_TEST_BOOL", value)
		assert.Equal(t, exp, IsTruthy("HEROKUCTL_TEST_BOOL"), value)
	}
}

func TestFirstOrDefault(t *testing.T) {
	t.Setenv("HEROKUCTL_TEST_A", "")
	t.Setenv("HEROKUCTL_TEST_B", "b")

	assert.Equal(t, "b", First("HEROKUCTL_TEST_A", "HEROKUCTL_TEST_B"))
	assert.Equal(t, "def", FirstOrDefault("def", "HEROKUCTL_TEST_A"))
}

func TestInt(t *testing.T) {
	t.Setenv("HEROKUCTL_TEST_INT", "3")
	assert.Equal(t, 3, Int("HEROKUCTL_TEST_INT", 0))

	t.Setenv("HEROKUCTL_TEST_INT", "three")
	assert.Equal(t, 7, Int("HEROKUCTL_TEST_INT", 7))
}
