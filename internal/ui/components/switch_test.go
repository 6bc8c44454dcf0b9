package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchProposesInverse(t *testing.T) {
	tests := []struct {
		checked bool
		want    bool
	}{
		{checked: false, want: true},
		{checked: true, want: false},
	}

	for _, tt := range tests {
		var got []bool
		sw := NewSwitch(tt.checked).WithOnCheckedChange(func(v bool) { got = append(got, v) })

		sw.Toggle()
		assert.Equal(t, []bool{tt.want}, got)
		assert.Equal(t, tt.checked, sw.Checked(), "switch never stores the proposed value")
	}
}

func TestSwitchRepeatedTogglesWithStaleValue(t *testing.T) {
	var got []bool
	sw := NewSwitch(false).WithOnCheckedChange(func(v bool) { got = append(got, v) })

	sw.Toggle()
	sw.Toggle()
	sw.Toggle()

	assert.Equal(t, []bool{true, true, true}, got)
}

func TestSwitchFollowsOwner(t *testing.T) {
	owner := false
	sw := NewSwitch(owner)
	sw.WithOnCheckedChange(func(v bool) {
		owner = v
		sw.SetChecked(v)
	})

	sw.Toggle()
	assert.True(t, owner)
	assert.True(t, sw.Checked())

	sw.Toggle()
	assert.False(t, owner)
}

func TestSwitchWithoutCallbackOrDisabledIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { NewSwitch(true).Toggle() })

	called := false
	NewSwitch(false).
		WithDisabled(true).
		WithOnCheckedChange(func(bool) { called = true }).
		Toggle()
	assert.False(t, called)
}

func TestSwitchRendersGivenState(t *testing.T) {
	off := NewSwitch(false).WithLabels("☀", "☾").View()
	on := NewSwitch(true).WithLabels("☀", "☾").View()

	assert.Contains(t, off, "●  ")
	assert.Contains(t, on, "  ●")
	assert.Contains(t, on, "☀")
	assert.Contains(t, on, "☾")
}
