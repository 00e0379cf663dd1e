package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeaconKind_Valid(t *testing.T) {
	assert.True(t, BeaconKindBreakdown.Valid())
	assert.True(t, BeaconKindOther.Valid())
	assert.False(t, BeaconKind("teleported").Valid())
	assert.False(t, BeaconKind("").Valid())
}

func TestBeaconStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, BeaconStatusActive.CanTransitionTo(BeaconStatusHelpComing))
	assert.True(t, BeaconStatusActive.CanTransitionTo(BeaconStatusResolved))
	assert.True(t, BeaconStatusHelpComing.CanTransitionTo(BeaconStatusResolved))

	// No backwards or reflexive steps.
	assert.False(t, BeaconStatusHelpComing.CanTransitionTo(BeaconStatusActive))
	assert.False(t, BeaconStatusResolved.CanTransitionTo(BeaconStatusActive))
	assert.False(t, BeaconStatusResolved.CanTransitionTo(BeaconStatusHelpComing))
	assert.False(t, BeaconStatusActive.CanTransitionTo(BeaconStatusActive))
}

func TestBeaconStatus_Open(t *testing.T) {
	assert.True(t, BeaconStatusActive.Open())
	assert.True(t, BeaconStatusHelpComing.Open())
	assert.False(t, BeaconStatusResolved.Open())
}
