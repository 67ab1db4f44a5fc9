package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(CueBell)
	sm.StartFootsteps(false)
	sm.StartFootsteps(true)
	sm.StopFootsteps()
	sm.StartAmbient()
	sm.StopAll()
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
	sm.Play(CueCoin)
}

// TestSoundManagerLifecycle exercises loops when a device is available
func TestSoundManagerLifecycle(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())

	// Speaker initialization fails in CI without audio devices; audio is optional
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.StartAmbient()
	sm.StartFootsteps(false)
	if sm.footsteps == nil || sm.footstepSprint {
		t.Fatal("Expected walking footsteps to be active")
	}
	sm.StartFootsteps(true)
	if !sm.footstepSprint {
		t.Error("Expected footsteps to switch to sprint loop")
	}
	sm.StopAll()
	if sm.footsteps != nil || sm.ambient != nil {
		t.Error("Expected StopAll to drop every loop")
	}
}
