package fsm

import (
	"testing"
	"time"
)

type recorder struct {
	log   []string
	ready bool
}

const (
	stRoot StateID = iota + StateRoot
	stIdle
	stActive
	stDone
)

const evGo EventType = 1
const evAbort EventType = 2

func buildMachine(t *testing.T) *Machine[*recorder] {
	t.Helper()
	m := NewMachine[*recorder]()

	root := m.AddState(stRoot, "Root", StateNone)
	root.OnEnter = append(root.OnEnter, func(r *recorder) { r.log = append(r.log, "enter root") })

	idle := m.AddState(stIdle, "Idle", stRoot)
	idle.OnEnter = append(idle.OnEnter, func(r *recorder) { r.log = append(r.log, "enter idle") })
	idle.OnExit = append(idle.OnExit, func(r *recorder) { r.log = append(r.log, "exit idle") })

	active := m.AddState(stActive, "Active", stRoot)
	active.OnEnter = append(active.OnEnter, func(r *recorder) { r.log = append(r.log, "enter active") })
	active.OnUpdate = append(active.OnUpdate, func(r *recorder) { r.log = append(r.log, "update active") })

	m.AddState(stDone, "Done", stRoot)

	must := func(err error) {
		if err != nil {
			t.Fatalf("Unexpected build error: %v", err)
		}
	}
	must(m.AddTransition(stIdle, Transition[*recorder]{TargetID: stActive, Event: evGo}))
	must(m.AddTransition(stActive, Transition[*recorder]{
		TargetID: stDone,
		Guard: func(r *recorder, in time.Duration) bool {
			return r.ready && in >= 100*time.Millisecond
		},
	}))
	// Root-level transition reachable from every child
	must(m.AddTransition(stRoot, Transition[*recorder]{TargetID: stIdle, Event: evAbort}))
	must(m.CompilePaths())
	return m
}

func TestMachineInitRunsEnterChain(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{}
	if err := m.Init(r, stIdle); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if m.State() != stIdle || m.StateName() != "Idle" {
		t.Fatalf("Expected Idle, got %s", m.StateName())
	}
	if len(r.log) != 2 || r.log[0] != "enter root" || r.log[1] != "enter idle" {
		t.Errorf("Expected root then idle enter, got %v", r.log)
	}
}

func TestMachineEventAndGuardedTick(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{}
	_ = m.Init(r, stIdle)

	// Abort targets the already active Idle, consumed without leaving it
	m.HandleEvent(r, evAbort)
	if m.State() != stIdle || len(r.log) != 2 {
		t.Fatalf("Expected Idle untouched, got %s with %v", m.StateName(), r.log)
	}
	if !m.HandleEvent(r, evGo) {
		t.Fatal("Expected evGo to transition Idle -> Active")
	}
	if m.State() != stActive {
		t.Fatalf("Expected Active, got %s", m.StateName())
	}

	m.Update(r, 200*time.Millisecond)
	if m.State() != stActive {
		t.Fatal("Guard should block while not ready")
	}

	r.ready = true
	m.Update(r, 16*time.Millisecond)
	if m.State() != stDone {
		t.Fatalf("Expected Done after guard passes, got %s", m.StateName())
	}
}

func TestMachineBubblesToParent(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{}
	_ = m.Init(r, stIdle)
	m.HandleEvent(r, evGo)

	if !m.HandleEvent(r, evAbort) {
		t.Fatal("Expected root-level abort to fire from Active")
	}
	if m.State() != stIdle {
		t.Errorf("Expected Idle after abort, got %s", m.StateName())
	}
	rootEnters := 0
	for _, entry := range r.log {
		if entry == "enter root" {
			rootEnters++
		}
	}
	if rootEnters != 1 {
		t.Errorf("Root must not be re-entered on sibling transition, entered %d times", rootEnters)
	}
}

func TestMachineBuildErrors(t *testing.T) {
	m := NewMachine[*recorder]()
	m.AddState(stIdle, "Idle", StateNone)

	if err := m.AddTransition(stIdle, Transition[*recorder]{TargetID: stDone}); err == nil {
		t.Error("Expected error for unknown target")
	}
	if err := m.AddTransition(stDone, Transition[*recorder]{TargetID: stIdle}); err == nil {
		t.Error("Expected error for unknown source")
	}

	m.AddState(stActive, "Orphan", 99)
	if err := m.CompilePaths(); err == nil {
		t.Error("Expected error for missing parent")
	}

	if err := NewMachine[*recorder]().Init(&recorder{}, stIdle); err == nil {
		t.Error("Expected error for missing initial state")
	}
}
