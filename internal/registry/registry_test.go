package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub" }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("stub-b", "Stub B", func() Game { return stubGame{"stub-b"} })
	Register("stub-a", "Stub A", func() Game { return stubGame{"stub-a"} })
	t.Cleanup(func() {
		unregister("stub-a")
		unregister("stub-b")
	})

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, want stub-a", g.ID())
	}
	if !Exists("stub-b") {
		t.Error("Exists(stub-b) = false")
	}

	list := List()
	if len(list) != 2 {
		t.Fatalf("List() = %v, want 2 entries", list)
	}
	if list[0].ID != "stub-a" || list[0].Title != "Stub A" || list[1].ID != "stub-b" {
		t.Errorf("List() = %v, want sorted by id with titles", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(nope) error = %v, want ErrUnknownGame", err)
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub-dup", "Dup", func() Game { return stubGame{"stub-dup"} })
	t.Cleanup(func() { unregister("stub-dup") })

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "stub-dup", func() Game { return stubGame{} }},
		{"empty id", "", func() Game { return stubGame{} }},
		{"nil factory", "stub-nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			Register(tt.id, "x", tt.f)
		})
	}
}
