package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/ptest/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []struct {
					e    Entity
					kind component.ComponentKind[int]
					v    int
				}{
					{e1, ka, 1}, {e2, ka, 2}, {e2, kb, 3}, {e2, kc, 5}, {e3, kb, 4}, {e4, kc, 6},
				} {
					if err := Add(w, add.e, add.kind, intPtr(add.v)); err != nil {
						t.Fatal(err)
					}
				}

				res := w.Query(ka, kb, kc)
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				if res := w.Query(ka, kb); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				if res := w.Query(ka, kb); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
		{
			name: "first",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				if _, ok := w.First(ka); ok {
					t.Fatal("First on empty world should fail")
				}
				e := CreateEntity(w)
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				got, ok := w.First(ka)
				if !ok || got != e {
					t.Fatalf("First = %v, %v; want %v", got, ok, e)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestEntityRecycling(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got id %d want %d", fresh.id(), old.id())
	}
	if fresh == old {
		t.Fatal("recycled entity should have a new generation")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle reported alive")
	}
	if Has(w, fresh, k) {
		t.Fatal("recycled entity inherited a component")
	}
	if DestroyEntity(w, old) {
		t.Fatal("destroying a stale handle should fail")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	alive := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	tests := []struct {
		name  string
		e     Entity
		kind  component.ComponentKind[int]
		value *int
		want  error
	}{
		{"invalid_kind", alive, component.ComponentKind[int]{}, intPtr(1), component.ErrInvalidComponentKind},
		{"nil_value", alive, k, nil, component.ErrNilComponent},
		{"dead_entity", dead, k, intPtr(1), component.ErrEntityNotAlive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Add(w, tc.e, tc.kind, tc.value); !errors.Is(err, tc.want) {
				t.Fatalf("Add error = %v, want %v", err, tc.want)
			}
		})
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(w *World) {
	*r.log = append(*r.log, r.name)
	w.Events().Push(Event{Type: EventAimChanged})
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var log []string
	var seen int
	s := NewScheduler(
		recordSystem{name: "input", log: &log},
		recordSystem{name: "movement", log: &log},
	)
	s.Add(nil)
	s.Add(systemFunc(func(w *World) { seen = len(w.Events().Pending()) }))

	w.Advance(1.0 / 60)
	s.Update(w)

	if len(log) != 2 || log[0] != "input" || log[1] != "movement" {
		t.Fatalf("run order = %v", log)
	}
	if seen != 2 {
		t.Fatalf("last system saw %d events, want 2", seen)
	}
	if n := len(w.Events().Pending()); n != 0 {
		t.Fatalf("events not flushed: %d left", n)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("Systems() = %d, want 3", len(s.Systems()))
	}
	if w.Frame() != 1 || w.DeltaSeconds() != 1.0/60 {
		t.Fatalf("frame %d dt %v", w.Frame(), w.DeltaSeconds())
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
