package machine

import "testing"

func TestRegistryDispatchesOnNAndTPresence(t *testing.T) {
	r := NewRegistry()
	plain := &Machine{Name: "plain"}
	withN := &Machine{Name: "withN"}
	withT := &Machine{Name: "withT"}
	withNT := &Machine{Name: "withNT"}
	r.Register("rule", false, false, "", plain)
	r.Register("rule", true, false, "", withN)
	r.Register("rule", false, true, "", withT)
	r.Register("rule", true, true, "", withNT)

	tests := []struct {
		hasN, hasT bool
		want       *Machine
	}{
		{false, false, plain},
		{true, false, withN},
		{false, true, withT},
		{true, true, withNT},
	}
	for _, tt := range tests {
		got, err := r.Lookup("rule", tt.hasN, "", tt.hasT)
		if err != nil {
			t.Fatalf("Lookup(hasN=%v, hasT=%v): %v", tt.hasN, tt.hasT, err)
		}
		if got != tt.want {
			t.Errorf("Lookup(hasN=%v, hasT=%v) = %s, want %s", tt.hasN, tt.hasT, got.Name, tt.want.Name)
		}
	}
}

func TestRegistryLookupFailsForUnregisteredName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("no-such-rule", false, "", false); err == nil {
		t.Fatal("expected an error for an unregistered production")
	}
}

func TestRegistryContextSelectsWithinATable(t *testing.T) {
	r := NewRegistry()
	flow := &Machine{Name: "flow"}
	block := &Machine{Name: "block"}
	r.Register("rule", false, false, "flow-out", flow)
	r.Register("rule", false, false, "block-key", block)

	got, err := r.Lookup("rule", false, "flow-out", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != flow {
		t.Errorf("Lookup(context=flow-out) = %s, want flow", got.Name)
	}

	if _, err := r.Lookup("rule", false, "", false); err == nil {
		t.Fatal("expected an error looking up the bare name when only contexted entries are registered")
	}
}
