package hull

import (
	"testing"
)

func TestBuiltinHulls(t *testing.T) {
	list := List()
	if len(list) < 3 {
		t.Fatalf("List() returned %d hulls, expected at least 3", len(list))
	}

	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	for _, id := range []string{"interceptor", "frigate", "dreadnought"} {
		if !Exists(id) {
			t.Errorf("Exists(%q) = false, expected true", id)
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	h, err := Get("frigate")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if h.Stats["shield"] != 100 {
		t.Errorf("frigate shield = %v, expected 100", h.Stats["shield"])
	}

	h.Stats["shield"] = 1

	again, _ := Get("frigate")
	if again.Stats["shield"] != 100 {
		t.Error("registry was mutated through Get()")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("battlestar"); err == nil {
		t.Error("Get() should fail for an unknown hull")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate id")
		}
	}()
	Register(Hull{ID: "frigate"})
}

func TestRegisterCustom(t *testing.T) {
	Register(Hull{ID: "test_shuttle", Title: "Shuttle", Stats: map[string]float64{"shield": 10}})

	h, err := Get("test_shuttle")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if h.Title != "Shuttle" || h.Stats["shield"] != 10 {
		t.Errorf("Get() = %+v", h)
	}
}

func TestParseRejectsMissingID(t *testing.T) {
	if _, err := Parse([]byte("hulls:\n  - title: Nameless\n")); err == nil {
		t.Error("Parse() should reject a hull without id")
	}
}
