package policy

import "testing"

// A nil strategy must behave as Ignore.
func TestResolve_NilIsIgnore(t *testing.T) {
	t.Parallel()

	if got := Resolve[int, int](nil, 1, 10, 20); got != Ignore {
		t.Fatalf("nil Func must resolve to Ignore, got %v", got)
	}
}

// Insert and unknown actions returned by a strategy collapse to Ignore.
func TestResolve_OutOfRangeIsIgnore(t *testing.T) {
	t.Parallel()

	for _, a := range []Action{Insert, Action(42)} {
		fn := func(int, int, int) Action { return a }
		if got := Resolve[int, int](fn, 1, 10, 20); got != Ignore {
			t.Fatalf("action %v must resolve to Ignore, got %v", a, got)
		}
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   Func[string, int]
		want Action
	}{
		{"ignore", IgnoreAll[string, int](), Ignore},
		{"allow", AllowAll[string, int](), AllowDuplicate},
		{"override", OverrideAll[string, int](), Override},
	}
	for _, tc := range cases {
		if got := Resolve(tc.fn, "k", 1, 2); got != tc.want {
			t.Fatalf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

// OverrideIf overrides only when the predicate holds (keep-max strategy).
func TestOverrideIf_KeepMax(t *testing.T) {
	t.Parallel()

	fn := OverrideIf[int, int](func(old, incoming int) bool { return old < incoming })

	if got := fn(1, 10, 30); got != Override {
		t.Fatalf("10<30 must override, got %v", got)
	}
	if got := fn(1, 30, 20); got != Ignore {
		t.Fatalf("30<20 is false, must ignore, got %v", got)
	}
}

// Labels are stable; metrics depend on them.
func TestAction_String(t *testing.T) {
	t.Parallel()

	want := map[Action]string{
		Ignore:         "ignore",
		AllowDuplicate: "allow_duplicate",
		Override:       "override",
		Insert:         "insert",
		Action(200):    "unknown",
	}
	for a, s := range want {
		if a.String() != s {
			t.Fatalf("Action(%d).String() = %q, want %q", a, a.String(), s)
		}
	}
}
