package qtrain

import "testing"

func TestValueTableLookupAbsent(t *testing.T) {
	v := NewValueTable()
	if _, ok := v.Lookup("s", "a"); ok {
		t.Errorf("expected no value for an empty table")
	}
}

func TestValueTableGetDoesNotInsert(t *testing.T) {
	v := NewValueTable()
	if got := v.Get("s", "a", 2); got != 2 {
		t.Errorf("expected the default 2, got %f", got)
	}
	if _, ok := v.Lookup("s", "a"); ok {
		t.Errorf("Get inserted an entry")
	}
	if v.Len() != 0 {
		t.Errorf("expected an empty table, got %d entries", v.Len())
	}
}

func TestValueTableSetOverwrites(t *testing.T) {
	v := NewValueTable()
	v.Set("s", "a", 1)
	v.Set("s", "a", 4)
	if got, ok := v.Lookup("s", "a"); !ok || got != 4 {
		t.Errorf("expected the overwritten value 4, got %f", got)
	}
	if v.Len() != 1 {
		t.Errorf("expected a single entry, got %d", v.Len())
	}
}

func TestValueTableBestOver(t *testing.T) {
	v := NewValueTable()
	v.Set("s", "a1", 1)
	v.Set("s", "a2", 5)

	if got := v.BestOver("s", []string{"a1", "a2"}, 0); got != 5 {
		t.Errorf("expected the stored maximum 5, got %f", got)
	}
	// an absent action at a higher default wins
	if got := v.BestOver("s", []string{"a1", "a3"}, 10); got != 10 {
		t.Errorf("expected the default 10 for the absent action, got %f", got)
	}
	if got := v.BestOver("s", nil, 3); got != 3 {
		t.Errorf("expected the default 3 for no actions, got %f", got)
	}
}

func TestValueTableExportImportRoundTrip(t *testing.T) {
	v := NewValueTable()
	v.Set("s1", "a", 1.5)
	v.Set("s2", "b", -2)

	exported := v.Export()
	v.Set("s1", "a", 100)
	if exported["s1"]["a"] != 1.5 {
		t.Errorf("export aliases the table")
	}

	restored := NewValueTable()
	restored.Import(exported)
	exported["s2"]["b"] = 100
	if got, ok := restored.Lookup("s2", "b"); !ok || got != -2 {
		t.Errorf("import aliases the source, got %f", got)
	}
	if got, ok := restored.Lookup("s1", "a"); !ok || got != 1.5 {
		t.Errorf("expected the imported value 1.5, got %f", got)
	}
}
