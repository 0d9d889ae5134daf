package catalog

import (
	"reflect"
	"testing"
)

func TestDefaultIsOrderedAndNonEmpty(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	names := c.Names()
	if names[0] != "priority:high" {
		t.Errorf("first label = %q, want priority:high", names[0])
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate label %q in default catalog", n)
		}
		seen[n] = true
	}
}

func TestLabelsReturnsCopy(t *testing.T) {
	c := Default()
	labels := c.Labels()
	labels[0].Color = "ffffff"
	if c.Labels()[0].Color == "ffffff" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestMergeOverridesExisting(t *testing.T) {
	c := New([]Label{
		{"setup", "0075ca", "Project setup"},
		{"core", "0075ca", "Core infrastructure"},
	})

	merged := c.Merge(map[string]Label{
		"setup": {Color: "ff0000"},
	})

	labels := merged.Labels()
	if labels[0].Name != "setup" || labels[0].Color != "ff0000" {
		t.Errorf("override not applied in place: %+v", labels[0])
	}
	if labels[0].Description != "Project setup" {
		t.Errorf("empty override field clobbered description: %q", labels[0].Description)
	}
	if c.Labels()[0].Color != "0075ca" {
		t.Error("merge mutated the source catalog")
	}
}

func TestMergeAppendsNewSorted(t *testing.T) {
	c := New([]Label{{"setup", "0075ca", "Project setup"}})

	merged := c.Merge(map[string]Label{
		"zeta":  {Color: "111111", Description: "Z"},
		"alpha": {Color: "222222", Description: "A"},
	})

	want := []string{"setup", "alpha", "zeta"}
	if got := merged.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestMergeEmptyOverrides(t *testing.T) {
	c := Default()
	merged := c.Merge(nil)
	if !reflect.DeepEqual(c.Labels(), merged.Labels()) {
		t.Error("merge with no overrides changed the catalog")
	}
}
