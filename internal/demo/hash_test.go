package demo

import (
	"testing"
)

func TestHashString_Deterministic(t *testing.T) {
	first := HashString("Golden Dragon")
	second := HashString("Golden Dragon")

	if first != second {
		t.Errorf("Expected identical hashes for the same input, got %d and %d", first, second)
	}
}

func TestHashString_NonNegative(t *testing.T) {
	inputs := []string{
		"Golden Dragon",
		"Jade Palace",
		"Lucky Bamboo Garden House of Noodles and More",
		"面馆",
		"a",
	}

	for _, input := range inputs {
		if h := HashString(input); h < 0 {
			t.Errorf("Expected non-negative hash for %q, got %d", input, h)
		}
	}
}

func TestHashString_Empty(t *testing.T) {
	if h := HashString(""); h != 0 {
		t.Errorf("Expected empty string to hash to 0, got %d", h)
	}
}

func TestHashString_DistinctInputs(t *testing.T) {
	if HashString("Golden Dragon") == HashString("Jade Palace") {
		t.Error("Expected different names to produce different seeds")
	}
}

func TestSlugifyID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chef's Specials", "chef-s-specials"},
		{"Noodles & Rice", "noodles-rice"},
		{"  Crispy Orange Chicken  ", "crispy-orange-chicken"},
		{"Salt & Pepper Tofu", "salt-pepper-tofu"},
	}

	for _, tc := range cases {
		if got := SlugifyID(tc.in); got != tc.want {
			t.Errorf("SlugifyID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRotate(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	rotated := rotate(items, 1)
	if rotated[0] != "b" || rotated[3] != "a" {
		t.Errorf("Expected rotation by 1 to start at 'b' and end at 'a', got %v", rotated)
	}

	// Original slice untouched
	if items[0] != "a" {
		t.Errorf("Expected input slice to be unchanged, got %v", items)
	}

	// Full cycle is identity
	same := rotate(items, len(items))
	for i := range items {
		if same[i] != items[i] {
			t.Errorf("Expected rotation by len to be identity, got %v", same)
			break
		}
	}

	if out := rotate([]string{}, 3); len(out) != 0 {
		t.Errorf("Expected empty rotation to stay empty, got %v", out)
	}
}
