package entities

import (
	"reflect"
	"testing"
)

func TestSplitCategoryPath(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Handyman > Installation > Doors", []string{"Handyman", "Installation", "Doors"}},
		{"  Plumbing  ", []string{"Plumbing"}},
		{"A>>B", []string{"A", "B"}},
		{"", nil},
		{" > ", nil},
	}
	for _, tc := range cases {
		got := SplitCategoryPath(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitCategoryPath(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBuildCatalogTree(t *testing.T) {
	items := []PriceBookItem{
		{ID: "1", Name: "Door install", Category: "Handyman > Installation > Doors"},
		{ID: "2", Name: "Faucet swap", Category: "Plumbing"},
		{ID: "3", Name: "Consultation", Category: ""},
		{ID: "4", Name: "Anchor bolts", Category: "Handyman > Installation"},
	}
	tree := BuildCatalogTree(items)

	t.Run("item lands at its full path and nowhere else", func(t *testing.T) {
		leaf := tree.Navigate([]string{"Handyman", "Installation", "Doors"})
		if len(leaf.Items) != 1 || leaf.Items[0].ID != "1" {
			t.Fatalf("unexpected leaf items: %+v", leaf.Items)
		}
		mid := tree.Navigate([]string{"Handyman", "Installation"})
		for _, it := range mid.Items {
			if it.ID == "1" {
				t.Fatalf("item 1 filed at intermediate node")
			}
		}
		if len(mid.Items) != 1 || mid.Items[0].ID != "4" {
			t.Fatalf("unexpected intermediate items: %+v", mid.Items)
		}
	})

	t.Run("empty category files at root", func(t *testing.T) {
		if len(tree.Items) != 1 || tree.Items[0].ID != "3" {
			t.Fatalf("unexpected root items: %+v", tree.Items)
		}
	})

	t.Run("children sorted alphabetically", func(t *testing.T) {
		got := tree.ChildNames()
		want := []string{"Handyman", "Plumbing"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("leaf items sorted by name", func(t *testing.T) {
		extra := BuildCatalogTree([]PriceBookItem{
			{ID: "b", Name: "Zinc plate", Category: "X"},
			{ID: "a", Name: "Anchor", Category: "X"},
		})
		node := extra.Navigate([]string{"X"})
		if node.Items[0].Name != "Anchor" || node.Items[1].Name != "Zinc plate" {
			t.Fatalf("items not sorted: %+v", node.Items)
		}
	})
}

func TestCatalogNavigateMissingPath(t *testing.T) {
	tree := BuildCatalogTree([]PriceBookItem{
		{ID: "1", Name: "Faucet swap", Category: "Plumbing"},
	})

	node := tree.Navigate([]string{"Plumbing", "Gone", "Deeper"})
	if node == nil {
		t.Fatalf("expected empty node, got nil")
	}
	if len(node.Items) != 0 || len(node.Children) != 0 {
		t.Fatalf("expected empty node, got %+v", node)
	}
}
