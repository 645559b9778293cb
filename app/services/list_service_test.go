package services_test

import (
	"context"
	"testing"

	"listkeeper/app/models"
	"listkeeper/app/services"
)

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"milk", "Milk"},
		{"  Milk ", "Milk"},
		{"MILK", "Milk"},
		{"whole wheat bread", "Whole Wheat Bread"},
	}
	for _, tt := range tests {
		if got := services.NormalizeItem(tt.in); got != tt.want {
			t.Errorf("NormalizeItem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAdd_MergesQuantityForSameNormalizedName(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	userID := createUser(t, gdb, "alice")

	if err := svc.Add(ctx, userID, "milk", 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(ctx, userID, " Milk ", 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items, err := svc.Items(ctx, userID, services.SortDate)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one merged row, got %d", len(items))
	}
	if items[0].Item != "Milk" {
		t.Errorf("item name = %q, want %q", items[0].Item, "Milk")
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
	if items[0].Purchased {
		t.Error("new row should start unpurchased")
	}
}

func TestAdd_DistinctNamesStaySeparate(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	userID := createUser(t, gdb, "alice")

	for _, name := range []string{"milk", "bread"} {
		if err := svc.Add(ctx, userID, name, 1); err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
	}
	items, err := svc.Items(ctx, userID, services.SortDate)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two rows, got %d", len(items))
	}
}

func TestAdd_DoesNotMergeAcrossUsers(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	if err := svc.Add(ctx, alice, "milk", 2); err != nil {
		t.Fatalf("alice add: %v", err)
	}
	if err := svc.Add(ctx, bob, "milk", 7); err != nil {
		t.Fatalf("bob add: %v", err)
	}

	aliceItems, _ := svc.Items(ctx, alice, services.SortDate)
	bobItems, _ := svc.Items(ctx, bob, services.SortDate)
	if len(aliceItems) != 1 || aliceItems[0].Quantity != 2 {
		t.Errorf("alice list changed: %+v", aliceItems)
	}
	if len(bobItems) != 1 || bobItems[0].Quantity != 7 {
		t.Errorf("bob list wrong: %+v", bobItems)
	}
}

func seedSortFixture(t *testing.T, svc *services.ListService, userID uint) {
	t.Helper()
	ctx := context.Background()
	if err := svc.Add(ctx, userID, "Banana", 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(ctx, userID, "apple", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(ctx, userID, "Cherry", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
}

func itemNames(items []models.ListItem) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Item
	}
	return names
}

func TestItems_SortOrders(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	userID := createUser(t, gdb, "alice")
	seedSortFixture(t, svc, userID)

	tests := []struct {
		name string
		sort services.Sort
		want []string
	}{
		{"alphabetical is case-insensitive", services.SortAlphabetical, []string{"Apple", "Banana", "Cherry"}},
		{"quantity ascending", services.SortQuantityAsc, []string{"Apple", "Cherry", "Banana"}},
		{"quantity descending", services.SortQuantityDesc, []string{"Banana", "Cherry", "Apple"}},
		{"date keeps insertion order", services.SortDate, []string{"Banana", "Apple", "Cherry"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.Items(ctx, userID, tt.sort)
			if err != nil {
				t.Fatalf("items: %v", err)
			}
			got := itemNames(items)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestItems_StatusSortPutsUnpurchasedFirst(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	userID := createUser(t, gdb, "alice")
	seedSortFixture(t, svc, userID)

	items, _ := svc.Items(ctx, userID, services.SortDate)
	// mark the first inserted item purchased
	if err := svc.Toggle(ctx, userID, int(items[0].ID)); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	sorted, err := svc.Items(ctx, userID, services.SortStatus)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if sorted[len(sorted)-1].Item != items[0].Item {
		t.Errorf("purchased item should sort last, got %v", itemNames(sorted))
	}
	if sorted[0].Purchased {
		t.Error("first item should be unpurchased")
	}
}

func TestParseSort_UnknownFallsBackToDate(t *testing.T) {
	for _, raw := range []string{"", "bogus", "ALPHABETICAL", "drop table"} {
		if got := services.ParseSort(raw); got != services.SortDate {
			t.Errorf("ParseSort(%q) = %q, want %q", raw, got, services.SortDate)
		}
	}
	if got := services.ParseSort("quantity_desc"); got != services.SortQuantityDesc {
		t.Errorf("ParseSort(quantity_desc) = %q", got)
	}
}

func TestToggle_IsAnInvolution(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	userID := createUser(t, gdb, "alice")

	if err := svc.Add(ctx, userID, "milk", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	items, _ := svc.Items(ctx, userID, services.SortDate)
	id := int(items[0].ID)

	if err := svc.Toggle(ctx, userID, id); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	items, _ = svc.Items(ctx, userID, services.SortDate)
	if !items[0].Purchased {
		t.Fatal("first toggle should mark purchased")
	}

	if err := svc.Toggle(ctx, userID, id); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	items, _ = svc.Items(ctx, userID, services.SortDate)
	if items[0].Purchased {
		t.Fatal("second toggle should restore unpurchased")
	}
}

func TestMutations_NeverTouchAnotherUsersRows(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	if err := svc.Add(ctx, bob, "milk", 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	bobItems, _ := svc.Items(ctx, bob, services.SortDate)
	bobID := int(bobItems[0].ID)

	// alice guesses bob's item id; every mutation must affect zero rows
	// and surface no error
	if err := svc.SetQuantity(ctx, alice, bobID, 99); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := svc.Toggle(ctx, alice, bobID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Remove(ctx, alice, bobID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	bobItems, _ = svc.Items(ctx, bob, services.SortDate)
	if len(bobItems) != 1 {
		t.Fatalf("bob's row disappeared")
	}
	if bobItems[0].Quantity != 4 || bobItems[0].Purchased {
		t.Errorf("bob's row mutated: %+v", bobItems[0])
	}
}

func TestMutations_UnknownIDIsSilentNoop(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	userID := createUser(t, gdb, "alice")

	if err := svc.SetQuantity(ctx, userID, 424242, 3); err != nil {
		t.Errorf("edit unknown id: %v", err)
	}
	if err := svc.Remove(ctx, userID, 424242); err != nil {
		t.Errorf("remove unknown id: %v", err)
	}
	if err := svc.Toggle(ctx, userID, -1); err != nil {
		t.Errorf("toggle negative id: %v", err)
	}
}

func TestClear_RemovesOnlyCallersRows(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	for _, name := range []string{"milk", "bread", "eggs"} {
		if err := svc.Add(ctx, alice, name, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := svc.Add(ctx, bob, "milk", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Clear(ctx, alice); err != nil {
		t.Fatalf("clear: %v", err)
	}

	aliceItems, _ := svc.Items(ctx, alice, services.SortDate)
	bobItems, _ := svc.Items(ctx, bob, services.SortDate)
	if len(aliceItems) != 0 {
		t.Errorf("alice still has %d rows", len(aliceItems))
	}
	if len(bobItems) != 1 {
		t.Errorf("bob lost rows: have %d", len(bobItems))
	}
}

func TestSetQuantity_UpdatesOwnRow(t *testing.T) {
	svc, gdb := newListService(t)
	ctx := context.Background()
	userID := createUser(t, gdb, "alice")

	if err := svc.Add(ctx, userID, "milk", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	items, _ := svc.Items(ctx, userID, services.SortDate)
	if err := svc.SetQuantity(ctx, userID, int(items[0].ID), 12); err != nil {
		t.Fatalf("edit: %v", err)
	}
	items, _ = svc.Items(ctx, userID, services.SortDate)
	if items[0].Quantity != 12 {
		t.Errorf("quantity = %d, want 12", items[0].Quantity)
	}
}
