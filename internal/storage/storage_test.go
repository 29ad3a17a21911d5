package storage

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/eugenenazirov/dorm-area/internal/comparison"
)

func TestNewMemoryStorageReturnsDefaultReference(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetReference()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultReference()
	if !slices.Equal(got, want) {
		t.Fatalf("expected default reference %v, got %v", want, got)
	}
	if len(got) != 14 {
		t.Fatalf("expected 14 built-in reference items, got %d", len(got))
	}

	// ensure mutation safety
	got[0].Area = 999
	again, err := store.GetReference()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].Area == 999 {
		t.Fatalf("expected defensive copy, got %v", again[0])
	}
}

func TestSetReferenceUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	input := []comparison.Item{
		{Category: " Amenity ", Name: "Gym ", Area: 150},
		{Category: "Residential", Name: "General room", Area: 4000},
	}
	if err := store.SetReference(input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetReference()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []comparison.Item{
		{Category: "Amenity", Name: "Gym", Area: 150},
		{Category: "Residential", Name: "General room", Area: 4000},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSetReferenceRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tooMany := make([]comparison.Item, maxReferenceItems+1)
	for i := range tooMany {
		tooMany[i] = comparison.Item{Category: "A", Name: fmt.Sprintf("item %d", i), Area: 1}
	}

	testCases := [][]comparison.Item{
		nil,
		{},
		{{Category: "", Name: "Gym", Area: 1}},
		{{Category: "Amenity", Name: "  ", Area: 1}},
		{{Category: "Amenity", Name: "Gym", Area: -1}},
		{{Category: "Amenity", Name: "Gym", Area: math.NaN()}},
		tooMany,
	}

	for idx, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			store := NewMemoryStorage()
			if err := store.SetReference(tc); !errors.Is(err, ErrInvalidReference) {
				t.Fatalf("expected ErrInvalidReference, got %v", err)
			}
		})
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			items := []comparison.Item{{Category: "Amenity", Name: "Gym", Area: float64(100 + offset)}}
			if err := store.SetReference(items); err != nil {
				t.Errorf("SetReference failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetReference(); err != nil {
				t.Errorf("GetReference failed: %v", err)
			}
		}()
	}

	wg.Wait()

	// final read should succeed
	if _, err := store.GetReference(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultDatasetUsesDefaultMapping(t *testing.T) {
	t.Parallel()

	ds := DefaultDataset()
	if len(ds.Mapping) != len(comparison.DefaultMapping) {
		t.Fatalf("expected default mapping, got %v", ds.Mapping)
	}

	ds.Mapping["Gym"] = []string{"Lobby & lounge"}
	if _, ok := DefaultDataset().Mapping["Gym"]; ok {
		t.Fatalf("default dataset mapping was mutated through a copy")
	}
}

func TestLoadDataset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := []byte(`items:
  - category: Amenity
    name: Fitness centre
    area: 300
mapping:
  Gym: [Fitness centre]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write reference file: %v", err)
	}

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset returned error: %v", err)
	}
	if len(ds.Items) != 1 || ds.Items[0].Area != 300 {
		t.Fatalf("unexpected items: %v", ds.Items)
	}
	if got := ds.Mapping["Gym"]; len(got) != 1 || got[0] != "Fitness centre" {
		t.Fatalf("unexpected mapping: %v", ds.Mapping)
	}
}

func TestLoadDatasetErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadDataset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := ParseDataset([]byte("items: [")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
	if _, err := ParseDataset([]byte("items: []")); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for empty items, got %v", err)
	}
}
