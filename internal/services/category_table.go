package services

import (
	"baamview/internal/models"
	"baamview/internal/validator"
)

// CategoryTable is a deduplicated lookup from category id to its record.
// It always contains the reserved uncategorized entry (id 0), listed
// first. A table is rebuilt from scratch for every category file load,
// never merged with a previous one.
type CategoryTable struct {
	records map[int64]models.CategoryRecord
	order   []int64
}

// BuildCategoryTable builds a table from raw category records using the
// standard gray placeholder as the fallback color.
func BuildCategoryTable(records []models.CategoryRecord) *CategoryTable {
	return BuildCategoryTableWithFallback(records, models.DefaultColor)
}

// BuildCategoryTableWithFallback builds a table using fallbackColor for
// records with a missing or malformed color. Records are taken in input
// order and deduplicated first-wins; a supplied id-0 record is always
// skipped in favor of the seeded uncategorized entry.
func BuildCategoryTableWithFallback(records []models.CategoryRecord, fallbackColor string) *CategoryTable {
	if !validator.IsHexColor(fallbackColor) {
		fallbackColor = models.DefaultColor
	}

	t := &CategoryTable{records: make(map[int64]models.CategoryRecord, len(records)+1)}
	t.insert(models.CategoryRecord{
		ID:    models.UncategorizedID,
		Name:  models.UncategorizedName,
		Color: fallbackColor,
	})

	for _, rec := range records {
		if _, exists := t.records[rec.ID]; exists {
			continue
		}
		if rec.Name == "" {
			rec.Name = models.UnnamedLabel
		}
		if !validator.IsHexColor(rec.Color) {
			rec.Color = fallbackColor
		}
		t.insert(rec)
	}
	return t
}

func (t *CategoryTable) insert(rec models.CategoryRecord) {
	t.records[rec.ID] = rec
	t.order = append(t.order, rec.ID)
}

// Lookup returns the record for id, or the uncategorized entry if the
// table has no such id. It never fails.
func (t *CategoryTable) Lookup(id int64) models.CategoryRecord {
	if rec, ok := t.records[id]; ok {
		return rec
	}
	return t.records[models.UncategorizedID]
}

// Records returns all entries in insertion order, uncategorized first.
func (t *CategoryTable) Records() []models.CategoryRecord {
	out := make([]models.CategoryRecord, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.records[id])
	}
	return out
}

// Len returns the number of entries, including the uncategorized one.
func (t *CategoryTable) Len() int {
	return len(t.order)
}
