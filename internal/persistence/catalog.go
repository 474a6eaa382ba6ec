package persistence

import (
	"fmt"
	"os"
	"time"

	"lot-auction/internal/models"

	"gopkg.in/yaml.v3"
)

// catalogEntry is one lot in a YAML seed catalog
type catalogEntry struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	PhotoURL string `yaml:"photo_url"`
}

type catalogFile struct {
	Lots []catalogEntry `yaml:"lots"`
}

// DefaultCatalog returns the built-in seed lots, all without bids
func DefaultCatalog(now time.Time) []models.Lot {
	return []models.Lot{
		{ID: "1", Title: "BMW M3 (E92), 2012", PhotoRef: "https://picsum.photos/seed/bmw_m3/1024/768", CreatedAt: now},
		{ID: "2", Title: "Audi A6 (C7), 2014", PhotoRef: "https://picsum.photos/seed/audi_a6/1024/768", CreatedAt: now},
	}
}

// LoadCatalog reads seed lots from a YAML file of the form
//
//	lots:
//	  - id: "1"
//	    title: BMW M3 (E92), 2012
//	    photo_url: https://...
func LoadCatalog(path string, now time.Time) ([]models.Lot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(file.Lots) == 0 {
		return nil, fmt.Errorf("catalog %s has no lots", path)
	}

	seen := make(map[string]bool, len(file.Lots))
	lots := make([]models.Lot, 0, len(file.Lots))
	for i, entry := range file.Lots {
		if entry.ID == "" || entry.Title == "" {
			return nil, fmt.Errorf("catalog %s: lot #%d needs id and title", path, i+1)
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("catalog %s: duplicate lot id %q", path, entry.ID)
		}
		seen[entry.ID] = true
		lots = append(lots, models.Lot{
			ID:        entry.ID,
			Title:     entry.Title,
			PhotoRef:  entry.PhotoURL,
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
		})
	}
	return lots, nil
}
