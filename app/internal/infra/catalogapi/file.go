package catalogapi

import (
	"context"
	"fmt"
	"os"

	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
)

// FileSource serves collections exported from the catalog API to local JSON
// files. The entity file is used for every kind; an empty category path means
// no categories.
type FileSource struct {
	EntitiesPath   string
	CategoriesPath string
}

func (s FileSource) Entities(ctx context.Context, kind domview.Kind) ([]filter.Entity, error) {
	var out []filter.Entity
	if err := readCollection(s.EntitiesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s FileSource) Categories(ctx context.Context) ([]filter.Category, error) {
	out := []filter.Category{}
	if s.CategoriesPath == "" {
		return out, nil
	}
	if err := readCollection(s.CategoriesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func readCollection(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := DecodeCollection(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
