package tiledata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Fetch batch-reads the metadata records for the given names.
//
// maxVersion is an inclusive upper bound: of a name's competing
// versioned records, the highest version at or below the cutoff wins.
// Names with no record at all are simply absent from the result; the
// engine tolerates that (text tiles render without metadata).
//
// The result carries at most one record per name.
func (s *Store) Fetch(ctx context.Context, names []string, maxVersion int) ([]Tile, error) {
	if len(names) == 0 {
		return []Tile{}, nil
	}

	placeholders := strings.Repeat("?,", len(names))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(names)+1)
	for _, name := range names {
		args = append(args, name)
	}
	args = append(args, maxVersion)

	// Ascending version order: later rows overwrite earlier ones, so
	// the highest eligible version per name survives.
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT name, version, source, sprite, tiling,
		       active_x, active_y, inactive_x, inactive_y,
		       text_type, tags
		FROM tiles
		WHERE name IN (%s) AND version <= ?
		ORDER BY name ASC, version ASC
	`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("query tiles: %w", err)
	}
	defer rows.Close()

	byName := map[string]int{}
	tiles := []Tile{}
	for rows.Next() {
		t, err := scanTile(rows)
		if err != nil {
			return nil, err
		}
		if i, ok := byName[t.Name]; ok {
			tiles[i] = t
			continue
		}
		byName[t.Name] = len(tiles)
		tiles = append(tiles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tiles: %w", err)
	}

	return tiles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTile(row rowScanner) (Tile, error) {
	var (
		t        Tile
		tiling   int
		textType int
		tagsJSON string
	)
	err := row.Scan(
		&t.Name, &t.Version, &t.Source, &t.Sprite, &tiling,
		&t.ActiveColor.X, &t.ActiveColor.Y,
		&t.InactiveColor.X, &t.InactiveColor.Y,
		&textType, &tagsJSON,
	)
	if err != nil {
		return Tile{}, fmt.Errorf("scan tile: %w", err)
	}
	t.Tiling = Tiling(tiling)
	t.TextType = TextType(textType)
	if err := json.Unmarshal([]byte(tagsJSON), &t.Tags); err != nil {
		return Tile{}, fmt.Errorf("decode tags for %q: %w", t.Name, err)
	}
	return t, nil
}
