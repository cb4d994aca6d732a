package tiledata

import (
	"context"
	"encoding/json"
	"fmt"
)

// Upsert inserts or replaces one metadata record, keyed by
// (name, version).
func (s *Store) Upsert(ctx context.Context, t Tile) error {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encode tags for %q: %w", t.Name, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tiles (name, version, source, sprite, tiling,
		                   active_x, active_y, inactive_x, inactive_y,
		                   text_type, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name, version) DO UPDATE SET
			source = excluded.source,
			sprite = excluded.sprite,
			tiling = excluded.tiling,
			active_x = excluded.active_x,
			active_y = excluded.active_y,
			inactive_x = excluded.inactive_x,
			inactive_y = excluded.inactive_y,
			text_type = excluded.text_type,
			tags = excluded.tags
	`,
		t.Name, t.Version, t.Source, t.Sprite, int(t.Tiling),
		t.ActiveColor.X, t.ActiveColor.Y,
		t.InactiveColor.X, t.InactiveColor.Y,
		int(t.TextType), string(tagsJSON),
	)
	if err != nil {
		return fmt.Errorf("upsert tile %q: %w", t.Name, err)
	}
	return nil
}
