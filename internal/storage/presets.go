package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/riftlab/riftmetrics/internal/filter"
)

// Preset is a stored filter configuration.
type Preset struct {
	Name      string
	Criteria  filter.Criteria
	CreatedAt time.Time
}

// SavePreset stores the criteria under the given name, replacing any
// existing preset with that name.
func (db *DB) SavePreset(name string, c filter.Criteria) error {
	if name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode criteria: %w", err)
	}
	_, err = db.conn.Exec(
		`INSERT OR REPLACE INTO presets (name, criteria, created_at) VALUES (?, ?, ?)`,
		name, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}
	return nil
}

// GetPreset loads one preset by name. A stored row whose criteria no longer
// decode is an error here; use it only when the caller asked for this preset
// explicitly.
func (db *DB) GetPreset(name string) (*Preset, error) {
	row := db.conn.QueryRow(
		`SELECT name, criteria, created_at FROM presets WHERE name = ?`, name)

	p, err := scanPreset(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("preset %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPresets returns every stored preset ordered by name. Rows whose
// criteria no longer decode are skipped with a warning on warnTo rather than
// failing the whole listing.
func (db *DB) ListPresets(warnTo io.Writer) ([]Preset, error) {
	rows, err := db.conn.Query(
		`SELECT name, criteria, created_at FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var out []Preset
	for rows.Next() {
		var name, rawCriteria, createdAt string
		if err := rows.Scan(&name, &rawCriteria, &createdAt); err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		p, err := decodePreset(name, rawCriteria, createdAt)
		if err != nil {
			if warnTo != nil {
				fmt.Fprintf(warnTo, "warn: skipping preset %q: %v\n", name, err)
			}
			continue
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// DeletePreset removes a preset. Deleting a name that does not exist is an
// error so typos surface.
func (db *DB) DeletePreset(name string) error {
	res, err := db.conn.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("preset %q not found", name)
	}
	return nil
}

func scanPreset(row *sql.Row) (*Preset, error) {
	var name, rawCriteria, createdAt string
	if err := row.Scan(&name, &rawCriteria, &createdAt); err != nil {
		return nil, err
	}
	return decodePreset(name, rawCriteria, createdAt)
}

func decodePreset(name, rawCriteria, createdAt string) (*Preset, error) {
	var c filter.Criteria
	if err := json.Unmarshal([]byte(rawCriteria), &c); err != nil {
		return nil, fmt.Errorf("decode criteria: %w", err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}
	return &Preset{Name: name, Criteria: c, CreatedAt: created}, nil
}
