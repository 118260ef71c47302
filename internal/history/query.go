package history

import (
	"database/sql"
	"fmt"
	"time"
)

const recordColumns = `id, timestamp, action, path, file_name, pattern, size, error_message, created_at`

// Recent returns the N most recent removal events
func (h *DB) Recent(limit int) ([]Record, error) {
	query := `
	SELECT ` + recordColumns + `
	FROM removals
	ORDER BY timestamp DESC
	LIMIT ?
	`
	return h.queryRecords(query, limit)
}

// ByAction returns events filtered by action type (REMOVE, SKIP, ERROR)
func (h *DB) ByAction(action string) ([]Record, error) {
	query := `
	SELECT ` + recordColumns + `
	FROM removals
	WHERE action = ?
	ORDER BY timestamp DESC
	`
	return h.queryRecords(query, action)
}

// ByPattern returns events for files claimed by the given pattern
func (h *DB) ByPattern(pattern string) ([]Record, error) {
	query := `
	SELECT ` + recordColumns + `
	FROM removals
	WHERE pattern = ?
	ORDER BY timestamp DESC
	`
	return h.queryRecords(query, pattern)
}

// Stats summarizes removal activity over the trailing number of days
type Stats struct {
	StartDate    time.Time
	EndDate      time.Time
	TotalRemoved int64
	TotalSkipped int64
	TotalErrors  int64
	TotalBytes   int64
	ByPattern    map[string]int64
}

// GetStats returns aggregate statistics for the last N days
func (h *DB) GetStats(days int) (*Stats, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	stats := &Stats{
		StartDate: start,
		EndDate:   end,
		ByPattern: make(map[string]int64),
	}

	row := h.db.QueryRow(`
	SELECT
		COALESCE(SUM(CASE WHEN action = 'REMOVE' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN action = 'SKIP' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN action = 'ERROR' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN action = 'REMOVE' THEN size ELSE 0 END), 0)
	FROM removals
	WHERE timestamp BETWEEN ? AND ?
	`, start, end)
	if err := row.Scan(&stats.TotalRemoved, &stats.TotalSkipped, &stats.TotalErrors, &stats.TotalBytes); err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}

	rows, err := h.db.Query(`
	SELECT pattern, COUNT(*)
	FROM removals
	WHERE action = 'REMOVE' AND timestamp BETWEEN ? AND ?
	GROUP BY pattern
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query pattern stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pattern string
		var count int64
		if err := rows.Scan(&pattern, &count); err != nil {
			return nil, fmt.Errorf("failed to scan pattern stats: %w", err)
		}
		stats.ByPattern[pattern] = count
	}
	return stats, rows.Err()
}

func (h *DB) queryRecords(query string, args ...interface{}) ([]Record, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query removals: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var r Record
		var errMsg sql.NullString
		if err := rows.Scan(
			&r.ID,
			&r.Timestamp,
			&r.Action,
			&r.Path,
			&r.FileName,
			&r.Pattern,
			&r.Size,
			&errMsg,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan removal record: %w", err)
		}
		r.ErrorMessage = errMsg.String
		records = append(records, r)
	}
	return records, rows.Err()
}
