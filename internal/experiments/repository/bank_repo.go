package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
)

// BankRepository reads the historical experiments bank.
type BankRepository struct {
	db *sql.DB
}

func NewBankRepository(db *sql.DB) *BankRepository {
	return &BankRepository{db: db}
}

// ListRecent returns up to limit samples, most recent first. Samples with
// no date sort last.
func (r *BankRepository) ListRecent(ctx context.Context, limit int) ([]domain.HistoricalSample, error) {
	const q = `
SELECT id::text, "Date"::text, "Time"::text, "Longitude", "Latitude", "Turbidity", "TDS", "pH"
FROM experiments_bank
ORDER BY "Date" DESC NULLS LAST, "Time" DESC NULLS LAST
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank samples: %w", err)
	}
	defer rows.Close()

	out := make([]domain.HistoricalSample, 0, limit)
	for rows.Next() {
		var s domain.HistoricalSample
		var date, tm sql.NullString
		var lon, lat, turbidity, tds, ph sql.NullFloat64
		if err := rows.Scan(&s.ID, &date, &tm, &lon, &lat, &turbidity, &tds, &ph); err != nil {
			return nil, fmt.Errorf("failed to scan bank sample: %w", err)
		}
		s.Date = nullString(date)
		s.Time = nullString(tm)
		s.Longitude = nullFloat(lon)
		s.Latitude = nullFloat(lat)
		s.Turbidity = nullFloat(turbidity)
		s.TDS = nullFloat(tds)
		s.PH = nullFloat(ph)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
