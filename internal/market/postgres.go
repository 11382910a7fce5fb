package market

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadTable builds the reference table for the process. Without a database URL
// the built-in table is used; with one, the table is read from PostgreSQL after
// seeding any missing built-in rows. The pool is closed before returning: the
// table is a load-once resource and the read path never touches the database.
func LoadTable(ctx context.Context, databaseURL string) (Table, error) {
	if databaseURL == "" {
		return DefaultTable(), nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return Table{}, fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return Table{}, fmt.Errorf("ping database: %w", err)
	}

	if err := ensureSchema(ctx, pool); err != nil {
		return Table{}, err
	}

	if err := seedBuiltins(ctx, pool); err != nil {
		return Table{}, err
	}

	entries, err := readEntries(ctx, pool)
	if err != nil {
		return Table{}, err
	}

	return NewTable(entries), nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS market_entries (
        location TEXT PRIMARY KEY,
        base_price_min DOUBLE PRECISION NOT NULL,
        base_price_max DOUBLE PRECISION NOT NULL,
        market_size TEXT NOT NULL,
        currency TEXT NOT NULL,
        trends TEXT[] NOT NULL DEFAULT '{}',
        demographics TEXT[] NOT NULL DEFAULT '{}',
        seasonal_peaks TEXT[] NOT NULL DEFAULT '{}',
        competition_level TEXT NOT NULL,
        market_maturity TEXT NOT NULL
    )`)
	if err != nil {
		return fmt.Errorf("create market_entries table: %w", err)
	}
	return nil
}

func seedBuiltins(ctx context.Context, pool *pgxpool.Pool) error {
	for location, entry := range builtinEntries {
		if _, err := pool.Exec(ctx,
			`INSERT INTO market_entries
                (location, base_price_min, base_price_max, market_size, currency,
                 trends, demographics, seasonal_peaks, competition_level, market_maturity)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
             ON CONFLICT (location) DO NOTHING`,
			location, entry.BasePriceMin, entry.BasePriceMax, entry.MarketSize, entry.Currency,
			entry.Trends, entry.Demographics, entry.SeasonalPeaks, entry.CompetitionLevel, entry.MarketMaturity,
		); err != nil {
			return fmt.Errorf("seed market entry %s: %w", location, err)
		}
	}
	return nil
}

func readEntries(ctx context.Context, pool *pgxpool.Pool) (map[string]Entry, error) {
	rows, err := pool.Query(ctx,
		`SELECT location, base_price_min, base_price_max, market_size, currency,
                trends, demographics, seasonal_peaks, competition_level, market_maturity
         FROM market_entries`)
	if err != nil {
		return nil, fmt.Errorf("query market entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]Entry)
	for rows.Next() {
		var location string
		var entry Entry
		if err := rows.Scan(&location, &entry.BasePriceMin, &entry.BasePriceMax, &entry.MarketSize,
			&entry.Currency, &entry.Trends, &entry.Demographics, &entry.SeasonalPeaks,
			&entry.CompetitionLevel, &entry.MarketMaturity); err != nil {
			return nil, fmt.Errorf("scan market entry: %w", err)
		}
		entries[location] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read market entries: %w", err)
	}

	return entries, nil
}
