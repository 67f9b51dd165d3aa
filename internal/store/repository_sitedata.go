package store

import (
	"context"
	"fmt"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/models"
)

// siteDataRepository reads the marketing-page data tables. All three reads
// share the same shape: build with squirrel, query, iterate, and let the
// caller decide what to do when the store is unavailable.
type siteDataRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSiteDataRepository constructs a [SiteDataRepository] backed by the
// provided database connection and logger.
func NewSiteDataRepository(db *DB, logger *logger.Logger) SiteDataRepository {
	logger.Debug().Msg("creating site data repository")
	return &siteDataRepository{
		db:     db,
		logger: logger,
	}
}

// Stats returns the stats table as a key/value map.
func (r *siteDataRepository) Stats(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStatsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*siteDataRepository.Stats").Msg("error querying stats")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make(map[string]string)
	for rows.Next() {
		var stat models.Stat
		if err := rows.Scan(&stat.Key, &stat.Value); err != nil {
			log.Err(err).Str("func", "*siteDataRepository.Stats").Msg("error scanning stats row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stats[stat.Key] = stat.Value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

// GithubOrgs returns all GitHub organization names in alphabetical order.
func (r *siteDataRepository) GithubOrgs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGithubOrgsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*siteDataRepository.GithubOrgs").Msg("error querying github orgs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var orgs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "*siteDataRepository.GithubOrgs").Msg("error scanning org row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orgs = append(orgs, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orgs, nil
}

// Domains returns the domain portfolio, primary domains first.
func (r *siteDataRepository) Domains(ctx context.Context) ([]models.Domain, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDomainsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*siteDataRepository.Domains").Msg("error querying domains")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var domains []models.Domain
	for rows.Next() {
		var d models.Domain
		if err := rows.Scan(&d.Name, &d.Primary, &d.Status); err != nil {
			log.Err(err).Str("func", "*siteDataRepository.Domains").Msg("error scanning domain row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return domains, nil
}
