package service

import (
	"context"

	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/store"
	"github.com/blackroad-os/hub/models"
)

// siteDataService is the concrete implementation of SiteDataService. Every
// read falls back to the built-in values on storage failure so the marketing
// pages always render.
type siteDataService struct {
	siteDataRepository store.SiteDataRepository
	logger             *logger.Logger
}

// NewSiteDataService constructs a SiteDataService over the given repository.
func NewSiteDataService(siteDataRepository store.SiteDataRepository, logger *logger.Logger) SiteDataService {
	return &siteDataService{
		siteDataRepository: siteDataRepository,
		logger:             logger,
	}
}

// Stats returns the headline numbers for the home page. Stored rows overlay
// the fallback map, so a partial stats table still yields a complete set.
func (s *siteDataService) Stats(ctx context.Context) map[string]string {
	log := logger.FromContext(ctx)

	stats := map[string]string{
		"agents":       "1,000",
		"domains":      "21",
		"github_orgs":  "16",
		"repositories": "40+",
	}

	stored, err := s.siteDataRepository.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("stats lookup degraded to fallback values")
		return stats
	}
	for key, value := range stored {
		stats[key] = value
	}

	return stats
}

// GithubOrgs returns the organization names for the GitHub page, falling back
// to the known list when storage fails or holds no rows.
func (s *siteDataService) GithubOrgs(ctx context.Context) []string {
	log := logger.FromContext(ctx)

	orgs, err := s.siteDataRepository.GithubOrgs(ctx)
	if err != nil {
		log.Err(err).Msg("github orgs lookup degraded to fallback values")
		return fallbackGithubOrgs()
	}
	if len(orgs) == 0 {
		return fallbackGithubOrgs()
	}

	return orgs
}

// Domains returns the domain portfolio for the domains page, primary domains
// first.
func (s *siteDataService) Domains(ctx context.Context) []models.Domain {
	log := logger.FromContext(ctx)

	domains, err := s.siteDataRepository.Domains(ctx)
	if err != nil {
		log.Err(err).Msg("domains lookup degraded to fallback values")
		return []models.Domain{
			{Name: "blackroad.io", Primary: true},
			{Name: "blackroad.systems"},
			{Name: "lucidia.earth"},
			{Name: "roadchain.io"},
		}
	}

	return domains
}

func fallbackGithubOrgs() []string {
	return []string{
		"BlackRoad-OS", "blackboxprogramming", "Blackbox-Enterprises",
		"BlackRoad-AI", "BlackRoad-Archive", "BlackRoad-Cloud",
		"BlackRoad-Education", "BlackRoad-Foundation", "BlackRoad-Gov",
		"BlackRoad-Hardware", "BlackRoad-Interactive", "BlackRoad-Labs",
		"BlackRoad-Media", "BlackRoad-Security", "BlackRoad-Studio",
		"BlackRoad-Ventures",
	}
}
