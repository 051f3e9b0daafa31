package service

import (
	"context"
	"fmt"
	"log/slog"
)

// Crawl targets accepted by CrawlService.Crawl.
const (
	CrawlAll      = "all"
	CrawlGitHub   = "github"
	CrawlLeetCode = "leetcode"
)

// CrawlService pulls profile statistics from the third-party APIs and stores
// them in the same tables the sync orchestrator later reads.
type CrawlService struct {
	github    GitHubSource
	leetcode  LeetCodeSource
	stats     StatsSink
	txManager TransactionManager
	logger    *slog.Logger
}

func NewCrawlService(
	github GitHubSource,
	leetcode LeetCodeSource,
	stats StatsSink,
	txManager TransactionManager,
	logger *slog.Logger,
) *CrawlService {
	return &CrawlService{
		github:    github,
		leetcode:  leetcode,
		stats:     stats,
		txManager: txManager,
		logger:    logger.With("component", "crawl"),
	}
}

func (c *CrawlService) Crawl(ctx context.Context, target string) error {
	switch target {
	case CrawlGitHub:
		return c.crawlGitHub(ctx)
	case CrawlLeetCode:
		return c.crawlLeetCode(ctx)
	case CrawlAll, "":
		if err := c.crawlGitHub(ctx); err != nil {
			return err
		}
		return c.crawlLeetCode(ctx)
	default:
		return fmt.Errorf("unknown crawl target %q", target)
	}
}

func (c *CrawlService) crawlGitHub(ctx context.Context) error {
	snap, err := c.github.FetchStats(ctx)
	if err != nil {
		return fmt.Errorf("fetch github stats: %w", err)
	}

	err = c.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := c.stats.UpsertGitHubSnapshot(txCtx, snap); err != nil {
			return fmt.Errorf("store github snapshot: %w", err)
		}
		if err := c.stats.RefreshProjectCounters(txCtx, snap.Repos); err != nil {
			return fmt.Errorf("refresh project counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.logger.Info("github stats crawled",
		"username", c.github.Username(),
		"repos", len(snap.Repos),
		"total_stars", snap.TotalStars,
	)
	return nil
}

func (c *CrawlService) crawlLeetCode(ctx context.Context) error {
	snap, err := c.leetcode.FetchStats(ctx)
	if err != nil {
		return fmt.Errorf("fetch leetcode stats: %w", err)
	}

	if err := c.stats.UpsertLeetCodeSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("store leetcode snapshot: %w", err)
	}

	c.logger.Info("leetcode stats crawled",
		"username", c.leetcode.Username(),
		"total_solved", snap.TotalSolved,
	)
	return nil
}
