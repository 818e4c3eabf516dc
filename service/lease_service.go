package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lease-calculator/domain"
	"lease-calculator/logger"
	"lease-calculator/repository"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

type LeaseService struct {
	fees     domain.FeeTable
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewLeaseService creates a LeaseService. cache may be nil to disable caching.
func NewLeaseService(
	fees domain.FeeTable,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *LeaseService {
	if fees == nil {
		fees = domain.DefaultFeeTable()
	}
	return &LeaseService{
		fees:     fees,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.Log,
	}
}

// CalculateLease returns the rounded lease terms for input, serving repeated
// deals from the cache.
func (s *LeaseService) CalculateLease(
	ctx context.Context,
	input domain.LeaseInput,
) (domain.LeaseSummary, error) {
	key, err := s.cacheKey(input)
	if err != nil {
		return domain.LeaseSummary{}, err
	}

	if cached, ok := s.lookup(ctx, key); ok {
		return cached, nil
	}

	result, err := Calculate(input, s.fees)
	if err != nil {
		return domain.LeaseSummary{}, err
	}
	summary, err := Summarize(result)
	if err != nil {
		return domain.LeaseSummary{}, err
	}

	// Caching is not critical.
	s.store(ctx, key, summary)

	s.logger.Debug("Calculated lease",
		zap.String("manufacturer", input.Manufacturer),
		zap.String("tax_method", string(result.TaxMethod)),
		zap.Int("term_months", result.LeaseTermMonths),
		zap.Float64("monthly_payment", summary.MonthlyPayment))

	return summary, nil
}

// CompareTaxMethods summarizes the same deal under every tax method,
// ignoring input.TaxMethod.
func (s *LeaseService) CompareTaxMethods(
	ctx context.Context,
	input domain.LeaseInput,
) (domain.TaxMethodComparison, error) {
	comparison := domain.TaxMethodComparison{
		Summaries: make([]domain.LeaseSummary, 0, len(domain.TaxMethods)),
	}
	for _, method := range domain.TaxMethods {
		variant := input
		variant.TaxMethod = method

		summary, err := s.CalculateLease(ctx, variant)
		if err != nil {
			return domain.TaxMethodComparison{}, err
		}
		comparison.Summaries = append(comparison.Summaries, summary)
	}
	return comparison, nil
}

// Manufacturers lists the fee table sorted by name.
func (s *LeaseService) Manufacturers() []domain.ManufacturerFeeEntry {
	return s.fees.Entries()
}

func (s *LeaseService) lookup(ctx context.Context, key string) (domain.LeaseSummary, bool) {
	if s.cache == nil {
		return domain.LeaseSummary{}, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Lease cache read failed", zap.String("key", key), zap.Error(err))
		return domain.LeaseSummary{}, false
	}
	if !ok {
		return domain.LeaseSummary{}, false
	}

	var summary domain.LeaseSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		s.logger.Warn("Discarding unreadable cached lease", zap.String("key", key), zap.Error(err))
		return domain.LeaseSummary{}, false
	}
	return summary, true
}

func (s *LeaseService) store(ctx context.Context, key string, summary domain.LeaseSummary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		s.logger.Warn("Failed to encode lease for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache lease calculation", zap.String("key", key), zap.Error(err))
	}
}

// cacheKeyInput is the input with defaults applied and the manufacturer fees
// resolved, so equal deals hash equally and a changed fee table misses.
type cacheKeyInput struct {
	domain.LeaseInput
	ResidualIsPercent bool    `json:"residualIsPercent"`
	AcquisitionFee    float64 `json:"acquisitionFee"`
	DispositionFee    float64 `json:"dispositionFee"`
}

// cacheKey validates input before hashing it, so invalid deals never reach
// the cache.
func (s *LeaseService) cacheKey(input domain.LeaseInput) (string, error) {
	if err := validateLeaseInput(input); err != nil {
		return "", err
	}
	method, _, err := resolveTaxMethod(input.TaxMethod)
	if err != nil {
		return "", err
	}
	fees := lookupFees(s.fees, input.Manufacturer)

	normalized := cacheKeyInput{
		LeaseInput:        input,
		ResidualIsPercent: input.ResidualIsPercent == nil || *input.ResidualIsPercent,
		AcquisitionFee:    fees.AcquisitionFee,
		DispositionFee:    fees.DispositionFee,
	}
	normalized.LeaseInput.ResidualIsPercent = nil
	normalized.TaxMethod = method
	if normalized.LeaseTermMonths == 0 {
		normalized.LeaseTermMonths = DefaultLeaseTermMonths
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64(raw)), nil
}
