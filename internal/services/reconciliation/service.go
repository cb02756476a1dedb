package reconciliation

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectolinq"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/inquiries"
	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalizers"
	"github.com/Ramsey-B/fern/pkg/summary"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
	"github.com/Ramsey-B/fern/pkg/wallet"
)

const (
	KindAccounts  = "accounts"
	KindInquiries = "inquiries"
	KindWallet    = "wallet"
)

type AccountsResult struct {
	Groups  []*models.AccountGroup `json:"groups"`
	Summary summary.Summary        `json:"summary"`
	Links   []models.WalletLink    `json:"links,omitempty"`
}

type InquiriesResult struct {
	Groups []*models.InquiryGroup `json:"groups"`
}

type WalletResult struct {
	Links  []models.WalletLink    `json:"links"`
	Groups []*models.AccountGroup `json:"groups"`
}

type Options struct {
	// Source labels metrics with the transport that triggered the run
	Source        string
	WalletLinking bool
}

type Service struct {
	logger ectologger.Logger
	opts   Options
}

func NewService(logger ectologger.Logger, opts Options) *Service {
	if opts.Source == "" {
		opts.Source = "api"
	}
	return &Service{
		logger: logger,
		opts:   opts,
	}
}

// ReconcileAccounts groups the user's tradelines across bureaus and
// summarizes the result. Wallet cards are linked when linking is enabled.
func (s *Service) ReconcileAccounts(ctx context.Context, records []models.AccountRecord, cards []models.WalletCard) (AccountsResult, error) {
	ctx, span := tracing.StartSpan(ctx, "reconciliation.Service.ReconcileAccounts")
	defer span.End()

	if err := validateAll("accounts", records); err != nil {
		return AccountsResult{}, err
	}
	if err := validateAll("wallet_cards", cards); err != nil {
		return AccountsResult{}, err
	}

	start := time.Now()
	groups := matching.GroupAccounts(records)
	result := AccountsResult{
		Groups:  groups,
		Summary: summary.Summarize(groups),
	}
	if s.opts.WalletLinking && len(cards) > 0 {
		result.Links = wallet.Link(cards, groups)
		metrics.WalletLinksTotal.Add(float64(len(result.Links)))
	}
	s.observe(KindAccounts, start, len(records), ectolinq.Map(groups, func(g *models.AccountGroup) int {
		return len(g.Accounts)
	}))

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"records":      len(records),
		"groups":       len(groups),
		"open_groups":  result.Summary.OpenGroups,
		"wallet_links": len(result.Links),
	}).Info("reconciled accounts")

	return result, nil
}

// ScoreAccounts explains how two records compare
func (s *Service) ScoreAccounts(ctx context.Context, a, b models.AccountRecord) (matching.Breakdown, error) {
	ctx, span := tracing.StartSpan(ctx, "reconciliation.Service.ScoreAccounts")
	defer span.End()

	if err := validateAll("accounts", []models.AccountRecord{a, b}); err != nil {
		return matching.Breakdown{}, err
	}

	breakdown := matching.ScoreDetail(a, b)
	s.logger.WithContext(ctx).WithFields(map[string]any{
		"a":       a.ID,
		"b":       b.ID,
		"score":   breakdown.Score,
		"matched": breakdown.Matched,
	}).Debug("scored account pair")

	return breakdown, nil
}

func (s *Service) GroupInquiries(ctx context.Context, records []models.InquiryRecord, userGroups []models.UserInquiryGroup) (InquiriesResult, error) {
	ctx, span := tracing.StartSpan(ctx, "reconciliation.Service.GroupInquiries")
	defer span.End()

	if err := validateAll("inquiries", records); err != nil {
		return InquiriesResult{}, err
	}
	if err := validateAll("user_groups", userGroups); err != nil {
		return InquiriesResult{}, err
	}

	start := time.Now()
	groups := inquiries.AutoGroup(records, userGroups)
	s.observe(KindInquiries, start, len(records), ectolinq.Map(groups, func(g *models.InquiryGroup) int {
		return len(g.Inquiries)
	}))

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"records":     len(records),
		"user_groups": len(userGroups),
		"groups":      len(groups),
	}).Info("grouped inquiries")

	return InquiriesResult{Groups: groups}, nil
}

// LinkWallet reconciles the accounts and pairs each wallet card with at most one group
func (s *Service) LinkWallet(ctx context.Context, cards []models.WalletCard, records []models.AccountRecord) (WalletResult, error) {
	ctx, span := tracing.StartSpan(ctx, "reconciliation.Service.LinkWallet")
	defer span.End()

	if err := validateAll("cards", cards); err != nil {
		return WalletResult{}, err
	}
	if err := validateAll("accounts", records); err != nil {
		return WalletResult{}, err
	}

	start := time.Now()
	groups := matching.GroupAccounts(records)
	links := wallet.Link(cards, groups)
	metrics.WalletLinksTotal.Add(float64(len(links)))
	s.observe(KindWallet, start, len(cards), nil)

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"cards":  len(cards),
		"groups": len(groups),
		"links":  len(links),
	}).Info("linked wallet cards")

	return WalletResult{Links: links, Groups: groups}, nil
}

// Normalize runs a normalizer pipeline from the registry, for example
// "creditor" or "alphanumeric,uppercase".
func (s *Service) Normalize(ctx context.Context, pipeline, value string) (string, error) {
	_, span := tracing.StartSpan(ctx, "reconciliation.Service.Normalize")
	defer span.End()

	fn, err := normalizers.Chain(pipeline)
	if err != nil {
		return "", httperror.NewHTTPErrorf(http.StatusBadRequest, "%v, available: %s",
			err, strings.Join(normalizers.Names(), ", "))
	}

	return fn(value), nil
}

func (s *Service) observe(kind string, start time.Time, records int, groupSizes []int) {
	metrics.ReconciliationsTotal.WithLabelValues(kind, s.opts.Source).Inc()
	metrics.ReconciliationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	metrics.RecordsProcessed.WithLabelValues(kind).Add(float64(records))
	if groupSizes == nil {
		return
	}
	metrics.GroupsProduced.WithLabelValues(kind).Add(float64(len(groupSizes)))
	for _, size := range groupSizes {
		metrics.GroupSize.WithLabelValues(kind).Observe(float64(size))
	}
}

func validateAll[T any](field string, items []T) error {
	if err := utils.ValidateEach(field, items); err != nil {
		return httperror.WrapError(http.StatusBadRequest, err)
	}
	return nil
}
