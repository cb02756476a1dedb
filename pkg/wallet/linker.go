// Package wallet links hand-entered wallet cards to reconciled bureau accounts
package wallet

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Ramsey-B/fern/pkg/identifiers"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalizers"
)

const (
	PointsDateOpened  = 50
	PointsCreditLimit = 30
	PointsLast4       = 25
	PointsIssuer      = 15
	PointsName        = 10

	// LinkThreshold is the minimum score for a card to be linked to a group
	LinkThreshold = 40

	// nameSimilarityThreshold is the minimum edit distance ratio for the name signal
	nameSimilarityThreshold = 0.8
)

type candidate struct {
	card    int
	group   int
	score   int
	signals []string
}

// Link pairs wallet cards with account groups one to one. The highest scoring
// pairs are taken first; ties go to the earlier card, then the earlier group.
func Link(cards []models.WalletCard, groups []*models.AccountGroup) []models.WalletLink {
	candidates := make([]candidate, 0)
	for ci, card := range cards {
		for gi, group := range groups {
			score, signals := ScoreCard(card, group)
			if score < LinkThreshold {
				continue
			}
			candidates = append(candidates, candidate{card: ci, group: gi, score: score, signals: signals})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].card != candidates[j].card {
			return candidates[i].card < candidates[j].card
		}
		return candidates[i].group < candidates[j].group
	})

	usedCards := make(map[int]bool, len(cards))
	usedGroups := make(map[int]bool, len(groups))
	links := make([]models.WalletLink, 0, len(cards))
	for _, c := range candidates {
		if usedCards[c.card] || usedGroups[c.group] {
			continue
		}
		usedCards[c.card] = true
		usedGroups[c.group] = true
		links = append(links, models.WalletLink{
			CardID:  cards[c.card].ID,
			GroupID: groups[c.group].ID,
			Score:   c.score,
			Signals: c.signals,
		})
	}

	return links
}

// ScoreCard scores a wallet card against a group: the best scoring member plus
// a bonus when the card name resembles the group's display name.
func ScoreCard(card models.WalletCard, group *models.AccountGroup) (int, []string) {
	bestScore := -1
	var bestSignals []string
	for _, member := range group.Accounts {
		score, signals := scoreMember(card, member)
		if score > bestScore {
			bestScore, bestSignals = score, signals
		}
	}
	if bestScore < 0 {
		bestScore = 0
	}

	signals := append([]string{}, bestSignals...)
	if NameSimilarity(card.CardName, group.DisplayName) >= nameSimilarityThreshold {
		bestScore += PointsName
		signals = append(signals, "name")
	}

	return bestScore, signals
}

func scoreMember(card models.WalletCard, member models.AccountRecord) (int, []string) {
	score := 0
	signals := make([]string, 0, 4)

	if card.DateOpened != nil && *card.DateOpened != "" && *card.DateOpened == member.Opened() {
		score += PointsDateOpened
		signals = append(signals, "date_opened")
	}

	if card.CreditLimitCents != nil && member.CreditLimitCents != nil && *card.CreditLimitCents == *member.CreditLimitCents {
		score += PointsCreditLimit
		signals = append(signals, "credit_limit")
	}

	if identifiers.Equal(card.Last4, identifiers.ExtractLast4(member.AccountNumberMasked)) {
		score += PointsLast4
		signals = append(signals, "last4")
	}

	if issuer := normalizers.NormalizeCreditor(card.Issuer); issuer != "" && issuer == normalizers.NormalizeCreditorPtr(member.CreditorName) {
		score += PointsIssuer
		signals = append(signals, "issuer")
	}

	return score, signals
}

// NameSimilarity returns 1 minus the edit distance over the longer length,
// compared case-insensitively. Two empty names are not similar.
func NameSimilarity(a, b string) float64 {
	a, b = strings.ToUpper(strings.TrimSpace(a)), strings.ToUpper(strings.TrimSpace(b))
	longest := max(len(a), len(b))
	if longest == 0 || a == "" || b == "" {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
