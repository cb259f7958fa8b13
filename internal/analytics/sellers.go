package analytics

import (
	"sort"

	"github.com/cockroachdb/apd/v3"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
)

const defaultTransferLimit = 3

// decimalCtx is shared by all amount arithmetic. Additions of a handful of
// two-place amounts never come near 34 digits.
var decimalCtx = apd.BaseContext.WithPrecision(34)

// SellerCriteria parameterises the qualifying seller filter.
type SellerCriteria struct {
	Rule      domain.SellerRule
	Limit     int
	Threshold apd.Decimal
}

// DefaultSellerCriteria returns the assessment's criteria: at most 3 transfers
// summing to at least 1024.00, counted under the top-three rule.
func DefaultSellerCriteria() SellerCriteria {
	return SellerCriteria{
		Rule:      domain.SellerRuleTopThree,
		Limit:     defaultTransferLimit,
		Threshold: *apd.New(102400, -2),
	}
}

// QualifyingSellers groups commissions by seller, keeps each seller's highest
// commissions up to the limit and returns the sellers whose kept total reaches
// the threshold, sorted by name. Under SellerRuleTotalCount a seller with more
// commissions than the limit is dropped before summing.
func QualifyingSellers(commissions []domain.Commission, criteria SellerCriteria) ([]domain.QualifyingSeller, error) {
	if criteria.Limit <= 0 {
		criteria.Limit = defaultTransferLimit
	}

	bySeller := make(map[string][]*apd.Decimal)
	for i := range commissions {
		c := &commissions[i]
		if c.Seller == "" {
			return nil, domain.NewValidationError("comissoes", i, domain.ErrEmptyValue, "seller")
		}
		if c.Amount.Sign() < 0 {
			return nil, domain.NewValidationError("comissoes", i, domain.ErrNegativeValue, "amount "+c.Amount.String())
		}
		bySeller[c.Seller] = append(bySeller[c.Seller], &c.Amount)
	}

	var qualified []domain.QualifyingSeller
	for seller, amounts := range bySeller {
		if criteria.Rule == domain.SellerRuleTotalCount && len(amounts) > criteria.Limit {
			continue
		}

		// stable: equal amounts keep input order, like ROW_NUMBER over a stable scan
		sort.SliceStable(amounts, func(i, j int) bool {
			return amounts[i].Cmp(amounts[j]) > 0
		})
		if len(amounts) > criteria.Limit {
			amounts = amounts[:criteria.Limit]
		}

		var total apd.Decimal
		for _, a := range amounts {
			if _, err := decimalCtx.Add(&total, &total, a); err != nil {
				return nil, err
			}
		}

		if total.Cmp(&criteria.Threshold) >= 0 {
			qualified = append(qualified, domain.QualifyingSeller{
				Seller:    seller,
				Transfers: len(amounts),
				Total:     total,
			})
		}
	}

	sort.Slice(qualified, func(i, j int) bool {
		return qualified[i].Seller < qualified[j].Seller
	})
	return qualified, nil
}

// SellerNames projects the filter output onto the seller column.
func SellerNames(sellers []domain.QualifyingSeller) []string {
	names := make([]string, len(sellers))
	for i, s := range sellers {
		names[i] = s.Seller
	}
	return names
}
