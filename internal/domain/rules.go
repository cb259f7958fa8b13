package domain

import "fmt"

// SellerRule selects how the commission count bound is applied.
type SellerRule string

const (
	// SellerRuleTopThree counts only the commissions kept after ranking and
	// truncating, so a seller with many commissions is never excluded by count.
	SellerRuleTopThree SellerRule = "top3"
	// SellerRuleTotalCount excludes any seller whose total number of
	// commissions exceeds the limit before summing.
	SellerRuleTotalCount SellerRule = "total"
)

// ParseSellerRule maps a user supplied name to a SellerRule. Empty selects the default.
func ParseSellerRule(s string) (SellerRule, error) {
	switch SellerRule(s) {
	case "", SellerRuleTopThree:
		return SellerRuleTopThree, nil
	case SellerRuleTotalCount:
		return SellerRuleTotalCount, nil
	}
	return "", fmt.Errorf("unknown seller rule %q (want %q or %q)", s, SellerRuleTopThree, SellerRuleTotalCount)
}

// ManagerRule selects how the indirect manager is resolved.
type ManagerRule string

const (
	// ManagerRuleTwoHop returns the manager's manager.
	ManagerRuleTwoHop ManagerRule = "two-hop"
	// ManagerRuleSalaryChain walks from the manager's manager upward and
	// returns the first ancestor earning at least twice the employee's salary.
	ManagerRuleSalaryChain ManagerRule = "salary-chain"
)

// ParseManagerRule maps a user supplied name to a ManagerRule. Empty selects the default.
func ParseManagerRule(s string) (ManagerRule, error) {
	switch ManagerRule(s) {
	case "", ManagerRuleSalaryChain:
		return ManagerRuleSalaryChain, nil
	case ManagerRuleTwoHop:
		return ManagerRuleTwoHop, nil
	}
	return "", fmt.Errorf("unknown manager rule %q (want %q or %q)", s, ManagerRuleTwoHop, ManagerRuleSalaryChain)
}
