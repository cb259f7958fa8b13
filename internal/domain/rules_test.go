package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSellerRule(t *testing.T) {
	testCases := map[string]struct {
		input   string
		want    SellerRule
		wantErr bool
	}{
		"empty defaults to top3": {input: "", want: SellerRuleTopThree},
		"top3":                   {input: "top3", want: SellerRuleTopThree},
		"total":                  {input: "total", want: SellerRuleTotalCount},
		"unknown":                {input: "all", wantErr: true},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSellerRule(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseManagerRule(t *testing.T) {
	got, err := ParseManagerRule("")
	require.NoError(t, err)
	assert.Equal(t, ManagerRuleSalaryChain, got)

	got, err = ParseManagerRule("two-hop")
	require.NoError(t, err)
	assert.Equal(t, ManagerRuleTwoHop, got)

	_, err = ParseManagerRule("three-hop")
	assert.Error(t, err)
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("load: %w", NewValidationError("jogos", 7, ErrUnknownReference, "home team 99"))

	assert.True(t, errors.Is(err, ErrUnknownReference))
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(errors.New("plain")))
	assert.Equal(t, "load: jogos[7]: unknown reference: home team 99", err.Error())
}
