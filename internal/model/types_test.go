package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		typ      EntryType
		from, to EntryStatus
		want     bool
	}{
		{TypeDeposit, StatusPending, StatusPendingBalance, true},
		{TypeDeposit, StatusPending, StatusFailed, true},
		{TypeDeposit, StatusPendingBalance, StatusSuccess, true},
		{TypeDeposit, StatusPendingBalance, StatusFailedBalanceUpdate, true},
		{TypeDeposit, StatusPending, StatusSuccess, false},
		{TypeDeposit, StatusSuccess, StatusFailed, false},
		{TypeDeposit, StatusFailed, StatusPending, false},
		{TypeDeposit, StatusFailedBalanceUpdate, StatusSuccess, false},
		{TypeDeposit, StatusPendingBalance, StatusPending, false},
		{TypeWithdraw, StatusPending, StatusSuccess, true},
		{TypeWithdraw, StatusPending, StatusFailed, true},
		{TypeWithdraw, StatusSuccess, StatusFailed, false},
		{TypeWithdraw, StatusFailed, StatusSuccess, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.typ)+"_"+string(tc.from)+"_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.typ, tc.from, tc.to))
			if tc.want {
				assert.NoError(t, CheckTransition(tc.typ, tc.from, tc.to))
			} else {
				assert.ErrorIs(t, CheckTransition(tc.typ, tc.from, tc.to), ErrIllegalTransition)
			}
		})
	}
}

func TestTerminalStatusesHaveNoExit(t *testing.T) {
	all := []EntryStatus{StatusPending, StatusPendingBalance, StatusSuccess, StatusFailed, StatusFailedBalanceUpdate}
	for _, from := range all {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range all {
			assert.False(t, CanTransition(TypeDeposit, from, to), "%s -> %s", from, to)
			assert.False(t, CanTransition(TypeWithdraw, from, to), "%s -> %s", from, to)
		}
	}
}

func TestParseEntryStatus(t *testing.T) {
	st, err := ParseEntryStatus("FAILED_BALANCE_UPDATE")
	assert.NoError(t, err)
	assert.Equal(t, StatusFailedBalanceUpdate, st)

	_, err = ParseEntryStatus("failed")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseEntryType(t *testing.T) {
	typ, err := ParseEntryType("WITHDRAW")
	assert.NoError(t, err)
	assert.Equal(t, TypeWithdraw, typ)

	_, err = ParseEntryType("TRANSFER")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProviderOutcome(t *testing.T) {
	cases := map[string]ProviderOutcome{
		"SUCCESS":         OutcomeSucceeded,
		"success":         OutcomeSucceeded,
		"PAYMENT_SUCCESS": OutcomeSucceeded,
		"COMPLETED":       OutcomeSucceeded,
		"PAID":            OutcomeSucceeded,
		"PENDING":         OutcomePending,
		" initiated ":     OutcomePending,
		"PROCESSING":      OutcomePending,
		"FAILED":          OutcomeFailed,
		"REFUNDED":        OutcomeFailed,
		"":                OutcomeFailed,
	}
	for status, want := range cases {
		v := &ProviderVerification{Status: status}
		assert.Equal(t, want, v.Outcome(), "status %q", status)
	}
}

func TestFirstReference(t *testing.T) {
	assert.Equal(t, "REF_1", FirstReference("", "  ", " REF_1 ", "REF_2"))
	assert.Empty(t, FirstReference("", " "))
	assert.Empty(t, FirstReference())
}
