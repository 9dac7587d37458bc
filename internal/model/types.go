package model

import "fmt"

type EntryType string

const (
	TypeDeposit         EntryType = "DEPOSIT"
	TypeWithdraw        EntryType = "WITHDRAW"
	TypeGameWin         EntryType = "GAME_WIN"
	TypeGameBet         EntryType = "GAME_BET"
	TypeGameRefund      EntryType = "GAME_REFUND"
	TypeAdminAdjustment EntryType = "ADMIN_ADJUSTMENT"
)

func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case TypeDeposit, TypeWithdraw, TypeGameWin, TypeGameBet, TypeGameRefund, TypeAdminAdjustment:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown entry type %q", ErrValidation, s)
	}
}

func (t EntryType) String() string {
	return string(t)
}

type EntryStatus string

const (
	StatusPending             EntryStatus = "PENDING"
	StatusPendingBalance      EntryStatus = "PENDING_BALANCE"
	StatusSuccess             EntryStatus = "SUCCESS"
	StatusFailed              EntryStatus = "FAILED"
	StatusFailedBalanceUpdate EntryStatus = "FAILED_BALANCE_UPDATE"
)

func ParseEntryStatus(s string) (EntryStatus, error) {
	switch st := EntryStatus(s); st {
	case StatusPending, StatusPendingBalance, StatusSuccess, StatusFailed, StatusFailedBalanceUpdate:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown entry status %q", ErrValidation, s)
	}
}

func (s EntryStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is allowed from s.
func (s EntryStatus) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusFailedBalanceUpdate:
		return true
	default:
		return false
	}
}

// transitions lists every legal status move shared by all entry types.
var transitions = map[EntryStatus][]EntryStatus{
	StatusPending:        {StatusPendingBalance, StatusFailed},
	StatusPendingBalance: {StatusSuccess, StatusFailedBalanceUpdate},
}

// CanTransition reports whether an entry of type t may move from one status to
// another. A withdrawal additionally goes PENDING -> SUCCESS on approval since
// its balance was already debited when it was created.
func CanTransition(t EntryType, from, to EntryStatus) bool {
	if t == TypeWithdraw && from == StatusPending && to == StatusSuccess {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns ErrIllegalTransition when the move is not allowed.
func CheckTransition(t EntryType, from, to EntryStatus) error {
	if !CanTransition(t, from, to) {
		return fmt.Errorf("%w: %s %s -> %s", ErrIllegalTransition, t, from, to)
	}
	return nil
}

type Method string

const (
	MethodKkiapay Method = "KKIAPAY"
	MethodManual  Method = "MANUAL"
	MethodGame    Method = "GAME"
)

func (m Method) String() string {
	return string(m)
}
