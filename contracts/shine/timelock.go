package shine

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/shinetoken/shine-contract/contracts/shine/shineconst"
)

// Airdrop transfers amount of the owner's tokens to every recipient and locks
// them for lockDays days. It can be invoked only by the owner. No fees are
// taken.
//
// It produces Transfer and Grant notifications for every recipient. Recipients
// which are deployed contracts receive onNEP17Payment call with nil data.
//
// Repeated grants to the same account accumulate its locked balance, unlock
// time is moved to the latest of the old and the new one. Zero amount grants
// nothing and leaves existing locks untouched.
func Airdrop(recipients []interop.Hash160, amount, lockDays int) {
	if len(recipients) == 0 {
		panic(shineconst.ErrEmptyRecipients)
	}
	if amount < 0 {
		panic(shineconst.ErrNegativeAmount)
	}
	if lockDays < 0 {
		panic(shineconst.ErrInvalidLockPeriod)
	}
	for i := range recipients {
		if len(recipients[i]) != interop.Hash160Len {
			panic(shineconst.ErrInvalidAddress)
		}
	}

	ctx := storage.GetContext()
	checkNotPaused(ctx)
	owner := checkOwner(ctx)

	acc := getAccount(ctx, owner)
	if acc.Denied {
		panic(shineconst.ErrSenderDenylisted)
	}

	debit(ctx, owner, acc, amount*len(recipients))

	for i := range recipients {
		grant(ctx, recipients[i], amount, lockDays)
		runtime.Notify("Transfer", owner, recipients[i], amount)

		if management.GetContract(recipients[i]) != nil {
			contract.Call(recipients[i], "onNEP17Payment", contract.All, owner, amount, nil)
		}
	}
}

// LockedBalanceOf returns locked part of the account balance. Locks are
// released by the first transfer from the account after unlock time, so the
// value may be non-zero even if unlock time has passed.
func LockedBalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, account).Locked
}

// UnlockTimeOf returns block timestamp (ms) after which locked balance of the
// account can be spent. Zero if the account has no locked balance.
func UnlockTimeOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, account).UnlockTime
}

// grant credits amount to the account and locks it for lockDays days.
func grant(ctx storage.Context, addr interop.Hash160, amount, lockDays int) {
	if amount == 0 {
		return
	}

	acc := releaseMatured(addr, getAccount(ctx, addr))

	acc.Balance += amount
	acc.Locked += amount

	until := runtime.GetTime() + lockDays*shineconst.DayMs
	if until > acc.UnlockTime {
		acc.UnlockTime = until
	}

	putAccount(ctx, addr, acc)
	runtime.Notify("Grant", addr, amount, acc.UnlockTime)
}

// releaseMatured drops the lock of the account if its unlock time has come.
// Caller is responsible for storing the result.
func releaseMatured(addr interop.Hash160, acc Account) Account {
	if acc.Locked > 0 && runtime.GetTime() >= acc.UnlockTime {
		runtime.Notify("Release", addr, acc.Locked)

		acc.Locked = 0
		acc.UnlockTime = 0
	}

	return acc
}

// checkAvailable panics if amount can't be withdrawn from the account.
func checkAvailable(acc Account, amount int) {
	if amount <= acc.Balance-acc.Locked {
		return
	}

	if amount <= acc.Balance {
		panic(shineconst.ErrTimelocked)
	}

	panic(shineconst.ErrInsufficientBalance)
}
