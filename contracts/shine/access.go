package shine

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/shinetoken/shine-contract/common"
	"github.com/shinetoken/shine-contract/contracts/shine/shineconst"
)

// Owner returns script hash of the contract owner.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getOwner(ctx)
}

// TransferOwnership changes the contract owner. It can be invoked only by the
// current owner. Treasury fees are paid to the new owner from now on.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	if len(newOwner) != interop.Hash160Len {
		panic(shineconst.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	storage.Put(ctx, ownerKey, newOwner)
	runtime.Notify("OwnershipTransferred", owner, newOwner)
}

// Pause stops all balance changes. It can be invoked only by the owner,
// pausing an already paused contract does nothing.
//
// It produces Paused notification.
func Pause() {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if storage.Get(ctx, pausedKey) != nil {
		return
	}

	storage.Put(ctx, pausedKey, 1)
	runtime.Notify("Paused", owner)
	runtime.Log("shine contract paused")
}

// Unpause resumes balance changes. It can be invoked only by the owner,
// unpausing not paused contract does nothing.
//
// It produces Unpaused notification.
func Unpause() {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if storage.Get(ctx, pausedKey) == nil {
		return
	}

	storage.Delete(ctx, pausedKey)
	runtime.Notify("Unpaused", owner)
	runtime.Log("shine contract unpaused")
}

// Paused returns true if the contract is paused.
func Paused() bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, pausedKey) != nil
}

// SetDenylisted forbids or allows the account to send tokens. It can be
// invoked only by the owner.
//
// It produces DenylistUpdated notification.
func SetDenylisted(account interop.Hash160, denied bool) {
	if len(account) != interop.Hash160Len {
		panic(shineconst.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	checkOwner(ctx)

	acc := getAccount(ctx, account)
	acc.Denied = denied
	putAccount(ctx, account, acc)

	runtime.Notify("DenylistUpdated", account, denied)
}

// IsDenylisted returns true if the account can't send tokens.
func IsDenylisted(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, account).Denied
}

// SetFeeExempt switches fee exemption of the account. It can be invoked only
// by the owner.
//
// It produces FeeExemptUpdated notification.
func SetFeeExempt(account interop.Hash160, exempt bool) {
	if len(account) != interop.Hash160Len {
		panic(shineconst.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	checkOwner(ctx)

	acc := getAccount(ctx, account)
	acc.FeeExempt = exempt
	putAccount(ctx, account, acc)

	runtime.Notify("FeeExemptUpdated", account, exempt)
}

// IsFeeExempt returns true if transfers from or to the account are free.
func IsFeeExempt(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, account).FeeExempt
}

func getOwner(ctx storage.Context) interop.Hash160 {
	owner := storage.Get(ctx, ownerKey)
	if owner == nil {
		panic(shineconst.ErrNotInitialized)
	}

	return owner.(interop.Hash160)
}

// checkOwner panics if the transaction is not witnessed by the owner and
// returns the owner otherwise.
func checkOwner(ctx storage.Context) interop.Hash160 {
	owner := getOwner(ctx)
	common.CheckOwnerWitness(owner)

	return owner
}

func checkNotPaused(ctx storage.Context) {
	if storage.Get(ctx, pausedKey) != nil {
		panic(shineconst.ErrPaused)
	}
}
