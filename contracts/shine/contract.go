package shine

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/shinetoken/shine-contract/common"
	"github.com/shinetoken/shine-contract/contracts/shine/shineconst"
)

type (
	// Token holds all token info.
	Token struct {
		// Human readable name
		Name string
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
	}

	// Account structure stores state of each Shine holder. Fields are never
	// reordered or removed, new ones can only be appended.
	Account struct {
		// Total balance including locked part
		Balance int
		// Part of the balance granted by airdrop and not released yet
		Locked int
		// Block timestamp (ms) when Locked can be released
		UnlockTime int
		// No fees are taken from transfers involving the account
		FeeExempt bool
		// Account can't send tokens
		Denied bool
	}
)

const (
	name     = "Shine"
	symbol   = "SHINE"
	decimals = 18

	accPrefix  = 'a'
	ownerKey   = "o"
	supplyKey  = "s"
	pausedKey  = "p"
	variantKey = "v"
)

var token Token

func createToken() Token {
	return Token{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		from := args[len(args)-1].(int)

		to := shineconst.LatestVariant
		if len(args) > 1 {
			to = args[0].(int)
		}

		common.CheckVersion(from, to, shineconst.LatestVariant)

		storage.Put(ctx, variantKey, to)
		runtime.Notify("Upgraded", versionTag(to))
		return
	}

	if data == nil {
		runtime.Log("shine contract deployed, waiting for initialization")
		return
	}

	args := data.([]any)
	initLedger(ctx, args[0].(interop.Hash160), args[1].(int))
}

// Initialize sets the contract owner and credits the whole supply to it. It
// can be invoked only once, by the future owner, and only if the contract was
// deployed without initialization data.
func Initialize(owner interop.Hash160, totalSupply int) {
	ctx := storage.GetContext()
	if storage.Get(ctx, ownerKey) != nil {
		panic(shineconst.ErrAlreadyInitialized)
	}

	common.CheckOwnerWitness(owner)

	initLedger(ctx, owner, totalSupply)
}

func initLedger(ctx storage.Context, owner interop.Hash160, totalSupply int) {
	if storage.Get(ctx, ownerKey) != nil {
		panic(shineconst.ErrAlreadyInitialized)
	}
	if len(owner) != interop.Hash160Len {
		panic(shineconst.ErrInvalidAddress)
	}
	if totalSupply <= 0 {
		panic(shineconst.ErrInvalidSupply)
	}

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, supplyKey, totalSupply)
	storage.Put(ctx, variantKey, shineconst.VariantA)

	putAccount(ctx, owner, Account{
		Balance:   totalSupply,
		FeeExempt: true,
	})

	var mint interop.Hash160
	runtime.Notify("Transfer", mint, owner, totalSupply)
	runtime.Log("shine contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
//
// data is nil or an array with the variant to switch to as the first element,
// the latest variant known to the new code is used by default.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	if !common.HasUpdateAccess(getOwner(ctx)) {
		panic(shineconst.ErrNotOwner)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data, getVariant(ctx)))
	runtime.Log("shine contract updated")
}

// Name returns human readable token name.
func Name() string {
	return token.Name
}

// Symbol is a NEP-17 standard method that returns SHINE token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of Shine
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the fixed amount of
// tokens minted on initialization.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns Shine balance of the
// specified account including its locked part.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic(shineconst.ErrInvalidAddress)
	}

	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers Shine tokens from one
// account to another. It can be invoked only by the account owner.
//
// Fees of the active version are taken from the amount unless one of the
// parties is fee exempt, every credited part produces Transfer notification.
// Transfer fails if the contract is paused, the sender is denylisted or the
// amount touches the sender's locked balance before unlock time.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, data)
}

// Accounts returns iterator over script hashes of all Shine holders.
func Accounts() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{accPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// Version returns the semantic version of the active contract logic.
func Version() string {
	ctx := storage.GetReadOnlyContext()
	return versionTag(getVariant(ctx))
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, supplyKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	acc := getAccount(ctx, holder)

	return acc.Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic(shineconst.ErrInvalidAddress)
	}
	if amount < 0 {
		panic(shineconst.ErrNegativeAmount)
	}

	variant := getVariant(ctx)
	checkNotPaused(ctx)

	if !common.IsUsableAddress(from) {
		runtime.Log("sender witness check failed")
		return false
	}

	sender := getAccount(ctx, from)
	if sender.Denied {
		panic(shineconst.ErrSenderDenylisted)
	}

	sender = debit(ctx, from, sender, amount)
	recipient := getAccount(ctx, to)

	net, fees := computeSplit(ctx, sender, recipient, amount, variant)

	credit(ctx, to, net)
	runtime.Notify("Transfer", from, to, net)

	for _, fee := range fees {
		credit(ctx, fee.Beneficiary, fee.Amount)
		runtime.Notify("Transfer", from, fee.Beneficiary, fee.Amount)
	}

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, net, data)
	}

	return true
}

// debit releases matured grant of the account and withdraws amount from its
// available balance. Updated account is stored and returned.
func debit(ctx storage.Context, addr interop.Hash160, acc Account, amount int) Account {
	acc = releaseMatured(addr, acc)
	checkAvailable(acc, amount)

	acc.Balance -= amount
	putAccount(ctx, addr, acc)

	return acc
}

func credit(ctx storage.Context, addr interop.Hash160, amount int) {
	if amount == 0 {
		return
	}

	acc := getAccount(ctx, addr)
	acc.Balance += amount
	putAccount(ctx, addr, acc)
}

func getAccount(ctx storage.Context, key interop.Hash160) Account {
	data := common.GetSerialized(ctx, append([]byte{accPrefix}, key...))
	if data != nil {
		return data.(Account)
	}

	return Account{}
}

// putAccount stores account state, empty accounts are removed.
func putAccount(ctx storage.Context, key interop.Hash160, acc Account) {
	k := append([]byte{accPrefix}, key...)

	if acc.Balance == 0 && acc.Locked == 0 && !acc.FeeExempt && !acc.Denied {
		storage.Delete(ctx, k)
		return
	}

	common.SetSerialized(ctx, k, acc)
}

// getVariant returns active fee schedule variant. It panics if the contract
// has not been initialized yet.
func getVariant(ctx storage.Context) int {
	v := storage.Get(ctx, variantKey)
	if v == nil {
		panic(shineconst.ErrNotInitialized)
	}

	return v.(int)
}

func versionTag(variant int) string {
	switch variant {
	case shineconst.VariantA:
		return shineconst.VersionA
	case shineconst.VariantB:
		return shineconst.VersionB
	}

	panic(shineconst.ErrVersionMismatch)
}
