// Package shine contains RPC wrappers for Shine token contract.
package shine

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// FeeLeg is a contract-specific shine.FeeLeg type used by its methods.
type FeeLeg struct {
	Kind *big.Int
	Rate *big.Int
	Wallet util.Uint160
}

// GrantEvent represents "Grant" event emitted by the contract.
type GrantEvent struct {
	To util.Uint160
	Amount *big.Int
	UnlockTime *big.Int
}

// ReleaseEvent represents "Release" event emitted by the contract.
type ReleaseEvent struct {
	Account util.Uint160
	Amount *big.Int
}

// UpgradedEvent represents "Upgraded" event emitted by the contract.
type UpgradedEvent struct {
	Version string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker

	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// Accounts invokes `accounts` method of contract.
func (c *ContractReader) Accounts() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "accounts"))
}

// AccountsExpanded is similar to Accounts (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) AccountsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "accounts", _numOfIteratorItems))
}

// CharityWallet invokes `charityWallet` method of contract.
func (c *ContractReader) CharityWallet() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "charityWallet"))
}

// FeeRate invokes `feeRate` method of contract.
func (c *ContractReader) FeeRate(kind *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "feeRate", kind))
}

// FeeSchedule invokes `feeSchedule` method of contract.
func (c *ContractReader) FeeSchedule() ([]*FeeLeg, error) {
	return func (item stackitem.Item, err error) ([]*FeeLeg, error) {
		if err != nil {
			return nil, err
		}
		return func (item stackitem.Item) ([]*FeeLeg, error) {
			arr, ok := item.Value().([]stackitem.Item)
			if !ok {
				return nil, errors.New("not an array")
			}
			res := make([]*FeeLeg, len(arr))
			for i := range res {
				res[i], err = itemToFeeLeg(arr[i], nil)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
			return res, nil
		} (item)
	} (unwrap.Item(c.invoker.Call(c.hash, "feeSchedule")))
}

// IsDenylisted invokes `isDenylisted` method of contract.
func (c *ContractReader) IsDenylisted(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isDenylisted", account))
}

// IsFeeExempt invokes `isFeeExempt` method of contract.
func (c *ContractReader) IsFeeExempt(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isFeeExempt", account))
}

// LiquidityWallet invokes `liquidityWallet` method of contract.
func (c *ContractReader) LiquidityWallet() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "liquidityWallet"))
}

// LockedBalanceOf invokes `lockedBalanceOf` method of contract.
func (c *ContractReader) LockedBalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lockedBalanceOf", account))
}

// MarketingWallet invokes `marketingWallet` method of contract.
func (c *ContractReader) MarketingWallet() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "marketingWallet"))
}

// Name invokes `name` method of contract.
func (c *ContractReader) Name() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "name"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Paused invokes `paused` method of contract.
func (c *ContractReader) Paused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "paused"))
}

// UnlockTimeOf invokes `unlockTimeOf` method of contract.
func (c *ContractReader) UnlockTimeOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "unlockTimeOf", account))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "version"))
}

// Airdrop creates a transaction invoking `airdrop` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Airdrop(recipients []any, amount *big.Int, lockDays *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "airdrop", recipients, amount, lockDays)
}

// AirdropTransaction creates a transaction invoking `airdrop` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AirdropTransaction(recipients []any, amount *big.Int, lockDays *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "airdrop", recipients, amount, lockDays)
}

// AirdropUnsigned creates a transaction invoking `airdrop` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AirdropUnsigned(recipients []any, amount *big.Int, lockDays *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "airdrop", nil, recipients, amount, lockDays)
}

// Initialize creates a transaction invoking `initialize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Initialize(owner util.Uint160, totalSupply *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initialize", owner, totalSupply)
}

// InitializeTransaction creates a transaction invoking `initialize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeTransaction(owner util.Uint160, totalSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initialize", owner, totalSupply)
}

// InitializeUnsigned creates a transaction invoking `initialize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeUnsigned(owner util.Uint160, totalSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initialize", nil, owner, totalSupply)
}

// Pause creates a transaction invoking `pause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pause")
}

// PauseTransaction creates a transaction invoking `pause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pause")
}

// PauseUnsigned creates a transaction invoking `pause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pause", nil)
}

// SetCharityWallet creates a transaction invoking `setCharityWallet` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCharityWallet(wallet util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCharityWallet", wallet)
}

// SetCharityWalletTransaction creates a transaction invoking `setCharityWallet` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCharityWalletTransaction(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCharityWallet", wallet)
}

// SetCharityWalletUnsigned creates a transaction invoking `setCharityWallet` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCharityWalletUnsigned(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCharityWallet", nil, wallet)
}

// SetDenylisted creates a transaction invoking `setDenylisted` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetDenylisted(account util.Uint160, denied bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setDenylisted", account, denied)
}

// SetDenylistedTransaction creates a transaction invoking `setDenylisted` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetDenylistedTransaction(account util.Uint160, denied bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setDenylisted", account, denied)
}

// SetDenylistedUnsigned creates a transaction invoking `setDenylisted` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetDenylistedUnsigned(account util.Uint160, denied bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setDenylisted", nil, account, denied)
}

// SetFeeExempt creates a transaction invoking `setFeeExempt` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFeeExempt(account util.Uint160, exempt bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFeeExempt", account, exempt)
}

// SetFeeExemptTransaction creates a transaction invoking `setFeeExempt` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeeExemptTransaction(account util.Uint160, exempt bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFeeExempt", account, exempt)
}

// SetFeeExemptUnsigned creates a transaction invoking `setFeeExempt` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeeExemptUnsigned(account util.Uint160, exempt bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFeeExempt", nil, account, exempt)
}

// SetLiquidityWallet creates a transaction invoking `setLiquidityWallet` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetLiquidityWallet(wallet util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setLiquidityWallet", wallet)
}

// SetLiquidityWalletTransaction creates a transaction invoking `setLiquidityWallet` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetLiquidityWalletTransaction(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setLiquidityWallet", wallet)
}

// SetLiquidityWalletUnsigned creates a transaction invoking `setLiquidityWallet` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetLiquidityWalletUnsigned(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setLiquidityWallet", nil, wallet)
}

// SetMarketingWallet creates a transaction invoking `setMarketingWallet` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMarketingWallet(wallet util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMarketingWallet", wallet)
}

// SetMarketingWalletTransaction creates a transaction invoking `setMarketingWallet` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMarketingWalletTransaction(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMarketingWallet", wallet)
}

// SetMarketingWalletUnsigned creates a transaction invoking `setMarketingWallet` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMarketingWalletUnsigned(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMarketingWallet", nil, wallet)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Unpause creates a transaction invoking `unpause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unpause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unpause")
}

// UnpauseTransaction creates a transaction invoking `unpause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnpauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unpause")
}

// UnpauseUnsigned creates a transaction invoking `unpause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnpauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unpause", nil)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToFeeLeg converts stack item into *FeeLeg.
func itemToFeeLeg(item stackitem.Item, err error) (*FeeLeg, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FeeLeg)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FeeLeg from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FeeLeg) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Kind, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	res.Rate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rate: %w", err)
	}

	index++
	res.Wallet, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Wallet: %w", err)
	}

	return nil
}

// GrantEventsFromApplicationLog retrieves a set of all emitted events
// with "Grant" name from the provided [result.ApplicationLog].
func GrantEventsFromApplicationLog(log *result.ApplicationLog) ([]*GrantEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*GrantEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Grant" {
				continue
			}
			event := new(GrantEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize GrantEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to GrantEvent or
// returns an error if it's not possible to do to so.
func (e *GrantEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.UnlockTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UnlockTime: %w", err)
	}

	return nil
}

// ReleaseEventsFromApplicationLog retrieves a set of all emitted events
// with "Release" name from the provided [result.ApplicationLog].
func ReleaseEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReleaseEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReleaseEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Release" {
				continue
			}
			event := new(ReleaseEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReleaseEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReleaseEvent or
// returns an error if it's not possible to do to so.
func (e *ReleaseEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// UpgradedEventsFromApplicationLog retrieves a set of all emitted events
// with "Upgraded" name from the provided [result.ApplicationLog].
func UpgradedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UpgradedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UpgradedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Upgraded" {
				continue
			}
			event := new(UpgradedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UpgradedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UpgradedEvent or
// returns an error if it's not possible to do to so.
func (e *UpgradedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Version, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Version: %w", err)
	}

	return nil
}
