package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/shinetoken/shine-contract/contracts/shine/shineconst"
	"github.com/stretchr/testify/require"
)

const shinePath = "../contracts/shine"

// shineSupply is 10 billion tokens with 18 decimals.
var shineSupply = new(big.Int).Mul(big.NewInt(10_000_000_000),
	new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

func compileShine(t *testing.T, e *neotest.Executor) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, shinePath, path.Join(shinePath, "config.yml"))
}

// newShineInvoker deploys initialized Shine contract and returns invoker
// signed by its owner.
func newShineInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	ctr := compileShine(t, e)

	owner := e.NewAccount(t)
	e.DeployContract(t, ctr, []any{owner.ScriptHash(), shineSupply})

	return e.NewInvoker(ctr.Hash, owner)
}

func ownerOf(c *neotest.ContractInvoker) util.Uint160 {
	return c.Signers[0].ScriptHash()
}

// checkHash160 compares Hash160 returned by the method with the expected one.
// Contract returns stored hashes as buffers, so only bytes are compared.
func checkHash160(t *testing.T, c *neotest.ContractInvoker, expected util.Uint160, method string, args ...any) {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	b, err := s.Pop().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, expected.BytesBE(), b, "unexpected result of %s", method)
}

func checkBalance(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160, expected int64) {
	checkBigBalance(t, c, acc, big.NewInt(expected))
}

func checkBigBalance(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160, expected *big.Int) {
	s, err := c.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	require.Equal(t, 0, expected.Cmp(s.Pop().BigInt()),
		"unexpected balance of %s", acc.StringLE())
}

func checkLocked(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160, expected int64) {
	s, err := c.TestInvoke(t, "lockedBalanceOf", acc)
	require.NoError(t, err)
	require.Equal(t, expected, s.Pop().BigInt().Int64())
}

func unlockTimeOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) uint64 {
	s, err := c.TestInvoke(t, "unlockTimeOf", acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Uint64()
}

// checkSupply sums balances of all holders and compares it to the total supply.
func checkSupply(t *testing.T, c *neotest.ContractInvoker) {
	s, err := c.TestInvoke(t, "accounts")
	require.NoError(t, err)

	holders := iteratorToArray(s.Pop().Interop().Value().(*storage.Iterator))

	sum := new(big.Int)
	for i := range holders {
		key, err := holders[i].TryBytes()
		require.NoError(t, err)

		acc, err := util.Uint160DecodeBytesBE(key)
		require.NoError(t, err)

		s, err := c.TestInvoke(t, "balanceOf", acc)
		require.NoError(t, err)
		sum.Add(sum, s.Pop().BigInt())
	}

	s, err = c.TestInvoke(t, "totalSupply")
	require.NoError(t, err)
	require.Equal(t, 0, sum.Cmp(s.Pop().BigInt()), "balances don't sum up to total supply")
}

func transferEvent(from, to util.Uint160, amount int64) stackitem.Item {
	return stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(from.BytesBE()),
		stackitem.NewByteArray(to.BytesBE()),
		stackitem.Make(amount),
	})
}

func TestShineGeneric(t *testing.T) {
	c := newShineInvoker(t)
	owner := ownerOf(c)

	c.Invoke(t, "SHINE", "symbol")
	c.Invoke(t, "Shine", "name")
	c.Invoke(t, 18, "decimals")
	c.Invoke(t, shineSupply, "totalSupply")
	checkHash160(t, c, owner, "owner")
	c.Invoke(t, shineconst.VersionA, "version")
	c.Invoke(t, false, "paused")
	c.Invoke(t, true, "isFeeExempt", owner)

	checkBigBalance(t, c, owner, shineSupply)
	checkBalance(t, c, c.NewAccount(t).ScriptHash(), 0)
	checkSupply(t, c)

	c.InvokeFail(t, shineconst.ErrInvalidAddress, "balanceOf", []byte{1, 2, 3})
}

func TestShineInitialize(t *testing.T) {
	e := newExecutor(t)
	ctr := compileShine(t, e)
	e.DeployContract(t, ctr, nil)

	owner := e.NewAccount(t)
	other := e.NewAccount(t)
	c := e.NewInvoker(ctr.Hash, owner)
	cOther := c.WithSigners(other)

	t.Run("not initialized", func(t *testing.T) {
		c.InvokeFail(t, shineconst.ErrNotInitialized, "owner")
		c.InvokeFail(t, shineconst.ErrNotInitialized, "version")
		c.InvokeFail(t, shineconst.ErrNotInitialized, "transfer",
			owner.ScriptHash(), other.ScriptHash(), 1, nil)
		c.InvokeFail(t, shineconst.ErrNotInitialized, "pause")
		c.Invoke(t, 0, "totalSupply")
	})

	c.InvokeFail(t, shineconst.ErrInvalidSupply, "initialize", owner.ScriptHash(), 0)
	cOther.InvokeFail(t, shineconst.ErrNotOwner, "initialize", owner.ScriptHash(), 1000)

	h := c.Invoke(t, stackitem.Null{}, "initialize", owner.ScriptHash(), 1000)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Null{},
		stackitem.NewByteArray(owner.ScriptHash().BytesBE()),
		stackitem.Make(1000),
	}), aer.Events[0].Item)

	c.Invoke(t, 1000, "totalSupply")
	checkBalance(t, c, owner.ScriptHash(), 1000)

	c.InvokeFail(t, shineconst.ErrAlreadyInitialized, "initialize", owner.ScriptHash(), 1000)
	cOther.InvokeFail(t, shineconst.ErrAlreadyInitialized, "initialize", other.ScriptHash(), 1000)

	t.Run("initialized on deploy", func(t *testing.T) {
		c := newShineInvoker(t)
		c.InvokeFail(t, shineconst.ErrAlreadyInitialized, "initialize", ownerOf(c), 1000)
	})
}

func TestShineTransfer(t *testing.T) {
	c := newShineInvoker(t)
	owner := ownerOf(c)

	a, b := c.NewAccount(t), c.NewAccount(t)
	cA := c.WithSigners(a)

	// Owner is fee exempt.
	h := c.Invoke(t, true, "transfer", owner, a.ScriptHash(), 10_000, nil)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, transferEvent(owner, a.ScriptHash(), 10_000), aer.Events[0].Item)
	checkBalance(t, c, a.ScriptHash(), 10_000)

	t.Run("invalid arguments", func(t *testing.T) {
		cA.InvokeFail(t, shineconst.ErrNegativeAmount, "transfer",
			a.ScriptHash(), b.ScriptHash(), -1, nil)
		cA.InvokeFail(t, shineconst.ErrInvalidAddress, "transfer",
			a.ScriptHash(), []byte{1}, 1, nil)
	})

	t.Run("not witnessed", func(t *testing.T) {
		cB := c.WithSigners(b)
		cB.Invoke(t, false, "transfer", a.ScriptHash(), b.ScriptHash(), 100, nil)
		checkBalance(t, c, a.ScriptHash(), 10_000)
		checkBalance(t, c, b.ScriptHash(), 0)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		cA.InvokeFail(t, shineconst.ErrInsufficientBalance, "transfer",
			a.ScriptHash(), b.ScriptHash(), 10_001, nil)
	})

	t.Run("zero amount", func(t *testing.T) {
		cA.Invoke(t, true, "transfer", a.ScriptHash(), b.ScriptHash(), 0, nil)
		checkBalance(t, c, a.ScriptHash(), 10_000)
	})

	cA.Invoke(t, true, "transfer", a.ScriptHash(), b.ScriptHash(), 10_000, nil)
	checkBalance(t, c, a.ScriptHash(), 0)
	checkBalance(t, c, b.ScriptHash(), 9_200)
	checkSupply(t, c)
}
