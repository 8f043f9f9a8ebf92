package tests

import (
	"encoding/json"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/shinetoken/shine-contract/contracts/shine/shineconst"
	"github.com/stretchr/testify/require"
)

func TestShineUpdate(t *testing.T) {
	e := newExecutor(t)
	ctr := compileShine(t, e)

	owner := e.NewAccount(t)
	e.DeployContract(t, ctr, []any{owner.ScriptHash(), shineSupply})

	c := e.NewInvoker(ctr.Hash, owner)
	w := setFeeWallets(t, c)

	a, b, d := c.NewAccount(t), c.NewAccount(t), c.NewAccount(t)
	cA := c.WithSigners(a)

	c.Invoke(t, true, "transfer", owner.ScriptHash(), a.ScriptHash(), 20_000, nil)
	airdrop(t, c, 5_000, 90, b.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "setDenylisted", d.ScriptHash(), true)
	unlock := unlockTimeOf(t, c, b.ScriptHash())

	rawNef, err := ctr.NEF.Bytes()
	require.NoError(t, err)
	rawManifest, err := json.Marshal(ctr.Manifest)
	require.NoError(t, err)

	cA.InvokeFail(t, shineconst.ErrNotOwner, "update", rawNef, rawManifest, nil)
	c.InvokeFail(t, shineconst.ErrVersionMismatch, "update", rawNef, rawManifest, []any{shineconst.VariantA})
	c.InvokeFail(t, shineconst.ErrVersionMismatch, "update", rawNef, rawManifest, []any{shineconst.LatestVariant + 1})
	c.Invoke(t, shineconst.VersionA, "version")

	h := c.Invoke(t, stackitem.Null{}, "update", rawNef, rawManifest, nil)
	aer := c.CheckHalt(t, h)

	var upgraded bool
	for _, ev := range aer.Events {
		if ev.Name == "Upgraded" {
			require.Equal(t, ctr.Hash, ev.ScriptHash)
			require.Equal(t, stackitem.NewArray([]stackitem.Item{
				stackitem.Make(shineconst.VersionB),
			}), ev.Item)
			upgraded = true
		}
	}
	require.True(t, upgraded, "missing Upgraded notification")

	c.Invoke(t, shineconst.VersionB, "version")

	// State survives the update.
	c.Invoke(t, shineSupply, "totalSupply")
	checkHash160(t, c, owner.ScriptHash(), "owner")
	checkBalance(t, c, a.ScriptHash(), 20_000)
	checkBalance(t, c, b.ScriptHash(), 5_000)
	checkLocked(t, c, b.ScriptHash(), 5_000)
	require.Equal(t, unlock, unlockTimeOf(t, c, b.ScriptHash()))
	c.Invoke(t, true, "isDenylisted", d.ScriptHash())
	c.Invoke(t, true, "isFeeExempt", owner.ScriptHash())
	checkHash160(t, c, w.charity, "charityWallet")
	checkSupply(t, c)

	c.Invoke(t, 300, "feeRate", shineconst.Charity)
	c.Invoke(t, 0, "feeRate", shineconst.Marketing)
	c.Invoke(t, 200, "feeRate", shineconst.Liquidity)
	c.Invoke(t, 200, "feeRate", shineconst.Treasury)
	checkFeeSchedule(t, c, []feeLeg{
		{shineconst.Charity, 300, w.charity},
		{shineconst.Liquidity, 200, w.liquidity},
		{shineconst.Treasury, 200, owner.ScriptHash()},
	})

	h = cA.Invoke(t, true, "transfer", a.ScriptHash(), d.ScriptHash(), 10_000, nil)
	aer = cA.CheckHalt(t, h)
	require.Equal(t, 4, len(aer.Events))
	require.Equal(t, transferEvent(a.ScriptHash(), d.ScriptHash(), 9_300), aer.Events[0].Item)
	require.Equal(t, transferEvent(a.ScriptHash(), w.charity, 300), aer.Events[1].Item)
	require.Equal(t, transferEvent(a.ScriptHash(), w.liquidity, 200), aer.Events[2].Item)
	require.Equal(t, transferEvent(a.ScriptHash(), owner.ScriptHash(), 200), aer.Events[3].Item)
	checkBalance(t, c, w.marketing, 0)

	c.InvokeFail(t, shineconst.ErrAlreadyUpdated, "update", rawNef, rawManifest, nil)
	c.Invoke(t, shineconst.VersionB, "version")
}
