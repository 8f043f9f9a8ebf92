package shine

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/shinetoken/shine-contract/contracts/shine/shineconst"
)

type (
	// FeeLeg is a single entry of the fee schedule.
	FeeLeg struct {
		// Beneficiary kind, see shineconst
		Kind int
		// Fee rate in basis points
		Rate int
		// Account receiving the fee
		Wallet interop.Hash160
	}

	// feeShare is a fee taken from a particular transfer.
	feeShare struct {
		Beneficiary interop.Hash160
		Amount      int
	}
)

const (
	charityWalletKey   = "wc"
	marketingWalletKey = "wm"
	liquidityWalletKey = "wl"

	// fees of not configured beneficiaries are held here.
	zeroAddress = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"
)

// SetCharityWallet sets account receiving charity fees. It can be invoked only
// by the owner.
//
// It produces WalletUpdated notification.
func SetCharityWallet(wallet interop.Hash160) {
	setWallet(shineconst.Charity, wallet)
}

// SetMarketingWallet sets account receiving marketing fees. It can be invoked
// only by the owner.
//
// It produces WalletUpdated notification.
func SetMarketingWallet(wallet interop.Hash160) {
	setWallet(shineconst.Marketing, wallet)
}

// SetLiquidityWallet sets account receiving liquidity fees. It can be invoked
// only by the owner.
//
// It produces WalletUpdated notification.
func SetLiquidityWallet(wallet interop.Hash160) {
	setWallet(shineconst.Liquidity, wallet)
}

// CharityWallet returns account receiving charity fees.
func CharityWallet() interop.Hash160 {
	return getWallet(storage.GetReadOnlyContext(), shineconst.Charity)
}

// MarketingWallet returns account receiving marketing fees.
func MarketingWallet() interop.Hash160 {
	return getWallet(storage.GetReadOnlyContext(), shineconst.Marketing)
}

// LiquidityWallet returns account receiving liquidity fees.
func LiquidityWallet() interop.Hash160 {
	return getWallet(storage.GetReadOnlyContext(), shineconst.Liquidity)
}

// FeeSchedule returns fee legs of the active version with the accounts
// they are paid to.
func FeeSchedule() []FeeLeg {
	ctx := storage.GetReadOnlyContext()
	schedule := scheduleOf(getVariant(ctx))

	for i := range schedule {
		schedule[i].Wallet = getWallet(ctx, schedule[i].Kind)
	}

	return schedule
}

// FeeRate returns fee rate of the beneficiary in basis points, zero if the
// active version doesn't pay it. Available since v1.0.0.
func FeeRate(kind int) int {
	if kind < shineconst.Charity || kind > shineconst.Treasury {
		panic(shineconst.ErrUnknownBeneficiary)
	}

	ctx := storage.GetReadOnlyContext()
	variant := getVariant(ctx)
	if variant < shineconst.VariantB {
		panic(shineconst.ErrUnsupportedByVersion)
	}

	for _, leg := range scheduleOf(variant) {
		if leg.Kind == kind {
			return leg.Rate
		}
	}

	return 0
}

// scheduleOf returns fee legs of the variant without wallets.
func scheduleOf(variant int) []FeeLeg {
	switch variant {
	case shineconst.VariantA:
		return []FeeLeg{
			{Kind: shineconst.Charity, Rate: 200},
			{Kind: shineconst.Marketing, Rate: 200},
			{Kind: shineconst.Liquidity, Rate: 200},
			{Kind: shineconst.Treasury, Rate: 200},
		}
	case shineconst.VariantB:
		return []FeeLeg{
			{Kind: shineconst.Charity, Rate: 300},
			{Kind: shineconst.Liquidity, Rate: 200},
			{Kind: shineconst.Treasury, Rate: 200},
		}
	}

	panic(shineconst.ErrVersionMismatch)
}

// computeSplit returns the part of amount credited to the recipient and fees
// taken from it. Fees are rounded down, the remainder stays with the
// recipient. Zero fees are omitted.
func computeSplit(ctx storage.Context, from, to Account, amount, variant int) (int, []feeShare) {
	fees := []feeShare{}

	if from.FeeExempt || to.FeeExempt {
		return amount, fees
	}

	net := amount
	for _, leg := range scheduleOf(variant) {
		fee := amount * leg.Rate / shineconst.BasisPoints
		if fee == 0 {
			continue
		}

		net -= fee
		fees = append(fees, feeShare{
			Beneficiary: getWallet(ctx, leg.Kind),
			Amount:      fee,
		})
	}

	return net, fees
}

func setWallet(kind int, wallet interop.Hash160) {
	if len(wallet) != interop.Hash160Len {
		panic(shineconst.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	checkOwner(ctx)

	storage.Put(ctx, walletKey(kind), wallet)
	runtime.Notify("WalletUpdated", kind, wallet)
}

// getWallet returns account receiving fees of the given kind. Unset wallets
// resolve to the zero address.
func getWallet(ctx storage.Context, kind int) interop.Hash160 {
	if kind == shineconst.Treasury {
		return getOwner(ctx)
	}

	wallet := storage.Get(ctx, walletKey(kind))
	if wallet == nil {
		return interop.Hash160(zeroAddress)
	}

	return wallet.(interop.Hash160)
}

func walletKey(kind int) string {
	switch kind {
	case shineconst.Charity:
		return charityWalletKey
	case shineconst.Marketing:
		return marketingWalletKey
	case shineconst.Liquidity:
		return liquidityWalletKey
	}

	panic(shineconst.ErrUnknownBeneficiary)
}
