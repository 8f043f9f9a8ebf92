package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/shinetoken/shine-contract/contracts/shine/shineconst"
	"github.com/shinetoken/shine-contract/rpc/shine"
	"go.uber.org/zap"
)

// accountList collects repeated -account flags.
type accountList []util.Uint160

func (l *accountList) String() string {
	s := make([]string, len(*l))
	for i := range *l {
		s[i] = address.Uint160ToString((*l)[i])
	}
	return strings.Join(s, ",")
}

func (l *accountList) Set(v string) error {
	acc, err := parseHash(v)
	if err != nil {
		return err
	}
	*l = append(*l, acc)
	return nil
}

// parseHash accepts both Neo addresses and LE script hashes.
func parseHash(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid address or script hash %q", s)
	}

	return h, nil
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddr := flag.String("contract", "", "Shine contract address or script hash")
	contractID := flag.Int("id", 0, "Shine contract ID, used when -contract is not set")
	audit := flag.Bool("audit", false, "Sum up account records from contract storage and compare with total supply")
	debug := flag.Bool("debug", false, "Enable debug logs")

	var accounts accountList
	flag.Var(&accounts, "account", "Account to inspect (can be repeated)")

	flag.Parse()

	logCfg := zap.NewProductionConfig()
	logCfg.Encoding = "console"
	if *debug {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	err = run(logger, inspectPrm{
		rpcEndpoint: *neoRPCEndpoint,
		contract:    *contractAddr,
		contractID:  *contractID,
		accounts:    accounts,
		audit:       *audit,
	})
	if err != nil {
		logger.Fatal("inspection failed", zap.Error(err))
	}

	_ = logger.Sync()
}

// inspectPrm groups command line parameters of run.
type inspectPrm struct {
	rpcEndpoint string
	contract    string
	contractID  int
	accounts    []util.Uint160
	audit       bool
}

func run(logger *zap.Logger, prm inspectPrm) error {
	switch {
	case prm.rpcEndpoint == "":
		return errors.New("missing Neo RPC endpoint")
	case prm.contract == "" && prm.contractID == 0:
		return errors.New("missing Shine contract address or ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	b, err := newRemoteBlockChain(ctx, prm.rpcEndpoint)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", prm.rpcEndpoint, err)
	}
	defer b.close()

	var contract util.Uint160
	if prm.contract != "" {
		contract, err = parseHash(prm.contract)
	} else {
		contract, err = shine.InferHash(b.rpc, int32(prm.contractID))
	}
	if err != nil {
		return fmt.Errorf("resolve Shine contract: %w", err)
	}

	logger.Debug("inspecting Shine contract", zap.Stringer("address", contract))

	r := shine.NewReader(b.invoker, contract)

	err = printToken(os.Stdout, r, prm.accounts)
	if err != nil {
		return fmt.Errorf("read token state: %w", err)
	}

	if prm.audit {
		err = auditSupply(os.Stdout, b, r, contract, logger)
		if err != nil {
			return fmt.Errorf("supply audit: %w", err)
		}
	}

	return nil
}

func printToken(w io.Writer, r *shine.ContractReader, accounts []util.Uint160) error {
	symbol, err := r.Symbol()
	if err != nil {
		return fmt.Errorf("symbol: %w", err)
	}
	decimals, err := r.Decimals()
	if err != nil {
		return fmt.Errorf("decimals: %w", err)
	}
	version, err := r.Version()
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}
	supply, err := r.TotalSupply()
	if err != nil {
		return fmt.Errorf("total supply: %w", err)
	}
	owner, err := r.Owner()
	if err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	paused, err := r.Paused()
	if err != nil {
		return fmt.Errorf("paused: %w", err)
	}
	schedule, err := r.FeeSchedule()
	if err != nil {
		return fmt.Errorf("fee schedule: %w", err)
	}

	fmt.Fprintf(w, "Token:    %s (%d decimals), %s\n", symbol, decimals, version)
	fmt.Fprintf(w, "Supply:   %s\n", fixedn.ToString(supply, int(decimals)))
	fmt.Fprintf(w, "Owner:    %s\n", address.Uint160ToString(owner))
	fmt.Fprintf(w, "Paused:   %t\n", paused)
	fmt.Fprintf(w, "Fees:\n")
	for _, leg := range schedule {
		fmt.Fprintf(w, "\t%-10s %5s%%  %s\n", kindName(leg.Kind),
			fixedn.ToString(leg.Rate, 2), address.Uint160ToString(leg.Wallet))
	}

	for _, acc := range accounts {
		balance, err := r.BalanceOf(acc)
		if err != nil {
			return fmt.Errorf("balance of %s: %w", address.Uint160ToString(acc), err)
		}
		locked, err := r.LockedBalanceOf(acc)
		if err != nil {
			return fmt.Errorf("locked balance of %s: %w", address.Uint160ToString(acc), err)
		}

		fmt.Fprintf(w, "Account %s: balance %s", address.Uint160ToString(acc),
			fixedn.ToString(balance, int(decimals)))
		if locked.Sign() > 0 {
			unlock, err := r.UnlockTimeOf(acc)
			if err != nil {
				return fmt.Errorf("unlock time of %s: %w", address.Uint160ToString(acc), err)
			}
			fmt.Fprintf(w, ", locked %s until %s", fixedn.ToString(locked, int(decimals)),
				time.UnixMilli(unlock.Int64()).UTC().Format(time.RFC3339))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// auditSupply sums up balances of all account records found in the contract
// storage and compares the result with the total supply.
func auditSupply(w io.Writer, b *remoteBlockchain, r *shine.ContractReader, contract util.Uint160, logger *zap.Logger) error {
	supply, err := r.TotalSupply()
	if err != nil {
		return fmt.Errorf("total supply: %w", err)
	}

	var (
		sum     = new(big.Int)
		locked  = new(big.Int)
		holders int
	)

	err = b.iterateContractStorage(contract, func(key, value []byte) error {
		acc, state, ok, err := shine.DecodeAccountEntry(key, value)
		if !ok {
			return nil
		}
		if err != nil {
			return err
		}

		logger.Debug("account record", zap.Stringer("account", acc),
			zap.Stringer("balance", state.Balance), zap.Stringer("locked", state.Locked))

		holders++
		sum.Add(sum, state.Balance)
		locked.Add(locked, state.Locked)
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate contract storage: %w", err)
	}

	fmt.Fprintf(w, "Audit:    %d accounts, %s in balances, %s locked\n", holders, sum, locked)

	if sum.Cmp(supply) != 0 {
		return errors.New("balances don't sum up to total supply " + supply.String())
	}

	return nil
}

func kindName(kind *big.Int) string {
	if !kind.IsInt64() {
		return kind.String()
	}

	switch kind.Int64() {
	case shineconst.Charity:
		return "charity"
	case shineconst.Marketing:
		return "marketing"
	case shineconst.Liquidity:
		return "liquidity"
	case shineconst.Treasury:
		return "treasury"
	}

	return kind.String()
}
