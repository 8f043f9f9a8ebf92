package shine

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// AccountPrefix is the storage key prefix of Shine account records.
const AccountPrefix = 'a'

// AccountState is a Shine account record as stored by the contract.
type AccountState struct {
	Balance    *big.Int
	Locked     *big.Int
	UnlockTime *big.Int
	FeeExempt  bool
	Denied     bool
}

// FromStackItem retrieves fields of AccountState from the given
// [stackitem.Item]. Fields appended by newer contract versions are ignored.
func (a *AccountState) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) < 5 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	if a.Balance, err = arr[0].TryInteger(); err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}
	if a.Locked, err = arr[1].TryInteger(); err != nil {
		return fmt.Errorf("field Locked: %w", err)
	}
	if a.UnlockTime, err = arr[2].TryInteger(); err != nil {
		return fmt.Errorf("field UnlockTime: %w", err)
	}
	if a.FeeExempt, err = arr[3].TryBool(); err != nil {
		return fmt.Errorf("field FeeExempt: %w", err)
	}
	if a.Denied, err = arr[4].TryBool(); err != nil {
		return fmt.Errorf("field Denied: %w", err)
	}

	return nil
}

// DecodeAccountEntry decodes contract storage entry of an account record. ok
// is false for entries of other kinds.
func DecodeAccountEntry(key, value []byte) (util.Uint160, *AccountState, bool, error) {
	if len(key) != 1+util.Uint160Size || key[0] != AccountPrefix {
		return util.Uint160{}, nil, false, nil
	}

	acc, err := util.Uint160DecodeBytesBE(key[1:])
	if err != nil {
		return util.Uint160{}, nil, true, err
	}

	item, err := stackitem.Deserialize(value)
	if err != nil {
		return acc, nil, true, fmt.Errorf("deserialize account %s: %w", acc.StringLE(), err)
	}

	res := new(AccountState)
	if err = res.FromStackItem(item); err != nil {
		return acc, nil, true, fmt.Errorf("account %s: %w", acc.StringLE(), err)
	}

	return acc, res, true, nil
}
