package shine

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ContractName is the manifest name of Shine token contract.
const ContractName = "Shine"

// ContractStateGetter is the interface required for contract state resolution
// using a known contract ID.
type ContractStateGetter interface {
	GetContractStateByID(int32) (*state.Contract, error)
}

// InferHash resolves Shine contract hash by its ID. It fails if the contract
// deployed under the ID is not Shine.
func InferHash(sg ContractStateGetter, id int32) (util.Uint160, error) {
	c, err := sg.GetContractStateByID(id)
	if err != nil {
		return util.Uint160{}, err
	}

	if c.Manifest.Name != ContractName {
		return util.Uint160{}, fmt.Errorf("contract #%d is %q, not %s", id, c.Manifest.Name, ContractName)
	}

	return c.Hash, nil
}

// ContractHash returns hash of Shine contract deployed by the given sender
// from NEF with the given checksum.
func ContractHash(sender util.Uint160, nefChecksum uint32) util.Uint160 {
	return state.CreateContractHash(sender, nefChecksum, ContractName)
}
