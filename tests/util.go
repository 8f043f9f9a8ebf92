package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// skipTo persists an empty block so that the next invocation (and test
// invocation) is executed at ts.
func skipTo(t *testing.T, e *neotest.Executor, ts uint64) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = ts - 1 // next block is produced with +1 timestamp
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}
