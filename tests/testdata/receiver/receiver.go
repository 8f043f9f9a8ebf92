package receiver

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	countKey  = "c"
	amountKey = "a"
	senderKey = "s"
	tokenKey  = "t"
)

// OnNEP17Payment records the payment.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	storage.Put(ctx, countKey, Payments()+1)
	storage.Put(ctx, amountKey, amount)
	storage.Put(ctx, senderKey, from)
	storage.Put(ctx, tokenKey, runtime.GetCallingScriptHash())
}

// Payments returns number of received payments.
func Payments() int {
	v := storage.Get(storage.GetReadOnlyContext(), countKey)
	if v == nil {
		return 0
	}
	return v.(int)
}

// LastAmount returns amount of the last payment.
func LastAmount() int {
	v := storage.Get(storage.GetReadOnlyContext(), amountKey)
	if v == nil {
		return 0
	}
	return v.(int)
}

// LastSender returns sender of the last payment.
func LastSender() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), senderKey).(interop.Hash160)
}

// LastToken returns hash of the token contract of the last payment.
func LastToken() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), tokenKey).(interop.Hash160)
}
