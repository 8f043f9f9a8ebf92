package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

const (
	// ErrVersionMismatch is thrown by CheckVersion in case of error.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion if current version equals to
	// the latest version known to the contract code.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion checks that contract data of the `from` version can be moved
// to the `to` version. Versions only advance and `to` must be known to the
// code being deployed (not greater than `latest`).
func CheckVersion(from, to, latest int) {
	if from >= latest {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(latest, 10))
	}
	if to <= from || to > latest {
		panic(ErrVersionMismatch + ": expected >" + std.Itoa(from, 10) +
			" and <=" + std.Itoa(latest, 10))
	}
}

// AppendVersion appends current contract version to the list of update
// arguments.
func AppendVersion(data any, version int) []any {
	if data == nil {
		return []any{version}
	}
	return append(data.([]any), version)
}
