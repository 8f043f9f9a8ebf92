/*
Package shine implements Shine contract, a NEP-17 token with a fixed supply,
transfer fees, time-locked airdrops and owner controlled access restrictions.

The whole supply is minted to the owner on initialization. Every transfer
between accounts that are not fee exempt pays fees of the active version to
the charity, marketing and liquidity wallets and to the owner (treasury).
Fees are rounded down, the remainder goes to the recipient. Fees of a wallet
which has not been configured yet are held by the zero address.

	v0.1.0: charity 2%, marketing 2%, liquidity 2%, treasury 2%
	v1.0.0: charity 3%, liquidity 2%, treasury 2%

Tokens distributed with Airdrop are locked until the unlock time. The lock is
released by the first transfer from the account after that moment, reading
methods never release it. Transfers of the unlocked part are allowed at any
time. Airdrop of zero amount neither grants nor extends a lock. Recipients
of transfers and airdrops which are deployed contracts get onNEP17Payment
call, fee wallets never do.

Owner can pause the contract, denylist senders, exempt accounts from fees and
update the contract. Update moves the contract to the next version while the
storage layout is kept.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. A transfer
with fees produces one notification per recipient of the value.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Grant notification. This notification is produced when airdropped tokens are
locked on the account.

	Grant:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: unlockTime
	    type: Integer

Release notification. This notification is produced when the lock of the
account is released.

	Release:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

Paused and Unpaused notifications are produced when the owner switches the
pause state.

	Paused:
	  - name: account
	    type: Hash160

DenylistUpdated, FeeExemptUpdated, WalletUpdated and OwnershipTransferred
notifications reflect configuration changes, Upgraded notification contains
new version of the contract.

	Upgraded:
	  - name: version
	    type: String
*/
package shine

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'o' -> interop.Hash160
    contract owner
  - 's' -> int
    total supply
  - 'v' -> int
    active fee schedule variant
  - 'p' -> int
    set if the contract is paused
  - 'wc', 'wm', 'wl' -> interop.Hash160
    charity, marketing and liquidity wallets
  - a<interop.Hash160> -> std.Serialize(Account)
    balance sheet of all holders (here Account is a structure defined in current package)

# Accounting
Sum of all Account balances is always equal to the total supply. Keys are never
reused for other data, new versions can only add keys and append fields to Account.
*/
