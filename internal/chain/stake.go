package chain

import "github.com/holiman/uint256"

// Candidate is a self-nominated validator candidate.
type Candidate struct {
	Address          string
	Deposit          *uint256.Int
	NominationEndsAt uint64
	Metadata         []byte
}

// Prisoner is a jailed former validator.
type Prisoner struct {
	Address      string
	Deposit      *uint256.Int
	CustodyUntil uint64
	ReleasedAt   uint64
}

// Validator is a member of the current validator set.
type Validator struct {
	Address    string
	Weight     *uint256.Int
	Delegation *uint256.Int
	Deposit    *uint256.Int
	PublicKey  string
}

// Stakeholder holds stake tokens. Stake is undelegated plus delegated-out balance.
type Stakeholder struct {
	Address string
	Stake   *uint256.Int
}
