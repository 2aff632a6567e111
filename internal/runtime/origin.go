package runtime

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

type OriginKind uint8

const (
	OriginNone OriginKind = iota
	OriginRoot
	OriginSigned
)

// Origin is the identity a call is dispatched under.
type Origin struct {
	Kind    OriginKind
	Account AccountID
}

func Root() Origin {
	return Origin{Kind: OriginRoot}
}

func Signed(account AccountID) Origin {
	return Origin{Kind: OriginSigned, Account: account}
}

func None() Origin {
	return Origin{Kind: OriginNone}
}

func (o Origin) String() string {
	switch o.Kind {
	case OriginRoot:
		return "root"
	case OriginSigned:
		return fmt.Sprintf("signed(%s)", o.Account)
	default:
		return "none"
	}
}

// EnsureSigned returns the signing account or ErrBadOrigin.
func EnsureSigned(origin Origin) (AccountID, error) {
	if origin.Kind != OriginSigned || origin.Account == "" {
		return "", errorsmod.Wrapf(ErrBadOrigin, "expected signed origin, got %s", origin)
	}
	return origin.Account, nil
}

// EnsureOrigin decides whether an origin is allowed to perform a privileged call.
type EnsureOrigin interface {
	EnsureOrigin(origin Origin) error
}

type EnsureRoot struct{}

func (EnsureRoot) EnsureOrigin(origin Origin) error {
	if origin.Kind != OriginRoot {
		return errorsmod.Wrapf(ErrBadOrigin, "expected root origin, got %s", origin)
	}
	return nil
}

// EnsureSignedAny accepts any signed origin.
type EnsureSignedAny struct{}

func (EnsureSignedAny) EnsureOrigin(origin Origin) error {
	_, err := EnsureSigned(origin)
	return err
}

// EnsureSignedBy accepts signed origins from a fixed set of accounts.
type EnsureSignedBy struct {
	accounts map[AccountID]struct{}
}

func NewEnsureSignedBy(accounts ...AccountID) EnsureSignedBy {
	set := make(map[AccountID]struct{}, len(accounts))
	for _, account := range accounts {
		set[account] = struct{}{}
	}
	return EnsureSignedBy{accounts: set}
}

func (e EnsureSignedBy) EnsureOrigin(origin Origin) error {
	account, err := EnsureSigned(origin)
	if err != nil {
		return err
	}
	if _, ok := e.accounts[account]; !ok {
		return errorsmod.Wrapf(ErrBadOrigin, "%s is not an authorized signer", account)
	}
	return nil
}

// EnsureRootOr accepts root, or whatever the inner policy accepts.
type EnsureRootOr struct {
	Inner EnsureOrigin
}

func (e EnsureRootOr) EnsureOrigin(origin Origin) error {
	if origin.Kind == OriginRoot {
		return nil
	}
	return e.Inner.EnsureOrigin(origin)
}
