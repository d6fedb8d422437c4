package pasetotoken

import (
	"strings"

	paseto "aidanwoods.dev/go-paseto"
)

type Mode string

const (
	ModeLocal  Mode = "local"  // v4.local (encrypted)
	ModePublic Mode = "public" // v4.public (signed)
)

// Keys holds the parsed key material for one mode. Exactly one of the
// symmetric or asymmetric sides is populated.
type Keys struct {
	Mode Mode

	Symmetric *paseto.V4SymmetricKey

	Secret *paseto.V4AsymmetricSecretKey
	Public *paseto.V4AsymmetricPublicKey
}

// KeyStrings is the hex form keys arrive in from config.
type KeyStrings struct {
	Mode Mode

	SymmetricHex string

	SecretHex string
	PublicHex string
}

// LoadKeys parses hex key material for the selected mode. In public mode
// a secret key alone is enough (the public half is derived); a public key
// alone yields a verify-only key set, which is what API nodes that never
// issue tokens run with.
func LoadKeys(in KeyStrings) (Keys, error) {
	switch in.Mode {
	case ModeLocal:
		return loadLocal(in.SymmetricHex)
	case ModePublic:
		return loadPublic(in.SecretHex, in.PublicHex)
	default:
		return Keys{}, ErrConfig{Msg: "unknown mode (use local|public)"}
	}
}

func loadLocal(symHex string) (Keys, error) {
	symHex = strings.TrimSpace(symHex)
	if symHex == "" {
		return Keys{}, ErrConfig{Msg: "local mode requires a symmetric key"}
	}
	k, err := paseto.V4SymmetricKeyFromHex(symHex)
	if err != nil {
		return Keys{}, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
	}
	return Keys{Mode: ModeLocal, Symmetric: &k}, nil
}

func loadPublic(secHex, pubHex string) (Keys, error) {
	out := Keys{Mode: ModePublic}

	if s := strings.TrimSpace(secHex); s != "" {
		sk, err := paseto.NewV4AsymmetricSecretKeyFromHex(s)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid secret key hex: " + err.Error()}
		}
		pk := sk.Public()
		out.Secret = &sk
		out.Public = &pk
	}
	if p := strings.TrimSpace(pubHex); p != "" {
		pk, err := paseto.NewV4AsymmetricPublicKeyFromHex(p)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid public key hex: " + err.Error()}
		}
		out.Public = &pk
	}

	if out.Secret == nil && out.Public == nil {
		return Keys{}, ErrConfig{Msg: "public mode requires a secret and/or public key"}
	}
	return out, nil
}

// NewLocalKeys generates a fresh symmetric key, mainly for tests.
func NewLocalKeys() Keys {
	k := paseto.NewV4SymmetricKey()
	return Keys{Mode: ModeLocal, Symmetric: &k}
}

// NewPublicKeys generates a fresh signing key pair, mainly for tests.
func NewPublicKeys() Keys {
	sk := paseto.NewV4AsymmetricSecretKey()
	pk := sk.Public()
	return Keys{Mode: ModePublic, Secret: &sk, Public: &pk}
}
