package binary

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp" //nolint:staticcheck // Using ProtonMail's maintained fork
)

// Verifier checks detached OpenPGP signatures on downloaded archives.
// Verification is opt-in: a Verifier is only constructed when the host
// configures a keyring for the server's releases.
type Verifier struct {
	keyringPath string
}

// NewVerifier creates a verifier using the public key(s) at keyringPath.
// The file may be ASCII-armored or binary.
func NewVerifier(keyringPath string) *Verifier {
	return &Verifier{keyringPath: keyringPath}
}

// VerifyDetached verifies artifactPath against the detached signature at
// signaturePath. Both armored and binary signatures are accepted.
func (v *Verifier) VerifyDetached(artifactPath, signaturePath string) error {
	keyring, err := v.loadKeyring()
	if err != nil {
		return fmt.Errorf("load keyring: %w", err)
	}

	artifact, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer artifact.Close()

	sigData, err := os.ReadFile(signaturePath)
	if err != nil {
		return fmt.Errorf("read signature: %w", err)
	}

	_, err = openpgp.CheckArmoredDetachedSignature(keyring, artifact, bytes.NewReader(sigData), nil)
	if err == nil {
		return nil
	}

	// Retry as a non-armored signature; the artifact reader must be rewound
	if _, seekErr := artifact.Seek(0, 0); seekErr != nil {
		return fmt.Errorf("rewind artifact: %w", seekErr)
	}

	if _, err := openpgp.CheckDetachedSignature(keyring, artifact, bytes.NewReader(sigData), nil); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	return nil
}

// loadKeyring reads the configured public keyring from disk.
func (v *Verifier) loadKeyring() (openpgp.EntityList, error) {
	data, err := os.ReadFile(v.keyringPath)
	if err != nil {
		return nil, fmt.Errorf("read keyring file: %w", err)
	}

	keyring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err == nil {
		return keyring, nil
	}

	keyring, err = openpgp.ReadKeyRing(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse keyring: %w", err)
	}

	return keyring, nil
}
