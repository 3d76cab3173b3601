package binary

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp" //nolint:staticcheck // Using ProtonMail's maintained fork
)

// signingFixture generates a throwaway OpenPGP key, writes its public half
// to a keyring file, and returns the entity plus the keyring path.
func signingFixture(t *testing.T) (*openpgp.Entity, string) {
	t.Helper()

	entity, err := openpgp.NewEntity("lsprov test", "", "test@example.invalid", nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	var pub bytes.Buffer
	if err := entity.Serialize(&pub); err != nil {
		t.Fatalf("serialize public key: %v", err)
	}

	keyringPath := filepath.Join(t.TempDir(), "keyring.gpg")
	if err := os.WriteFile(keyringPath, pub.Bytes(), 0644); err != nil {
		t.Fatalf("write keyring: %v", err)
	}

	return entity, keyringPath
}

// signFile writes a detached binary signature for path next to it.
func signFile(t *testing.T, entity *openpgp.Entity, path string) string {
	t.Helper()

	artifact, err := os.Open(path)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer artifact.Close()

	var sig bytes.Buffer
	if err := openpgp.DetachSign(&sig, entity, artifact, nil); err != nil {
		t.Fatalf("sign artifact: %v", err)
	}

	sigPath := path + ".sig"
	if err := os.WriteFile(sigPath, sig.Bytes(), 0644); err != nil {
		t.Fatalf("write signature: %v", err)
	}
	return sigPath
}

func TestVerifyDetached(t *testing.T) {
	entity, keyringPath := signingFixture(t)

	artifactPath := filepath.Join(t.TempDir(), "server.tar.gz")
	if err := os.WriteFile(artifactPath, []byte("archive bytes"), 0644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	sigPath := signFile(t, entity, artifactPath)

	v := NewVerifier(keyringPath)
	if err := v.VerifyDetached(artifactPath, sigPath); err != nil {
		t.Errorf("VerifyDetached failed for valid signature: %v", err)
	}
}

func TestVerifyDetachedTampered(t *testing.T) {
	entity, keyringPath := signingFixture(t)

	tmpDir := t.TempDir()
	artifactPath := filepath.Join(tmpDir, "server.tar.gz")
	if err := os.WriteFile(artifactPath, []byte("original"), 0644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	sigPath := signFile(t, entity, artifactPath)

	// Tamper after signing
	if err := os.WriteFile(artifactPath, []byte("tampered"), 0644); err != nil {
		t.Fatalf("tamper artifact: %v", err)
	}

	v := NewVerifier(keyringPath)
	if err := v.VerifyDetached(artifactPath, sigPath); err == nil {
		t.Error("expected verification failure for tampered artifact")
	}
}

func TestVerifyDetachedWrongKey(t *testing.T) {
	signer, _ := signingFixture(t)
	_, otherKeyring := signingFixture(t)

	artifactPath := filepath.Join(t.TempDir(), "server.tar.gz")
	if err := os.WriteFile(artifactPath, []byte("archive"), 0644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	sigPath := signFile(t, signer, artifactPath)

	v := NewVerifier(otherKeyring)
	if err := v.VerifyDetached(artifactPath, sigPath); err == nil {
		t.Error("expected verification failure with wrong keyring")
	}
}

func TestVerifyDetachedMissingFiles(t *testing.T) {
	entity, keyringPath := signingFixture(t)

	artifactPath := filepath.Join(t.TempDir(), "server.tar.gz")
	if err := os.WriteFile(artifactPath, []byte("archive"), 0644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	sigPath := signFile(t, entity, artifactPath)

	v := NewVerifier(keyringPath)
	if err := v.VerifyDetached(artifactPath, sigPath+".missing"); err == nil {
		t.Error("expected error for missing signature")
	}

	v = NewVerifier(keyringPath + ".missing")
	if err := v.VerifyDetached(artifactPath, sigPath); err == nil {
		t.Error("expected error for missing keyring")
	}
}
