package sigverify

import "testing"

func TestSignAndVerifyRoundTrip(t *testing.T) {
	kp := NewKeyPairFromBytes([32]byte{1, 2, 3, 4, 5})
	msg := []byte("spend transaction payload")

	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewVerifier()
	if !v.Verify(kp.PublicKey(), msg, sig) {
		t.Fatalf("verify should accept a signature made by the signing key over the same message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	kp := NewKeyPairFromBytes([32]byte{1, 2, 3})
	other := NewKeyPairFromBytes([32]byte{9, 9, 9})
	msg := []byte("payload")

	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewVerifier()
	if v.Verify(other.PublicKey(), msg, sig) {
		t.Fatalf("verify should reject a signature checked against the wrong public key")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	kp := NewKeyPairFromBytes([32]byte{7, 7, 7})
	sig, err := kp.Sign([]byte("original"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewVerifier()
	if v.Verify(kp.PublicKey(), []byte("tampered"), sig) {
		t.Fatalf("verify should reject a signature over a different message")
	}
}

func TestVerifyRejectsMalformedKey(t *testing.T) {
	v := NewVerifier()
	var badKey [32]byte // all-zero is not a valid x-only curve point
	if v.Verify(badKey, []byte("msg"), [64]byte{}) {
		t.Fatalf("verify should reject a malformed public key rather than panic")
	}
}
