package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash err=%v", err)
	}
	if !Verify("hunter2", hash) {
		t.Fatalf("expected hash to verify")
	}
	if Verify("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must fail closed")
	}
}
