package imaging

import (
	"encoding/base64"
	"testing"
)

func TestDecodeBase64_BareBody(t *testing.T) {
	t.Parallel()

	raw := []byte{0xff, 0xd8, 0xff, 0xe0}
	data, ext, err := DecodeBase64(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("DecodeBase64 err=%v", err)
	}
	if ext != "jpg" {
		t.Fatalf("ext=%q, want jpg", ext)
	}
	if string(data) != string(raw) {
		t.Fatalf("data=%v, want %v", data, raw)
	}
}

func TestDecodeBase64_DataURIPNG(t *testing.T) {
	t.Parallel()

	raw := []byte{0x89, 'P', 'N', 'G'}
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	data, ext, err := DecodeBase64(payload)
	if err != nil {
		t.Fatalf("DecodeBase64 err=%v", err)
	}
	if ext != "png" {
		t.Fatalf("ext=%q, want png", ext)
	}
	if string(data) != string(raw) {
		t.Fatalf("unexpected data %v", data)
	}
}

func TestDecodeBase64_MIMECaseInsensitive(t *testing.T) {
	t.Parallel()

	payload := "data:IMAGE/PNG;base64," + base64.StdEncoding.EncodeToString([]byte("x"))
	_, ext, err := DecodeBase64(payload)
	if err != nil {
		t.Fatalf("DecodeBase64 err=%v", err)
	}
	if ext != "png" {
		t.Fatalf("ext=%q, want png for uppercase mime", ext)
	}
}

func TestDecodeBase64_UnknownMIMEStoredAsJpg(t *testing.T) {
	t.Parallel()

	payload := "data:image/webp;base64," + base64.StdEncoding.EncodeToString([]byte("x"))
	_, ext, err := DecodeBase64(payload)
	if err != nil {
		t.Fatalf("DecodeBase64 err=%v", err)
	}
	if ext != "jpg" {
		t.Fatalf("ext=%q, want jpg for non-png mime", ext)
	}
}

func TestDecodeBase64_Rejections(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"malformed data uri": "data:image/png,no-base64-marker",
		"invalid base64":     "!!!not-base64!!!",
		"empty body":         "",
	}
	for name, payload := range cases {
		if _, _, err := DecodeBase64(payload); err == nil {
			t.Errorf("%s: expected error for %q", name, payload)
		}
	}
}
