package imaging

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeError reports an invalid upload payload. It is a client error: the
// request can be retried after fixing the input.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return e.Reason }

const dataURIMarker = "data:"
const base64Delim = ";base64,"

// DecodeBase64 parses an uploaded image payload into raw bytes plus the file
// extension to store it under.
//
// The payload is either a bare base64 body (stored as jpg) or a data URI
// "data:<mime>;base64,<body>". MIME detection is prefix-based and
// case-insensitive: image/png maps to png, anything else maps to jpg. A
// non-PNG, non-JPEG upload is therefore stored with a .jpg extension and will
// likely not render; that classification is part of the contract, not
// something to second-guess here.
func DecodeBase64(payload string) ([]byte, string, error) {
	body := payload
	ext := "jpg"
	if strings.HasPrefix(payload, dataURIMarker) {
		rest := payload[len(dataURIMarker):]
		mime, b64, ok := strings.Cut(rest, base64Delim)
		if !ok {
			return nil, "", &DecodeError{Reason: "invalid payload: expected data:image/...;base64,..."}
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(mime)), "image/png") {
			ext = "png"
		}
		body = b64
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(body))
	if err != nil {
		return nil, "", &DecodeError{Reason: fmt.Sprintf("invalid base64: %v", err)}
	}
	if len(data) == 0 {
		return nil, "", &DecodeError{Reason: "empty image"}
	}
	return data, ext, nil
}
