// Package til validates the signature of the type-information section. The
// section's contents are a separate, unspecified format and are not decoded
// here — only the six-byte signature is checked.
package til

import "github.com/laenix/idbgo/errs"

const signature = "IDATIL"

// Section is a validated but otherwise opaque til payload.
type Section struct {
	Raw []byte
}

// Parse checks the signature and wraps the raw payload.
func Parse(buf []byte) (*Section, error) {
	if len(buf) < len(signature) {
		return nil, errs.New(errs.Corrupt, "til: payload shorter than signature")
	}
	if string(buf[:len(signature)]) != signature {
		return nil, errs.New(errs.BadSignature, "til: bad signature %q", buf[:len(signature)])
	}
	return &Section{Raw: buf}, nil
}

// Validate re-checks the signature.
func (s *Section) Validate() error {
	if len(s.Raw) < len(signature) || string(s.Raw[:len(signature)]) != signature {
		return errs.New(errs.BadSignature, "til: bad signature")
	}
	return nil
}
