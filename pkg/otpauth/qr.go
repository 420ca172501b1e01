package otpauth

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// QR renders the provisioning URL as a QR code image of the given
// pixel dimensions, ready for an authenticator app to scan.
func (u *URL) QR(width, height int) (image.Image, error) {
	code, err := qr.Encode(u.String(), qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("otpauth: failed to encode qr code: %w", err)
	}
	code, err = barcode.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("otpauth: failed to scale qr code: %w", err)
	}
	return code, nil
}
