package service

import (
	"bytes"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// qrPrefix marks decoded QR payloads (issuance verification codes) in page text.
const qrPrefix = "QR: "

// decodeQRCode returns the payload of a QR code on the page, if any.
func decodeQRCode(img image.Image) (string, bool) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", false
	}
	return result.GetText(), true
}

// decodeQRCodeBytes decodes an encoded image before looking for a QR code.
func decodeQRCodeBytes(data []byte) (string, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", false
	}
	return decodeQRCode(img)
}
