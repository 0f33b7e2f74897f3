package photo

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/beautylink/salon-scheduler/internal/httperr"
)

// Mesmas regras do formulário original: só raster comum, teto de 2MB,
// recorte quadrado centralizado e saída WebP 400x400 a 80% de qualidade.
const (
	MaxUploadBytes = 2 * 1024 * 1024
	OutputSize     = 400
	webpQuality    = 80
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func AllowedContentType(ct string) bool {
	return allowedTypes[ct]
}

// Process valida, recorta e recomprime a foto do funcionário.
// Devolve os bytes WebP prontos para upload.
func Process(contentType string, data []byte) ([]byte, error) {
	if !AllowedContentType(contentType) {
		return nil, httperr.ErrBusiness("unsupported_photo_format")
	}

	if len(data) > MaxUploadBytes {
		return nil, httperr.ErrBusiness("photo_too_large")
	}

	img, err := decode(contentType, data)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_photo")
	}

	square := centerCrop(img)

	dst := image.NewRGBA(image.Rect(0, 0, OutputSize, OutputSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), square, square.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decode(contentType string, data []byte) (image.Image, error) {
	r := bytes.NewReader(data)

	switch contentType {
	case "image/jpeg":
		return jpeg.Decode(r)
	case "image/png":
		return png.Decode(r)
	default:
		return webp.Decode(r)
	}
}

func centerCrop(img image.Image) image.Image {
	b := img.Bounds()

	size := b.Dx()
	if b.Dy() < size {
		size = b.Dy()
	}

	x0 := b.Min.X + (b.Dx()-size)/2
	y0 := b.Min.Y + (b.Dy()-size)/2

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Draw(dst, dst.Bounds(), img, image.Pt(x0, y0), xdraw.Src)
	return dst
}
