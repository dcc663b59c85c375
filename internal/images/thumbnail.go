package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const thumbMaxDim = 256

// DecodeBase64 aceita base64 puro ou data-URI ("data:image/png;base64,...").
func DecodeBase64(photo string) ([]byte, error) {
	if idx := strings.Index(photo, ";base64,"); idx >= 0 {
		photo = photo[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(photo)
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	return raw, nil
}

func ContentType(raw []byte) string {
	return http.DetectContentType(raw)
}

// Thumbnail gera uma miniatura webp (base64) a partir da foto em base64.
// Blobs que não decodificam como imagem voltam erro; o chamador decide
// seguir sem miniatura.
func Thumbnail(photo string) (string, error) {
	raw, err := DecodeBase64(photo)
	if err != nil {
		return "", err
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	dst := scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= thumbMaxDim && h <= thumbMaxDim {
		return src
	}

	if w >= h {
		h = h * thumbMaxDim / w
		w = thumbMaxDim
	} else {
		w = w * thumbMaxDim / h
		h = thumbMaxDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
