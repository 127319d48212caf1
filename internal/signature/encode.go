package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
)

const dataURLPrefix = "data:image/png;base64,"

var ErrInvalidDataURL = errors.New("signature: invalid png data url")

// EncodeDataURL serializa a imagem no mesmo formato que o armazenamento
// da ficha espera: PNG em base64, estável em forma e tamanho.
func EncodeDataURL(img image.Image) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// PNG sobre um raster em memória não falha; mantido por contrato.
		return dataURLPrefix
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// ParseDataURL valida e decodifica uma assinatura vinda do cliente.
// String vazia significa "ainda não assinada" e não é erro do chamador.
func ParseDataURL(s string) (image.Image, error) {
	if !strings.HasPrefix(s, dataURLPrefix) {
		return nil, ErrInvalidDataURL
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, dataURLPrefix))
	if err != nil {
		return nil, ErrInvalidDataURL
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidDataURL
	}
	return img, nil
}
