package util

import (
	"bytes"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 通过嗅探文件头判断类型，不信任客户端上报的 Content-Type
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}

// FitImage 将图片等比缩放到 maxWidth x maxHeight 以内，保持原格式
func FitImage(reader io.Reader, maxWidth, maxHeight int, ext string) (*bytes.Reader, int64, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		format = imaging.JPEG
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, format); err != nil {
		return nil, 0, err
	}

	return bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil
}
