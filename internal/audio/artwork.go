package audio

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// jpegQuality is used when re-encoding normalized artwork.
const jpegQuality = 90

// NormalizeArtwork scales embedded cover art down so its longest edge
// is at most maxEdge pixels and re-encodes it as JPEG. Aspect ratio is
// preserved and images are never upscaled.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Returns the normalized bytes and whether anything changed: JPEG data
// already within bounds is passed through untouched.
//
// Example:
//
//	data, changed, err := NormalizeArtwork(pic.Picture, 800)
//	// A 1500x1000 PNG becomes an 800x533 JPEG
//	// A 600x600 JPEG comes back unchanged
func NormalizeArtwork(data []byte, maxEdge int) ([]byte, bool, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	longest := max(width, height)

	if longest <= maxEdge && format == "jpeg" {
		return data, false, nil
	}

	if longest > maxEdge {
		scale := float64(maxEdge) / float64(longest)
		width = max(int(float64(width)*scale+0.5), 1)
		height = max(int(float64(height)*scale+0.5), 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}
