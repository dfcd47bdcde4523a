package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Recorder stitches day frames into a motion-JPEG AVI.
type Recorder struct {
	avi  mjpeg.AviWriter
	buf  bytes.Buffer
	opts jpeg.Options
}

// NewRecorder creates the output file. Every frame added later must match
// width x height.
func NewRecorder(path string, width, height, fps int) (*Recorder, error) {
	avi, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Recorder{avi: avi, opts: jpeg.Options{Quality: 90}}, nil
}

// AddFrame JPEG-encodes img and appends it to the video.
func (r *Recorder) AddFrame(img image.Image) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &r.opts); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := r.avi.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("append frame: %w", err)
	}
	return nil
}

// Close finalizes the AVI index and closes the file.
func (r *Recorder) Close() error {
	if err := r.avi.Close(); err != nil {
		return fmt.Errorf("close video: %w", err)
	}
	return nil
}
