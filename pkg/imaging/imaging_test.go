package imaging

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name  string
		color core.Color
		want  [3]uint8
	}{
		{"black", core.Black(), [3]uint8{0, 0, 0}},
		{"white", core.White(), [3]uint8{255, 255, 255}},
		{"overexposed clamps", core.NewColor(4, 2, 1), [3]uint8{255, 255, 255}},
		{"negative clamps", core.NewColor(-1, 0, 0), [3]uint8{0, 0, 0}},
		{"gamma brightens", core.NewColor(0.25, 0.25, 0.25), [3]uint8{127, 127, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGBA(tt.color, 2.0)
			if got.R != tt.want[0] || got.G != tt.want[1] || got.B != tt.want[2] || got.A != 255 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestImage_RegionToRGBA(t *testing.T) {
	img := NewImage(4, 3)
	img.Set(2, 1, core.White())

	region := img.RegionToRGBA(image.Rect(2, 1, 4, 3), 2.0)
	if region.Bounds().Dx() != 2 || region.Bounds().Dy() != 2 {
		t.Fatalf("expected 2x2 region, got %v", region.Bounds())
	}
	if region.RGBAAt(0, 0).R != 255 {
		t.Errorf("expected white at region origin, got %v", region.RGBAAt(0, 0))
	}
	if region.RGBAAt(1, 1).R != 0 {
		t.Errorf("expected black elsewhere, got %v", region.RGBAAt(1, 1))
	}
}

func TestEncodePNG(t *testing.T) {
	img := NewImage(8, 6)

	tests := []struct {
		name         string
		opts         PNGOptions
		wantW, wantH int
	}{
		{"full size", PNGOptions{}, 8, 6},
		{"preview both sides", PNGOptions{PreviewWidth: 4, PreviewHeight: 2}, 4, 2},
		{"preview keeps aspect", PNGOptions{PreviewWidth: 4}, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := PNGBytes(img, tt.opts)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			decoded, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded.Bounds().Dx() != tt.wantW || decoded.Bounds().Dy() != tt.wantH {
				t.Errorf("expected %dx%d, got %v", tt.wantW, tt.wantH, decoded.Bounds())
			}
		})
	}
}

func TestEncodeGIF(t *testing.T) {
	frames := []*Image{NewImage(5, 5), NewImage(5, 5), NewImage(5, 5)}
	frames[1].Set(2, 2, core.White())

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 4, 0); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded.Image) != 3 {
		t.Errorf("expected 3 frames, got %d", len(decoded.Image))
	}
	for i, d := range decoded.Delay {
		if d != 4 {
			t.Errorf("frame %d: expected delay 4, got %d", i, d)
		}
	}
}

func TestEncodeGIF_Empty(t *testing.T) {
	if err := EncodeGIF(io.Discard, nil, 4, 0); !errors.Is(err, ErrEmptyAnimation) {
		t.Errorf("expected ErrEmptyAnimation, got %v", err)
	}
}

func TestGIFDelay(t *testing.T) {
	if got := GIFDelay(time.Second / 25); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := GIFDelay(time.Millisecond); got != 1 {
		t.Errorf("expected minimum delay 1, got %d", got)
	}
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sink := NewFileSink(dir)

	if err := sink.Write(context.Background(), "out.png", "image/png", []byte("data")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("expected file contents 'data', got %q", got)
	}
}

func TestFileSink_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewFileSink(t.TempDir()).Write(ctx, "x", "", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type fakeUploader struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeUploader) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(input.Body)
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Sink_Write(t *testing.T) {
	client := &fakeUploader{}
	sink := NewS3SinkWithClient(client, "renders", "frames")

	if err := sink.Write(context.Background(), "scene.gif", "image/gif", []byte("gifdata")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("expected one upload, got %d", len(client.inputs))
	}

	in := client.inputs[0]
	if aws.StringValue(in.Bucket) != "renders" {
		t.Errorf("bucket: got %q", aws.StringValue(in.Bucket))
	}
	if aws.StringValue(in.Key) != "frames/scene.gif" {
		t.Errorf("key: got %q", aws.StringValue(in.Key))
	}
	if aws.StringValue(in.ContentType) != "image/gif" {
		t.Errorf("content type: got %q", aws.StringValue(in.ContentType))
	}
	if aws.Int64Value(in.ContentLength) != 7 || string(client.bodies[0]) != "gifdata" {
		t.Errorf("body mismatch: %q (%d)", client.bodies[0], aws.Int64Value(in.ContentLength))
	}
}

func TestS3Sink_WrapsError(t *testing.T) {
	uploadErr := errors.New("access denied")
	sink := NewS3SinkWithClient(&fakeUploader{err: uploadErr}, "b", "")

	if err := sink.Write(context.Background(), "x.png", "image/png", nil); !errors.Is(err, uploadErr) {
		t.Errorf("expected wrapped upload error, got %v", err)
	}
}

func TestNewS3Sink_RequiresBucket(t *testing.T) {
	if _, err := NewS3Sink(S3Config{}); !errors.Is(err, ErrMissingBucket) {
		t.Errorf("expected ErrMissingBucket, got %v", err)
	}
}

func TestS3ConfigFromEnv(t *testing.T) {
	t.Setenv("S3_BUCKET", "bucket")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("S3_PREFIX", "p")

	cfg := S3ConfigFromEnv()
	if cfg.Bucket != "bucket" || cfg.Region != "us-east-1" || cfg.Prefix != "p" {
		t.Errorf("unexpected config %+v", cfg)
	}
}
