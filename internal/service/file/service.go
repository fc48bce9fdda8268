package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding
	"io"
	"math"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxPhotoBytes    = 150 * 1024
	minPhotoBytes    = 50 * 1024
	targetPhotoBytes = 100 * 1024
)

type FileService interface {
	// UploadRecordPhoto compresses a clock photo and stores it under
	// records/{local date}/. It returns the public URL of the stored file.
	UploadRecordPhoto(ctx context.Context, employeeID string, day time.Time, file io.Reader, filename string, recordType string) (string, error)

	// DeleteByURL removes a file previously returned by UploadRecordPhoto.
	DeleteByURL(ctx context.Context, url string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
	baseURL string
}

func NewFileService(storage storage.FileStorage, baseURL string) FileService {
	return &fileServiceImpl{
		storage: storage,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// UploadRecordPhoto implements FileService.
func (s *fileServiceImpl) UploadRecordPhoto(ctx context.Context, employeeID string, day time.Time, file io.Reader, filename string, recordType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, maxPhotoBytes, minPhotoBytes)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	// records/{date}/{employeeID}-{recordType}-{uuid}.jpg, always JPEG after compression
	name := fmt.Sprintf("%s-%s-%s.jpg", employeeID, recordType, uuid.New().String())
	key := path.Join("records", day.Format("2006-01-02"), name)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), key, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload record photo: %w", err)
	}

	return s.storage.GetURL(ctx, uploadedPath, 0)
}

// DeleteByURL implements FileService.
func (s *fileServiceImpl) DeleteByURL(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, s.baseURL+"/")
	return s.storage.Delete(ctx, key)
}

// compressImage re-encodes an image as JPEG until it lands in [minSize, maxSize].
// Quality is lowered first, then the image is scaled down.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Already a JPEG of acceptable size.
	if len(buffer) <= maxSize && len(buffer) >= minSize && isJPEG(buffer) {
		return buffer, nil
	}

	var compressed []byte
	for quality := 85; quality >= 50; quality -= 5 {
		compressed, err = encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
		if len(compressed) <= maxSize {
			return compressed, nil
		}
	}

	bounds := img.Bounds()
	ratio := math.Sqrt(float64(targetPhotoBytes) / float64(len(compressed)))
	width := max(int(float64(bounds.Dx())*ratio), 1)
	height := max(int(float64(bounds.Dy())*ratio), 1)

	return encodeJPEG(resizeImage(img, width, height), 70)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// isJPEG checks the JPEG SOI marker.
func isJPEG(b []byte) bool {
	return len(b) > 2 && b[0] == 0xFF && b[1] == 0xD8
}

// resizeImage scales src with CatmullRom interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
