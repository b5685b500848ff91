package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Extensions accepted for observation images. FITS is included for the
// positioning module; the solver handles it natively.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".fits": true,
	".fit":  true,
}

func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save stores an uploaded image under <baseDir>/<subfolder>/ with a unique
// name and returns the relative path that gets persisted with the record.
func Save(ctx *fiber.Ctx, file *multipart.FileHeader, baseDir, subfolder string) (string, error) {
	if file.Filename == "" {
		return "", fmt.Errorf("empty filename")
	}
	if !Allowed(file.Filename) {
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(file.Filename))
	}

	dir := filepath.Join(baseDir, subfolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8], ext)
	path := filepath.Join(dir, name)

	if err := ctx.SaveFile(file, path); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}
