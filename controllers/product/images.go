package productcontroller

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// imageField is the multipart form field carrying product image files.
const imageField = "productImages"

// maxImageSize caps each uploaded file at 2MB.
const maxImageSize = 2 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// validateImageFiles rejects anything that is not a reasonably sized raster
// image before a single byte hits the disk.
func validateImageFiles(files []*multipart.FileHeader) error {
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExtensions[ext] {
			return fmt.Errorf("file %q is not an allowed image type", file.Filename)
		}
		if file.Size > maxImageSize {
			return fmt.Errorf("file %q exceeds the 2MB size limit", file.Filename)
		}
	}
	return nil
}

// saveProductImages stores the uploaded files under uploadDir with generated
// names and returns their public URLs in upload order. If any save fails the
// files written so far are removed, so the caller never has to track partial
// state.
func saveProductImages(c *gin.Context, files []*multipart.FileHeader, uploadDir string) ([]string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		filename := fmt.Sprintf("%s-%d%s", imageField, time.Now().UnixNano(), ext)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
			removeImageFiles(uploadDir, urls)
			return nil, fmt.Errorf("save %s: %w", filename, err)
		}
		urls = append(urls, publicImageURL(c, filename))
	}
	return urls, nil
}

// publicImageURL builds the URL under which the stored file is served.
func publicImageURL(c *gin.Context, filename string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/public/uploads/%s", scheme, c.Request.Host, filename)
}

// removeImageFile deletes the stored file behind a public URL. A file that is
// already gone is only worth a warning; the row it belonged to is gone too.
func removeImageFile(uploadDir, storedURL string) {
	parsed, err := url.Parse(storedURL)
	if err != nil {
		log.Printf("⚠️ Could not parse stored image URL %q: %v", storedURL, err)
		return
	}
	filename := path.Base(parsed.Path)
	if filename == "." || filename == "/" {
		log.Printf("⚠️ Stored image URL %q has no filename", storedURL)
		return
	}
	if err := os.Remove(filepath.Join(uploadDir, filename)); err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️ Image file already missing: %s", filename)
			return
		}
		log.Printf("❌ Failed to delete image file %s: %v", filename, err)
	}
}

func removeImageFiles(uploadDir string, storedURLs []string) {
	for _, storedURL := range storedURLs {
		removeImageFile(uploadDir, storedURL)
	}
}
