package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	gingzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// maxRequestBody caps the decompressed size of a request body. Kick and auth
// payloads are a few hundred bytes at most.
const maxRequestBody = 1 << 20

// Compression gzips responses for clients that accept it. /metrics is skipped
// because promhttp negotiates its own encoding.
func Compression() gin.HandlerFunc {
	return gingzip.Gzip(gingzip.DefaultCompression, gingzip.WithExcludedPaths([]string{"/metrics"}))
}

// DecompressRequest transparently handles gzip encoded requests.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, reader, maxRequestBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
