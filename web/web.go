package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static
var embedded embed.FS

// Assets is the browser client rooted at the static directory.
var Assets fs.FS

func init() {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(fmt.Sprintf("web: static assets: %v", err))
	}
	Assets = sub
}

// Register serves the landing page at / and every other asset by path.
// Paths that match neither an API route nor an asset get a JSON 404.
func Register(r *gin.Engine) {
	files := http.FS(Assets)
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", files)
	})
	r.NoRoute(func(c *gin.Context) {
		name := strings.TrimPrefix(c.Request.URL.Path, "/")
		if c.Request.Method == http.MethodGet && name != "" {
			if info, err := fs.Stat(Assets, name); err == nil && !info.IsDir() {
				c.FileFromFS(c.Request.URL.Path, files)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
