package router

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(gin.IRoutes)
}

type Router struct {
	engine    *gin.Engine
	health    Handler
	resources []Handler
	metrics   *metrics.Metrics
	staticDir string
}

type RouterConfig struct {
	StaticDir  string
	CORSConfig cors.Config
	Metrics    *metrics.Metrics
}

func NewRouter(config RouterConfig, health Handler, resources ...Handler) *Router {
	engine := gin.New()

	m := config.Metrics
	if m == nil {
		m = metrics.New("clinic_api")
	}

	r := &Router{
		engine:    engine,
		health:    health,
		resources: resources,
		metrics:   m,
		staticDir: config.StaticDir,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(m),
		middleware.Recovery(),
		middleware.CORS(config.CORSConfig),
		middleware.NoStore(),
	)

	return r
}

func (r *Router) Setup() {
	r.health.RegisterRoutes(r.engine)
	r.engine.GET("/metrics", handler.MetricsHandler(r.metrics.Handler()))

	for _, h := range r.resources {
		h.RegisterRoutes(r.engine)
	}

	r.engine.GET("/", r.index)
	r.engine.NoRoute(r.static())
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) index(c *gin.Context) {
	c.File(filepath.Join(r.staticDir, "index.html"))
}

// static serves regular files below the static directory for GET and HEAD.
// Hidden paths and the configuration files LoadConfig reads are never
// served. Anything else falls through to gin's 404.
func (r *Router) static() gin.HandlerFunc {
	root := http.Dir(r.staticDir)
	files := http.FileServer(root)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			return
		}
		name := path.Clean("/" + c.Request.URL.Path)
		if !servable(name) || !isFile(root, name) {
			return
		}
		c.Status(http.StatusOK)
		files.ServeHTTP(c.Writer, c.Request)
	}
}

// servable rejects any dot segment (.env, .git/config) and the config.yml /
// config/ locations viper searches.
func servable(name string) bool {
	segments := strings.Split(strings.TrimPrefix(name, "/"), "/")
	for _, segment := range segments {
		if strings.HasPrefix(segment, ".") {
			return false
		}
	}

	first := segments[0]
	if first == "config" {
		return false
	}
	ext := path.Ext(first)
	if strings.TrimSuffix(first, ext) == "config" && configExts[ext] {
		return false
	}
	return true
}

var configExts = map[string]bool{
	".yml":  true,
	".yaml": true,
	".json": true,
	".toml": true,
	".env":  true,
}

func isFile(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
