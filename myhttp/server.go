package myhttp

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/iservices"
	"github.com/slackernews/paygate/iservices/service-configs"
	"github.com/slackernews/paygate/node"
)

const (
	requestIDKey    = "requestId"
	requestIDHeader = "X-Request-Id"
	shutdownTimeout = 5 * time.Second
)

// MyHttp serves the gateway over http.
type MyHttp struct {
	cfg     service_configs.HTTPConfig
	paygate iservices.IPayGateService
	srv     *http.Server
	log     *logrus.Logger
}

// NewMyHttp must be registered after the paygate service.
func NewMyHttp(ctx *node.ServiceContext) (*MyHttp, error) {
	s, err := ctx.Service(iservices.PayGateServerName)
	if err != nil {
		return nil, errors.Wrap(err, "http needs the paygate service")
	}
	h := &MyHttp{cfg: ctx.Config().HTTP, paygate: s.(iservices.IPayGateService), log: logrus.New()}
	if l, err := ctx.Service(iservices.LogServerName); err == nil {
		h.log = l.(iservices.ILog).GetLog()
	}
	return h, nil
}

func (h *MyHttp) Start(n *node.Node) error {
	gate := h.paygate.Gateway()
	if gate == nil {
		return errors.New("paygate service is not running")
	}

	h.srv = &http.Server{
		Addr:              h.cfg.Listen,
		Handler:           NewRouter(gate, h.cfg.HTTPCors, h.log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.log.Errorf("ListenAndServe(): %s", err)
		}
	}()
	h.log.WithField("listen", h.cfg.Listen).Info("http server started")
	return nil
}

func (h *MyHttp) Stop() error {
	if h.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.srv.Shutdown(ctx)
}

// NewRouter builds the gin engine serving gate.
func NewRouter(gate iservices.IPayGate, cors []string, log *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(log), allowOrigins(cors))
	registerRoutes(r, gate)
	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start),
			"request": c.GetString(requestIDKey),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
		} else {
			entry.Debug("request served")
		}
	}
}

func allowOrigins(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowed["*"] || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
