package security

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"skillcal_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsHeaders = strings.Join([]string{"Content-Type", "Content-Length", "Accept", "Authorization", "Cache-Control", "X-Requested-With"}, ", ")
)

// CORS 只回显白名单中的 Origin，"*" 表示全部放行
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		if origin := c.GetHeader("Origin"); origin != "" && (allowAll || slices.Contains(allowedOrigins, origin)) {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
		}
		h.Set("Access-Control-Allow-Methods", corsMethods)
		h.Set("Access-Control-Allow-Headers", corsHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const sweepInterval = time.Minute

// visitors 每个客户端IP一个令牌桶，请求到来时顺带清理闲置条目
type visitors struct {
	mu        sync.Mutex
	byIP      map[string]*visitor
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

func (v *visitors) allow(ip string, now time.Time) bool {
	v.mu.Lock()
	if now.Sub(v.lastSweep) >= sweepInterval {
		v.sweepLocked(now)
	}
	entry, ok := v.byIP[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(v.every, v.burst)}
		v.byIP[ip] = entry
	}
	entry.lastSeen = now
	v.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

func (v *visitors) sweepLocked(now time.Time) {
	for ip, entry := range v.byIP {
		if now.Sub(entry.lastSeen) > v.idle {
			delete(v.byIP, ip)
		}
	}
	v.lastSweep = now
}

// RateLimiter 按客户端 IP 限流，每个窗口最多 maxRequests 次，非正数表示不限流
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	store := &visitors{
		byIP:      make(map[string]*visitor),
		every:     rate.Every(window / time.Duration(maxRequests)),
		burst:     maxRequests,
		idle:      max(3*window, time.Minute),
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		if !store.allow(c.ClientIP(), time.Now()) {
			util.Error(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
