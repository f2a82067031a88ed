// Package ratelimit provides rate limiting for mutating API operations.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds rate limit configuration.
type Config struct {
	// Per-IP write limits
	WriteMaxPerMinute int // Max mutating requests per IP per minute (default: 60)

	// Team generation limits
	GenerateCooldown   time.Duration // Minimum time between generations per session (default: 2s)
	GenerateMaxPerHour int           // Max generations per session per hour (default: 120)

	// Clock for testing (nil uses real time)
	Clock Clock
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		WriteMaxPerMinute:  60,
		GenerateCooldown:   2 * time.Second,
		GenerateMaxPerHour: 120,
	}
}

// LimitResult contains the result of a rate limit check.
type LimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string // For logging
}

// entry tracks request counts and timestamps.
type entry struct {
	count   int
	firstAt time.Time // First request in window
	lastAt  time.Time // Most recent request (for cooldown)
}

// Limiter implements rate limiting for write endpoints and team generation.
type Limiter struct {
	config *Config
	clock  Clock
	mu     sync.RWMutex
	// Keyed by hash of IP or session id
	writeByIP         map[string]*entry
	generateBySession map[string]*entry

	// Cleanup goroutine management
	cleanupCtx    context.Context
	cleanupCancel context.CancelFunc
	cleanupOnce   sync.Once
	cleanupWg     sync.WaitGroup
}

// New creates a new rate limiter with the given config.
func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Limiter{
		config:            cfg,
		clock:             clock,
		writeByIP:         make(map[string]*entry),
		generateBySession: make(map[string]*entry),
		cleanupCtx:        ctx,
		cleanupCancel:     cancel,
	}
}

// Close stops the cleanup goroutine and releases resources.
func (l *Limiter) Close() {
	l.cleanupCancel()
	l.cleanupWg.Wait()
}

// CheckWrite checks if a mutating request from the given IP is allowed and
// records it when allowed.
func (l *Limiter) CheckWrite(ip string) LimitResult {
	l.startCleanup()
	now := l.clock.Now()
	ipKey := l.hashKey("write:ip:", ip)

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.writeByIP[ipKey]
	if e == nil || now.Sub(e.firstAt) >= time.Minute {
		l.writeByIP[ipKey] = &entry{count: 1, firstAt: now, lastAt: now}
		return LimitResult{Allowed: true}
	}
	if e.count >= l.config.WriteMaxPerMinute {
		return LimitResult{
			Allowed:    false,
			RetryAfter: time.Minute - now.Sub(e.firstAt),
			Reason:     "write_limit",
		}
	}
	e.count++
	e.lastAt = now
	return LimitResult{Allowed: true}
}

// CheckGenerate checks if a team generation for the session is allowed.
// Does NOT record the attempt - call RecordGenerate after generation succeeds.
func (l *Limiter) CheckGenerate(sessionID string) LimitResult {
	l.startCleanup()
	now := l.clock.Now()
	key := l.hashKey("generate:session:", sessionID)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if e := l.generateBySession[key]; e != nil {
		elapsed := now.Sub(e.lastAt)
		if elapsed < l.config.GenerateCooldown {
			return LimitResult{
				Allowed:    false,
				RetryAfter: l.config.GenerateCooldown - elapsed,
				Reason:     "cooldown",
			}
		}
		if now.Sub(e.firstAt) < time.Hour && e.count >= l.config.GenerateMaxPerHour {
			return LimitResult{
				Allowed:    false,
				RetryAfter: time.Hour - now.Sub(e.firstAt),
				Reason:     "hourly_limit",
			}
		}
	}

	return LimitResult{Allowed: true}
}

// RecordGenerate records a successful team generation for the session.
func (l *Limiter) RecordGenerate(sessionID string) {
	now := l.clock.Now()
	key := l.hashKey("generate:session:", sessionID)

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.generateBySession[key]
	if e == nil || now.Sub(e.firstAt) >= time.Hour {
		l.generateBySession[key] = &entry{count: 1, firstAt: now, lastAt: now}
	} else {
		e.count++
		e.lastAt = now
	}
}

// Middleware limits mutating requests per client IP. Reads pass through
// untouched.
func (l *Limiter) Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			ip := GetClientIP(r, trustProxy)
			result := l.CheckWrite(ip)
			if !result.Allowed {
				LogRateLimitExceeded("write", ip, result.Reason)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(result.RetryAfter)))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(d.Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (l *Limiter) hashKey(prefix, value string) string {
	hash := sha256.Sum256([]byte(value))
	return prefix + hex.EncodeToString(hash[:8])
}

func (l *Limiter) startCleanup() {
	l.cleanupOnce.Do(func() {
		l.cleanupWg.Add(1)
		go func() {
			defer l.cleanupWg.Done()
			ticker := time.NewTicker(5 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-l.cleanupCtx.Done():
					return
				case <-ticker.C:
					l.cleanup()
				}
			}
		}()
	})
}

func (l *Limiter) cleanup() {
	now := l.clock.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, e := range l.writeByIP {
		if now.Sub(e.lastAt) > time.Minute {
			delete(l.writeByIP, k)
		}
	}
	for k, e := range l.generateBySession {
		if now.Sub(e.lastAt) > time.Hour {
			delete(l.generateBySession, k)
		}
	}
}

// GetClientIP extracts the client IP from a request.
// When trustProxy is true, uses the rightmost IP from X-Forwarded-For (added by your proxy).
// When trustProxy is false, ignores X-Forwarded-For entirely (prevents spoofing).
func GetClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// Use RIGHTMOST IP - this is the one your proxy added, not user-supplied
			parts := strings.Split(xff, ",")
			for i := len(parts) - 1; i >= 0; i-- {
				ip := strings.TrimSpace(parts[i])
				// Skip private/internal IPs to find the real client
				if ip != "" && !isPrivateIP(ip) {
					return ip
				}
			}
			// All IPs are private, use the last one
			return strings.TrimSpace(parts[len(parts)-1])
		}

		// Check X-Real-IP (set by nginx)
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	// Fall back to RemoteAddr (direct connection or untrusted proxy)
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if parsed := net.ParseIP(r.RemoteAddr); parsed != nil {
			return r.RemoteAddr
		}
		if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
			candidate := r.RemoteAddr[:idx]
			if net.ParseIP(candidate) != nil {
				return candidate
			}
		}
		return r.RemoteAddr
	}
	return ip
}

// privateNetworks holds parsed CIDR ranges for private/reserved IPs.
// Parsed once at package init for efficiency.
var privateNetworks []*net.IPNet

func init() {
	privateRanges := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"::1/128",
		"fc00::/7",
		"fe80::/10", // Link-local
	}
	for _, cidr := range privateRanges {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic("invalid private CIDR: " + cidr)
		}
		privateNetworks = append(privateNetworks, network)
	}
}

// isPrivateIP checks if an IP is in a private/reserved range.
// Handles both IPv4 and IPv4-mapped IPv6 addresses (e.g., ::ffff:192.168.1.1).
func isPrivateIP(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return false
	}

	if ipv4 := ip.To4(); ipv4 != nil {
		ip = ipv4
	}

	for _, network := range privateNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// LogRateLimitExceeded logs a rate limit event.
func LogRateLimitExceeded(limitType, ip, reason string) {
	log.Warn().
		Str("event", "rate_limit_exceeded").
		Str("type", limitType).
		Str("ip", ip).
		Str("reason", reason).
		Msg("Rate limit exceeded")
}
