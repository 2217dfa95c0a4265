// Package geoip resolves a client IP into a human readable location ("City, Country"),
// used to prefill where an exercise execution was logged.
package geoip

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	cacheKeyPrefix  = "ip-info::"
	DefaultCacheTTL = 30 * 24 * time.Hour
)

var ErrInvalidIP = errors.New("invalid ip address")

type ipInfoClient interface {
	GetIPInfo(ip net.IP) (*ipinfo.Core, error)
}

type Locator struct {
	mu          sync.Mutex
	client      ipInfoClient
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewLocator(apiToken string, httpClient *http.Client, redisClient *redis.Client) *Locator {
	return newLocator(ipinfo.NewClient(httpClient, nil, apiToken), redisClient, DefaultCacheTTL)
}

func newLocator(client ipInfoClient, redisClient *redis.Client, cacheTTL time.Duration) *Locator {
	return &Locator{
		client:      client,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// RequestLocation returns the location of the client that sent r.
func (l *Locator) RequestLocation(ctx context.Context, r *http.Request) (string, error) {
	userIp, err := pkg.ReadUserIP(r)
	if err != nil {
		return "", fmt.Errorf("get user ip: %w", err)
	}
	return l.Location(ctx, userIp)
}

// Location returns "City, Country" for ip. Local and reserved addresses have no
// location, an empty string is returned for them.
func (l *Locator) Location(ctx context.Context, ip string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geoip.location")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.ip", ip))

	if ip == pkg.LocalhostIP {
		return "", nil
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return "", ErrInvalidIP
	}
	if parsedIP.IsLoopback() || parsedIP.IsPrivate() || parsedIP.IsUnspecified() {
		return "", nil
	}

	// concurrent lookups of the same ip should hit the api once
	l.mu.Lock()
	defer l.mu.Unlock()

	cacheKey := cacheKeyPrefix + ip
	cached, err := l.redisClient.Get(ctx, cacheKey).Result()
	switch {
	case err == nil:
		span.SetAttributes(attribute.Bool("user.ip.from-cache", true))
		return cached, nil
	case errors.Is(err, redis.Nil):
		span.SetAttributes(attribute.Bool("user.ip.from-cache", false))
	default:
		log.Errorf("failed to get ip info from redis for [%s]: %s", cacheKey, err)
	}

	info, err := l.client.GetIPInfo(parsedIP)
	if err != nil {
		return "", fmt.Errorf("get ip info [%s]: %w", ip, err)
	}

	location := formatLocation(info)
	if err := l.redisClient.Set(ctx, cacheKey, location, l.cacheTTL).Err(); err != nil {
		log.Errorf("failed to cache ip info in redis for %s: %s", ip, err)
	}

	return location, nil
}

func formatLocation(info *ipinfo.Core) string {
	if info == nil || info.Bogon {
		return ""
	}

	country := info.CountryName
	if country == "" {
		country = info.Country
	}

	var parts []string
	for _, part := range []string{info.City, country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
