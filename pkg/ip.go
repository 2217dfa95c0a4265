package pkg

import (
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
)

// LocalhostIP is returned for requests coming from the local machine or a local docker network.
const LocalhostIP = "localhost"

var (
	localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1:\d{1,5}`)
)

func IPIsLocal(ipAddr string) bool {
	if strings.HasPrefix(ipAddr, "127.0.0.1:") || strings.HasPrefix(ipAddr, "[::1]:") {
		return true
	}

	// user within docker container ?
	return localDockerIpRegex.MatchString(ipAddr)
}

// ReadUserIP returns the client IP, honoring reverse proxy headers first.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// first entry is the original client
		ipAddr = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if IPIsLocal(ipAddr) {
		return LocalhostIP, nil
	}

	host := ipAddr
	if h, _, err := net.SplitHostPort(ipAddr); err == nil {
		host = h
	}

	if net.ParseIP(host) == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}

	return host, nil
}
