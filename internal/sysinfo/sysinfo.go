// Package sysinfo gathers the ambient host data reported by the web
// application: host identity, platform descriptor and wall-clock time.
//
// Every read is best effort. A failed hostname or address lookup yields the
// Unknown sentinel for both fields instead of an error, so callers can always
// answer with a complete payload.
package sysinfo

import (
	"context"
	"errors"
	"net"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// Unknown replaces any value that could not be determined.
const Unknown = "Unknown"

const resolveTimeout = 2 * time.Second

var errNoAddress = errors.New("no address found")

// Resolver resolves a hostname to its addresses. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Logger receives warnings about failed lookups.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Identity is the host name and the address it resolves to.
type Identity struct {
	Hostname  string `json:"hostname"`
	IPAddress string `json:"ip_address"`
}

// Platform describes the operating system and the language runtime.
type Platform struct {
	Descriptor     string `json:"platform"`
	RuntimeVersion string `json:"runtime_version"`
}

// Snapshot is the ambient data captured for a single request.
type Snapshot struct {
	Identity
	Platform
	Time time.Time `json:"-"`
}

// Collector reads ambient host data. It holds no mutable state after
// construction and is safe for concurrent use.
type Collector struct {
	hostname func() (string, error)
	resolver Resolver
	platform Platform
	clock    *Clock
	logger   Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithHostnameFunc replaces os.Hostname.
func WithHostnameFunc(fn func() (string, error)) Option {
	return func(c *Collector) { c.hostname = fn }
}

// WithResolver replaces net.DefaultResolver.
func WithResolver(r Resolver) Option {
	return func(c *Collector) { c.resolver = r }
}

// WithPlatform skips detection and reports p.
func WithPlatform(p Platform) Option {
	return func(c *Collector) { c.platform = p }
}

// WithClock replaces the process clock.
func WithClock(clock *Clock) Option {
	return func(c *Collector) { c.clock = clock }
}

// WithLogger sets the logger used for lookup warnings.
func WithLogger(l Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// NewCollector creates a collector. The platform descriptor is detected
// once here unless WithPlatform is given.
func NewCollector(ctx context.Context, opts ...Option) *Collector {
	c := &Collector{
		hostname: os.Hostname,
		resolver: net.DefaultResolver,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = NewClock()
	}
	if c.platform == (Platform{}) {
		c.platform = DetectPlatform(ctx)
	}
	return c
}

// Platform returns the platform descriptor detected at construction.
func (c *Collector) Platform() Platform {
	return c.platform
}

// Now returns the current time from the collector's clock.
func (c *Collector) Now() time.Time {
	return c.clock.Now()
}

// Snapshot captures identity, platform and time in one call.
func (c *Collector) Snapshot(ctx context.Context) Snapshot {
	return Snapshot{
		Identity: c.Identity(ctx),
		Platform: c.platform,
		Time:     c.clock.Now(),
	}
}

// Identity returns the hostname and its resolved address. Any failure,
// including a panic inside the lookup, yields Unknown for both fields.
func (c *Collector) Identity(ctx context.Context) (id Identity) {
	defer func() {
		if r := recover(); r != nil {
			c.warnf("host identity lookup panicked: %v", r)
			id = UnknownIdentity()
		}
	}()

	hostname, err := c.hostname()
	if err != nil {
		c.warnf("hostname lookup failed: %v", err)
		return UnknownIdentity()
	}

	ip, err := c.resolve(ctx, hostname)
	if err != nil {
		c.warnf("address lookup for %q failed: %v", hostname, err)
		return UnknownIdentity()
	}

	return Identity{Hostname: hostname, IPAddress: ip}
}

// UnknownIdentity is the identity reported when lookup fails.
func UnknownIdentity() Identity {
	return Identity{Hostname: Unknown, IPAddress: Unknown}
}

// resolve returns the first IPv4 address of hostname, or the first address
// of any family when it has no IPv4 one.
func (c *Collector) resolve(ctx context.Context, hostname string) (string, error) {
	if hostname == "" {
		return "", errors.New("empty hostname")
	}

	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	addrs, err := c.resolver.LookupHost(ctx, hostname)
	if err != nil {
		return "", err
	}

	var fallback string
	for _, addr := range addrs {
		ip := net.ParseIP(addr)
		if ip == nil {
			continue
		}
		if ip.To4() != nil {
			return ip.String(), nil
		}
		if fallback == "" {
			fallback = ip.String()
		}
	}
	if fallback == "" {
		return "", errNoAddress
	}
	return fallback, nil
}

func (c *Collector) warnf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Warnf(format, args...)
	}
}

// DetectPlatform builds the platform descriptor from the kernel and
// distribution information, falling back to GOOS/GOARCH for anything the
// host does not expose.
func DetectPlatform(ctx context.Context) Platform {
	p := Platform{RuntimeVersion: runtime.Version()}

	kernel, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		kernel = ""
	}
	arch, err := host.KernelArch()
	if err != nil || arch == "" {
		arch = runtime.GOARCH
	}
	platform, _, platformVersion, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		platform, platformVersion = "", ""
	}

	p.Descriptor = describePlatform(runtime.GOOS, kernel, arch, platform, platformVersion)
	return p
}

// describePlatform renders e.g. "Linux-6.1.0-x86_64-with-debian-12".
func describePlatform(goos, kernel, arch, platform, platformVersion string) string {
	parts := []string{capitalize(goos), kernel, arch}
	if platform != "" {
		parts = append(parts, "with", platform, platformVersion)
	}

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "-")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
