// Package network classifies IP address literals.
package network

import (
	"net/netip"
	"strings"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

// IPInfo describes a parsed IP address.
type IPInfo struct {
	Valid   bool
	Version string
	Private bool
}

// ValidateIP parses an IPv4 or IPv6 literal. Zone suffixes and surrounding
// whitespace are rejected. Private follows Python's ipaddress.is_private,
// so documentation, benchmarking and reserved blocks count as private while
// multicast does not. IPv4-mapped IPv6 addresses are classified by their
// IPv4 form.
func ValidateIP(raw string) (IPInfo, error) {
	if raw == "" {
		return IPInfo{}, dErrors.New(dErrors.CodeValidation, "La IP no puede estar vacía")
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil || addr.Zone() != "" || strings.TrimSpace(raw) != raw {
		return IPInfo{}, dErrors.New(dErrors.CodeValidation, "Formato de IP inválido")
	}

	version := "IPv6"
	if addr.Is4() {
		version = "IPv4"
	}
	return IPInfo{Valid: true, Version: version, Private: isPrivate(addr)}, nil
}

// privateRanges mirrors the IANA special-purpose registries the way Python's
// ipaddress.is_private reads them (3.13 tables).
var privateRanges = mustPrefixes(
	"0.0.0.0/8",
	"10.0.0.0/8",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.0.0.0/24",
	"192.0.0.170/31",
	"192.0.2.0/24",
	"192.168.0.0/16",
	"198.18.0.0/15",
	"198.51.100.0/24",
	"203.0.113.0/24",
	"240.0.0.0/4",
	"255.255.255.255/32",
	"::1/128",
	"::/128",
	"::ffff:0:0/96",
	"64:ff9b:1::/48",
	"100::/64",
	"2001::/23",
	"2001:db8::/32",
	"2001:10::/28",
	"fc00::/7",
	"fe80::/10",
)

// Globally reachable carve-outs inside the ranges above.
var publicExceptions = mustPrefixes(
	"192.0.0.9/32",
	"192.0.0.10/32",
	"2001:1::1/128",
	"2001:1::2/128",
	"2001:3::/32",
	"2001:4:112::/48",
	"2001:20::/28",
	"2001:30::/28",
)

func mustPrefixes(raw ...string) []netip.Prefix {
	out := make([]netip.Prefix, len(raw))
	for i, r := range raw {
		out[i] = netip.MustParsePrefix(r)
	}
	return out
}

func isPrivate(addr netip.Addr) bool {
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	return containedIn(addr, privateRanges) && !containedIn(addr, publicExceptions)
}

func containedIn(addr netip.Addr, prefixes []netip.Prefix) bool {
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
