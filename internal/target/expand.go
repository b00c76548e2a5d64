package target

// Target list expansion for the active scanner.
//
// Accepted forms:
//   - "192.168.0.10,192.168.0.11"  comma-separated literals, kept in order
//   - "192.168.0.0/24"             CIDR block, expanded to usable hosts
//   - "@targets.txt"               newline-delimited file, one host per line
//
// Anything else is treated as a single literal address. Expansion is a
// permissive heuristic, not a validator: malformed input falls back to the
// literal form instead of failing. The only error path is an unreadable
// @file, which is a batch-level resource failure.

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// Expand turns a target specification into an ordered host list.
func Expand(arg string) ([]string, error) {
	arg = strings.TrimSpace(arg)

	if strings.HasPrefix(arg, "@") {
		return expandFile(strings.TrimPrefix(arg, "@"))
	}

	// Comma lists take precedence over CIDR parsing: each entry is kept
	// literal, never expanded.
	if strings.Contains(arg, ",") {
		var hosts []string
		for _, tok := range strings.Split(arg, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				hosts = append(hosts, tok)
			}
		}
		return hosts, nil
	}

	if _, ipnet, err := net.ParseCIDR(arg); err == nil {
		return expandCIDR(ipnet), nil
	}

	// Single literal fallback.
	return []string{arg}, nil
}

func expandFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read target file: %w", err)
	}
	var hosts []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			hosts = append(hosts, line)
		}
	}
	return hosts, nil
}

// expandCIDR lists the usable host addresses of a network. The network and
// broadcast addresses are excluded, except for /31 (both addresses usable)
// and /32 (the address itself).
func expandCIDR(ipnet *net.IPNet) []string {
	ones, bits := ipnet.Mask.Size()
	hostBits := bits - ones

	var hosts []string
	for ip := cloneIP(ipnet.IP.Mask(ipnet.Mask)); ipnet.Contains(ip); incIP(ip) {
		hosts = append(hosts, ip.String())
	}

	if hostBits >= 2 && len(hosts) >= 2 {
		hosts = hosts[1 : len(hosts)-1]
	}
	return hosts
}

func cloneIP(ip net.IP) net.IP {
	out := make(net.IP, len(ip))
	copy(out, ip)
	return out
}

func incIP(ip net.IP) {
	for i := len(ip) - 1; i >= 0; i-- {
		ip[i]++
		if ip[i] != 0 {
			return
		}
	}
}
