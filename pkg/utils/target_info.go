package utils

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// TargetInfo describes the probed URL the way a browser's CORS check sees it.
type TargetInfo struct {
	Scheme string
	Host   string
	Origin string
	// Site is the registrable domain (eTLD+1). Empty for IPs and bare suffixes.
	Site string
}

// DescribeTarget parses rawURL. It returns false when the URL has no scheme or host.
func DescribeTarget(rawURL string) (TargetInfo, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return TargetInfo{}, false
	}

	info := TargetInfo{
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Hostname()),
	}
	info.Origin = info.Scheme + "://" + strings.ToLower(u.Host)

	if site, err := publicsuffix.EffectiveTLDPlusOne(info.Host); err == nil {
		info.Site = site
	}
	return info, true
}
