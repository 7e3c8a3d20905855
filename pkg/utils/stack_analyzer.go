package utils

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	wappalyze "github.com/projectdiscovery/wappalyzergo"
	"github.com/sirupsen/logrus"
)

// Global Wappalyzer client
var (
	wappalyzerClient   *wappalyze.Wappalyze
	wappalyzerInitOnce sync.Once
	wappalyzerInitErr  error
)

const versionSeparator = ":"

func initializeWappalyzer() {
	wappalyzerInitOnce.Do(func() {
		var err error
		wappalyzerClient, err = wappalyze.New()
		if err != nil {
			wappalyzerInitErr = fmt.Errorf("failed to initialize wappalyzer client: %w", err)
			logrus.WithError(err).Error("Technology fingerprints unavailable")
			return
		}
		logrus.Debug("Wappalyzer client initialized")
	})
}

type DetectedTechnologyInfo struct {
	Name       string
	Version    string
	Categories []string
	Website    string
}

// FingerprintHeaders guesses server-side technologies from response headers alone.
// It returns nil when the fingerprint database could not be loaded.
func FingerprintHeaders(headers http.Header) []DetectedTechnologyInfo {
	initializeWappalyzer()
	if wappalyzerInitErr != nil || wappalyzerClient == nil || len(headers) == 0 {
		return nil
	}

	detected := wappalyzerClient.FingerprintWithInfo(headers, nil)

	results := make([]DetectedTechnologyInfo, 0, len(detected))
	for appKey, appInfo := range detected {
		name, version, _ := strings.Cut(appKey, versionSeparator)
		results = append(results, DetectedTechnologyInfo{
			Name:       name,
			Version:    version,
			Categories: appInfo.Categories,
			Website:    appInfo.Website,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}
