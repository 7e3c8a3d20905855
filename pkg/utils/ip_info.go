package utils

import (
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/oschwald/geoip2-golang"
	"github.com/sirupsen/logrus"
)

// RemoteInfo annotates the address a probe connected to.
type RemoteInfo struct {
	Address        string
	IP             string
	IsPrivate      bool
	IsLoopback     bool
	CountryCode    string
	CountryName    string
	ASN            uint
	ASOrganization string
	GeoError       string
}

var (
	geoMu sync.RWMutex
	// cityDB and asnDB stay nil unless LoadMaxMindDBs was given a path.
	cityDB *geoip2.Reader
	asnDB  *geoip2.Reader
)

// LoadMaxMindDBs opens the optional GeoLite2 City and ASN databases.
// An empty path disables that lookup. Failures are logged and never fatal.
func LoadMaxMindDBs(cityDBPath, asnDBPath string) {
	geoMu.Lock()
	defer geoMu.Unlock()

	if cityDBPath != "" {
		db, err := geoip2.Open(cityDBPath)
		if err != nil {
			logrus.WithError(err).WithField("path", cityDBPath).Error("Could not open GeoLite2-City database, country lookups disabled")
		} else {
			cityDB = db
			logrus.WithField("path", cityDBPath).Info("Loaded GeoLite2-City database")
		}
	}

	if asnDBPath != "" {
		db, err := geoip2.Open(asnDBPath)
		if err != nil {
			logrus.WithError(err).WithField("path", asnDBPath).Error("Could not open GeoLite2-ASN database, ASN lookups disabled")
		} else {
			asnDB = db
			logrus.WithField("path", asnDBPath).Info("Loaded GeoLite2-ASN database")
		}
	}
}

// CloseMaxMindDBs closes all GeoIP2 readers.
func CloseMaxMindDBs() {
	geoMu.Lock()
	defer geoMu.Unlock()

	if cityDB != nil {
		if err := cityDB.Close(); err != nil {
			logrus.WithError(err).Error("Error closing GeoLite2-City database")
		}
		cityDB = nil
	}
	if asnDB != nil {
		if err := asnDB.Close(); err != nil {
			logrus.WithError(err).Error("Error closing GeoLite2-ASN database")
		}
		asnDB = nil
	}
}

// DescribeRemote annotates a host:port remote address. Geo fields stay empty
// when no database is loaded. It does no network I/O.
func DescribeRemote(addr string) RemoteInfo {
	info := RemoteInfo{Address: addr}
	if addr == "" {
		return info
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return info
	}

	info.IP = ip.String()
	info.IsPrivate = ip.IsPrivate()
	info.IsLoopback = ip.IsLoopback()

	geoMu.RLock()
	defer geoMu.RUnlock()

	var geoErrs []string
	if cityDB != nil {
		record, err := cityDB.City(ip)
		if err != nil {
			geoErrs = append(geoErrs, fmt.Sprintf("country lookup: %v", err))
		} else {
			info.CountryCode = record.Country.IsoCode
			info.CountryName = record.Country.Names["en"]
		}
	}
	if asnDB != nil {
		record, err := asnDB.ASN(ip)
		if err != nil {
			geoErrs = append(geoErrs, fmt.Sprintf("ASN lookup: %v", err))
		} else {
			info.ASN = record.AutonomousSystemNumber
			info.ASOrganization = record.AutonomousSystemOrganization
		}
	}
	if len(geoErrs) > 0 {
		info.GeoError = strings.Join(geoErrs, "; ")
	}

	return info
}
