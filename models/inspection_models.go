package models

import "github.com/vit0-9/cors_inspector/pkg/utils"

// InspectionPage is the view model rendered by the inspection templates.
// A zero value renders the landing page.
type InspectionPage struct {
	TargetURL    string
	Inspected    bool
	StatusCode   int
	Status       string
	Preview      utils.MediaKind
	Target       utils.TargetInfo
	HasTarget    bool
	Remote       utils.RemoteInfo
	CORSHeaders  []utils.HeaderEntry
	OtherHeaders []utils.HeaderEntry
	Technologies []utils.DetectedTechnologyInfo
}

// NewInspectionPage builds the page for a completed probe.
func NewInspectionPage(targetURL string, res *utils.ProbeResult) InspectionPage {
	cors, other := utils.PartitionHeaders(res.Headers)
	target, hasTarget := utils.DescribeTarget(targetURL)

	return InspectionPage{
		TargetURL:    targetURL,
		Inspected:    true,
		StatusCode:   res.StatusCode,
		Status:       res.Status,
		Preview:      utils.ClassifyMedia(utils.HeaderValue(res.Headers, "content-type")),
		Target:       target,
		HasTarget:    hasTarget,
		Remote:       utils.DescribeRemote(res.RemoteAddr),
		CORSHeaders:  cors,
		OtherHeaders: other,
		Technologies: utils.FingerprintHeaders(res.RawHeaders),
	}
}
