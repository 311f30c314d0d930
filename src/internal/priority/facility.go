// FILE: logbridge/src/internal/priority/facility.go
package priority

import "fmt"

// Facility is the subsystem category encoded in the upper five bits of a
// PRI value. RFC 3164 assigns names to codes 0-23 only; codes 24-31 are
// representable but have no name and are rejected by Parse.
type Facility uint8

const (
	FacilityKernel Facility = iota
	FacilityUser
	FacilityMail
	FacilitySystem
	FacilitySecurity
	FacilityInternal
	FacilityPrinter
	FacilityNews
	FacilityUUCP
	FacilityCron
	FacilitySecurity2
	FacilityFTP
	FacilityNTP
	FacilityAudit
	FacilityAlert
	FacilityClock2
	FacilityLocal0
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7

	numFacilities = iota
)

var facilityNames = [numFacilities]string{
	"kernel", "user", "mail", "system", "security", "internal",
	"printer", "news", "uucp", "cron", "security2", "ftp",
	"ntp", "audit", "alert", "clock2", "local0", "local1",
	"local2", "local3", "local4", "local5", "local6", "local7",
}

func (f Facility) String() string {
	if int(f) < numFacilities {
		return facilityNames[f]
	}
	return fmt.Sprintf("facility(%d)", uint8(f))
}
