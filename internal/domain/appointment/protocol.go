package appointment

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"
)

// ProtocolCodePrefix is the fixed literal prefix of system-issued codes.
const ProtocolCodePrefix = "OIL"

var protocolCodeRegex = regexp.MustCompile(`^` + ProtocolCodePrefix + `\d{9}$`)

// GenerateProtocolCode builds the system-issued booking code: prefix plus the
// last six digits of the unix timestamp plus three random digits,
// e.g. OIL123456789.
func GenerateProtocolCode(now time.Time) string {
	return fmt.Sprintf("%s%06d%03d", ProtocolCodePrefix, now.Unix()%1_000_000, rand.IntN(1000))
}

func IsProtocolCode(code string) bool {
	return protocolCodeRegex.MatchString(code)
}
