package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
)

// notAnswered is the fallback caption for a voice call without a duration.
const notAnswered = "未接听"

// FormatDuration renders a total number of seconds as M:SS.
func FormatDuration(total int) string {
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatCallDuration renders independently entered minute/second fields.
// Seconds are not normalized: 3 and 77 yields "3:77", exactly as typed.
func FormatCallDuration(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// CallLabel returns the duration caption of a voice call. The explicit
// minute/second pair wins over SubTitle; a call with neither is shown as
// not answered.
func CallLabel(call domain.VoiceCallContent) string {
	if call.Minutes != nil && call.Seconds != nil {
		return FormatCallDuration(*call.Minutes, *call.Seconds)
	}
	if call.SubTitle != "" {
		return call.SubTitle
	}
	return notAnswered
}

// FormatFileSize renders a byte count for the file bubble: 1024-based units
// with up to two decimals, trailing zeros trimmed.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(units) {
		exp = len(units) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(exp))
	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + " " + units[exp]
}
