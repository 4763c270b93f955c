package markdown

import (
	"fmt"
	"time"
)

// Duration renders the elapsed time between start and end as "<h>h <m>m",
// "<m>m <s>s", or "<s>s" depending on magnitude. Zero or negative elapsed
// time renders as "0s".
func Duration(start, end time.Time) string {
	secs := int(end.Sub(start).Seconds())
	if secs <= 0 {
		return "0s"
	}

	switch {
	case secs >= 3600:
		return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
	case secs >= 60:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
