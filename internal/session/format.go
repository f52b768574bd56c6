package session

import "fmt"

// FormatTime renders a second count as MM:SS. The minutes component is not
// wrapped at an hour: 3661 seconds renders as "61:01".
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
