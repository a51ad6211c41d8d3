package filesink

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// suffixLayout renders as YYYYMMDD_HHMMSS
const suffixLayout = "20060102_150405"

// RotatedName builds the name of a rotated file: "_YYYYMMDD_HHMMSS_<index>"
// inserted before the last extension separator of the file name, or
// appended when the name has no extension. Dots in directory names and
// the leading dot of a hidden file are not extension separators.
func RotatedName(path string, t time.Time, index int) string {
	suffix := fmt.Sprintf("_%s_%d", t.Format(suffixLayout), index)

	base := strings.LastIndexAny(path, `/`+string(os.PathSeparator)) + 1
	dot := strings.LastIndexByte(path[base:], '.')
	// A leading dot marks a hidden file, not an extension
	if dot <= 0 {
		return path + suffix
	}
	dot += base
	return path[:dot] + suffix + path[dot:]
}
