package etsy

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Etsy names downloaded exports "etsy_statement_<year>_<month>.csv"; a
// re-download gets a " (n)" suffix from the browser.
var exportNameRE = regexp.MustCompile(`(?i)^etsy_statement_(\d{4})_(\d{1,2})(?: *\(\d+\))?\.csv$`)

// ScanExports looks for raw statement exports in dir (typically the user's
// Downloads folder) and returns one file per month, keyed "YYYY-MM". When a
// month was downloaded several times, the file with the newest modification
// time wins.
func ScanExports(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot scan %q for exports: %w", dir, err)
	}

	byMonth := make(map[string]string)
	mtimes := make(map[string]time.Time)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := exportNameRE.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		month := m[1] + "-" + m[2]
		if len(m[2]) == 1 {
			month = m[1] + "-0" + m[2]
		}
		if prev, ok := mtimes[month]; ok && !info.ModTime().After(prev) {
			continue
		}
		byMonth[month] = filepath.Join(dir, e.Name())
		mtimes[month] = info.ModTime()
	}
	return byMonth, nil
}
