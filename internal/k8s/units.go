package k8s

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertCPU converts a cluster-native CPU quantity to millicores for
// display. The metrics API reports nanocores ("n") or microcores ("u");
// millicores pass through unchanged, and anything unrecognized is returned
// verbatim.
func ConvertCPU(quantity string) string {
	switch {
	case strings.HasSuffix(quantity, "n"):
		nanocores, err := strconv.ParseInt(strings.TrimSuffix(quantity, "n"), 10, 64)
		if err != nil {
			return quantity
		}
		return fmt.Sprintf("%.1fm", float64(nanocores)/1_000_000)
	case strings.HasSuffix(quantity, "u"):
		microcores, err := strconv.ParseInt(strings.TrimSuffix(quantity, "u"), 10, 64)
		if err != nil {
			return quantity
		}
		return fmt.Sprintf("%.1fm", float64(microcores)/1_000)
	case strings.HasSuffix(quantity, "m"):
		return quantity
	}
	return quantity
}

// ConvertMemory converts a cluster-native memory quantity to megabytes for
// display. Mebibytes are treated as MB as-is; unrecognized suffixes are
// returned verbatim.
func ConvertMemory(quantity string) string {
	switch {
	case strings.HasSuffix(quantity, "Ki"):
		kibibytes, err := strconv.ParseInt(strings.TrimSuffix(quantity, "Ki"), 10, 64)
		if err != nil {
			return quantity
		}
		return fmt.Sprintf("%.1f MB", float64(kibibytes)/1024)
	case strings.HasSuffix(quantity, "Mi"):
		return strings.TrimSuffix(quantity, "Mi") + " MB"
	case strings.HasSuffix(quantity, "Gi"):
		gibibytes, err := strconv.ParseFloat(strings.TrimSuffix(quantity, "Gi"), 64)
		if err != nil {
			return quantity
		}
		return fmt.Sprintf("%.0f MB", gibibytes*1024)
	case strings.HasSuffix(quantity, "K"):
		kilobytes, err := strconv.ParseInt(strings.TrimSuffix(quantity, "K"), 10, 64)
		if err != nil {
			return quantity
		}
		return fmt.Sprintf("%.1f MB", float64(kilobytes)/1000)
	case strings.HasSuffix(quantity, "M"):
		return strings.TrimSuffix(quantity, "M") + " MB"
	}
	return quantity
}
