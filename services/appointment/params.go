package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseServiceIDs parses the comma-separated serviceIds query parameter.
// An empty string yields an empty list (the "at least one service"
// validation then rejects it); a non-numeric token is a caller error.
func ParseServiceIDs(raw string) ([]int64, error) {
	ids := []int64{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid service id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
