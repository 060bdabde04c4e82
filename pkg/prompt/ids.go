package prompt

import (
	"strconv"
	"strings"
)

// ParseIDs splits a comma separated answer into block ids below n.
// Tokens that are not numbers or fall outside [0, n) are returned as invalid.
func ParseIDs(answer string, n int) (ids []int, invalid []string) {
	for _, token := range strings.Split(answer, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil || id < 0 || id >= n {
			invalid = append(invalid, token)
			continue
		}
		ids = append(ids, id)
	}
	return ids, invalid
}
