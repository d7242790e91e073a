// Package query parses compound read queries such as "kotlin/enrico/5"
// into a topic name, a message count and an optional author filter.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/kcc/internal/common"
	"github.com/dmitrijs2005/kcc/internal/models"
)

var countPattern = regexp.MustCompile(`^[0-9]+$`)

// maxSegments is topic, author and count.
const maxSegments = 3

// Query is a normalized read request. Author is empty when no filter applies.
type Query struct {
	Topic  string
	Count  int
	Author string
}

// Evaluate parses q. A single leading separator is ignored. When q carries
// no count, defaultCount is used.
//
//	kotlin            -> kotlin, defaultCount, ""
//	kotlin/5          -> kotlin, 5, ""
//	kotlin/enrico     -> kotlin, defaultCount, enrico
//	kotlin/enrico/5   -> kotlin, 5, enrico
func Evaluate(q string, defaultCount int) (Query, error) {
	segments := strings.Split(strings.TrimPrefix(q, models.TopicSeparator), models.TopicSeparator)

	if segments[0] == "" {
		return Query{}, invalid(q, "the topic name is required")
	}
	if len(segments) > maxSegments {
		return Query{}, invalid(q, "it can contain at most a topic, a user and a number")
	}

	result := Query{Topic: segments[0], Count: defaultCount}
	hasCount := false

	for _, seg := range segments[1:] {
		switch {
		case seg == "":
			return Query{}, invalid(q, "segments must not be empty")
		case countPattern.MatchString(seg):
			if hasCount {
				return Query{}, invalid(q, "it can contain only one number")
			}
			n, err := strconv.Atoi(seg)
			if err != nil {
				return Query{}, invalid(q, "the number is out of range")
			}
			result.Count = n
			hasCount = true
		case result.Author != "":
			return Query{}, invalid(q, "trailing segment must be a number")
		default:
			result.Author = seg
		}
	}

	return result, nil
}

func invalid(q, rule string) error {
	return common.NewValidationError("query", models.TopicSeparator+strings.TrimPrefix(q, models.TopicSeparator), rule)
}
