package domain

import "strings"

// Tag is a discriminant identifying one variant of the environment model.
type Tag uint8

const (
	TagContext Tag = iota
	TagProjectContext
	TagExecutionEnvironment
	TagEngineeringEnvironment
	TagDevlSandboxEnvironment
	TagDevlIntegrationEnvironment
	TagTestEnvironment
	TagDemonstrationEnvironment
	TagProductionEnvironment
	TagStagingEnvironment
	TagExecutionEnvironments
	TagAllExecutionEnvironments
	TagSomeExecutionEnvironments

	tagCount
)

var tagKeys = [tagCount]string{
	TagContext:                    "isContext",
	TagProjectContext:             "isProjectContext",
	TagExecutionEnvironment:       "isExecutionEnvironment",
	TagEngineeringEnvironment:     "isEngineeringEnvironment",
	TagDevlSandboxEnvironment:     "isDevlSandboxEnvironment",
	TagDevlIntegrationEnvironment: "isDevlIntegrationEnvironment",
	TagTestEnvironment:            "isTestEnvironment",
	TagDemonstrationEnvironment:   "isDemonstrationEnvironment",
	TagProductionEnvironment:      "isProductionEnvironment",
	TagStagingEnvironment:         "isStagingEnvironment",
	TagExecutionEnvironments:      "isExecutionEnvironments",
	TagAllExecutionEnvironments:   "isAllExecutionEnvironments",
	TagSomeExecutionEnvironments:  "isSomeExecutionEnvironments",
}

// AllTags returns every known tag in declaration order.
func AllTags() []Tag {
	tags := make([]Tag, 0, tagCount)
	for t := Tag(0); t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}

// Key returns the document key carrying the tag, e.g. "isContext".
func (t Tag) Key() string {
	if t >= tagCount {
		return ""
	}
	return tagKeys[t]
}

func (t Tag) String() string {
	return t.Key()
}

var tagsByKey = func() map[string]Tag {
	m := make(map[string]Tag, tagCount)
	for t := Tag(0); t < tagCount; t++ {
		m[tagKeys[t]] = t
	}
	return m
}()

// ParseTag resolves a document key to its tag. Keys are case-sensitive.
func ParseTag(key string) (Tag, bool) {
	t, ok := tagsByKey[key]
	return t, ok
}

// TagSet is an additive set of tags.
type TagSet uint32

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...Tag) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

// With returns a copy of s that also carries t.
func (s TagSet) With(t Tag) TagSet {
	if t >= tagCount {
		return s
	}
	return s | 1<<t
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	return t < tagCount && s&(1<<t) != 0
}

// Empty reports whether no tag is set.
func (s TagSet) Empty() bool {
	return s == 0
}

// Tags lists the tags in declaration order.
func (s TagSet) Tags() []Tag {
	var tags []Tag
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

// Keys lists the document keys of the tags in declaration order.
func (s TagSet) Keys() []string {
	tags := s.Tags()
	keys := make([]string, 0, len(tags))
	for _, t := range tags {
		keys = append(keys, t.Key())
	}
	return keys
}

func (s TagSet) String() string {
	return strings.Join(s.Keys(), ",")
}
