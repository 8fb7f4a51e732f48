package domain

import "errors"

// ErrUnknownEnvironments is returned when a named environment set cannot be resolved.
var ErrUnknownEnvironments = errors.New("unknown execution environments")

// ExecutionEnvironments names a set of environments.
//
// go-sumtype:decl ExecutionEnvironments
type ExecutionEnvironments interface {
	tagged
	EnvironmentsName() InflectableName
	isExecutionEnvironments()
}

// NamedEnvironments is a set carrying only the family tag. It has no
// enumerated members and stands for an unspecified set.
type NamedEnvironments struct {
	name InflectableName
}

// NewNamedEnvironments builds a bare environment set.
func NewNamedEnvironments(name InflectableName) *NamedEnvironments {
	return &NamedEnvironments{name: name}
}

func (s *NamedEnvironments) EnvironmentsName() InflectableName { return s.name }
func (*NamedEnvironments) isExecutionEnvironments()            {}

func (*NamedEnvironments) discriminants() TagSet {
	return NewTagSet(TagExecutionEnvironments)
}

// AllExecutionEnvironments denotes every environment without listing them.
type AllExecutionEnvironments struct {
	name InflectableName
}

// NewAllExecutionEnvironments builds the "every environment" set.
func NewAllExecutionEnvironments(name InflectableName) *AllExecutionEnvironments {
	return &AllExecutionEnvironments{name: name}
}

func (s *AllExecutionEnvironments) EnvironmentsName() InflectableName { return s.name }
func (*AllExecutionEnvironments) isExecutionEnvironments()            {}

func (*AllExecutionEnvironments) discriminants() TagSet {
	return NewTagSet(TagExecutionEnvironments, TagAllExecutionEnvironments)
}

// SomeExecutionEnvironments carries an explicit ordered list of environments.
type SomeExecutionEnvironments struct {
	name         InflectableName
	environments []ExecutionEnvironment
}

// NewSomeExecutionEnvironments builds a set from the given environments.
// The list is copied.
func NewSomeExecutionEnvironments(name InflectableName, envs ...ExecutionEnvironment) *SomeExecutionEnvironments {
	return &SomeExecutionEnvironments{
		name:         name,
		environments: append([]ExecutionEnvironment(nil), envs...),
	}
}

func (s *SomeExecutionEnvironments) EnvironmentsName() InflectableName { return s.name }
func (*SomeExecutionEnvironments) isExecutionEnvironments()            {}

// Environments returns a copy of the member list.
func (s *SomeExecutionEnvironments) Environments() []ExecutionEnvironment {
	return append([]ExecutionEnvironment(nil), s.environments...)
}

// Len returns the number of members.
func (s *SomeExecutionEnvironments) Len() int { return len(s.environments) }

func (*SomeExecutionEnvironments) discriminants() TagSet {
	return NewTagSet(TagExecutionEnvironments, TagSomeExecutionEnvironments)
}
