// Package domain defines the execution-context vocabulary for envctx.
//
// Environments and environment sets are sum types: each variant is a
// concrete type behind a sealed interface and identifies itself through
// the discriminant tags it carries. Callers recover a variant with a type
// switch or with the Is* predicates in predicates.go, which also accept
// decoded documents coming from outside the process.
package domain

// InflectableName is an opaque name value with case-converted renderings.
// Values are produced by the casing collaborator (see ports.CaseConverter).
type InflectableName interface {
	// Text is the raw identifier the name was built from.
	Text() string
	Snake() string
	ScreamingSnake() string
	Kebab() string
	Camel() string
	Pascal() string
	String() string
}

// tagged is implemented by every value of the model.
type tagged interface {
	discriminants() TagSet
}

// ExecutionEnvironment is a single named runtime environment.
//
// go-sumtype:decl ExecutionEnvironment
type ExecutionEnvironment interface {
	tagged
	EnvironmentName() InflectableName
	isExecutionEnvironment()
}

// NamedEnvironment is an environment carrying only the family tag.
type NamedEnvironment struct {
	name InflectableName
}

// NewNamedEnvironment builds a bare environment.
func NewNamedEnvironment(name InflectableName) *NamedEnvironment {
	return &NamedEnvironment{name: name}
}

func (e *NamedEnvironment) EnvironmentName() InflectableName { return e.name }
func (*NamedEnvironment) isExecutionEnvironment()            {}

func (*NamedEnvironment) discriminants() TagSet {
	return NewTagSet(TagExecutionEnvironment)
}

// EngineeringFlags selects the engineering roles an environment plays.
// The flags are not exclusive.
type EngineeringFlags struct {
	// DevlSandbox marks a single developer's sandbox.
	DevlSandbox bool
	// DevlIntegration marks an environment integrating several developers' work.
	DevlIntegration bool
	// Test marks an environment used for QA or other testing.
	Test bool
}

// EngineeringEnvironment is a development or test environment.
type EngineeringEnvironment struct {
	name  InflectableName
	flags EngineeringFlags
}

// NewEngineeringEnvironment builds an engineering environment.
func NewEngineeringEnvironment(name InflectableName, flags EngineeringFlags) *EngineeringEnvironment {
	return &EngineeringEnvironment{name: name, flags: flags}
}

func (e *EngineeringEnvironment) EnvironmentName() InflectableName { return e.name }
func (*EngineeringEnvironment) isExecutionEnvironment()            {}

// Flags returns the engineering roles of the environment.
func (e *EngineeringEnvironment) Flags() EngineeringFlags { return e.flags }

func (e *EngineeringEnvironment) discriminants() TagSet {
	tags := NewTagSet(TagExecutionEnvironment, TagEngineeringEnvironment)
	if e.flags.DevlSandbox {
		tags = tags.With(TagDevlSandboxEnvironment)
	}
	if e.flags.DevlIntegration {
		tags = tags.With(TagDevlIntegrationEnvironment)
	}
	if e.flags.Test {
		tags = tags.With(TagTestEnvironment)
	}
	return tags
}

// DemonstrationEnvironment is an environment used for demos.
type DemonstrationEnvironment struct {
	name InflectableName
}

// NewDemonstrationEnvironment builds a demonstration environment.
func NewDemonstrationEnvironment(name InflectableName) *DemonstrationEnvironment {
	return &DemonstrationEnvironment{name: name}
}

func (e *DemonstrationEnvironment) EnvironmentName() InflectableName { return e.name }
func (*DemonstrationEnvironment) isExecutionEnvironment()            {}

func (*DemonstrationEnvironment) discriminants() TagSet {
	return NewTagSet(TagExecutionEnvironment, TagDemonstrationEnvironment)
}

// ProductionEnvironment is a production or staging environment.
type ProductionEnvironment struct {
	name    InflectableName
	staging bool
}

// NewProductionEnvironment builds a production environment; staging marks
// it as the pre-production stage.
func NewProductionEnvironment(name InflectableName, staging bool) *ProductionEnvironment {
	return &ProductionEnvironment{name: name, staging: staging}
}

func (e *ProductionEnvironment) EnvironmentName() InflectableName { return e.name }
func (*ProductionEnvironment) isExecutionEnvironment()            {}

// Staging reports whether the environment is a staging environment.
func (e *ProductionEnvironment) Staging() bool { return e.staging }

func (e *ProductionEnvironment) discriminants() TagSet {
	tags := NewTagSet(TagExecutionEnvironment, TagProductionEnvironment)
	if e.staging {
		tags = tags.With(TagStagingEnvironment)
	}
	return tags
}
