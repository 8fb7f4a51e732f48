package domain

// Context names the environment set a piece of work applies to.
// Build values through the factory so that ExecEnvs is never nil.
type Context struct {
	execEnvs ExecutionEnvironments
}

// NewContext builds a context for envs.
func NewContext(envs ExecutionEnvironments) Context {
	return Context{execEnvs: envs}
}

// ExecEnvs returns the environment set of the context.
func (c Context) ExecEnvs() ExecutionEnvironments { return c.execEnvs }

func (Context) discriminants() TagSet {
	return NewTagSet(TagContext)
}

// ProjectContext is a Context bound to a project location.
type ProjectContext struct {
	Context
	projectPath string
}

// NewProjectContext builds a project context. The path is kept verbatim.
func NewProjectContext(projectPath string, envs ExecutionEnvironments) ProjectContext {
	return ProjectContext{Context: NewContext(envs), projectPath: projectPath}
}

// ProjectPath returns the filesystem or logical location of the project.
func (c ProjectContext) ProjectPath() string { return c.projectPath }

func (ProjectContext) discriminants() TagSet {
	return NewTagSet(TagContext, TagProjectContext)
}
