package domain

// EnvironmentView is a render-friendly description of an environment.
type EnvironmentView struct {
	Name      string   `json:"name" yaml:"name"`
	SnakeName string   `json:"snake_name" yaml:"snake_name"`
	Tags      []string `json:"tags" yaml:"tags"`
}

// EnvironmentsView is a render-friendly description of an environment set.
type EnvironmentsView struct {
	Name         string            `json:"name" yaml:"name"`
	SnakeName    string            `json:"snake_name" yaml:"snake_name"`
	Tags         []string          `json:"tags" yaml:"tags"`
	Environments []EnvironmentView `json:"environments,omitempty" yaml:"environments,omitempty"`
}

// ContextView is a render-friendly description of a Context or ProjectContext.
type ContextView struct {
	Tags        []string         `json:"tags" yaml:"tags"`
	ProjectPath *string          `json:"project_path,omitempty" yaml:"project_path,omitempty"`
	ExecEnvs    EnvironmentsView `json:"exec_envs" yaml:"exec_envs"`
}

// DescribeEnvironment builds the view of env.
func DescribeEnvironment(env ExecutionEnvironment) EnvironmentView {
	view := EnvironmentView{Tags: TagsOf(env).Keys()}
	if name := nameOf(env, func() InflectableName { return env.EnvironmentName() }); name != nil {
		view.Name = name.Text()
		view.SnakeName = name.Snake()
	}
	return view
}

// DescribeEnvironments builds the view of envs, including listed members.
func DescribeEnvironments(envs ExecutionEnvironments) EnvironmentsView {
	view := EnvironmentsView{Tags: TagsOf(envs).Keys()}
	if name := nameOf(envs, func() InflectableName { return envs.EnvironmentsName() }); name != nil {
		view.Name = name.Text()
		view.SnakeName = name.Snake()
	}
	if some, ok := As[*SomeExecutionEnvironments](envs); ok {
		for _, env := range some.Environments() {
			view.Environments = append(view.Environments, DescribeEnvironment(env))
		}
	}
	return view
}

// DescribeContext builds the view of a context.
func DescribeContext(ctx Context) ContextView {
	return ContextView{
		Tags:     TagsOf(ctx).Keys(),
		ExecEnvs: DescribeEnvironments(ctx.ExecEnvs()),
	}
}

// DescribeProjectContext builds the view of a project context.
func DescribeProjectContext(ctx ProjectContext) ContextView {
	path := ctx.ProjectPath()
	return ContextView{
		Tags:        TagsOf(ctx).Keys(),
		ProjectPath: &path,
		ExecEnvs:    DescribeEnvironments(ctx.ExecEnvs()),
	}
}

func nameOf(v any, get func() InflectableName) InflectableName {
	if isNil(v) {
		return nil
	}
	return get()
}
