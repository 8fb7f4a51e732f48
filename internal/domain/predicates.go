package domain

import "reflect"

// TypeGuard returns a predicate reporting whether a value holds a non-nil T.
func TypeGuard[T any]() func(any) bool {
	return func(v any) bool {
		_, ok := As[T](v)
		return ok
	}
}

// As is a nil-safe type assertion: typed nil pointers, maps and slices
// never match.
func As[T any](v any) (T, bool) {
	var zero T
	if isNil(v) {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// TagsOf returns every tag v satisfies. Model values report their own
// discriminants; documents are classified in strict mode. Anything else
// carries no tag.
func TagsOf(v any) TagSet {
	if isNil(v) {
		return 0
	}
	switch t := v.(type) {
	case tagged:
		return t.discriminants()
	case Document:
		return StrictClassifier.Tags(t)
	}
	return 0
}

func IsContext(v any) bool {
	return TagsOf(v).Has(TagContext)
}

func IsProjectContext(v any) bool {
	return TagsOf(v).Has(TagProjectContext)
}

func IsExecutionEnvironment(v any) bool {
	return TagsOf(v).Has(TagExecutionEnvironment)
}

func IsEngineeringEnvironment(v any) bool {
	return TagsOf(v).Has(TagEngineeringEnvironment)
}

// IsDevlSandboxEnvironment reports a single developer's sandbox.
func IsDevlSandboxEnvironment(v any) bool {
	return TagsOf(v).Has(TagDevlSandboxEnvironment)
}

// IsDevlIntegrationEnvironment reports an environment shared by several developers.
func IsDevlIntegrationEnvironment(v any) bool {
	return TagsOf(v).Has(TagDevlIntegrationEnvironment)
}

func IsTestEnvironment(v any) bool {
	return TagsOf(v).Has(TagTestEnvironment)
}

func IsDemonstrationEnvironment(v any) bool {
	return TagsOf(v).Has(TagDemonstrationEnvironment)
}

func IsProductionEnvironment(v any) bool {
	return TagsOf(v).Has(TagProductionEnvironment)
}

func IsStagingEnvironment(v any) bool {
	return TagsOf(v).Has(TagStagingEnvironment)
}

func IsExecutionEnvironments(v any) bool {
	return TagsOf(v).Has(TagExecutionEnvironments)
}

func IsAllExecutionEnvironments(v any) bool {
	return TagsOf(v).Has(TagAllExecutionEnvironments)
}

func IsSomeExecutionEnvironments(v any) bool {
	return TagsOf(v).Has(TagSomeExecutionEnvironments)
}
