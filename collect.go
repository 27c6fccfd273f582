package vaxin

// Collector builds the output container for Each. Insert is called once
// per conformed element in validation order; Finalize runs once after the
// fold completes.
type Collector interface {
	// Empty returns a fresh, empty container.
	Empty() any

	// Insert adds one conformed element and returns the container.
	Insert(container, element any) any

	// Finalize converts the accumulated container into the value Each
	// conforms to.
	Finalize(container any) any
}

// ToSlice collects conformed elements into a []any, preserving validation
// order. This is the default collector.
func ToSlice() Collector {
	return sliceCollector{}
}

type sliceCollector struct{}

func (sliceCollector) Empty() any {
	return []any{}
}

func (sliceCollector) Insert(container, element any) any {
	return append(container.([]any), element)
}

func (sliceCollector) Finalize(container any) any {
	return container
}

// ToSet collects conformed elements into a map[any]struct{}, dropping
// duplicates. Elements must be comparable.
func ToSet() Collector {
	return setCollector{}
}

type setCollector struct{}

func (setCollector) Empty() any {
	return map[any]struct{}{}
}

func (setCollector) Insert(container, element any) any {
	set := container.(map[any]struct{})
	set[element] = struct{}{}
	return set
}

func (setCollector) Finalize(container any) any {
	return container
}

// ToMap collects conformed elements into a map[any]any keyed by the
// derived key. A later element with the same derived key overwrites an
// earlier one.
func ToMap(key func(element any) any) Collector {
	return mapCollector{key: key}
}

type mapCollector struct {
	key func(element any) any
}

func (c mapCollector) Empty() any {
	return map[any]any{}
}

func (c mapCollector) Insert(container, element any) any {
	m := container.(map[any]any)
	m[c.key(element)] = element
	return m
}

func (c mapCollector) Finalize(container any) any {
	return container
}
