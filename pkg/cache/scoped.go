package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tenants can share
// one backend without seeing each other's entries.
//
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:"+id+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlanKey generates a prefixed key for synthesized documents.
func (k *ScopedKeyer) PlanKey(programHash, variant string) string {
	return k.prefix + k.inner.PlanKey(programHash, variant)
}

// ColumnsKey generates a prefixed key for column grids.
func (k *ScopedKeyer) ColumnsKey(planHash string, opts ColumnKeyOpts) string {
	return k.prefix + k.inner.ColumnsKey(planHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
