package template

import "sort"

// CatalogVersion identifies the built-in template catalog revision.
const CatalogVersion = "1.0.0"

// Registry is the read-only lookup from dimension key to templates. It is
// constructed once at process start and safe for concurrent reads.
//
// A missing prompt template is an expected condition, not an error: the
// dimension taxonomy grows ahead of the catalog, and callers skip (and
// log) gaps in unmapped dimensions.
type Registry struct {
	prompts  map[string]PromptTemplate
	policies map[string]PolicyTemplate
}

// NewRegistry builds a registry over the built-in catalogs.
func NewRegistry() *Registry {
	return &Registry{
		prompts:  builtinPromptTemplates(),
		policies: builtinPolicyTemplates(),
	}
}

// Prompt returns the prompt template for a dimension key, or false when
// the dimension has none.
func (r *Registry) Prompt(dimensionKey string) (PromptTemplate, bool) {
	t, ok := r.prompts[dimensionKey]
	return t, ok
}

// Policy returns the policy template for a dimension key, or false when
// the dimension has none. Callers fall back to a generic policy rather
// than failing.
func (r *Registry) Policy(dimensionKey string) (PolicyTemplate, bool) {
	t, ok := r.policies[dimensionKey]
	return t, ok
}

// Prompts returns all prompt templates, sorted by dimension key.
func (r *Registry) Prompts() []PromptTemplate {
	keys := make([]string, 0, len(r.prompts))
	for k := range r.prompts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]PromptTemplate, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.prompts[k])
	}
	return out
}

// PromptDimensions returns the dimension keys that have a prompt template,
// sorted.
func (r *Registry) PromptDimensions() []string {
	keys := make([]string, 0, len(r.prompts))
	for k := range r.prompts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
