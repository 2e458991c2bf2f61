// pkg/api/mapping_v1.go
package api

// MappingV1 is the stable JSON schema for ghost-map output. Keep fields,
// names, and types stable. Add new fields only with ",omitempty".
type MappingV1 struct {
	// EqClasses maps read id → transcript ids the read is compatible with.
	EqClasses map[string][]uint32 `json:"eq_classes"`
	// Coverage maps read id → alignment support for that read.
	Coverage map[string]int `json:"coverage"`
}
