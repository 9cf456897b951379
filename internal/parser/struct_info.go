package parser

// StructInfo holds the static field list of one struct, in declaration order.
type StructInfo struct {
	Name    string
	PkgPath string
	PkgName string
	Dir     string
	Fields  []FieldInfo
}

// FieldInfo describes one field of a traversable struct.
type FieldInfo struct {
	Name      string
	TypeLabel string
	IsPointer bool
	IsPadding bool
	Pointee   *PointeeRef
}

// PointeeRef identifies the target struct type of a pointer field.
type PointeeRef struct {
	PkgPath string
	Name    string
}
