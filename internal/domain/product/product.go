// Package product holds the shared product catalog used by production and
// sales records. Product types and units are open string enums: the known
// values drive defaults and display names, but unknown values coming back from
// the store are passed through untouched so new catalog entries never break
// existing clients.
package product

const (
	TypeReadyMixConcrete = "ready_mix_concrete"
	TypeCLCBrick         = "clc_brick"
	TypePlatformBlock    = "platform_block"
)

const (
	UnitCubicMeters = "cubic_meters"
	UnitPieces      = "pieces"
	UnitTons        = "tons"
	UnitLiters      = "liters"
)

const (
	DefaultType = TypeReadyMixConcrete
	DefaultUnit = UnitCubicMeters
)

var typeLabels = map[string]string{
	TypeReadyMixConcrete: "Ready Mix Concrete",
	TypeCLCBrick:         "CLC Brick",
	TypePlatformBlock:    "Platform Block",
}

// Label maps a product type to its display name. Unrecognized types are
// returned verbatim.
func Label(productType string) string {
	if label, ok := typeLabels[productType]; ok {
		return label
	}
	return productType
}

func KnownType(productType string) bool {
	_, ok := typeLabels[productType]
	return ok
}

func KnownUnit(unit string) bool {
	switch unit {
	case UnitCubicMeters, UnitPieces, UnitTons, UnitLiters:
		return true
	}
	return false
}
