// Package resolve denormalizes the raw ENCODE metadata tables into a
// single file-centric table. It walks the chains of cross-referenced
// identifiers (file → replicate → library → biosample →
// treatment/organism, file → experiment/dataset, file →
// antibody/antibody-characterization) and flattens one record per
// file, with fallback rules when direct links are missing.
package resolve

import "github.com/ericfournier2/encodexplorer/table"

// Names of the raw metadata tables the pipeline consumes.
const (
	TableFile          = "file"
	TableAward         = "award"
	TableLab           = "lab"
	TablePlatform      = "platform"
	TableReplicate     = "replicate"
	TableAntibodyLot   = "antibody_lot"
	TableAntibodyChar  = "antibody_characterization"
	TableTreatment     = "treatment"
	TableLibrary       = "library"
	TableBiosample     = "biosample"
	TableBiosampleType = "biosample_type"
	TableDataset       = "dataset"
	TableExperiment    = "experiment"
	TableTarget        = "target"
	TableOrganism      = "organism"
	TableUser          = "user"
)

// TableNames lists every table the pipeline knows about, in fetch
// order. The file table is required; all others may be absent, in
// which case lookups against them yield missing values.
var TableNames = []string{
	TableFile,
	TableAward,
	TableLab,
	TablePlatform,
	TableReplicate,
	TableAntibodyLot,
	TableAntibodyChar,
	TableTreatment,
	TableLibrary,
	TableBiosample,
	TableBiosampleType,
	TableDataset,
	TableExperiment,
	TableTarget,
	TableOrganism,
	TableUser,
}

// Tables maps a table name to its contents. Absent entries are legal.
type Tables map[string]*table.Table

// get returns the named table or nil, which the lookup primitives
// treat as an always-miss table.
func (s Tables) get(name string) *table.Table {
	return s[name]
}
