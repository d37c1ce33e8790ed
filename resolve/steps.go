package resolve

import (
	"strings"

	"github.com/ericfournier2/encodexplorer/table"
)

// A step rewrites the running file table in place using one or more of
// the raw reference tables. Steps add, rename, or rewrite columns only;
// the row count and row order never change.
type step func(tbl *table.Table, src Tables)

// steps lists the resolver chain in execution order. Later steps
// depend on columns produced or renamed by earlier ones.
var steps = []step{
	renameCoreColumns,
	splitDataset,
	resolveProjectPlatformLab,
	resolveReplicate,
	resolveAntibody,
	resolveTreatment,
	resolveExperiment,
	resolveBiosampleType,
	resolveTargetOrganism,
	resolveMiscellaneous,
	formatFileSize,
	stripRemainingRefs,
}

// renameCoreColumns frees up the status and accession names for the
// dataset-level values resolved later.
func renameCoreColumns(tbl *table.Table, src Tables) {
	tbl.Rename("status", "file_status")
	tbl.Rename("accession", "file_accession")
	tbl.Rename("award", "project")
	tbl.Rename("replicate", "replicate_list")
}

// splitDataset splits the /<type>/<accession>/ dataset reference into
// dataset_type and accession. Values that do not match the reference
// pattern degrade to the whole string for both columns.
func splitDataset(tbl *table.Table, src Tables) {
	ds := tbl.ColOr("dataset")
	types := make([]table.Cell, len(ds))
	accessions := make([]table.Cell, len(ds))
	for i, v := range ds {
		if !v.Valid {
			continue
		}
		refType, accession := table.SplitRef(v.String)
		types[i] = table.Str(refType)
		accessions[i] = table.Str(accession)
	}
	tbl.SetCol("dataset_type", types)
	tbl.SetCol("accession", accessions)
}

// resolveProjectPlatformLab swaps award, platform and lab references
// for their display names, keeping the prefix-stripped reference when
// the target table has no matching row. paired_with never has a richer
// substitute and is prefix-stripped directly.
func resolveProjectPlatformLab(tbl *table.Table, src Tables) {
	project := tbl.ColOr("project")
	tbl.SetCol("project", table.LookupFallback(project, src.get(TableAward), "id", "project", table.StripPrefix(project)))

	platform := tbl.ColOr("platform")
	tbl.SetCol("platform", table.LookupFallback(platform, src.get(TablePlatform), "id", "title", table.StripPrefix(platform)))

	lab := tbl.ColOr("lab")
	tbl.SetCol("lab", table.LookupFallback(lab, src.get(TableLab), "id", "title", table.StripPrefix(lab)))

	tbl.SetCol("paired_with", table.StripPrefix(tbl.ColOr("paired_with")))
}

// resolveReplicate pulls the replicate numbers and the antibody
// reference through the file's replicate link.
func resolveReplicate(tbl *table.Table, src Tables) {
	reps := tbl.ColOr("replicate_list")
	table.JoinColumns(tbl, reps, src.get(TableReplicate), "id", []table.RenamePair{
		table.Pull("biological_replicate_number"),
		table.Pull("technical_replicate_number"),
		table.Pull("antibody"),
	})
}

// resolveAntibody pulls the antibody target and characterization
// through the antibody lot, then the characterization caption and
// method. The characterization column keeps its identifier when no
// method is found, and both antibody identifier columns end up
// prefix-stripped.
func resolveAntibody(tbl *table.Table, src Tables) {
	antibody := tbl.ColOr("antibody")
	table.JoinColumns(tbl, antibody, src.get(TableAntibodyLot), "id", []table.RenamePair{
		{As: "antibody_target", From: "target"},
		{As: "antibody_characterization", From: "characterizations"},
	})

	characterization := tbl.ColOr("antibody_characterization")
	table.JoinColumns(tbl, characterization, src.get(TableAntibodyChar), "id", []table.RenamePair{
		{As: "antibody_caption", From: "caption"},
	})
	tbl.SetCol("antibody_characterization",
		table.LookupFallback(characterization, src.get(TableAntibodyChar), "id", "characterization_method", characterization))

	tbl.SetCol("antibody", table.StripPrefix(antibody))
	tbl.SetCol("antibody_target", table.StripPrefix(tbl.ColOr("antibody_target")))
}

// resolveTreatment resolves each file's biosample, then the organism,
// treatment term and treatment details attached to it.
//
// The biosample is resolved two ways. When the file's replicate is
// known, it links directly through the library. When it is not, the
// dataset's semicolon-delimited replicate list stands in, taking the
// first listed replicate only; which replicate represents a
// multi-replicate dataset is ambiguous, and first-in-list is the
// contract. An already-resolved biosample_id column acts as a fallback
// ahead of the dataset path: the direct path goes missing once the
// replicate identifiers are stripped, and the dataset's first listed
// replicate may belong to a different file. The dataset path fills
// only rows still missing after both.
func resolveTreatment(tbl *table.Table, src Tables) {
	reps := tbl.ColOr("replicate_list")
	libraries := table.Lookup(reps, src.get(TableReplicate), "id", "library")
	biosamples := table.Lookup(libraries, src.get(TableLibrary), "id", "biosample")

	if prior := tbl.Col("biosample_id"); prior != nil {
		for i := range biosamples {
			if !biosamples[i].Valid {
				biosamples[i] = prior[i]
			}
		}
	}

	datasetReps := table.Lookup(tbl.ColOr("accession"), src.get(TableDataset), "accession", "replicates")
	firstReps := make([]table.Cell, len(datasetReps))
	for i, v := range datasetReps {
		if !v.Valid {
			continue
		}
		first, _, _ := strings.Cut(v.String, ";")
		firstReps[i] = table.Str(strings.TrimSpace(first))
	}
	fallbackLibraries := table.Lookup(firstReps, src.get(TableReplicate), "id", "library")
	fallbackBiosamples := table.Lookup(fallbackLibraries, src.get(TableLibrary), "id", "biosample")
	for i := range biosamples {
		if !biosamples[i].Valid {
			biosamples[i] = fallbackBiosamples[i]
		}
	}
	tbl.SetCol("biosample_id", biosamples)

	tbl.SetCol("organism", table.Lookup(biosamples, src.get(TableBiosample), "id", "organism"))

	treatments := table.Lookup(biosamples, src.get(TableBiosample), "id", "treatments")
	table.JoinColumns(tbl, treatments, src.get(TableTreatment), "id", []table.RenamePair{
		{As: "treatment_amount", From: "amount"},
		{As: "treatment_amount_unit", From: "amount_units"},
		{As: "treatment_duration", From: "duration"},
		{As: "treatment_duration_unit", From: "duration_units"},
		{As: "treatment_temperature", From: "temperature"},
		{As: "treatment_temperature_unit", From: "temperature_units"},
		{As: "treatment_notes", From: "notes"},
	})
	tbl.SetCol("treatment", table.LookupFallback(treatments, src.get(TableTreatment), "id", "treatment_term_name", treatments))
}

// resolveExperiment appends the experiment-level columns, keyed by the
// dataset accession.
func resolveExperiment(tbl *table.Table, src Tables) {
	accessions := tbl.ColOr("accession")
	table.JoinColumns(tbl, accessions, src.get(TableExperiment), "accession", []table.RenamePair{
		table.Pull("target"),
		table.Pull("date_released"),
		table.Pull("status"),
		{As: "assay", From: "assay_title"},
		{As: "controls", From: "possible_controls"},
		table.Pull("biosample_ontology"),
		{As: "dataset_biosample_summary", From: "biosample_summary"},
		{As: "dataset_description", From: "description"},
	})
}

// resolveBiosampleType appends the biosample classification and term
// name through the ontology reference.
func resolveBiosampleType(tbl *table.Table, src Tables) {
	ontology := tbl.ColOr("biosample_ontology")
	table.JoinColumns(tbl, ontology, src.get(TableBiosampleType), "id", []table.RenamePair{
		{As: "biosample_type", From: "classification"},
		{As: "biosample_name", From: "term_name"},
	})
}

// resolveTargetOrganism resolves the target reference to its label and
// the organism reference to a scientific name. A target-derived
// organism takes priority over the biosample-derived one; the organism
// table is consulted last, only where the value still carries a
// reference it can resolve.
func resolveTargetOrganism(tbl *table.Table, src Tables) {
	targets := tbl.ColOr("target")

	tbl.SetCol("organism", table.LookupFallback(targets, src.get(TableTarget), "id", "organism", tbl.ColOr("organism")))
	table.JoinColumns(tbl, targets, src.get(TableTarget), "id", []table.RenamePair{
		table.Pull("investigated_as"),
	})
	tbl.SetCol("target", table.LookupFallback(targets, src.get(TableTarget), "id", "label", targets))

	organisms := tbl.ColOr("organism")
	tbl.SetCol("organism", table.LookupFallback(organisms, src.get(TableOrganism), "id", "scientific_name", organisms))
}

// resolveMiscellaneous covers the three remaining single-column pulls:
// the library's nucleic acid term, the submitter's display name, and
// the dataset-level status.
func resolveMiscellaneous(tbl *table.Table, src Tables) {
	table.JoinColumns(tbl, tbl.ColOr("replicate_libraries"), src.get(TableLibrary), "id", []table.RenamePair{
		{As: "nucleic_acid_term", From: "nucleic_acid_term_name"},
	})

	submitters := tbl.ColOr("submitted_by")
	tbl.SetCol("submitted_by", table.LookupFallback(submitters, src.get(TableUser), "id", "title", submitters))

	statuses := tbl.ColOr("status")
	tbl.SetCol("status", table.LookupFallback(tbl.ColOr("accession"), src.get(TableDataset), "accession", "status", statuses))
}

// formatFileSize rewrites raw byte counts as unit-suffixed strings.
func formatFileSize(tbl *table.Table, src Tables) {
	tbl.SetCol("file_size", table.FormatFileSize(tbl.ColOr("file_size")))
}

// stripRemainingRefs strips the repository path wrapper from the
// identifier columns that never go through a table lookup.
func stripRemainingRefs(tbl *table.Table, src Tables) {
	for _, name := range []string{"replicate_libraries", "controls", "controlled_by", "replicate_list"} {
		tbl.SetCol(name, table.StripPrefix(tbl.ColOr(name)))
	}
}
