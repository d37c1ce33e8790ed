package resolve

// ColumnGroup names one output partition and the columns it selects,
// in output order. The column lists are a compatibility contract with
// downstream consumers; renaming an entry is a breaking change.
type ColumnGroup struct {
	Name    string
	Columns []string
}

// GroupOther is the name of the catch-all partition holding every
// column no named group claims.
const GroupOther = "other"

// OutputGroups lists the named output partitions. Together with the
// catch-all they tile the full wide table: concatenating all four
// partitions side by side reproduces it. The lite group alone is the
// default lightweight output.
var OutputGroups = []ColumnGroup{
	{
		Name: "lite",
		Columns: []string{
			"file_accession",
			"file_format",
			"file_type",
			"file_format_type",
			"file_size",
			"file_status",
			"accession",
			"dataset_type",
			"assay",
			"project",
			"lab",
			"platform",
			"organism",
			"target",
			"investigated_as",
			"biosample_id",
			"biosample_type",
			"biosample_name",
			"biosample_ontology",
			"dataset_biosample_summary",
			"dataset_description",
			"replicate_list",
			"replicate_libraries",
			"biological_replicate_number",
			"technical_replicate_number",
			"paired_end",
			"paired_with",
			"run_type",
			"read_length",
			"mapped_read_length",
			"mapped_run_type",
			"antibody",
			"antibody_target",
			"antibody_characterization",
			"antibody_caption",
			"treatment",
			"treatment_amount",
			"treatment_amount_unit",
			"treatment_duration",
			"treatment_duration_unit",
			"treatment_temperature",
			"treatment_temperature_unit",
			"treatment_notes",
			"nucleic_acid_term",
			"output_category",
			"output_type",
			"assembly",
			"genome_annotation",
			"controls",
			"controlled_by",
			"status",
			"date_released",
			"submitted_by",
			"dataset",
			"href",
			"dbxrefs",
			"external_accessions",
			"notes",
		},
	},
	{
		Name: "fs",
		Columns: []string{
			"submitted_file_name",
			"s3_uri",
			"azure_uri",
			"cloud_metadata",
			"read_count",
			"fastq_signature",
			"quality_metrics",
			"preferred_default",
			"restricted",
			"no_file_available",
		},
	},
	{
		Name: "provenance",
		Columns: []string{
			"md5sum",
			"content_md5sum",
			"date_created",
			"derived_from",
			"supersedes",
			"superseded_by",
			"step_run",
			"schema_version",
			"uuid",
		},
	},
}

// ExpectedColumns returns every column the named groups select, in
// group order. Columns listed here but absent after resolution signal
// upstream schema drift.
func ExpectedColumns() []string {
	var out []string
	for _, g := range OutputGroups {
		out = append(out, g.Columns...)
	}
	return out
}
