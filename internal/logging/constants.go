package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldRecordID   = "record_id"
	FieldCategory   = "category"
	FieldStage      = "stage"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldFormat     = "format"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
