package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFlavor    = "flavor"
	FieldWidth     = "width"
	FieldConfig    = "config"
	FieldLoadedCfg = "loaded_from"

	// Document fields.
	FieldBlocks   = "blocks"
	FieldHeight   = "height"
	FieldLanguage = "language"
	FieldTarget   = "target"
	FieldQuery    = "query"
	FieldMatches  = "matches"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
