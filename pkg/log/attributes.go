package log

// Standard attribute keys for regression operations. Using these keys
// consistently keeps log lines filterable: every fit, predict and evaluate
// event carries the same field names regardless of which component emitted
// it.
const (
	// ModelNameKey identifies the model type, e.g. "Regressor".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit_simple", "fit_multiple", "predict", "evaluate"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "linear", "metrics", "compare".
	ComponentKey = "ml.component"

	// SamplesKey is the number of observations in the data.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of predictors in the data.
	FeaturesKey = "data.features"

	// DatasetKey names the dataset group being processed, e.g. "I" for the
	// first Anscombe group.
	DatasetKey = "data.group"
)
