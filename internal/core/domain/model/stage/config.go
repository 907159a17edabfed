package stage

// ParameterKind distinguishes how a measured parameter is validated:
// categorical fields must be non-empty strings, dimensional fields must be
// positive numerics.
type ParameterKind int

const (
	// Categorical parameters carry a named value such as a color or bag type.
	Categorical ParameterKind = iota

	// Dimensional parameters carry a measured quantity such as GSM or weight.
	Dimensional
)

// ParameterSpec describes one measured parameter a stage requires before an
// order may be admitted into its slot.
type ParameterSpec struct {
	Key  string
	Kind ParameterKind
}

// Config is the per-stage configuration object the lifecycle engine is
// parameterized by. It replaces hardcoded stage branches: the required
// parameter schema, whether admission is verification-gated, and the
// downstream stage are all data.
type Config struct {
	stage                Stage
	requiresVerification bool
	required             []ParameterSpec
	next                 Stage
}

// configs enumerates the production line. Packaging is terminal and admits
// without verification; measurements there belong to packages, not orders.
func configs() map[Stage]Config {
	return map[Stage]Config{
		Flexo: {
			stage:                Flexo,
			requiresVerification: true,
			required: []ParameterSpec{
				{Key: "rollSize", Kind: Categorical},
				{Key: "gsm", Kind: Dimensional},
				{Key: "fabricColor", Kind: Categorical},
				{Key: "bagType", Kind: Categorical},
				{Key: "printColor", Kind: Categorical},
				{Key: "cylinderSize", Kind: Categorical},
			},
			next: BagMaking,
		},
		BagMaking: {
			stage:                BagMaking,
			requiresVerification: true,
			required: []ParameterSpec{
				{Key: "bagSize", Kind: Categorical},
				{Key: "bagColor", Kind: Categorical},
				{Key: "gsm", Kind: Dimensional},
				{Key: "weight", Kind: Dimensional},
			},
			next: Packaging,
		},
		Packaging: {
			stage:                Packaging,
			requiresVerification: false,
			next:                 Unknown,
		},
	}
}

// ConfigFor returns the configuration of the given stage.
func ConfigFor(s Stage) (Config, error) {
	if err := s.Validate(); err != nil {
		return Config{}, err
	}
	return configs()[s], nil
}

// Stage returns the stage this configuration belongs to.
func (c Config) Stage() Stage {
	return c.stage
}

// RequiresVerification reports whether admission into this stage's slot is
// gated on a verified measurement record.
func (c Config) RequiresVerification() bool {
	return c.requiresVerification
}

// RequiredParameters returns the measured parameter schema of the stage.
// The returned slice is a copy; callers cannot mutate the configuration.
func (c Config) RequiredParameters() []ParameterSpec {
	out := make([]ParameterSpec, len(c.required))
	copy(out, c.required)
	return out
}

// NextStage returns the downstream stage and whether one exists.
func (c Config) NextStage() (Stage, bool) {
	if c.next == Unknown {
		return Unknown, false
	}
	return c.next, true
}
