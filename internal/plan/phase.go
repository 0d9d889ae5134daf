package plan

// NoPhase is the sentinel phase for issue numbers outside every range.
const NoPhase = "No Phase"

// phaseRange maps an inclusive issue number range to a milestone name.
type phaseRange struct {
	low, high int
	name      string
}

// phases is checked in order; first match wins. Ranges are ascending and
// non-overlapping.
var phases = []phaseRange{
	{1, 5, "Phase 1: Foundation"},
	{6, 13, "Phase 2: Core Domain"},
	{14, 20, "Phase 3: Core Parsing"},
	{21, 26, "Phase 4: PAIN Parser"},
	{27, 32, "Phase 5: PACS Parser"},
	{33, 40, "Phase 6: CAMT Parser"},
	{41, 47, "Phase 7: Further Business Areas"},
	{48, 56, "Phase 8: Streaming & Pipeline"},
	{57, 62, "Phase 9: Schema Validation"},
	{63, 69, "Phase 10: XML Generation"},
	{70, 75, "Phase 11: Version Transformation"},
	{76, 85, "Phase 12: Testing"},
	{86, 91, "Phase 13: Performance"},
	{92, 96, "Phase 14: Observability"},
	{97, 100, "Phase 15: DI & Configuration"},
	{101, 107, "Phase 16: Documentation"},
	{108, 110, "Phase 17: Code Generation (Optional)"},
}

// PhaseFor returns the milestone name for an issue number, or NoPhase if
// the number falls outside every range.
func PhaseFor(number int) string {
	for _, r := range phases {
		if number >= r.low && number <= r.high {
			return r.name
		}
	}
	return NoPhase
}
